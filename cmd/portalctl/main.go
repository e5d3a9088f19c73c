// ABOUTME: Entry point of the portalctl operator CLI

package main

import (
	"context"
	"fmt"
	"os"

	"opportunities-portal-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
