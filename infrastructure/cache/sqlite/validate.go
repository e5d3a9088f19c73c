// ABOUTME: Key and value validation for the SQLite query-result store
// ABOUTME: Statements are fixed and parameterized; suspicious keys are logged, not rejected

package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"opportunities-portal-api/core/interfaces"
)

const (
	maxKeyLength   = 255
	maxValueLength = 8 << 20
)

const (
	schemaStmt = `
		CREATE TABLE IF NOT EXISTS query_results (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_query_results_expiry ON query_results(expiry);
	`
	getStmt     = "SELECT value FROM query_results WHERE key = ? AND expiry > ?"
	setStmt     = "INSERT OR REPLACE INTO query_results (key, value, expiry) VALUES (?, ?, ?)"
	deleteStmt  = "DELETE FROM query_results WHERE key = ?"
	cleanupStmt = "DELETE FROM query_results WHERE expiry <= ?"
	clearStmt   = "DELETE FROM query_results"
)

var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"}

// ValidateKey rejects empty, oversized and NUL-bearing keys and logs SQL-looking ones
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger != nil {
		for _, pattern := range suspiciousPatterns {
			if strings.Contains(key, pattern) {
				logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
					"pattern":     pattern,
					"key_length":  len(key),
					"key_preview": truncateKey(key),
				})
			}
		}
	}

	return nil
}

// ValidateValue rejects empty and oversized values
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}

func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}
