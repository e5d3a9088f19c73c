// ABOUTME: Typed decoding of remote procedure payloads
// ABOUTME: Error envelopes surface as RemoteCallError so the session controller can classify them

package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	coreerrors "opportunities-portal-api/core/errors"
)

// Absorber is implemented by transports that swallow failures. Query hands it
// payloads that cannot be decoded so they are handled like transport failures.
type Absorber interface {
	Absorb(op Operation, err error)
}

// Query calls op through t and decodes the payload as a list of T.
// An error envelope becomes a *errors.RemoteCallError; a null payload yields a nil slice.
// An undecodable payload is a *TransportError, absorbed when t is an Absorber.
func Query[T any](ctx context.Context, t Transport, op Operation) ([]T, error) {
	env, err := t.Call(ctx, op)
	if err != nil {
		return nil, err
	}

	if env.Error != nil {
		body := env.Error.Body()
		rcErr := &coreerrors.RemoteCallError{
			Procedure: op.Procedure,
			Message:   body.Message,
		}
		if body.Data != nil {
			rcErr.Code = body.Data.Code
			rcErr.HTTPStatus = body.Data.HTTPStatus
		}
		return nil, rcErr
	}

	payload := env.Payload()
	if payload == nil {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		terr := &TransportError{Procedure: op.Procedure, Err: fmt.Errorf("decode payload: %w", err)}
		if a, ok := t.(Absorber); ok {
			a.Absorb(op, terr)
			return nil, nil
		}
		return nil, terr
	}

	return items, nil
}
