// ABOUTME: Wire envelope of the remote procedure layer
// ABOUTME: Mirrors the tRPC response shape with optional superjson wrapping

package rpc

import (
	"bytes"
	"encoding/json"
)

// Envelope is one remote procedure response
type Envelope struct {
	Result *Result     `json:"result,omitempty"`
	Error  *ErrorShape `json:"error,omitempty"`
}

// Result carries the procedure's payload
type Result struct {
	// Data is the payload, possibly wrapped as {"json": ...}; null means no data
	Data json.RawMessage `json:"data"`
}

// ErrorShape carries an application error, possibly wrapped as {"json": ...}
type ErrorShape struct {
	JSON    *ErrorBody `json:"json,omitempty"`
	Message string     `json:"message,omitempty"`
	Code    int        `json:"code,omitempty"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorBody is the unwrapped application error
type ErrorBody struct {
	Message string     `json:"message"`
	Code    int        `json:"code"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorData holds the error classification the backend attached
type ErrorData struct {
	Code       string `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
	Path       string `json:"path,omitempty"`
}

// EmptyEnvelope returns the synthetic success envelope used in place of a failed call
func EmptyEnvelope() *Envelope {
	return &Envelope{Result: &Result{Data: json.RawMessage("null")}}
}

// Body returns the unwrapped error body
func (e *ErrorShape) Body() ErrorBody {
	if e.JSON != nil {
		return *e.JSON
	}
	return ErrorBody{Message: e.Message, Code: e.Code, Data: e.Data}
}

// Payload returns the unwrapped result data, or nil when there is none
func (e *Envelope) Payload() json.RawMessage {
	if e == nil || e.Result == nil {
		return nil
	}
	data := bytes.TrimSpace(e.Result.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '{' {
		var wrapped struct {
			JSON json.RawMessage `json:"json"`
		}
		if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.JSON != nil {
			inner := bytes.TrimSpace(wrapped.JSON)
			if bytes.Equal(inner, []byte("null")) {
				return nil
			}
			return inner
		}
	}

	return data
}

// IsWellFormed reports whether the envelope carries either a result or an error
func (e *Envelope) IsWellFormed() bool {
	return e != nil && (e.Result != nil || e.Error != nil)
}
