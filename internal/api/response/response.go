// Package response defines the JSON envelope every API route answers with.
// Exactly one of the two shapes is ever serialized: {ok:true, data:...} or
// {ok:false, error:..., issues?:[...]}; the ok flag discriminates.
package response

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	OK     bool    `json:"ok"`
	Data   any     `json:"data,omitempty"`
	Error  string  `json:"error,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

// Issue is one structured validation failure, passed through to the client
// in the order the validator reported it.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func OK(data any) Response {
	return Response{OK: true, Data: data}
}

func Fail(msg string) Response {
	return Response{OK: false, Error: msg}
}

// ValidationError converts validator output into the 400 envelope.
func ValidationError(errs validator.ValidationErrors) Response {
	issues := make([]Issue, 0, len(errs))
	for _, fe := range errs {
		issues = append(issues, Issue{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: fe.Error(),
		})
	}
	return Response{OK: false, Error: "Validation Error", Issues: issues}
}

// APIError is the distinguished application error type. Handlers return it
// when they want a specific status and client-visible message; anything else
// they return is treated as an internal failure and never shown to clients.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode returns the error's HTTP status, defaulting to 500 when unset.
func (e *APIError) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// E constructs an APIError with an explicit status.
func E(status int, msg string) *APIError {
	return &APIError{Status: status, Message: msg}
}

// Ef constructs an APIError with a formatted message.
func Ef(status int, format string, args ...any) *APIError {
	return &APIError{Status: status, Message: fmt.Sprintf(format, args...)}
}
