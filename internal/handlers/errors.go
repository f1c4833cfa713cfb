package handlers

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// The wire contract uses two envelopes: {"errors": [...]} for validation
// failures and {"error": "<Resource> not found"} for 404s. Overriding
// huma.NewError routes every huma.ErrorXXX call through these shapes.
func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status == http.StatusNotFound {
			return &notFoundError{status: status, Message: message}
		}
		details := make([]string, 0, len(errs)+1)
		if message != "" {
			details = append(details, message)
		}
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		return &requestError{status: status, Errors: details}
	}
}

type notFoundError struct {
	status  int
	Message string `json:"error"`
}

func (e *notFoundError) Error() string {
	return e.Message
}

func (e *notFoundError) GetStatus() int {
	return e.status
}

func (e *notFoundError) ContentType(string) string {
	return "application/json"
}

type requestError struct {
	status int
	Errors []string `json:"errors"`
}

func (e *requestError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func (e *requestError) GetStatus() int {
	return e.status
}

func (e *requestError) ContentType(string) string {
	return "application/json"
}
