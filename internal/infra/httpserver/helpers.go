package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	shareddomain "tagback-server/internal/shared_kernel/domain"

	"go.opentelemetry.io/otel/trace"
)

const _maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Message string       `json:"message,omitempty"`
	Errors  []FieldIssue `json:"errors,omitempty"`
}

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg})
}

// ReplyWithValidationError answers 422 listing every rejected field of err.
func ReplyWithValidationError(w http.ResponseWriter, err error) {
	response := &ErrorResponse{Message: shareddomain.ErrValidationFailed.Error()}
	for _, fe := range shareddomain.FieldErrors(err) {
		response.Errors = append(response.Errors, FieldIssue{Field: fe.Field, Reason: fe.Reason})
	}
	if len(response.Errors) == 0 {
		response.Message = err.Error()
	}
	ReplyJSONResponse(w, http.StatusUnprocessableEntity, response)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

var ErrEmptyBody = errors.New("empty request body")

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, _maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	if len(reqBody) == 0 {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
