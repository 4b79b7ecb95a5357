package envelope

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/corray333/grubdash/internal/service/errs"
	"github.com/corray333/grubdash/internal/service/models/payload"
)

const maxBodyBytes = 1 << 20

// InternalMessage is the body of every 500 response.
const InternalMessage = "Something went wrong!"

// Response wraps a successful result.
type Response struct {
	Data any `json:"data"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Decode reads a {"data": {...}} body. An empty body, or a body without a
// data object, yields an empty payload so field checks report what is missing.
func Decode(r *http.Request) (payload.Payload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errs.InvalidInput("Request body must not exceed %d bytes", tooLarge.Limit)
		}

		return nil, errs.InvalidInput("Failed to read request body")
	}

	envelope, err := payload.Decode(body)
	if err != nil {
		slog.DebugContext(r.Context(), "Error decoding request body", "error", err)

		return nil, errs.InvalidInput("Request body must be valid JSON")
	}

	data, ok := payload.From(envelope["data"])
	if !ok {
		return payload.Payload{}, nil
	}

	return data, nil
}

// Data writes {"data": v} with the given status.
func Data(w http.ResponseWriter, status int, v any) {
	write(w, status, Response{Data: v})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Message writes {"message": msg} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	write(w, status, ErrorResponse{Message: msg})
}

// Error maps err to a status code. Unknown errors are logged and hidden from the caller.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		Message(w, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Error handling request",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		Message(w, http.StatusInternalServerError, InternalMessage)
	}
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}
