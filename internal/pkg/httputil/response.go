package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/texasfightcollective/fight-night-api/internal/pkg/logger"
)

// ErrorResponse is the standard error envelope for server-side faults.
// Client validation failures use the form-specific {success,message} shape
// instead, so the front end can show the message verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code. The data is
// serialized and Content-Type is set automatically.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("response encode failed", "error", err.Error())
	}
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// BadRequest writes a 400 response with the given data. The body shape is
// caller-controlled because the intake endpoints return {success,message}
// rather than the generic error envelope.
func BadRequest(w http.ResponseWriter, data any) {
	JSON(w, http.StatusBadRequest, data)
}

// InternalError writes a 500 error. Logs the real error but returns a
// generic message to the client (never leak internals).
func InternalError(w http.ResponseWriter, err error) {
	logger.Error("internal error", "error", err.Error())
	JSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// Decode reads JSON from the request body into dst. Returns false and writes
// a 400 response if parsing fails.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, map[string]any{"success": false, "message": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}
