package web

// errors.go provides unified error responses for the web layer.
//
// Every error is logged with its technical detail and request ID, then
// returned to the client as JSON carrying a user-friendly message, a
// support code and the machine-checkable kind.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/census/internal/core"
	"github.com/JonMunkholm/census/internal/logging"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
	Kind    string `json:"kind"`
}

// statusFor maps an error kind to an HTTP status code.
func statusFor(kind core.Kind) int {
	switch kind {
	case core.KindWrongFileType:
		return http.StatusBadRequest
	case core.KindSourceUnavailable:
		return http.StatusNotFound
	case core.KindMalformedSchema, core.KindMalformedRow:
		return http.StatusUnprocessableEntity
	case core.KindNoData:
		return http.StatusConflict
	case core.KindUnknownRecordType, core.KindUnknownSortField:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it as an ErrorResponse.
// A statusCode of 0 derives the status from the error kind.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	kind := core.KindOf(err)
	if statusCode == 0 {
		statusCode = statusFor(kind)
	}
	userMsg := core.MapError(err)

	level := slog.LevelWarn
	if statusCode >= 500 {
		level = slog.LevelError
	}
	logging.FromContext(r.Context()).Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"kind", kind.String(),
		"code", userMsg.Code,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   err.Error(),
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
		Kind:    kind.String(),
	})
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
