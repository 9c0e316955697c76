package web

// errors.go provides unified error responses for the preview API.
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls s.respondError(w, r, err, statusCode)
//  3. Error is mapped via core.MapError to a user-facing message and code
//  4. Technical error is logged with the request ID for correlation
//  5. The user message is returned as JSON. The technical text is included
//     only when it matched a known pattern; anything else stays in the log.

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/drinkseed/internal/core"
	"github.com/JonMunkholm/drinkseed/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs err and writes its user-facing form.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	uerr := core.NewUserError(err)

	level := slog.LevelWarn
	if !core.IsUserFacing(err) {
		level = slog.LevelError
	}
	logging.FromContext(r.Context()).Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", uerr.User.Code,
	)

	resp := ErrorResponse{
		Error:   uerr.Error(),
		Message: uerr.User.Message,
		Action:  uerr.User.Action,
		Code:    uerr.User.Code,
	}
	if core.IsUserFacing(err) {
		resp.Error = uerr.Unwrap().Error()
	}
	writeJSON(w, r, statusCode, resp)
}

// decodeError classifies a request body decoding failure.
func decodeError(err error) (int, error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, fmt.Errorf("request body too large: limit is %d bytes", tooLarge.Limit)
	}
	return http.StatusBadRequest, fmt.Errorf("invalid request: %w", err)
}
