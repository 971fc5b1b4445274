package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	app_errors "esg-assistant/internal/errors"
	"esg-assistant/internal/model"
)

// Shared DTOs for API responses and helpers for writing them consistently.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by operations that have no resource to return.
type StatusResponse struct {
	Status string `json:"status"`
}

// UpdateTitleRequest is the DTO for renaming a conversation.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"max=200" example:"Scope 3 review"`
}

// ActiveConversationResponse is the active conversation and the messages on screen.
// Conversation is null when nothing is active.
type ActiveConversationResponse struct {
	Conversation *model.Conversation `json:"conversation"`
	Messages     []model.Message     `json:"messages"`
}

// ThemeRequest is the DTO for switching the UI theme.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark" example:"dark"`
}

type ThemeResponse struct {
	Theme string `json:"theme" example:"light"`
}

type CompaniesResponse struct {
	Companies []string `json:"companies"`
}

// respondWithError maps business-layer errors to HTTP status codes and writes a
// standard JSON error body. Unmapped errors are reported as a generic 500.
func respondWithError(w http.ResponseWriter, log *zap.Logger, err error) {
	var statusCode int
	var message string

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, app_errors.ErrUpstream):
		statusCode = http.StatusBadGateway
		message = "The analysis service is unavailable."
	case errors.As(err, &maxBytesErr):
		statusCode = http.StatusRequestEntityTooLarge
		message = "The uploaded content is too large."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	log.Warn("responding with error",
		zap.Int("status_code", statusCode),
		zap.String("client_message", message),
		zap.Error(err))

	respondWithJSON(w, log, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, log *zap.Logger, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal JSON response", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error("failed to write JSON response", zap.Error(err))
	}
}

// decodeJSON reads a JSON body into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return app_errors.ErrValidation
	}
	return validateRequest(dst)
}
