package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// respondJSON sends a JSON response with the given status code
func (h *Handler) respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.logger.Error("failed to encode JSON response", zap.Error(err))
		}
	}
}

// respondError sends an error response in JSON format
func (h *Handler) respondError(w http.ResponseWriter, code int, message string) {
	h.respondJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 Bad Request error
func (h *Handler) respondBadRequest(w http.ResponseWriter, message string) {
	h.respondError(w, http.StatusBadRequest, message)
}

// respondInternalError sends a 500 Internal Server Error
func (h *Handler) respondInternalError(w http.ResponseWriter, message string) {
	h.respondError(w, http.StatusInternalServerError, message)
}

// respondSuccess sends a 200 OK with payload
func (h *Handler) respondSuccess(w http.ResponseWriter, payload interface{}) {
	h.respondJSON(w, http.StatusOK, payload)
}
