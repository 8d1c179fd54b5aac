package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"wishwall/internal/models"
	"wishwall/internal/services"
)

// FeedbackHandler handles HTTP requests related to feedback submission.
type FeedbackHandler struct {
	Service *services.FeedbackService
}

// NewFeedbackHandler creates a new instance of FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: service}
}

// SubmitFeedbackHandler stores a free-text feedback entry.
func (h *FeedbackHandler) SubmitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	fb, err := h.Service.SubmitFeedback(r.Context(), body.Feedback)
	if err != nil {
		if errors.Is(err, models.ErrEmptyFeedback) {
			respondError(w, http.StatusBadRequest, "feedback must not be empty")
			return
		}
		log.WithError(err).Error("Failed to store feedback")
		respondError(w, http.StatusInternalServerError, "Failed to store feedback")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Feedback submitted successfully",
		"feedback": fb,
	})
}
