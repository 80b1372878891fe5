package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Beto2203/feedback-backend/app/models"
	"github.com/Beto2203/feedback-backend/app/services"

	"github.com/gorilla/mux"
)

// FeedbackController handles HTTP requests for feedback items
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

type feedbackRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

// Index handles listing all feedback items with author and comments populated
func (fc *FeedbackController) Index(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := fc.feedbackService.ListFeedbacks()
	if err != nil {
		sendError(w, "failed to fetch feedbacks: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, feedbacks, http.StatusOK)
}

// Create handles creating a new feedback item
func (fc *FeedbackController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var body feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	feedback := &models.FeedbackBlog{
		Title:   body.Title,
		Content: body.Content,
		Tag:     body.Tag,
	}
	if err := fc.feedbackService.CreateFeedback(identity, feedback); err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	sendJSON(w, feedback, http.StatusCreated)
}

// Delete handles deleting a feedback item and its comments
func (fc *FeedbackController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := fc.feedbackService.DeleteFeedback(vars["id"], identity); err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike handles toggling the requester's like on a feedback item
func (fc *FeedbackController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	feedback, err := fc.feedbackService.ToggleLike(vars["id"], identity)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	sendJSON(w, feedback, http.StatusOK)
}
