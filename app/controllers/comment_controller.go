package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Beto2203/feedback-backend/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// Create handles creating a comment against a feedback item
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var body commentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	comment, err := cc.commentService.CreateComment(vars["feedbackId"], identity, body.Comment)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	sendJSON(w, comment, http.StatusCreated)
}

// Delete handles deleting a comment from a feedback item
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := cc.commentService.DeleteComment(vars["feedbackId"], vars["id"], identity); err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
