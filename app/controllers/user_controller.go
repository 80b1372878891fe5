package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Beto2203/feedback-backend/app/services"
)

// UserController handles HTTP requests for user registration
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Create handles registering a new user
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := uc.userService.Register(body.Username, body.Name, body.Password)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	sendJSON(w, user, http.StatusCreated)
}
