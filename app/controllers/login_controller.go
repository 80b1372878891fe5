package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Beto2203/feedback-backend/app/services"
)

// LoginController handles HTTP requests for login
type LoginController struct {
	userService *services.UserService
}

// NewLoginController creates a new LoginController
func NewLoginController(userService *services.UserService) *LoginController {
	return &LoginController{userService: userService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	UserID   string `json:"userId"`
}

// Login handles authenticating a user and issuing a token
func (lc *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := lc.userService.Login(body.Username, body.Password)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	sendJSON(w, loginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		UserID:   user.ID,
	}, http.StatusOK)
}
