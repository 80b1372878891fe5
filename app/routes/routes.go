package routes

import (
	"net/http"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/controllers"
	"github.com/Beto2203/feedback-backend/app/middleware"
	"github.com/Beto2203/feedback-backend/app/repositories"
	"github.com/Beto2203/feedback-backend/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires the repositories, services and controllers onto a router
// backed by the given Badger DB.
func SetupRoutes(db *badger.DB, authService *auth.Service) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	feedbackRepo := repositories.NewBadgerFeedbackRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	userService := services.NewUserService(userRepo, authService)
	feedbackService := services.NewFeedbackService(feedbackRepo, commentRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, feedbackRepo)

	userController := controllers.NewUserController(userService)
	loginController := controllers.NewLoginController(userService)
	feedbackController := controllers.NewFeedbackController(feedbackService)
	commentController := controllers.NewCommentController(commentService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(middleware.Authenticate(authService))

	router.HandleFunc("/users", userController.Create).Methods("POST")
	router.HandleFunc("/login", loginController.Login).Methods("POST")

	router.HandleFunc("/feedbacks", feedbackController.Index).Methods("GET")
	router.HandleFunc("/feedbacks", feedbackController.Create).Methods("POST")
	router.HandleFunc("/feedbacks/likes/{id}", feedbackController.ToggleLike).Methods("PUT")
	router.HandleFunc("/feedbacks/{id}", feedbackController.Delete).Methods("DELETE")

	router.HandleFunc("/feedbacks/{feedbackId}", commentController.Create).Methods("POST")
	router.HandleFunc("/feedbacks/{feedbackId}/{id}", commentController.Delete).Methods("DELETE")

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
