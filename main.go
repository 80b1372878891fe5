package main

import (
	"log"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/config"
	"github.com/Beto2203/feedback-backend/app/routes"

	"github.com/dgraph-io/badger/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	authService := auth.NewService([]byte(cfg.Secret), cfg.TokenTTL)
	router := routes.SetupRoutes(db, authService)

	log.Printf("Starting feedback backend on %s", cfg.Addr())
	if err := routes.StartServer(cfg.Addr(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
