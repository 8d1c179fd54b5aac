package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"wishwall/internal/config"
	"wishwall/internal/database"
	"wishwall/internal/handlers"
	"wishwall/internal/repository"
	"wishwall/internal/services"
	"wishwall/internal/storage"
	"wishwall/pkg/logger"
	"wishwall/pkg/middleware"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB; the listener must not start without the store.
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Ensure the upload directory exists before accepting uploads.
	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Upload store error: %v", err)
	}

	// --- Repositories ---
	wishRepo := repository.NewWishRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// --- Services ---
	wishService := services.NewWishService(wishRepo, store)
	feedbackService := services.NewFeedbackService(feedbackRepo)

	// --- Handlers ---
	wishHandler := handlers.NewWishHandler(wishService, store, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	apiRoutes := router.PathPrefix("/api").Subrouter()
	apiRoutes.HandleFunc("/wish", wishHandler.CreateWishHandler).Methods("POST")
	apiRoutes.HandleFunc("/wish/{id}", wishHandler.GetWishHandler).Methods("GET")
	apiRoutes.HandleFunc("/wishes", wishHandler.GetWishesHandler).Methods("GET")
	apiRoutes.HandleFunc("/feedback", feedbackHandler.SubmitFeedbackHandler).Methods("POST")

	router.HandleFunc("/api", handlers.BannerHandler).Methods("GET")
	router.HandleFunc("/video/{id}", wishHandler.StreamVideoHandler).Methods("GET")

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// SPA bundle with index fallback; liveness banner when no bundle exists.
	router.PathPrefix("/").Handler(handlers.NewSPAHandler(cfg.ClientBuildDir))

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Start the HTTP server
	port := cfg.Port
	origins := middleware.AllowedOrigins(cfg.ClientOrigin)
	c := middleware.NewCORS(origins)

	handler := c.Handler(middleware.OriginGuard(origins)(router))

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
