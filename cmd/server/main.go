package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/teachassist/backend/internal/auth"
	"github.com/teachassist/backend/internal/database"
	"github.com/teachassist/backend/internal/documents"
	"github.com/teachassist/backend/internal/export"
	"github.com/teachassist/backend/internal/generator"
	"github.com/teachassist/backend/internal/middleware"
	"github.com/teachassist/backend/internal/pacing"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	pacingHandler := pacing.NewHandler(pacing.NewService(generator.NewGenerator()))
	documentsHandler := documents.NewHandler(documents.NewStore(db))
	exportHandler := export.NewHandler()

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/pacing-guide", pacingHandler.GeneratePacingGuide).Methods("POST")
	protected.HandleFunc("/pacing-guide/export/docx", exportHandler.ExportDOCX).Methods("POST")
	protected.HandleFunc("/pacing-guide/export/xlsx", exportHandler.ExportXLSX).Methods("POST")

	protected.HandleFunc("/documents", documentsHandler.SaveDocument).Methods("POST")
	protected.HandleFunc("/documents", documentsHandler.ListDocuments).Methods("GET")
	protected.HandleFunc("/documents/{id}", documentsHandler.GetDocument).Methods("GET")
	protected.HandleFunc("/documents/{id}", documentsHandler.DeleteDocument).Methods("DELETE")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
