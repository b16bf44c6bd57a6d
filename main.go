package main

import (
	"log"
	"net/http"

	"crewtime/config"
	"crewtime/database"
	"crewtime/handlers"
	"crewtime/middleware"
	"crewtime/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	db, err := database.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	st := store.New(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, st)
	entryHandler := handlers.NewEntryHandler(cfg, st)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.With(middleware.RequireAuth(st)).Get("/me", authHandler.Me)

		r.Get("/foremen", entryHandler.ListForemen)
		r.Get("/properties", entryHandler.ListProperties)

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", entryHandler.CreateEntry)
			r.Get("/", entryHandler.ListEntries)
			r.Get("/latest", entryHandler.LatestEntries)
			r.Get("/export", entryHandler.ExportCSV)
			r.Get("/{id}", entryHandler.GetEntry)
			r.Put("/{id}", entryHandler.UpdateEntry)
			r.Delete("/{id}", entryHandler.DeleteEntry)
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
