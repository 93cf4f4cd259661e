package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/gutcheck/backend/internal/assessment"
	"github.com/gutcheck/backend/internal/auth"
	"github.com/gutcheck/backend/internal/database"
	"github.com/gutcheck/backend/internal/evaluator"
	"github.com/gutcheck/backend/internal/middleware"
	"github.com/gutcheck/backend/internal/scoring"
)

func main() {
	// The scoring tables are locked; refuse to start on an inconsistent build.
	if err := scoring.ValidateCatalog(); err != nil {
		log.Fatalf("Invalid scoring catalog: %v", err)
	}
	log.Printf("Scoring version %s (fingerprint %s)", scoring.Version, scoring.Fingerprint())

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Scoring engine with the AI evaluator behind it
	eval := evaluator.NewEvaluator()
	log.Printf("Open-ended evaluator model: %s", eval.ModelName())
	engine := scoring.NewEngine(eval, evaluatorTimeout())

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	assessmentStore := assessment.NewStore(db)
	assessmentService := assessment.NewService(engine, assessmentStore)
	assessmentHandler := assessment.NewHandler(assessmentService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/assessment/catalog", assessmentHandler.GetCatalog).Methods("GET")
	api.HandleFunc("/assessment/preview", assessmentHandler.Preview).Methods("POST")

	// Submission works anonymously; a valid token links the session to a user.
	optional := api.PathPrefix("").Subrouter()
	optional.Use(middleware.OptionalAuthMiddleware)
	optional.HandleFunc("/assessment/submit", assessmentHandler.Submit).Methods("POST")
	optional.HandleFunc("/assessment/sessions/{id}", assessmentHandler.GetSession).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/assessment/history", assessmentHandler.GetHistory).Methods("GET")
	protected.HandleFunc("/assessment/sessions/{id}/outcome", assessmentHandler.TagOutcome).Methods("POST")
	protected.HandleFunc("/pilot/metrics", assessmentHandler.GetPilotMetrics).Methods("GET")

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

func evaluatorTimeout() time.Duration {
	if v := os.Getenv("EVALUATOR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Ignoring invalid EVALUATOR_TIMEOUT %q", v)
	}
	return 30 * time.Second
}
