package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mindhealth/internal/service"
	"mindhealth/internal/transport/rest/handler"
	"mindhealth/internal/transport/rest/middleware"
	"mindhealth/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	StatusService     *service.StatusService
	AssessmentService *service.AssessmentService
	ReferenceService  *service.ReferenceService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	statusHandler := handler.NewStatusHandler(c.StatusService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	referenceHandler := handler.NewReferenceHandler(c.ReferenceService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.StatusService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	r.Use(middleware.RequestLogger)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public reference data
	v1.HandleFunc("/overview", referenceHandler.Overview).Methods("GET", "OPTIONS")
	v1.HandleFunc("/disorders", referenceHandler.Disorders).Methods("GET", "OPTIONS")
	v1.HandleFunc("/disorders/{id}", referenceHandler.Disorder).Methods("GET", "OPTIONS")
	v1.HandleFunc("/statistics/{id}", referenceHandler.Statistics).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/status", wsHandler.StatusWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/status", statusHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization, X-Request-ID"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
