package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"aiactcheck/internal/catalog"
	"aiactcheck/internal/service"
	"aiactcheck/internal/transport/rest/handler"
	"aiactcheck/internal/transport/rest/middleware"
	"aiactcheck/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	UsecaseService    *service.UsecaseService
	AssessmentService *service.AssessmentService
	ScoreService      *service.ScoreService
	Catalog           *catalog.Catalog
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	usecaseHandler := handler.NewUsecaseHandler(c.UsecaseService)
	questionHandler := handler.NewQuestionHandler(c.Catalog)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	scoreHandler := handler.NewScoreHandler(c.ScoreService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/usecases/{usecaseId}", wsHandler.UsecaseWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Assessor routes (require auth)
	assessorRoutes := v1.NewRoute().Subrouter()
	assessorRoutes.Use(authMW.RequireAssessor)

	assessorRoutes.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/questions/{code}", questionHandler.Get).Methods("GET", "OPTIONS")

	assessorRoutes.HandleFunc("/usecases", usecaseHandler.Create).Methods("POST", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases", usecaseHandler.List).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}", usecaseHandler.Get).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}", usecaseHandler.Update).Methods("PUT", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}", usecaseHandler.Delete).Methods("DELETE", "OPTIONS")

	assessorRoutes.HandleFunc("/usecases/{usecaseId}/answers/{code}", assessmentHandler.SaveAnswer).Methods("PUT", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}/answers", assessmentHandler.Answers).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}/questions/current", assessmentHandler.CurrentQuestion).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}/progress", assessmentHandler.Progress).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}/path", assessmentHandler.Path).Methods("GET", "OPTIONS")

	assessorRoutes.HandleFunc("/usecases/{usecaseId}/score", scoreHandler.Compute).Methods("POST", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}/score", scoreHandler.Latest).Methods("GET", "OPTIONS")
	assessorRoutes.HandleFunc("/usecases/{usecaseId}/scores", scoreHandler.History).Methods("GET", "OPTIONS")

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
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
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
