package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiactcheck/internal/cache"
	"aiactcheck/internal/catalog"
	"aiactcheck/internal/config"
	"aiactcheck/internal/flow"
	"aiactcheck/internal/repository"
	"aiactcheck/internal/scoring"
	"aiactcheck/internal/service"
	"aiactcheck/internal/transport/rest"
	"aiactcheck/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Question catalog: parsed once at startup; a malformed dataset is fatal
	cat, err := catalog.Default()
	if err != nil {
		log.Fatal("Failed to load question catalog:", err)
	}
	log.Printf("Question catalog loaded: %d questions", cat.Len())

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()

	// Initialize repositories
	usecaseRepo := repository.NewUsecaseRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	scoreRepo := repository.NewScoreRepo(db)

	// Initialize caches
	scoreCache := cache.NewScoreCache(rdb, cfg.ScoreCacheTTL)

	// Initialize core components
	navigator := flow.NewNavigator(cat)
	scorer := scoring.NewScorer(cat)

	// Initialize services
	authSvc := service.NewAuthService()
	usecaseSvc := service.NewUsecaseService(usecaseRepo)
	assessmentSvc := service.NewAssessmentService(usecaseRepo, responseRepo, scoreCache, cat, navigator)
	scoreSvc := service.NewScoreService(responseRepo, scoreRepo, scoreCache, scorer)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)
	scoreSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		UsecaseService:    usecaseSvc,
		AssessmentService: assessmentSvc,
		ScoreService:      scoreSvc,
		Catalog:           cat,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/usecases")
		log.Println("  GET  /v1/questions")
		log.Println("  PUT  /v1/usecases/{id}/answers/{code}")
		log.Println("  GET  /v1/usecases/{id}/questions/current")
		log.Println("  POST/GET /v1/usecases/{id}/score")
		log.Println("  WS   /v1/ws/usecases/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
