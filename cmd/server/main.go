package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitai/workout-planner/internal/api"
	"fitai/workout-planner/internal/catalog"
	"fitai/workout-planner/internal/config"
	"fitai/workout-planner/internal/llm"
	"fitai/workout-planner/internal/repository/postgres"
	"fitai/workout-planner/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting workout planner server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("could not load config", zap.Error(err))
	}

	// --- Database ---
	db, err := postgres.Connect(cfg.Database)
	if err != nil {
		log.Fatal("could not connect to postgres", zap.Error(err))
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal("schema migration failed", zap.Error(err))
	}
	if err := postgres.SeedCatalog(db); err != nil {
		log.Fatal("catalog seeding failed", zap.Error(err))
	}
	log.Info("database ready")

	// --- Repositories ---
	userRepo := postgres.NewPostgresUserRepository(db)
	planRepo := postgres.NewPostgresPlanRepository(db)
	catalogRepo := catalog.NewCache(postgres.NewPostgresCatalogRepository(db), cfg.Catalog.CacheTTL)

	// --- External clients ---
	llmClient := llm.NewOpenRouterClient(cfg.LLM)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	planService := service.NewPlanService(userRepo, planRepo, catalogRepo, llmClient, log)

	// --- HTTP ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(api.RequestLogger(log), gin.Recovery(), cors.Default())

	api.SetupRoutes(router, cfg.JWT.Secret, authService, profileService, planService, catalogService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // generation holds the request open for the model call
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
