package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"store-catalog-service/internal/api"
	"store-catalog-service/internal/config"
	"store-catalog-service/internal/metrics"
	"store-catalog-service/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultAppName = "StoreCatalogService" // App name for logger

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found or failed to load, relying on system environment")
	}
	logger := log.New(os.Stdout, fmt.Sprintf("[%s] ", defaultAppName), log.LstdFlags|log.Lshortfile|log.Lmicroseconds)
	logger.Println("INFO: Starting service...")

	// --- Configuration Loading ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("FATAL: Error loading configuration: %v", err)
	}
	logger.Printf("INFO: Configuration loaded for APP_ENV: %s, LogLevel: %s", cfg.AppEnv, cfg.LogLevel)

	// --- Document Store Connection (best effort) ---
	// The service boots and serves even without a store: listings degrade to
	// empty results and /test reports the connectivity state.
	var docStore store.DocumentStorer
	var mongoStore *store.MongoStore
	if cfg.Mongo.Configured() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoStore, err = store.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.DBName)
		cancel()
		if err != nil {
			logger.Printf("WARN: Document store unavailable, continuing without it: %v", err)
		} else {
			logger.Printf("INFO: Connected to document store %q", mongoStore.Name())
			docStore = mongoStore
		}
	} else {
		logger.Println("WARN: DATABASE_URL or DATABASE_NAME not set, continuing without a document store")
	}

	// --- Demo Data Seeding (best effort) ---
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 15*time.Second)
	store.SeedDemoProducts(seedCtx, docStore, logger)
	cancelSeed()

	// --- Metrics & API Handlers ---
	m := metrics.New()
	httpAPIHandler := api.NewHTTPHandler(docStore, m, logger, api.DiagnosticInfo{
		DatabaseURLSet:  cfg.Mongo.URI != "",
		DatabaseNameSet: cfg.Mongo.DBName != "",
	})

	// --- Setup & Start HTTP Server ---
	httpRouter := chi.NewRouter()
	setupBaseMiddleware(httpRouter, logger)
	httpRouter.Method(http.MethodGet, "/metrics", promhttp.Handler())
	httpAPIHandler.RegisterRoutes(httpRouter)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HttpServer.Port,
		Handler:      httpRouter,
		ReadTimeout:  cfg.HttpServer.TimeoutRead,
		WriteTimeout: cfg.HttpServer.TimeoutWrite,
		IdleTimeout:  cfg.HttpServer.TimeoutIdle,
	}

	go func() {
		logger.Printf("INFO: HTTP server listening on port %s", cfg.HttpServer.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("FATAL: HTTP server ListenAndServe error: %v", err)
		}
		logger.Println("INFO: HTTP server has stopped.")
	}()

	// --- Graceful Shutdown ---
	shutdownComplete := make(chan struct{})
	go waitForShutdown(logger, httpServer, mongoStore, shutdownComplete)

	<-shutdownComplete
	logger.Println("INFO: Service shutdown sequence finished.")
}

func setupBaseMiddleware(router *chi.Mux, logger *log.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	// Permissive CORS so any storefront origin can read the catalog.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	logger.Println("INFO: Base HTTP middleware registered.")
}

func waitForShutdown(
	logger *log.Logger,
	httpServer *http.Server,
	mongoStore *store.MongoStore,
	shutdownComplete chan struct{},
) {
	defer close(shutdownComplete)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-sigChan
	logger.Printf("INFO: Received signal: %s. Starting graceful shutdown...", receivedSignal)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	logger.Println("INFO: Attempting to gracefully shut down HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("WARN: HTTP server graceful shutdown failed: %v", err)
	} else {
		logger.Println("INFO: HTTP server gracefully shut down.")
	}

	if mongoStore != nil {
		if err := mongoStore.Close(shutdownCtx); err != nil {
			logger.Printf("WARN: Error closing document store connection: %v", err)
		}
	}

	logger.Println("INFO: Graceful shutdown sequence completed.")
}
