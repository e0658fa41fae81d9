package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/harentsoaR/doctor-api/internal/config"
	"github.com/harentsoaR/doctor-api/internal/handlers"
	"github.com/harentsoaR/doctor-api/internal/store"
	"github.com/harentsoaR/doctor-api/internal/utils"
)

func main() {
	log.SetLevel(log.INFO)

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment variables.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Infof("PORT: %s", cfg.Port)
	log.Infof("MONGO_DATABASE: %s", cfg.DBName)

	// --- Database Connection ---
	// One client for the life of the process; closed after the server drains.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := store.Connect(ctx, cfg.MongoURI())
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Info("Pinged your deployment. Successfully connected to MongoDB!")

	h := handlers.NewHandler(store.New(client.Database(cfg.DBName)), utils.NewTokenIssuer(cfg.AccessTokenSecret))

	// --- Gin Router ---
	r := gin.Default()
	r.Use(corsMiddleware(cfg.CORSOrigins))
	handlers.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("doctor is live at: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Errorf("Failed to disconnect from MongoDB: %v", err)
	}
}

// corsMiddleware allows every origin unless CORS_ORIGINS narrows it.
func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})
}
