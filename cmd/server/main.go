package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artileaf-backend-go/internal/api"
	"artileaf-backend-go/internal/config"
	"artileaf-backend-go/internal/core"
	"artileaf-backend-go/internal/db"
	"artileaf-backend-go/internal/middleware"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Connect MongoDB and initialize Firebase Auth ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()

	mongoClient, err := db.Connect(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	firebaseAuthClient, err := db.NewFirebaseAuthClient(initCtx, appConfig)
	if err != nil {
		db.Disconnect(initCtx, mongoClient)
		zapLogger.Fatal("Failed to initialize Firebase Auth client", zap.Error(err))
	}

	// --- 4. Initialize Repositories and Services ---
	database := mongoClient.Database(appConfig.DBName)
	artifactRepo := db.NewMongoArtifactRepository(database)
	userRepo := db.NewMongoUserRepository(database)

	artifactService := core.NewArtifactService(artifactRepo)
	userService := core.NewUserService(userRepo)
	zapLogger.Info("Repositories and services initialized successfully.")

	// --- 5. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Order matters: log first, recover before handlers run.
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig))

	api.SetupRoutes(router, zapLogger, firebaseAuthClient, artifactService, userService)

	// --- 6. Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...",
		zap.String("address", serverAddr),
		zap.String("ginMode", gin.Mode()),
	)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 7. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Release the database handle only after in-flight requests have drained.
	db.Disconnect(shutdownCtx, mongoClient)

	zapLogger.Info("Server exiting gracefully.")
}
