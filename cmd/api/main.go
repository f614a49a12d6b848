package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/campusbook/appointment-scheduler/internal/cache"
	"github.com/campusbook/appointment-scheduler/internal/config"
	dbpkg "github.com/campusbook/appointment-scheduler/internal/db"
	"github.com/campusbook/appointment-scheduler/internal/logging"
	"github.com/campusbook/appointment-scheduler/internal/middleware"
	"github.com/campusbook/appointment-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.Init(cfg.IsProduction())
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Campus Appointment Scheduler API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Welcome to Campus Appointment Scheduler API",
			"version": "1.0.0",
		})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
