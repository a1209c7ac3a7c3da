package server

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultPort is used when neither the flag nor HASHVIZ_PORT is set.
const DefaultPort = "5050"

// Config carries the few knobs the server has.
type Config struct {
	// Port is the TCP port to listen on, without the colon.
	Port string
}

// ConfigFromEnv builds a Config from HASHVIZ_PORT, falling back to
// DefaultPort.
func ConfigFromEnv() Config {
	port := os.Getenv("HASHVIZ_PORT")
	if port == "" {
		port = DefaultPort
	}

	return Config{Port: port}
}

// New assembles the gin engine with all routes and middleware attached.
// A nil logger is replaced with zap.NewNop so tests can stay quiet.
func New(cfg Config, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))
	SetupRoutes(router, logger)

	return router
}

// SetupRoutes attaches the route table to router.
func SetupRoutes(router *gin.Engine, logger *zap.Logger) {
	router.GET("/", Index())
	router.GET("/healthz", Health())
	api := router.Group("/api")
	{
		api.GET("/puzzle", GetPuzzle(logger))
	}
}

// Run starts the server on cfg.Port and blocks until it exits.
func Run(cfg Config, logger *zap.Logger) error {
	logger.Info("hashviz listening", zap.String("port", cfg.Port))

	return New(cfg, logger).Run(":" + cfg.Port)
}
