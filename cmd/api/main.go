package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/middleware"
	"github.com/swarmtrail/api-go/routes"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using environment as-is")
	}
	cfg := config.Load()
	store := config.Store{Path: cfg.DBPath}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	// The dashboard frontend is served separately during development.
	r.Use(cors.Default())

	routes.SetupRoutes(r, store)

	logger.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
