package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/api/handlers"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/api/middleware"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/logger"
)

func main() {
	log := logger.New("api")

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))

	projectionHandler := handlers.NewProjectionHandler(log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/defaults", projectionHandler.GetDefaults)
		api.GET("/scenarios", handlers.ListScenarios)

		api.POST("/projection", projectionHandler.RunProjection)
		api.POST("/projection/compare", projectionHandler.CompareProjections)
		api.POST("/report", projectionHandler.RunReport)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
