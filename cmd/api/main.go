package main

import (
	"context"
	"net/http"

	"locations-api/docs"
	"locations-api/internal/config"
	"locations-api/internal/handler"
	"locations-api/internal/repository"
	"locations-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Locations API
//	@version		1.0
//	@description	REST API for locations, residents and presence timestamps.

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	locationService := service.NewLocationService(repo)
	presenceService := service.NewPresenceService(repo)

	locationHandler := handler.NewLocationHandler(locationService)
	presenceHandler := handler.NewPresenceHandler(presenceService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/locations", locationHandler.List)
	api.POST("/locations", locationHandler.Create)
	api.GET("/locations/:location_id", locationHandler.Get)
	api.GET("/locations/:location_id/timestamps", presenceHandler.TimestampsToday)
	api.GET("/locations/:location_id/timestamps/:start/:end", presenceHandler.TimestampsRange)
	api.GET("/locations/:location_id/residents", presenceHandler.Residents)

	r.Run(config.ServerAddress)
}
