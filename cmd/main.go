package main

import (
	"os"

	"github.com/diogofgomespinheiro/daily-diet-api/config"
	"github.com/diogofgomespinheiro/daily-diet-api/routes"
	"github.com/diogofgomespinheiro/daily-diet-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)

	r := routes.SetupRouter(logger, userSvc, mealSvc)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
