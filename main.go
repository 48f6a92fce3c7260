package main

import (
	"go.uber.org/zap"

	"netracare-go/internal/config"
	"netracare-go/internal/database"
	logger "netracare-go/internal/logging"
	"netracare-go/internal/models"
	"netracare-go/internal/router"
	"netracare-go/internal/services"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load the test protocol at startup; every scoring call reuses it.
	protocol, err := models.LoadProtocol(config.Conf.Protocol.Path)
	if err != nil {
		log.Fatal("Failed to load test protocol", zap.Error(err))
	}
	log.Info("Test protocol loaded",
		zap.String("test_name", protocol.TestName),
		zap.Float64("duration", protocol.TotalDuration()))

	// Background raw-data retention
	services.NewRetentionSweeper(log).Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, protocol)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
