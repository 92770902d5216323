// main.go
package main

import (
	"log"

	"movie-tracker/cmd"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/metadata"
	"movie-tracker/internal/wire"
	"movie-tracker/pkg/database"
	"movie-tracker/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config; SECRET_KEY must be set or the process refuses to start
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("env", config.App.Env),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to the database target selected by ENV
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// OMDb metadata client
	fetcher := metadata.NewClient(config.OMDB, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, fetcher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
