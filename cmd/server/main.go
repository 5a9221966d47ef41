package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	appAudio "github.com/askroom/askroom/pkg/app/audio"
	appQuestion "github.com/askroom/askroom/pkg/app/question"
	"github.com/askroom/askroom/pkg/config"
	handlers "github.com/askroom/askroom/pkg/handlers/http"
	"github.com/askroom/askroom/pkg/infra/database"
	geminiEmbedding "github.com/askroom/askroom/pkg/infra/embedding/gemini"
	infraLogger "github.com/askroom/askroom/pkg/infra/logger"
	"github.com/askroom/askroom/pkg/infra/metrics"
	"github.com/askroom/askroom/pkg/infra/providers/gemini"
	"github.com/askroom/askroom/pkg/infra/repository"
	"github.com/askroom/askroom/pkg/middleware"
	"github.com/askroom/askroom/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	cfg, err := config.Load("./config")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	if cfg.Metrics.Enabled {
		metrics.Initialize()
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	genaiClient, err := gemini.NewGeminiClient(cfg.Providers.Gemini.APIKey)
	if err != nil {
		logger.Fatalf("failed to initialize gemini client: %v", err)
	}
	geminiClient := gemini.NewClient(genaiClient)
	embedder := geminiEmbedding.NewGeminiEmbeddingService(
		genaiClient, cfg.Providers.Gemini.EmbeddingModel, logger,
	)

	// repository
	roomRepository := repository.NewRoomRepository(db.DB)
	questionRepository := repository.NewQuestionRepository(db.DB)
	audioChunkRepository := repository.NewAudioChunkRepository(db.DB)

	// service
	questionCreator := appQuestion.NewCreator(
		embedder,
		geminiClient,
		cfg.Providers.Gemini.GenerationModel,
		audioChunkRepository,
		questionRepository,
		logger,
	)
	audioIngestor := appAudio.NewIngestor(
		geminiClient,
		cfg.Providers.Gemini.TranscriptionModel,
		embedder,
		roomRepository,
		audioChunkRepository,
		logger,
	)

	// middleware
	middlewareTransport := middleware.Transport{
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Rooms
		CreateRoomHandler: handlers.NewCreateRoomHandler(logger, roomRepository),
		ListRoomsHandler:  handlers.NewListRoomsHandler(logger, roomRepository),
		// Questions
		CreateQuestionHandler: handlers.NewCreateQuestionHandler(logger, questionCreator),
		ListQuestionsHandler:  handlers.NewListQuestionsHandler(logger, questionRepository),
		// Audio ingestion
		UploadAudioHandler: handlers.NewUploadAudioHandler(logger, audioIngestor),
		// Service
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewAPIServer(server.APIServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
