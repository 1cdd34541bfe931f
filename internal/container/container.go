package container

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/selinamariefuchs/brain-trip-planner/app/db"
	"github.com/selinamariefuchs/brain-trip-planner/config"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/city"
	generativeAI "github.com/selinamariefuchs/brain-trip-planner/internal/api/generative_ai"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/places"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/quiz"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/suggestions"
	"github.com/selinamariefuchs/brain-trip-planner/internal/api/trips"
	"github.com/selinamariefuchs/brain-trip-planner/internal/cache"
)

// Container holds all application dependencies.
type Container struct {
	Config             *config.Config
	Logger             *slog.Logger
	Pool               *pgxpool.Pool
	Caches             *cache.Layers
	CityHandler        *city.Handler
	QuizHandler        *quiz.Handler
	SuggestionsHandler *suggestions.Handler
	TripsHandler       *trips.Handler
}

// NewContainer initializes and returns a new dependency container. Missing
// provider credentials degrade the relevant pipelines instead of failing
// startup; only the database is required.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	caches := cache.NewLayers()

	placesClient := places.NewClient(
		os.Getenv("GOOGLE_PLACES_API_KEY"),
		cfg.Providers.Places.BaseURL,
		logger,
	)
	if !placesClient.HasCredential() {
		logger.Warn("GOOGLE_PLACES_API_KEY not set, city grounding and suggestion pool disabled")
	}

	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Providers.Gemini.Model, cfg.Providers.Gemini.Timeout)
	if err != nil {
		logger.Warn("Model client unavailable, generation falls back to curated content",
			slog.Any("error", err))
	}
	// Keep the interfaces nil when no client exists; a typed nil would slip
	// past the services' nil checks.
	var quizAI quiz.ContentGenerator
	var suggestionsAI suggestions.ContentGenerator
	if aiClient != nil {
		quizAI = aiClient
		suggestionsAI = aiClient
	}

	cityService := city.NewServiceImpl(placesClient, caches, logger)
	cityHandler := city.NewHandler(cityService, logger)

	quizService := quiz.NewServiceImpl(cityService, quizAI, caches, logger)
	quizHandler := quiz.NewHandler(quizService, logger)

	suggestionsService := suggestions.NewServiceImpl(placesClient, suggestionsAI, caches, logger)
	suggestionsHandler := suggestions.NewHandler(suggestionsService, logger)

	tripsRepo := trips.NewRepository(pool, logger)
	tripsService := trips.NewServiceImpl(tripsRepo, logger)
	tripsHandler := trips.NewHandler(tripsService, logger)

	return &Container{
		Config:             cfg,
		Logger:             logger,
		Pool:               pool,
		Caches:             caches,
		CityHandler:        cityHandler,
		QuizHandler:        quizHandler,
		SuggestionsHandler: suggestionsHandler,
		TripsHandler:       tripsHandler,
	}, nil
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready.
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

// RunMigrations runs database migrations.
func (c *Container) RunMigrations(connectionURL string) error {
	return database.RunMigrations(connectionURL, c.Logger)
}
