package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/denizyilmaz/plansphere/docs" // Import generated swagger docs
	appControllers "github.com/denizyilmaz/plansphere/internal/app/controllers"
	appMigrations "github.com/denizyilmaz/plansphere/internal/app/migrations"
	appRepos "github.com/denizyilmaz/plansphere/internal/app/repositories"
	appRoutes "github.com/denizyilmaz/plansphere/internal/app/routes"
	appServices "github.com/denizyilmaz/plansphere/internal/app/services"
	"github.com/denizyilmaz/plansphere/internal/config"
	"github.com/denizyilmaz/plansphere/internal/db"
	appMiddleware "github.com/denizyilmaz/plansphere/internal/middleware"
	"github.com/denizyilmaz/plansphere/internal/pkg/genai"
	"github.com/denizyilmaz/plansphere/internal/pkg/logger"
	"github.com/denizyilmaz/plansphere/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ScheduleService      *appServices.ScheduleService
	GenerationService    *appServices.GenerationService
	ScheduleController   *appControllers.ScheduleController
	GenerationController *appControllers.GenerationController
	CatalogController    *appControllers.CatalogController
	UserController       *appControllers.UserController
	Hub                  *websocket.Hub
	WSHandler            *websocket.Handler
	Repos                *appRepos.Repositories
	CatalogRepository    *appRepos.CatalogRepository
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	catalogRepo, err := appRepos.NewCatalogRepository(cfg.Catalog.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load course catalog")
		return nil, fmt.Errorf("failed to load course catalog: %w", err)
	}
	deps.CatalogRepository = catalogRepo

	// Initialize services
	deps.ScheduleService = appServices.NewScheduleService(
		deps.Repos.ScheduleRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	provider := genai.NewClient(genai.Config{
		APIKey:   cfg.GenAI.APIKey,
		Model:    cfg.GenAI.Model,
		Endpoint: cfg.GenAI.Endpoint,
	}, lgr)
	deps.GenerationService = appServices.NewGenerationService(provider, time.Duration(cfg.GenAI.StageTimeout), lgr)

	// Collaboration hub
	deps.Hub = websocket.NewHub(lgr)
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	// Initialize controllers
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.GenerationController = appControllers.NewGenerationController(deps.GenerationService, deps.ScheduleService, deps.CatalogRepository)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogRepository)
	deps.UserController = appControllers.NewUserController(deps.Repos.UserRepository)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Start the collaboration hub before accepting connections
	go deps.Hub.Run()

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ScheduleController,
		deps.GenerationController,
		deps.CatalogController,
		deps.UserController,
		deps.WSHandler,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
