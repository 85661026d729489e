// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	router "fundraise-tracker/internal/api"
	"fundraise-tracker/internal/api/handler"
	"fundraise-tracker/internal/config"
	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/repository"
	"fundraise-tracker/internal/repository/memory"
	"fundraise-tracker/internal/repository/postgres"
	"fundraise-tracker/internal/service"
	"fundraise-tracker/internal/util"
	"fundraise-tracker/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB // nil when the memory store is selected

	Store repository.Store

	// Services
	RankingService   service.RankingService
	RewardService    service.RewardService
	DonationService  service.DonationService
	UserService      service.UserService
	AnalyticsService service.AnalyticsService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// The dashboard consumes monetary values as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		database, err := db.NewPostgresDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = database
		app.Store = postgres.NewStore(database)
		app.Logger.Info("PostgreSQL store initialized.")
	default:
		store := memory.NewStore()
		if cfg.SeedDemoData {
			store.SeedDemoData()
			app.Logger.Info("Demo data seeded into the in-memory store.")
		}
		app.Store = store
		app.Logger.Info("In-memory store initialized.")
	}

	app.RankingService = service.NewRankingService(app.Store)
	app.RewardService = service.NewRewardService(domain.DefaultRewardCatalog(), app.Store)
	app.DonationService = service.NewDonationService(app.Store, app.RankingService)
	app.UserService = service.NewUserService(app.Store, app.RankingService, []byte(cfg.JWTSecret))
	app.AnalyticsService = service.NewAnalyticsService(app.Store)
	app.Logger.Info("Services initialized.")

	h := handler.New(
		app.UserService,
		app.DonationService,
		app.RankingService,
		app.RewardService,
		app.AnalyticsService,
		app.Logger,
	)
	app.HTTPHandler = router.NewRouter(h, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
