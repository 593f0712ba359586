package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mailkite/mailkite/config"
	"github.com/mailkite/mailkite/internal/database"
	"github.com/mailkite/mailkite/internal/domain"
	httpHandler "github.com/mailkite/mailkite/internal/http"
	"github.com/mailkite/mailkite/internal/http/middleware"
	"github.com/mailkite/mailkite/internal/repository"
	"github.com/mailkite/mailkite/internal/service"
	"github.com/mailkite/mailkite/pkg/logger"
	"github.com/mailkite/mailkite/pkg/mailer"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer

	// Methods for initialization steps
	InitDB() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
}

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// Repositories
	userRepo        domain.UserRepository
	listRepo        domain.ListRepository
	subscriberRepo  domain.SubscriberRepository
	suppressionRepo domain.SuppressionRepository
	templateRepo    domain.TemplateRepository
	campaignRepo    domain.CampaignRepository
	deliveryRepo    domain.DeliveryRepository
	engagementRepo  domain.EngagementRepository
	analyticsRepo   domain.AnalyticsRepository
	automationRepo  domain.AutomationRepository

	// Services
	userService        *service.UserService
	listService        *service.ListService
	subscriberService  *service.SubscriberService
	suppressionService *service.SuppressionService
	templateService    *service.TemplateService
	campaignService    *service.CampaignService
	deliveryService    *service.DeliveryService
	analyticsService   *service.AnalyticsService
	automationService  *service.AutomationService
	scheduler          *service.CampaignScheduler

	// HTTP server
	mux    *http.ServeMux
	server *http.Server

	serverMu sync.RWMutex

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitDB connects to the database and ensures the schema exists
func (a *App) InitDB() error {
	// Skip if database already set (e.g., by mock)
	if a.db == nil {
		a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, dbname: %s, sslmode: %s",
			a.config.Database.Host, a.config.Database.Port, a.config.Database.DBName, a.config.Database.SSLMode))

		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db, a.config.RootEmail); err != nil {
		a.db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return nil
}

// InitMailer initializes the mailer service
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer for development")
	} else {
		a.mailer = mailer.NewSMTPMailer(&mailer.Config{
			SMTPHost:     a.config.SMTP.Host,
			SMTPPort:     a.config.SMTP.Port,
			SMTPUsername: a.config.SMTP.Username,
			SMTPPassword: a.config.SMTP.Password,
			FromEmail:    a.config.SMTP.FromEmail,
			FromName:     a.config.SMTP.FromName,
			APIEndpoint:  a.config.APIEndpoint,
		})
		a.logger.Info("Using SMTP mailer for production")
	}

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.userRepo = repository.NewUserRepository(a.db)
	a.listRepo = repository.NewListRepository(a.db)
	a.subscriberRepo = repository.NewSubscriberRepository(a.db)
	a.suppressionRepo = repository.NewSuppressionRepository(a.db)
	a.templateRepo = repository.NewTemplateRepository(a.db)
	a.campaignRepo = repository.NewCampaignRepository(a.db)
	a.deliveryRepo = repository.NewDeliveryRepository(a.db)
	a.engagementRepo = repository.NewEngagementRepository(a.db)
	a.analyticsRepo = repository.NewAnalyticsRepository(a.db)
	a.automationRepo = repository.NewAutomationRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.userService = service.NewUserService(a.userRepo, a.config.Security.JWTSecret, a.logger)
	a.templateService = service.NewTemplateService(a.templateRepo, a.logger)

	// Automation sits under both subscriber mutations and delivery
	// outcomes, so it is wired before them
	a.automationService = service.NewAutomationService(
		a.automationRepo,
		a.subscriberRepo,
		a.listRepo,
		a.templateService,
		a.mailer,
		a.logger,
	)

	a.listService = service.NewListService(a.listRepo, a.logger)
	a.subscriberService = service.NewSubscriberService(
		a.subscriberRepo,
		a.listRepo,
		a.automationService,
		a.mailer,
		a.config.APIEndpoint,
		a.logger,
	)
	a.suppressionService = service.NewSuppressionService(a.suppressionRepo, a.logger)
	a.campaignService = service.NewCampaignService(
		a.campaignRepo,
		a.deliveryRepo,
		a.templateRepo,
		a.logger,
	)
	a.deliveryService = service.NewDeliveryService(
		a.deliveryRepo,
		a.engagementRepo,
		a.automationService,
		a.logger,
	)
	a.analyticsService = service.NewAnalyticsService(a.analyticsRepo, a.logger)

	a.scheduler = service.NewCampaignScheduler(a.campaignService, a.campaignRepo, a.logger)

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	auth := middleware.NewAuthMiddleware(a.userService)

	userHandler := httpHandler.NewUserHandler(a.userService, auth, a.logger)
	listHandler := httpHandler.NewListHandler(a.listService, auth, a.logger)
	subscriberHandler := httpHandler.NewSubscriberHandler(a.subscriberService, auth, a.logger)
	suppressionHandler := httpHandler.NewSuppressionHandler(a.suppressionService, auth, a.logger)
	templateHandler := httpHandler.NewTemplateHandler(a.templateService, auth, a.logger)
	campaignHandler := httpHandler.NewCampaignHandler(a.campaignService, auth, a.logger)
	eventHandler := httpHandler.NewEventHandler(a.deliveryService, auth, a.logger)
	analyticsHandler := httpHandler.NewAnalyticsHandler(a.analyticsService, auth, a.logger)
	automationHandler := httpHandler.NewAutomationHandler(a.automationService, auth, a.logger)

	userHandler.RegisterRoutes(a.mux)
	listHandler.RegisterRoutes(a.mux)
	subscriberHandler.RegisterRoutes(a.mux)
	suppressionHandler.RegisterRoutes(a.mux)
	templateHandler.RegisterRoutes(a.mux)
	campaignHandler.RegisterRoutes(a.mux)
	eventHandler.RegisterRoutes(a.mux)
	analyticsHandler.RegisterRoutes(a.mux)
	automationHandler.RegisterRoutes(a.mux)

	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Mailkite application")

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// Start starts the campaign scheduler and the HTTP server
func (a *App) Start() error {
	var handler http.Handler = a.mux

	// Graceful shutdown middleware first (outermost), then CORS
	handler = a.gracefulShutdownMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	server := a.server
	a.serverMu.Unlock()

	// The scheduler stops when the shutdown context is cancelled
	a.scheduler.Start(a.shutdownCtx)

	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// Signal shutdown to the scheduler and in-flight requests
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources()
	}

	activeCount := a.GetActiveRequestCount()
	a.logger.WithField("active_requests", activeCount).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithField("error", err.Error()).Error("Error during HTTP server shutdown")
		shutdownErr = err
	}

	// Wait for active requests to drain, bounded by the shutdown timeout
	done := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(done)
	}()
	select {
	case <-done:
		a.logger.Info("All requests completed")
	case <-shutdownCtx.Done():
		activeCount := a.GetActiveRequestCount()
		a.logger.WithField("active_requests", activeCount).Warn("Shutdown timeout reached, some requests still active")
	}

	if cleanupErr := a.cleanupResources(); cleanupErr != nil {
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources closes the database connection
func (a *App) cleanupResources() error {
	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			return err
		}
	}
	return nil
}

// gracefulShutdownMiddleware rejects new requests once shutdown has
// started and tracks the in-flight ones so Shutdown can drain them
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.requestWg.Add(1)
		atomic.AddInt64(&a.activeRequests, 1)
		defer func() {
			atomic.AddInt64(&a.activeRequests, -1)
			a.requestWg.Done()
		}()

		next.ServeHTTP(w, r)
	})
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// SetShutdownTimeout configures how long Shutdown waits for requests
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// GetActiveRequestCount returns the number of in-flight HTTP requests
func (a *App) GetActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}
