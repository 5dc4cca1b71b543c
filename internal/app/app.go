package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/charts"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/config"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/ehr"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/middleware"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/assessment"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/auth"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/bloodpressure"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/bodyheight"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/careplan"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/chat"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/doctor"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/labrecord"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/patient"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/module/statistics"
)

// defaultEHRTimeout bounds individual delivery attempts when ehr.timeout is
// not configured.
const defaultEHRTimeout = 30 * time.Second

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine    *gin.Engine
	db        *gorm.DB
	logger    *logger.Logger
	cfg       *config.Config
	forwarder *ehr.Forwarder
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

var newJWTService = func(secret string) (jwt.Service, error) {
	return jwt.New(secret)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, domain repositories, services, handlers,
// middleware, the background EHR forwarder, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == "debug" {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Patient{},
			&domain.PatientAppRegistration{},
			&domain.Doctor{},
			&domain.BodyHeight{},
			&domain.BloodPressure{},
			&domain.LabRecord{},
			&domain.AssessmentTemplate{},
			&domain.Conversation{},
			&domain.ChatMessage{},
			&domain.CareplanEnrollment{},
			&domain.CareplanTask{},
			&domain.AppDownload{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Manual dependency injection: repository → service → handler → module.
	userRepo := auth.NewUserRepository(db)
	patientRepo := patient.NewRepository(db)

	// EHR forwarding is optional. Clinical services take nil when disabled.
	var (
		eligibility domain.EHREligibility
		forwarder   domain.EHRForwarder
		fwd         *ehr.Forwarder
	)
	if cfg.EHR.Enabled {
		timeout := defaultEHRTimeout
		if cfg.EHR.Timeout != "" {
			d, err := time.ParseDuration(cfg.EHR.Timeout)
			if err != nil {
				return nil, fmt.Errorf("parse ehr.timeout: %w", err)
			}
			timeout = d
		}
		store := ehr.NewFHIRStore(cfg.EHR.BaseURL, timeout)
		fwd = ehr.NewForwarder(store, cfg.EHR.QueueSize, cfg.EHR.MaxRetries)
		fwd.Start()
		forwarder = fwd
		eligibility = ehr.NewEligibility(patientRepo, cfg.EHR.EligibleApps)
		log.Info("EHR forwarding enabled", slog.String("base_url", cfg.EHR.BaseURL))
	}

	modules := []Module{
		patient.NewModule(patient.NewHandler(patient.NewService(patientRepo, userRepo))),
		doctor.NewModule(doctor.NewHandler(doctor.NewService(doctor.NewRepository(db), userRepo))),
		bodyheight.NewModule(bodyheight.NewHandler(bodyheight.NewService(bodyheight.NewRepository(db), eligibility, forwarder))),
		bloodpressure.NewModule(bloodpressure.NewHandler(bloodpressure.NewService(bloodpressure.NewRepository(db), eligibility, forwarder))),
		labrecord.NewModule(labrecord.NewHandler(labrecord.NewService(labrecord.NewRepository(db), eligibility, forwarder))),
		assessment.NewModule(assessment.NewHandler(assessment.NewService(assessment.NewRepository(db)))),
		chat.NewModule(chat.NewHandler(chat.NewService(chat.NewRepository(db)))),
		careplan.NewModule(careplan.NewHandler(careplan.NewService(careplan.NewRepository(db), careplan.NewProvider()))),
		statistics.NewModule(statistics.NewHandler(statistics.NewService(statistics.NewRepository(db), userRepo, charts.NewSVGLineRenderer()))),
	}

	// 5. API middleware: client API keys, then end-user JWT authentication.
	var apiMiddleware []gin.HandlerFunc
	if len(cfg.Clients) > 0 {
		clients := make(map[string]string, len(cfg.Clients))
		for _, client := range cfg.Clients {
			clients[client.Name] = client.APIKey
		}
		apiMiddleware = append(apiMiddleware, middleware.AuthenticateClient(clients))
	}
	if cfg.Auth.Enabled {
		jwtSvc, err := newJWTService(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}
		tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("parse auth.token_expiry: %w", err)
		}
		modules = append(modules, auth.NewModule(auth.NewHandler(auth.NewService(jwtSvc, userRepo, tokenExpiry))))
		apiMiddleware = append(apiMiddleware, middleware.AuthenticateUser(jwtSvc, cfg.Auth.PublicPaths))
	}

	// 6. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 7. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:       modules,
		DB:            db,
		Mode:          cfg.Server.Mode,
		APIMiddleware: apiMiddleware,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:    engine,
		db:        db,
		logger:    log,
		cfg:       cfg,
		forwarder: fwd,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout, drains the EHR
// forwarder queue, and closes the database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		if a.logger != nil {
			a.logger.Info("server started", slog.String("addr", addr))
		} else {
			slog.Info("server started", slog.String("addr", addr))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown signal received")
		} else {
			slog.Info("shutdown signal received")
		}
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if a.logger != nil {
				a.logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				slog.Error("server shutdown error", slog.Any("error", err))
			}
		}
	}

	// Drain queued EHR deliveries before the database goes away.
	if a.forwarder != nil {
		a.forwarder.Stop()
		if a.logger != nil {
			a.logger.Info("EHR forwarder stopped")
		}
	}

	// Close database connection.
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				if a.logger != nil {
					a.logger.Error("database close error", slog.Any("error", err))
				} else {
					slog.Error("database close error", slog.Any("error", err))
				}
			} else {
				if a.logger != nil {
					a.logger.Info("database connection closed")
				} else {
					slog.Info("database connection closed")
				}
			}
		}
	}

	if a.logger != nil {
		a.logger.Info("server stopped")
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	} else {
		slog.Info("server stopped")
	}

	if runErr != nil {
		return runErr
	}

	return nil
}
