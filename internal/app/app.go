package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/canterahq/cantera/internal/config"
	"github.com/canterahq/cantera/internal/domain/notification"
	notificationimpl "github.com/canterahq/cantera/internal/infrastructure/notification"
	"github.com/canterahq/cantera/internal/infrastructure/repository/postgres"
	"github.com/canterahq/cantera/internal/interfaces/httpapi"
	"github.com/canterahq/cantera/internal/platform/cache"
	idgen "github.com/canterahq/cantera/internal/platform/id"
	"github.com/canterahq/cantera/internal/platform/logging"
	"github.com/canterahq/cantera/internal/platform/resilience"
	"github.com/canterahq/cantera/internal/platform/token"
	"github.com/canterahq/cantera/internal/usecase"
)

// Application bundles the HTTP server with the resources it owns, so main
// can shut them down in order.
type Application struct {
	Server *http.Server
	db     *sqlx.DB
	mailer *notificationimpl.SendGridService
	logger *slog.Logger
}

func NewApplication(cfg config.Config, logger *slog.Logger, infraLogger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if infraLogger == nil {
		infraLogger = logging.NewNop()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	tenantRepo := postgres.NewTenantRepository(db)
	userRepo := postgres.NewUserRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	coachRepo := postgres.NewCoachRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	convocationRepo := postgres.NewConvocationRepository(db)
	trainingRepo := postgres.NewTrainingRepository(db)
	physicalTestRepo := postgres.NewPhysicalTestRepository(db)

	tokenManager, err := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("build token manager: %w", err)
	}

	var notifier notification.Service
	var mailer *notificationimpl.SendGridService
	if cfg.SendGridAPIKey != "" {
		breaker := resilience.NewBreaker(cfg.MailCircuitFailureCount, cfg.MailCircuitOpenTimeout)
		mailer, err = notificationimpl.NewSendGridService(notificationimpl.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromName:  cfg.SendGridFromName,
			FromEmail: cfg.SendGridFromEmail,
			Workers:   cfg.SendGridWorkers,
		}, breaker, infraLogger)
		if err != nil {
			closeQuietly(db, logger)
			return nil, fmt.Errorf("build sendgrid service: %w", err)
		}
		notifier = mailer
	} else {
		logger.Info("sendgrid disabled", "reason", "SENDGRID_API_KEY empty")
		notifier = notificationimpl.NewConsoleService(infraLogger)
	}

	ids := idgen.NewRandomGenerator()
	dashboardCache := cache.NewStore(cfg.DashboardCacheTTL)

	authSvc := usecase.NewAuthService(userRepo, invitationRepo, tokenManager, notifier, ids, logger)
	tenantSvc := usecase.NewTenantService(tenantRepo, userRepo, notifier, ids, logger)
	invitationSvc := usecase.NewInvitationService(invitationRepo, notifier, ids, logger)
	playerSvc := usecase.NewPlayerService(playerRepo, teamRepo, ids)
	teamSvc := usecase.NewTeamService(teamRepo, coachRepo, playerRepo, ids)
	coachSvc := usecase.NewCoachService(coachRepo, ids)
	matchSvc := usecase.NewMatchService(matchRepo, teamRepo, ids)
	convocationSvc := usecase.NewConvocationService(convocationRepo, matchRepo, playerRepo, ids, logger)
	trainingSvc := usecase.NewTrainingService(trainingRepo, teamRepo, playerRepo, ids)
	physicalTestSvc := usecase.NewPhysicalTestService(physicalTestRepo, playerRepo, ids)
	dashboardSvc := usecase.NewDashboardService(playerRepo, teamRepo, coachRepo, matchRepo, convocationRepo, dashboardCache)

	handler := httpapi.NewHandler(httpapi.HandlerServices{
		Auth:         authSvc,
		Tenant:       tenantSvc,
		Invitation:   invitationSvc,
		Player:       playerSvc,
		Team:         teamSvc,
		Coach:        coachSvc,
		Match:        matchSvc,
		Convocation:  convocationSvc,
		Training:     trainingSvc,
		PhysicalTest: physicalTestSvc,
		Dashboard:    dashboardSvc,
	}, logger)
	router := httpapi.NewRouter(handler, tokenManager, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Application{
		Server: server,
		db:     db,
		mailer: mailer,
		logger: logger,
	}, nil
}

// Close releases resources owned by the application. The HTTP server is
// shut down separately by main before this runs.
func (a *Application) Close() {
	if a.mailer != nil {
		a.mailer.Close()
	}
	closeQuietly(a.db, a.logger)
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func closeQuietly(db *sqlx.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil && logger != nil {
		logger.Error("close database", "error", err)
	}
}
