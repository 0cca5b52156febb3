package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/usecase"
)

type Handler struct {
	authService         *usecase.AuthService
	tenantService       *usecase.TenantService
	invitationService   *usecase.InvitationService
	playerService       *usecase.PlayerService
	teamService         *usecase.TeamService
	coachService        *usecase.CoachService
	matchService        *usecase.MatchService
	convocationService  *usecase.ConvocationService
	trainingService     *usecase.TrainingService
	physicalTestService *usecase.PhysicalTestService
	dashboardService    *usecase.DashboardService
	logger              *slog.Logger
	validator           *validator.Validate
}

type HandlerServices struct {
	Auth         *usecase.AuthService
	Tenant       *usecase.TenantService
	Invitation   *usecase.InvitationService
	Player       *usecase.PlayerService
	Team         *usecase.TeamService
	Coach        *usecase.CoachService
	Match        *usecase.MatchService
	Convocation  *usecase.ConvocationService
	Training     *usecase.TrainingService
	PhysicalTest *usecase.PhysicalTestService
	Dashboard    *usecase.DashboardService
}

func NewHandler(services HandlerServices, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:         services.Auth,
		tenantService:       services.Tenant,
		invitationService:   services.Invitation,
		playerService:       services.Player,
		teamService:         services.Team,
		coachService:        services.Coach,
		matchService:        services.Match,
		convocationService:  services.Convocation,
		trainingService:     services.Training,
		physicalTestService: services.PhysicalTest,
		dashboardService:    services.Dashboard,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(req any) error {
	if err := h.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// requirePrincipal is used by handlers behind RequireAuth; a missing
// principal means the middleware chain was miswired.
func requirePrincipal(ctx context.Context) (auth.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return auth.Principal{}, fmt.Errorf("%w: No token provided", usecase.ErrUnauthorized)
	}
	return principal, nil
}
