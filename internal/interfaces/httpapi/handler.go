package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"football101/internal/domain/fixture"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
	"football101/internal/platform/logging"
	"football101/internal/usecase"
)

const apiVersion = "1.0.0"

// SeasonService lists the season catalog for a league.
type SeasonService interface {
	List(ctx context.Context, leagueName string) ([]season.Season, error)
}

// StandingService reads league tables.
type StandingService interface {
	ListBySeason(ctx context.Context, leagueName string, year int) ([]standing.TableRow, error)
	ListCurrent(ctx context.Context, leagueName string) ([]standing.TableRow, error)
}

// FixtureService reads fixture lists.
type FixtureService interface {
	ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]fixture.Row, error)
	ListUpcoming(ctx context.Context, leagueName string, limit int) ([]fixture.Row, error)
}

// TeamService reads teams.
type TeamService interface {
	List(ctx context.Context, leagueName string) ([]team.Team, error)
	GetByID(ctx context.Context, teamID int64) (team.Team, error)
}

// HandlerConfig carries serving defaults. DataSourceLabel is surfaced on the
// health endpoint so callers can tell a database-backed deployment from a
// feed-backed one.
type HandlerConfig struct {
	DefaultLeague   string
	DefaultSeason   int
	DataSourceLabel string
}

type Handler struct {
	seasonService   SeasonService
	standingService StandingService
	fixtureService  FixtureService
	teamService     TeamService
	cfg             HandlerConfig
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	seasonService SeasonService,
	standingService StandingService,
	fixtureService FixtureService,
	teamService TeamService,
	cfg HandlerConfig,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:   seasonService,
		standingService: standingService,
		fixtureService:  fixtureService,
		teamService:     teamService,
		cfg:             cfg,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message":     "Football-101 API",
		"status":      "healthy",
		"version":     apiVersion,
		"data_source": h.cfg.DataSourceLabel,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) leagueQuery(r *http.Request) string {
	leagueName := strings.TrimSpace(r.URL.Query().Get("league"))
	if leagueName == "" {
		return h.cfg.DefaultLeague
	}
	return leagueName
}

func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s parameter", usecase.ErrInvalidInput, name)
	}

	return value, nil
}
