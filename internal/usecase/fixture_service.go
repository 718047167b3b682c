package usecase

import (
	"context"
	"fmt"
	"strings"

	"football101/internal/domain/fixture"
)

type FixtureService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{fixtureRepo: fixtureRepo}
}

func (s *FixtureService) ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]fixture.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListBySeason")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: season year must be greater than zero", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	rows, err := s.fixtureRepo.ListBySeason(ctx, leagueName, year, limit)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no fixtures found for %s %d", ErrNotFound, leagueName, year)
	}

	return rows, nil
}

// ListUpcoming returns the not-yet-kicked-off fixtures of the league's
// current season, soonest first.
func (s *FixtureService) ListUpcoming(ctx context.Context, leagueName string, limit int) ([]fixture.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListUpcoming")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	rows, err := s.fixtureRepo.ListUpcoming(ctx, leagueName, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming fixtures: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no upcoming fixtures found for %s", ErrNotFound, leagueName)
	}

	return rows, nil
}
