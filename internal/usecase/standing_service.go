package usecase

import (
	"context"
	"fmt"
	"strings"

	"football101/internal/domain/standing"
)

type StandingService struct {
	standingRepo standing.Repository
}

func NewStandingService(standingRepo standing.Repository) *StandingService {
	return &StandingService{standingRepo: standingRepo}
}

func (s *StandingService) ListBySeason(ctx context.Context, leagueName string, year int) ([]standing.TableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListBySeason")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: season year must be greater than zero", ErrInvalidInput)
	}

	rows, err := s.standingRepo.ListBySeason(ctx, leagueName, year)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no standings found for %s %d", ErrNotFound, leagueName, year)
	}

	return rows, nil
}

// ListCurrent reads the table of the league's current season.
func (s *StandingService) ListCurrent(ctx context.Context, leagueName string) ([]standing.TableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListCurrent")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	rows, err := s.standingRepo.ListCurrent(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list current standings: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no standings found for %s", ErrNotFound, leagueName)
	}

	return rows, nil
}
