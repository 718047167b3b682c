package usecase

import (
	"context"
	"fmt"
	"strings"

	"football101/internal/domain/season"
)

type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

// List returns a league's seasons, newest first. An empty result is not an
// error; callers get an empty list when nothing has been populated yet.
func (s *SeasonService) List(ctx context.Context, leagueName string) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.ListByLeague(ctx, strings.TrimSpace(leagueName))
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return items, nil
}
