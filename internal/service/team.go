package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
)

// teamService holds team use-case logic: validation + orchestration, no transport details.
type teamService struct {
	teams   repository.TeamRepository
	players repository.PlayerRepository
	matches repository.MatchRepository
	log     zerolog.Logger
}

func NewTeamService(teams repository.TeamRepository, players repository.PlayerRepository, matches repository.MatchRepository, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{teams: teams, players: players, matches: matches, log: l}
}

func (s *teamService) CreateTeam(ctx context.Context, name, shortName string) (model.Team, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	shortName = strings.ToUpper(strings.TrimSpace(shortName))

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln < 2 || ln > 50 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 50"})
	}
	if shortName == "" {
		ferrs = append(ferrs, FieldError{Field: "shortName", Message: "must not be empty"})
	} else if len([]rune(shortName)) > 5 {
		ferrs = append(ferrs, FieldError{Field: "shortName", Message: "length must be <= 5"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("team validation failed")
		return model.Team{}, err
	}

	out, err := s.teams.Create(ctx, model.Team{Name: name, ShortName: shortName})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create team failed")
		return model.Team{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("team_id", out.ID).Msg("team created")
	return out, nil
}

func (s *teamService) GetTeam(ctx context.Context, id string) (model.Team, error) {
	if id == "" {
		return model.Team{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	res, err := s.teams.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list teams failed")
		return nil, err
	}
	return res, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id string, upd model.TeamUpdate) (model.Team, error) {
	var ferrs []FieldError
	if id == "" {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must not be empty"})
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if upd.ShortName != nil && len([]rune(strings.TrimSpace(*upd.ShortName))) > 5 {
		ferrs = append(ferrs, FieldError{Field: "shortName", Message: "length must be <= 5"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Team{}, err
	}
	return s.teams.Update(ctx, id, upd)
}

// DeleteTeam removes the team together with everything that references it:
// matches first, then players, then the team itself. The order mirrors the
// reconciliation wipe so the store never exposes a match without its teams.
func (s *teamService) DeleteTeam(ctx context.Context, id string) error {
	if id == "" {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	if _, err := s.teams.GetByID(ctx, id); err != nil {
		return err
	}

	teamMatches, err := s.matches.ListByTeam(ctx, id)
	if err != nil {
		return err
	}
	for _, m := range teamMatches {
		if err := s.matches.Delete(ctx, m.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}

	teamPlayers, err := s.players.ListByTeam(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range teamPlayers {
		if err := s.players.Delete(ctx, p.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}

	if err := s.teams.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("team_id", id).Int("matches", len(teamMatches)).Int("players", len(teamPlayers)).Msg("team deleted with cascade")
	return nil
}
