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

type playerService struct {
	players repository.PlayerRepository
	teams   repository.TeamRepository
	log     zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, teams repository.TeamRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{players: players, teams: teams, log: l}
}

func (s *playerService) CreatePlayer(ctx context.Context, name, role, teamID string) (model.Player, error) {
	start := time.Now()

	// Normalize early so validation and persistence see canonical values.
	name = strings.TrimSpace(name)
	role = strings.ToLower(strings.TrimSpace(role))

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln > 50 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be <= 50"})
	}
	if !isValidRole(role) {
		ferrs = append(ferrs, FieldError{Field: "role", Message: "must be one of batsman, bowler, all-rounder, wicket-keeper"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("player validation failed")
		return model.Player{}, err
	}

	// A player may exist without a team; when a team is given it must resolve.
	if teamID != "" {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return model.Player{}, newInvalidInput([]FieldError{{Field: "teamId", Message: "team does not exist"}})
			}
			return model.Player{}, err
		}
	}

	out, err := s.players.Create(ctx, model.Player{Name: name, Role: role, TeamID: teamID})
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Str("name", name).Msg("create player failed")
		return model.Player{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("player_id", out.ID).Msg("player created")
	return out, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	if id == "" {
		return model.Player{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.players.GetByID(ctx, id)
}

func (s *playerService) ListPlayers(ctx context.Context) ([]model.Player, error) {
	res, err := s.players.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list players failed")
		return nil, err
	}
	return res, nil
}

func (s *playerService) ListPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	if teamID == "" {
		return nil, newInvalidInput([]FieldError{{Field: "team_id", Message: "must not be empty"}})
	}
	res, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Msg("list players failed")
		return nil, err
	}
	return res, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id string, upd model.PlayerUpdate) (model.Player, error) {
	var ferrs []FieldError
	if id == "" {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must not be empty"})
	}
	if upd.Role != nil && !isValidRole(*upd.Role) {
		ferrs = append(ferrs, FieldError{Field: "role", Message: "must be one of batsman, bowler, all-rounder, wicket-keeper"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Player{}, err
	}
	if upd.TeamID != nil && *upd.TeamID != "" {
		if _, err := s.teams.GetByID(ctx, *upd.TeamID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return model.Player{}, newInvalidInput([]FieldError{{Field: "teamId", Message: "team does not exist"}})
			}
			return model.Player{}, err
		}
	}
	return s.players.Update(ctx, id, upd)
}

func (s *playerService) DeletePlayer(ctx context.Context, id string) error {
	if id == "" {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.players.Delete(ctx, id)
}
