package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
)

type matchService struct {
	matches repository.MatchRepository
	teams   repository.TeamRepository
	players repository.PlayerRepository
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, teams repository.TeamRepository, players repository.PlayerRepository, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, teams: teams, players: players, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, in CreateMatchInput) (model.Match, error) {
	start := time.Now()
	in.Format = strings.TrimSpace(in.Format)
	in.TossDecision = strings.ToLower(strings.TrimSpace(in.TossDecision))

	var ferrs []FieldError
	if in.Team1ID == "" {
		ferrs = append(ferrs, FieldError{Field: "team1Id", Message: "must not be empty"})
	}
	if in.Team2ID == "" {
		ferrs = append(ferrs, FieldError{Field: "team2Id", Message: "must not be empty"})
	}
	if in.Team1ID != "" && in.Team1ID == in.Team2ID {
		ferrs = append(ferrs, FieldError{Field: "team2Id", Message: "teams must be different"})
	}
	if !isValidFormat(in.Format) {
		ferrs = append(ferrs, FieldError{Field: "format", Message: "must be one of T20, ODI, Test"})
	}
	if in.TossDecision != "" && !isValidTossDecision(in.TossDecision) {
		ferrs = append(ferrs, FieldError{Field: "tossDecision", Message: "must be bat or bowl"})
	}
	if in.TossWinner != "" && in.TossWinner != in.Team1ID && in.TossWinner != in.Team2ID {
		ferrs = append(ferrs, FieldError{Field: "tossWinner", Message: "must be one of the two teams"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed")
		return model.Match{}, err
	}

	// Both sides must resolve; team names are denormalized into the match.
	team1, err := s.teams.GetByID(ctx, in.Team1ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Match{}, newInvalidInput([]FieldError{{Field: "team1Id", Message: "team does not exist"}})
		}
		return model.Match{}, err
	}
	team2, err := s.teams.GetByID(ctx, in.Team2ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Match{}, newInvalidInput([]FieldError{{Field: "team2Id", Message: "team does not exist"}})
		}
		return model.Match{}, err
	}

	out, err := s.matches.Create(ctx, model.Match{
		Team1ID:      team1.ID,
		Team2ID:      team2.ID,
		Team1Name:    team1.Name,
		Team2Name:    team2.Name,
		Format:       in.Format,
		Venue:        strings.TrimSpace(in.Venue),
		Date:         in.Date,
		TossWinner:   in.TossWinner,
		TossDecision: in.TossDecision,
	})
	if err != nil {
		s.log.Error().Err(err).Str("team1_id", in.Team1ID).Str("team2_id", in.Team2ID).Msg("create match failed")
		return model.Match{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("match_id", out.ID).Msg("match created")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id string) (model.Match, error) {
	if id == "" {
		return model.Match{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context) ([]model.Match, error) {
	res, err := s.matches.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list matches failed")
		return nil, err
	}
	return res, nil
}

func (s *matchService) ListMatchesByTeam(ctx context.Context, teamID string) ([]model.Match, error) {
	if teamID == "" {
		return nil, newInvalidInput([]FieldError{{Field: "team_id", Message: "must not be empty"}})
	}
	res, err := s.matches.ListByTeam(ctx, teamID)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Msg("list matches failed")
		return nil, err
	}
	return res, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id string, upd model.MatchUpdate) (model.Match, error) {
	var ferrs []FieldError
	if id == "" {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must not be empty"})
	}
	if upd.Status != nil && !isValidStatus(*upd.Status) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of not_started, in_progress, completed"})
	}
	if upd.CurrentInnings != nil && (*upd.CurrentInnings < 1 || *upd.CurrentInnings > 2) {
		ferrs = append(ferrs, FieldError{Field: "currentInnings", Message: "must be 1 or 2"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Match{}, err
	}
	return s.matches.Update(ctx, id, upd)
}

func (s *matchService) DeleteMatch(ctx context.Context, id string) error {
	if id == "" {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.matches.Delete(ctx, id)
}

// StartMatch moves a fixture to in_progress and derives the opening batting
// side from the toss: the toss winner bats when it chose to, otherwise the
// other side does. Without toss metadata team1 bats first.
func (s *matchService) StartMatch(ctx context.Context, id string) (model.Match, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	if m.Status != model.StatusNotStarted {
		return model.Match{}, fmt.Errorf("match %s already started: %w", id, repository.ErrConflict)
	}

	batting := m.Team1ID
	if m.TossWinner != "" && m.TossDecision != "" {
		batting = m.TossWinner
		if m.TossDecision == "bowl" {
			batting = otherTeam(m, m.TossWinner)
		}
	}
	bowling := otherTeam(m, batting)

	status := model.StatusInProgress
	innings := 1
	out, err := s.matches.Update(ctx, id, model.MatchUpdate{
		Status:         &status,
		CurrentInnings: &innings,
		BattingTeam:    &batting,
		BowlingTeam:    &bowling,
	})
	if err != nil {
		return model.Match{}, err
	}
	s.log.Info().Str("match_id", id).Str("batting", batting).Msg("match started")
	return out, nil
}

// otherTeam returns the opposing side's id within the fixture.
func otherTeam(m model.Match, teamID string) string {
	if teamID == m.Team1ID {
		return m.Team2ID
	}
	return m.Team1ID
}
