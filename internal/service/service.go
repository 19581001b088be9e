// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError exposes aggregated validation errors to handlers that
// fail before reaching a service (e.g. malformed path parameters).
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamService defines team-oriented use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name, shortName string) (model.Team, error)
	GetTeam(ctx context.Context, id string) (model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	UpdateTeam(ctx context.Context, id string, upd model.TeamUpdate) (model.Team, error)
	// DeleteTeam cascades: the team's matches and players go with it.
	DeleteTeam(ctx context.Context, id string) error
}

// PlayerService defines player-oriented use cases.
type PlayerService interface {
	CreatePlayer(ctx context.Context, name, role, teamID string) (model.Player, error)
	GetPlayer(ctx context.Context, id string) (model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd model.PlayerUpdate) (model.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// CreateMatchInput carries the caller-controlled fields of a new match.
// Scores, status and the event log always start zeroed.
type CreateMatchInput struct {
	Team1ID      string
	Team2ID      string
	Format       string
	Venue        string
	Date         time.Time
	TossWinner   string
	TossDecision string
}

// BallInput is one scoring action applied to a live match.
type BallInput struct {
	Kind          string `json:"kind"` // run, extra, wicket
	Runs          int    `json:"runs"`
	ExtraType     string `json:"extraType,omitempty"`
	DismissalType string `json:"dismissalType,omitempty"`
	BatsmanID     string `json:"batsmanId,omitempty"`
	BowlerID      string `json:"bowlerId,omitempty"`
}

// MatchService defines match lifecycle and live-scoring use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, in CreateMatchInput) (model.Match, error)
	GetMatch(ctx context.Context, id string) (model.Match, error)
	ListMatches(ctx context.Context) ([]model.Match, error)
	ListMatchesByTeam(ctx context.Context, teamID string) ([]model.Match, error)
	UpdateMatch(ctx context.Context, id string, upd model.MatchUpdate) (model.Match, error)
	DeleteMatch(ctx context.Context, id string) error

	StartMatch(ctx context.Context, id string) (model.Match, error)
	RecordBall(ctx context.Context, id string, in BallInput) (model.Match, error)
	SwitchInnings(ctx context.Context, id string) (model.Match, error)
	CompleteMatch(ctx context.Context, id string) (model.Match, error)
}
