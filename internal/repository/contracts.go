package repository

import (
	"context"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TeamRepository declares persistence operations for teams.
// I return domain models and surface the domain errors from errors.go.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, id string) (model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
	Update(ctx context.Context, id string, upd model.TeamUpdate) (model.Team, error)
	Delete(ctx context.Context, id string) error
}

// PlayerRepository declares persistence operations for players.
// Create with a non-empty TeamID also appends the player to that team's roster.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id string) (model.Player, error)
	List(ctx context.Context) ([]model.Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.Player, error)
	Update(ctx context.Context, id string, upd model.PlayerUpdate) (model.Player, error)
	Delete(ctx context.Context, id string) error
}

// MatchRepository declares persistence operations for matches.
// List returns matches sorted by descending date.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id string) (model.Match, error)
	List(ctx context.Context) ([]model.Match, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.Match, error)
	Update(ctx context.Context, id string, upd model.MatchUpdate) (model.Match, error)
	Delete(ctx context.Context, id string) error
}
