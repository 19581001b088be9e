// Package memory provides the in-process storage backend. One Store instance
// holds every collection; all repositories share its lock so multi-entity
// operations observe a consistent view.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
)

// Store holds the three entity collections behind a single RWMutex.
// Construct once per process and inject; there is no ambient global instance.
type Store struct {
	mu      sync.RWMutex
	teams   map[string]model.Team
	players map[string]model.Player
	matches map[string]model.Match
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		teams:   make(map[string]model.Team),
		players: make(map[string]model.Player),
		matches: make(map[string]model.Match),
	}
}

// Ping satisfies repository.Pinger. Memory is always reachable, so it only
// honors context cancellation.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Teams returns the team repository view of the store.
func (s *Store) Teams() *TeamRepository { return &TeamRepository{store: s} }

// Players returns the player repository view of the store.
func (s *Store) Players() *PlayerRepository { return &PlayerRepository{store: s} }

// Matches returns the match repository view of the store.
func (s *Store) Matches() *MatchRepository { return &MatchRepository{store: s} }

func newID() string { return uuid.NewString() }

// cloneMatch deep-copies the log and stats map so callers never alias stored
// state.
func cloneMatch(m model.Match) model.Match {
	if m.BallByBall != nil {
		log := make([]model.BallEvent, len(m.BallByBall))
		copy(log, m.BallByBall)
		m.BallByBall = log
	}
	if m.PlayerStats != nil {
		stats := make(map[string]model.PlayerMatchStats, len(m.PlayerStats))
		for k, v := range m.PlayerStats {
			stats[k] = v
		}
		m.PlayerStats = stats
	}
	return m
}

func cloneTeam(t model.Team) model.Team {
	if t.PlayerIDs != nil {
		ids := make([]string, len(t.PlayerIDs))
		copy(ids, t.PlayerIDs)
		t.PlayerIDs = ids
	}
	return t
}
