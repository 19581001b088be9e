package memory

import (
	"context"
	"time"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
)

// PlayerRepository is the in-memory implementation of repository.PlayerRepository.
type PlayerRepository struct {
	store *Store
}

var _ repository.PlayerRepository = (*PlayerRepository)(nil)

// Create stores a new player with zeroed career counters and, when a team is
// set, appends the player to that team's roster list.
func (r *PlayerRepository) Create(_ context.Context, p model.Player) (model.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p.ID = newID()
	p.MatchesPlayed = 0
	p.Runs = 0
	p.BallsFaced = 0
	p.Fours = 0
	p.Sixes = 0
	p.Fifties = 0
	p.Hundreds = 0
	p.HighScore = 0
	p.Wickets = 0
	p.BallsBowled = 0
	p.RunsConceded = 0
	p.Maidens = 0
	p.BestBowling = "0/0"
	p.CreatedAt = time.Now().UTC()
	r.store.players[p.ID] = p

	if p.TeamID != "" {
		if t, ok := r.store.teams[p.TeamID]; ok {
			t.PlayerIDs = append(t.PlayerIDs, p.ID)
			r.store.teams[p.TeamID] = t
		}
	}
	return p, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (model.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]model.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]model.Player, 0, len(r.store.players))
	for _, p := range r.store.players {
		out = append(out, p)
	}
	return out, nil
}

// ListByTeam is a linear scan on the teamId foreign key.
func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]model.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []model.Player{}
	for _, p := range r.store.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update merges non-nil fields onto the stored record (last write wins).
// Reassigning TeamID moves the player between team rosters.
func (r *PlayerRepository) Update(_ context.Context, id string, upd model.PlayerUpdate) (model.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	if upd.TeamID != nil && *upd.TeamID != p.TeamID {
		r.detachFromRoster(p.TeamID, id)
		if *upd.TeamID != "" {
			if t, ok := r.store.teams[*upd.TeamID]; ok {
				t.PlayerIDs = append(t.PlayerIDs, id)
				r.store.teams[*upd.TeamID] = t
			}
		}
		p.TeamID = *upd.TeamID
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Role != nil {
		p.Role = *upd.Role
	}
	if upd.MatchesPlayed != nil {
		p.MatchesPlayed = *upd.MatchesPlayed
	}
	if upd.Runs != nil {
		p.Runs = *upd.Runs
	}
	if upd.BallsFaced != nil {
		p.BallsFaced = *upd.BallsFaced
	}
	if upd.Fours != nil {
		p.Fours = *upd.Fours
	}
	if upd.Sixes != nil {
		p.Sixes = *upd.Sixes
	}
	if upd.Fifties != nil {
		p.Fifties = *upd.Fifties
	}
	if upd.Hundreds != nil {
		p.Hundreds = *upd.Hundreds
	}
	if upd.HighScore != nil {
		p.HighScore = *upd.HighScore
	}
	if upd.Wickets != nil {
		p.Wickets = *upd.Wickets
	}
	if upd.BallsBowled != nil {
		p.BallsBowled = *upd.BallsBowled
	}
	if upd.RunsConceded != nil {
		p.RunsConceded = *upd.RunsConceded
	}
	if upd.Maidens != nil {
		p.Maidens = *upd.Maidens
	}
	if upd.BestBowling != nil {
		p.BestBowling = *upd.BestBowling
	}
	r.store.players[id] = p
	return p, nil
}

// Delete removes the player and detaches it from its team roster.
func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.players[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.detachFromRoster(p.TeamID, id)
	delete(r.store.players, id)
	return nil
}

// detachFromRoster removes playerID from the team's roster list.
// Caller must hold the write lock.
func (r *PlayerRepository) detachFromRoster(teamID, playerID string) {
	if teamID == "" {
		return
	}
	t, ok := r.store.teams[teamID]
	if !ok {
		return
	}
	ids := t.PlayerIDs[:0]
	for _, pid := range t.PlayerIDs {
		if pid != playerID {
			ids = append(ids, pid)
		}
	}
	t.PlayerIDs = ids
	r.store.teams[teamID] = t
}
