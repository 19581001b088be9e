package memory

import (
	"context"
	"time"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
)

// TeamRepository is the in-memory implementation of repository.TeamRepository.
type TeamRepository struct {
	store *Store
}

var _ repository.TeamRepository = (*TeamRepository)(nil)

// Create stores a new team with a fresh id and zeroed counters. Caller-supplied
// counters and roster are discarded; a team always starts with a clean record.
func (r *TeamRepository) Create(_ context.Context, t model.Team) (model.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t.ID = newID()
	t.PlayerIDs = []string{}
	t.Matches = 0
	t.Wins = 0
	t.Losses = 0
	t.CreatedAt = time.Now().UTC()
	r.store.teams[t.ID] = t
	return cloneTeam(t), nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (model.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.teams[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return cloneTeam(t), nil
}

func (r *TeamRepository) List(_ context.Context) ([]model.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]model.Team, 0, len(r.store.teams))
	for _, t := range r.store.teams {
		out = append(out, cloneTeam(t))
	}
	return out, nil
}

// Update merges non-nil fields onto the stored record (last write wins).
func (r *TeamRepository) Update(_ context.Context, id string, upd model.TeamUpdate) (model.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.teams[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.ShortName != nil {
		t.ShortName = *upd.ShortName
	}
	if upd.PlayerIDs != nil {
		t.PlayerIDs = append([]string(nil), (*upd.PlayerIDs)...)
	}
	if upd.Matches != nil {
		t.Matches = *upd.Matches
	}
	if upd.Wins != nil {
		t.Wins = *upd.Wins
	}
	if upd.Losses != nil {
		t.Losses = *upd.Losses
	}
	r.store.teams[id] = t
	return cloneTeam(t), nil
}

// Delete removes the team record only. Cascading to players and matches is a
// service-layer policy.
func (r *TeamRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.teams, id)
	return nil
}
