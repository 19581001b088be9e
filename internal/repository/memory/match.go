package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
)

// MatchRepository is the in-memory implementation of repository.MatchRepository.
type MatchRepository struct {
	store *Store
}

var _ repository.MatchRepository = (*MatchRepository)(nil)

// Create stores a new match. Both innings always start at 0/0 with 0.0 overs
// and an empty log, whatever the caller sent; only identity, scheduling and
// toss fields are taken from the input.
func (r *MatchRepository) Create(_ context.Context, m model.Match) (model.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m.ID = newID()
	m.Status = model.StatusNotStarted
	m.Team1Score = 0
	m.Team1Wickets = 0
	m.Team1Overs = 0
	m.Team2Score = 0
	m.Team2Wickets = 0
	m.Team2Overs = 0
	m.Winner = ""
	m.Result = ""
	m.CurrentInnings = 1
	m.BattingTeam = ""
	m.BowlingTeam = ""
	m.CurrentBatsman1 = ""
	m.CurrentBatsman2 = ""
	m.CurrentBowler = ""
	m.OnStrike = ""
	m.BallByBall = []model.BallEvent{}
	m.PlayerStats = map[string]model.PlayerMatchStats{}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	m.CreatedAt = time.Now().UTC()
	r.store.matches[m.ID] = m
	return cloneMatch(m), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (model.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return cloneMatch(m), nil
}

// List returns all matches sorted by descending date.
func (r *MatchRepository) List(_ context.Context) ([]model.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]model.Match, 0, len(r.store.matches))
	for _, m := range r.store.matches {
		out = append(out, cloneMatch(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ListByTeam is a linear scan matching either side of the fixture.
func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]model.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []model.Match{}
	for _, m := range r.store.matches {
		if m.Team1ID == teamID || m.Team2ID == teamID {
			out = append(out, cloneMatch(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Update merges non-nil fields onto the stored record (last write wins).
func (r *MatchRepository) Update(_ context.Context, id string, upd model.MatchUpdate) (model.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	if upd.Venue != nil {
		m.Venue = *upd.Venue
	}
	if upd.Status != nil {
		m.Status = *upd.Status
	}
	if upd.TossWinner != nil {
		m.TossWinner = *upd.TossWinner
	}
	if upd.TossDecision != nil {
		m.TossDecision = *upd.TossDecision
	}
	if upd.Team1Score != nil {
		m.Team1Score = *upd.Team1Score
	}
	if upd.Team1Wickets != nil {
		m.Team1Wickets = *upd.Team1Wickets
	}
	if upd.Team1Overs != nil {
		m.Team1Overs = *upd.Team1Overs
	}
	if upd.Team2Score != nil {
		m.Team2Score = *upd.Team2Score
	}
	if upd.Team2Wickets != nil {
		m.Team2Wickets = *upd.Team2Wickets
	}
	if upd.Team2Overs != nil {
		m.Team2Overs = *upd.Team2Overs
	}
	if upd.Winner != nil {
		m.Winner = *upd.Winner
	}
	if upd.Result != nil {
		m.Result = *upd.Result
	}
	if upd.CurrentInnings != nil {
		m.CurrentInnings = *upd.CurrentInnings
	}
	if upd.BattingTeam != nil {
		m.BattingTeam = *upd.BattingTeam
	}
	if upd.BowlingTeam != nil {
		m.BowlingTeam = *upd.BowlingTeam
	}
	if upd.CurrentBatsman1 != nil {
		m.CurrentBatsman1 = *upd.CurrentBatsman1
	}
	if upd.CurrentBatsman2 != nil {
		m.CurrentBatsman2 = *upd.CurrentBatsman2
	}
	if upd.CurrentBowler != nil {
		m.CurrentBowler = *upd.CurrentBowler
	}
	if upd.OnStrike != nil {
		m.OnStrike = *upd.OnStrike
	}
	if upd.BallByBall != nil {
		m.BallByBall = append([]model.BallEvent(nil), (*upd.BallByBall)...)
	}
	if upd.PlayerStats != nil {
		stats := make(map[string]model.PlayerMatchStats, len(*upd.PlayerStats))
		for k, v := range *upd.PlayerStats {
			stats[k] = v
		}
		m.PlayerStats = stats
	}
	r.store.matches[id] = m
	return cloneMatch(m), nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.matches, id)
	return nil
}
