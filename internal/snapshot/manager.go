// Package snapshot implements the portable backup format: export, additive
// import with team-id remapping, the file-backed backup store and the startup
// reconciliation pass.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
)

// Report is the outcome of an import or reconciliation run. Success is true
// only when no per-record error occurred.
type Report struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// Manager bundles export and import of full-state snapshots. Imports go
// through the service layer so every recreated record passes the same
// validation as a client request.
type Manager struct {
	teams    service.TeamService
	players  service.PlayerService
	matches  service.MatchService
	validate *validator.Validate
	log      zerolog.Logger
}

func NewManager(teams service.TeamService, players service.PlayerService, matches service.MatchService, logger zerolog.Logger) *Manager {
	l := logger.With().Str("module", "snapshot").Str("component", "manager").Logger()
	return &Manager{
		teams:    teams,
		players:  players,
		matches:  matches,
		validate: validator.New(),
		log:      l,
	}
}

// Export bundles all collections with an export timestamp and format version.
func (m *Manager) Export(ctx context.Context) (model.Snapshot, error) {
	teams, err := m.teams.ListTeams(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export teams: %w", err)
	}
	players, err := m.players.ListPlayers(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export players: %w", err)
	}
	matches, err := m.matches.ListMatches(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export matches: %w", err)
	}
	return model.Snapshot{
		Teams:      teams,
		Players:    players,
		Matches:    matches,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    model.SnapshotVersion,
	}, nil
}

// Import recreates the snapshot's records additively. Teams go first while an
// old-id to new-id map is built; player and match team references are
// rewritten through that map so nothing points outside the new team set. A
// player whose team cannot be mapped is imported unassigned; a match whose
// teams cannot be mapped is reported as an error. Per-record failures never
// halt the rest of the import.
func (m *Manager) Import(ctx context.Context, snap model.Snapshot) Report {
	if err := m.validate.Struct(snap); err != nil {
		return Report{Success: false, Errors: []string{"invalid snapshot: teams, players and matches are required"}}
	}

	errs := []string{}
	idMap := make(map[string]string, len(snap.Teams))

	for _, t := range snap.Teams {
		created, err := m.teams.CreateTeam(ctx, t.Name, t.ShortName)
		if err != nil {
			errs = append(errs, fmt.Sprintf("failed to import team %q: %v", t.Name, err))
			continue
		}
		idMap[t.ID] = created.ID
	}

	for _, p := range snap.Players {
		teamID := ""
		if p.TeamID != "" {
			teamID = idMap[p.TeamID] // unmapped teams leave the player unassigned
		}
		if _, err := m.players.CreatePlayer(ctx, p.Name, p.Role, teamID); err != nil {
			errs = append(errs, fmt.Sprintf("failed to import player %q: %v", p.Name, err))
		}
	}

	for _, mt := range snap.Matches {
		team1, ok1 := idMap[mt.Team1ID]
		team2, ok2 := idMap[mt.Team2ID]
		if !ok1 || !ok2 {
			errs = append(errs, fmt.Sprintf("failed to import match %s vs %s: team reference not in snapshot", mt.Team1Name, mt.Team2Name))
			continue
		}
		if _, err := m.matches.CreateMatch(ctx, service.CreateMatchInput{
			Team1ID:      team1,
			Team2ID:      team2,
			Format:       mt.Format,
			Venue:        mt.Venue,
			Date:         mt.Date,
			TossWinner:   idMap[mt.TossWinner],
			TossDecision: mt.TossDecision,
		}); err != nil {
			errs = append(errs, fmt.Sprintf("failed to import match %s vs %s: %v", mt.Team1Name, mt.Team2Name, err))
		}
	}

	m.log.Info().
		Int("teams", len(snap.Teams)).
		Int("players", len(snap.Players)).
		Int("matches", len(snap.Matches)).
		Int("errors", len(errs)).
		Msg("snapshot import finished")
	return Report{Success: len(errs) == 0, Errors: errs}
}
