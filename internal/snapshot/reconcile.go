package snapshot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
)

// Reconciler decides on startup (and on demand) whether server state should be
// replaced by a backup snapshot. Precedence is fixed: a stored snapshot wins
// when the superficial comparison mismatches, otherwise server state is left
// untouched; defaults are never seeded.
type Reconciler struct {
	mgr     *Manager
	files   *FileStore
	teams   service.TeamService
	players service.PlayerService
	matches service.MatchService
	log     zerolog.Logger
}

func NewReconciler(mgr *Manager, files *FileStore, teams service.TeamService, players service.PlayerService, matches service.MatchService, logger zerolog.Logger) *Reconciler {
	l := logger.With().Str("module", "snapshot").Str("component", "reconciler").Logger()
	return &Reconciler{mgr: mgr, files: files, teams: teams, players: players, matches: matches, log: l}
}

// Run reconciles against the stored backup file. The boolean reports whether
// a replace happened.
func (r *Reconciler) Run(ctx context.Context) (bool, Report, error) {
	snap, err := r.files.Load()
	if err != nil {
		return false, Report{}, err
	}
	if snap == nil {
		r.log.Info().Msg("no backup snapshot, leaving server state untouched")
		return false, Report{Success: true, Errors: []string{}}, nil
	}
	return r.RunWith(ctx, *snap)
}

// RunWith reconciles against a caller-supplied snapshot (the client may post
// its own local copy). If the collection sizes and the team-name sets already
// match, nothing happens. On any mismatch the server's matches, players and
// teams are wiped in that dependency order and the snapshot is re-imported,
// remapping team ids as teams are recreated. The wipe and re-import are
// best-effort: per-entity failures are collected, never fatal.
func (r *Reconciler) RunWith(ctx context.Context, snap model.Snapshot) (bool, Report, error) {
	teams, err := r.teams.ListTeams(ctx)
	if err != nil {
		return false, Report{}, fmt.Errorf("fetch teams: %w", err)
	}
	players, err := r.players.ListPlayers(ctx)
	if err != nil {
		return false, Report{}, fmt.Errorf("fetch players: %w", err)
	}
	matches, err := r.matches.ListMatches(ctx)
	if err != nil {
		return false, Report{}, fmt.Errorf("fetch matches: %w", err)
	}

	if inSync(snap, teams, players, matches) {
		r.log.Info().Msg("server state matches backup snapshot, no reconciliation needed")
		return false, Report{Success: true, Errors: []string{}}, nil
	}

	r.log.Info().
		Int("server_teams", len(teams)).
		Int("snapshot_teams", len(snap.Teams)).
		Msg("state mismatch, replacing server data from snapshot")

	errs := []string{}
	for _, m := range matches {
		if err := r.matches.DeleteMatch(ctx, m.ID); err != nil {
			errs = append(errs, fmt.Sprintf("failed to delete match %s: %v", m.ID, err))
		}
	}
	for _, p := range players {
		if err := r.players.DeletePlayer(ctx, p.ID); err != nil {
			errs = append(errs, fmt.Sprintf("failed to delete player %s: %v", p.ID, err))
		}
	}
	for _, t := range teams {
		if err := r.teams.DeleteTeam(ctx, t.ID); err != nil {
			errs = append(errs, fmt.Sprintf("failed to delete team %s: %v", t.ID, err))
		}
	}

	report := r.mgr.Import(ctx, snap)
	report.Errors = append(errs, report.Errors...)
	report.Success = len(report.Errors) == 0
	return true, report, nil
}

// inSync compares only superficial signals: equal collection sizes and equal
// team-name sets. Record-level drift inside matching collections goes
// undetected on purpose; a full diff is not worth it for a backup heuristic.
func inSync(snap model.Snapshot, teams []model.Team, players []model.Player, matches []model.Match) bool {
	if len(snap.Teams) != len(teams) || len(snap.Players) != len(players) || len(snap.Matches) != len(matches) {
		return false
	}
	names := make(map[string]int, len(teams))
	for _, t := range teams {
		names[t.Name]++
	}
	for _, t := range snap.Teams {
		if names[t.Name] == 0 {
			return false
		}
		names[t.Name]--
	}
	return true
}
