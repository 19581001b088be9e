package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
)

// battingSide returns 1 or 2 for the slot currently accumulating runs.
// BattingTeam is authoritative once the match started; before that the
// innings number decides.
func battingSide(m model.Match) int {
	if m.BattingTeam != "" {
		if m.BattingTeam == m.Team2ID {
			return 2
		}
		return 1
	}
	if m.CurrentInnings == 2 {
		return 2
	}
	return 1
}

func validateBall(in BallInput) error {
	var ferrs []FieldError
	switch in.Kind {
	case model.EventRun:
		if in.Runs < 0 || in.Runs > 6 {
			ferrs = append(ferrs, FieldError{Field: "runs", Message: "must be between 0 and 6"})
		}
		if in.ExtraType != "" {
			ferrs = append(ferrs, FieldError{Field: "extraType", Message: "not allowed on a run event"})
		}
	case model.EventExtra:
		if !isValidExtra(in.ExtraType) {
			ferrs = append(ferrs, FieldError{Field: "extraType", Message: "must be one of wide, no_ball, bye, leg_bye"})
		}
		if in.Runs < 0 || in.Runs > 7 {
			ferrs = append(ferrs, FieldError{Field: "runs", Message: "must be between 0 and 7"})
		}
	case model.EventWicket:
		if in.Runs < 0 || in.Runs > 6 {
			ferrs = append(ferrs, FieldError{Field: "runs", Message: "must be between 0 and 6"})
		}
		if in.DismissalType != "" && !isValidDismissal(in.DismissalType) {
			ferrs = append(ferrs, FieldError{Field: "dismissalType", Message: "unknown dismissal type"})
		}
	default:
		ferrs = append(ferrs, FieldError{Field: "kind", Message: "must be one of run, extra, wicket"})
	}
	return newInvalidInput(ferrs)
}

// RecordBall applies one scoring action to a live match: appends a tagged
// event to the log, moves the batting side's score/wickets/overs and keeps the
// per-player match stats and the on-strike batsman current. Wides and no-balls
// score without consuming a ball; everything else advances the counter,
// rolling the over at six legal deliveries.
func (s *matchService) RecordBall(ctx context.Context, id string, in BallInput) (model.Match, error) {
	if err := validateBall(in); err != nil {
		return model.Match{}, err
	}
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	if m.Status != model.StatusInProgress {
		return model.Match{}, fmt.Errorf("match %s is not live: %w", id, repository.ErrConflict)
	}

	side := battingSide(m)
	score, wickets, overs := m.Team1Score, m.Team1Wickets, m.Team1Overs
	if side == 2 {
		score, wickets, overs = m.Team2Score, m.Team2Wickets, m.Team2Overs
	}
	balls := ballsFromOvers(overs)

	batsman := in.BatsmanID
	if batsman == "" {
		batsman = m.OnStrike
	}
	bowler := in.BowlerID
	if bowler == "" {
		bowler = m.CurrentBowler
	}

	ev := model.BallEvent{
		Kind:          in.Kind,
		Innings:       m.CurrentInnings,
		Over:          balls / 6,
		Runs:          in.Runs,
		ExtraType:     in.ExtraType,
		DismissalType: in.DismissalType,
		BatsmanID:     batsman,
		BowlerID:      bowler,
		Timestamp:     time.Now().UTC(),
	}
	if ev.Legal() {
		balls++
		ev.Ball = (balls-1)%6 + 1
	}

	score += in.Runs
	if in.Kind == model.EventWicket {
		wickets++
	}
	overs = oversFromBalls(balls)

	stats := m.PlayerStats
	if stats == nil {
		stats = map[string]model.PlayerMatchStats{}
	}
	if batsman != "" {
		ps := stats[batsman]
		if ev.Legal() {
			ps.BallsFaced++
		}
		// Only run events credit the striker; byes and leg-byes do not.
		if in.Kind == model.EventRun {
			ps.Runs += in.Runs
			if in.Runs == 4 {
				ps.Fours++
			}
			if in.Runs == 6 {
				ps.Sixes++
			}
		}
		stats[batsman] = ps
	}
	if bowler != "" {
		ps := stats[bowler]
		if ev.Legal() {
			ps.BallsBowled++
		}
		// Byes and leg-byes are not charged to the bowler.
		if in.ExtraType != model.ExtraBye && in.ExtraType != model.ExtraLegBye {
			ps.RunsConceded += in.Runs
		}
		if in.Kind == model.EventWicket && in.DismissalType != "run_out" {
			ps.Wickets++
		}
		stats[bowler] = ps
	}

	// Strike rotation: odd completed runs swap the striker, and so does the
	// end of an over.
	onStrike := m.OnStrike
	if m.CurrentBatsman1 != "" && m.CurrentBatsman2 != "" {
		rotated := in.Runs%2 == 1 && in.Kind != model.EventWicket
		if ev.Legal() && balls%6 == 0 {
			rotated = !rotated
		}
		if rotated {
			if onStrike == m.CurrentBatsman1 {
				onStrike = m.CurrentBatsman2
			} else {
				onStrike = m.CurrentBatsman1
			}
		}
	}

	log := append(m.BallByBall, ev)
	upd := model.MatchUpdate{
		BallByBall:  &log,
		PlayerStats: &stats,
		OnStrike:    &onStrike,
	}
	if side == 2 {
		upd.Team2Score, upd.Team2Wickets, upd.Team2Overs = &score, &wickets, &overs
	} else {
		upd.Team1Score, upd.Team1Wickets, upd.Team1Overs = &score, &wickets, &overs
	}

	out, err := s.matches.Update(ctx, id, upd)
	if err != nil {
		return model.Match{}, err
	}
	s.log.Debug().Str("match_id", id).Str("kind", in.Kind).Int("runs", in.Runs).Float64("overs", overs).Msg("ball recorded")
	return out, nil
}

// SwitchInnings closes the first innings: batting and bowling sides swap,
// the innings indicator moves to 2 and the live batsman/bowler markers reset.
// The persisted ball-by-ball log is kept whole.
func (s *matchService) SwitchInnings(ctx context.Context, id string) (model.Match, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	if m.Status != model.StatusInProgress {
		return model.Match{}, fmt.Errorf("match %s is not live: %w", id, repository.ErrConflict)
	}
	if m.CurrentInnings != 1 {
		return model.Match{}, fmt.Errorf("match %s already in second innings: %w", id, repository.ErrConflict)
	}

	batting := m.BowlingTeam
	bowling := m.BattingTeam
	if batting == "" || bowling == "" {
		batting, bowling = m.Team2ID, m.Team1ID
	}
	innings := 2
	empty := ""
	out, err := s.matches.Update(ctx, id, model.MatchUpdate{
		CurrentInnings:  &innings,
		BattingTeam:     &batting,
		BowlingTeam:     &bowling,
		CurrentBatsman1: &empty,
		CurrentBatsman2: &empty,
		CurrentBowler:   &empty,
		OnStrike:        &empty,
	})
	if err != nil {
		return model.Match{}, err
	}
	s.log.Info().Str("match_id", id).Str("batting", batting).Msg("innings switched")
	return out, nil
}

// CompleteMatch finishes a live match: decides winner and margin text, folds
// the per-player match stats into career counters and bumps both teams'
// match/win/loss records. Stat and counter updates are best-effort; a failure
// there is logged and does not undo the completed match.
func (s *matchService) CompleteMatch(ctx context.Context, id string) (model.Match, error) {
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	if m.Status == model.StatusCompleted {
		return model.Match{}, fmt.Errorf("match %s already completed: %w", id, repository.ErrConflict)
	}

	winner, result := matchResult(m)

	status := model.StatusCompleted
	out, err := s.matches.Update(ctx, id, model.MatchUpdate{
		Status: &status,
		Winner: &winner,
		Result: &result,
	})
	if err != nil {
		return model.Match{}, err
	}

	s.foldPlayerStats(ctx, m)
	s.updateTeamRecords(ctx, m, winner)

	s.log.Info().Str("match_id", id).Str("winner", winner).Str("result", result).Msg("match completed")
	return out, nil
}

// matchResult decides the winner id and the free-text result line. The
// chasing side wins by wickets in hand (10 minus wickets lost), the defending
// side by the run difference; equal totals tie.
func matchResult(m model.Match) (winner, result string) {
	t1, t2 := m.Team1Score, m.Team2Score
	if t1 == t2 {
		return "", "Match tied"
	}

	chasing := 0
	if m.CurrentInnings == 2 {
		chasing = battingSide(m)
	}

	if t1 > t2 {
		if chasing == 1 {
			return m.Team1ID, fmt.Sprintf("%s won by %d wickets", m.Team1Name, 10-m.Team1Wickets)
		}
		return m.Team1ID, fmt.Sprintf("%s won by %d runs", m.Team1Name, t1-t2)
	}
	if chasing == 2 {
		return m.Team2ID, fmt.Sprintf("%s won by %d wickets", m.Team2Name, 10-m.Team2Wickets)
	}
	return m.Team2ID, fmt.Sprintf("%s won by %d runs", m.Team2Name, t2-t1)
}

// foldPlayerStats merges per-match stats into each player's career counters.
// Entries referencing deleted players are skipped.
func (s *matchService) foldPlayerStats(ctx context.Context, m model.Match) {
	for pid, ms := range m.PlayerStats {
		p, err := s.players.GetByID(ctx, pid)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				s.log.Error().Err(err).Str("player_id", pid).Msg("load player for stat fold failed")
			}
			continue
		}

		matches := p.MatchesPlayed + 1
		runs := p.Runs + ms.Runs
		ballsFaced := p.BallsFaced + ms.BallsFaced
		fours := p.Fours + ms.Fours
		sixes := p.Sixes + ms.Sixes
		fifties := p.Fifties
		hundreds := p.Hundreds
		if ms.Runs >= 100 {
			hundreds++
		} else if ms.Runs >= 50 {
			fifties++
		}
		high := p.HighScore
		if ms.Runs > high {
			high = ms.Runs
		}
		wickets := p.Wickets + ms.Wickets
		ballsBowled := p.BallsBowled + ms.BallsBowled
		conceded := p.RunsConceded + ms.RunsConceded
		best := bestBowling(p.BestBowling, ms.Wickets, ms.RunsConceded)

		if _, err := s.players.Update(ctx, pid, model.PlayerUpdate{
			MatchesPlayed: &matches,
			Runs:          &runs,
			BallsFaced:    &ballsFaced,
			Fours:         &fours,
			Sixes:         &sixes,
			Fifties:       &fifties,
			Hundreds:      &hundreds,
			HighScore:     &high,
			Wickets:       &wickets,
			BallsBowled:   &ballsBowled,
			RunsConceded:  &conceded,
			BestBowling:   &best,
		}); err != nil {
			s.log.Error().Err(err).Str("player_id", pid).Msg("fold player stats failed")
		}
	}
}

// bestBowling keeps the better of the career figure and this match's figure:
// more wickets wins, equal wickets prefer fewer runs conceded.
func bestBowling(current string, wickets, conceded int) string {
	var cw, cr int
	if _, err := fmt.Sscanf(current, "%d/%d", &cw, &cr); err != nil {
		cw, cr = 0, 0
	}
	if wickets > cw || (wickets == cw && wickets > 0 && conceded < cr) {
		return fmt.Sprintf("%d/%d", wickets, conceded)
	}
	if current == "" {
		return "0/0"
	}
	return current
}

// updateTeamRecords bumps matches/wins/losses on both sides of the fixture.
func (s *matchService) updateTeamRecords(ctx context.Context, m model.Match, winner string) {
	for _, teamID := range []string{m.Team1ID, m.Team2ID} {
		t, err := s.teams.GetByID(ctx, teamID)
		if err != nil {
			s.log.Error().Err(err).Str("team_id", teamID).Msg("load team for record update failed")
			continue
		}
		matches := t.Matches + 1
		wins := t.Wins
		losses := t.Losses
		if winner == teamID {
			wins++
		} else if winner != "" {
			losses++
		}
		if _, err := s.teams.Update(ctx, teamID, model.TeamUpdate{
			Matches: &matches,
			Wins:    &wins,
			Losses:  &losses,
		}); err != nil {
			s.log.Error().Err(err).Str("team_id", teamID).Msg("update team record failed")
		}
	}
}
