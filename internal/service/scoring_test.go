package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
)

type fixture struct {
	teams   service.TeamService
	players service.PlayerService
	matches service.MatchService

	alpha, beta model.Team
	match       model.Match
}

// liveMatch builds two teams and a started T20 match where Beta won the toss
// and chose to bat, so Beta's score moves first.
func liveMatch(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	teamSvc, playerSvc, matchSvc := newServices(t)

	alpha, err := teamSvc.CreateTeam(ctx, "Alpha", "ALP")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	beta, err := teamSvc.CreateTeam(ctx, "Beta", "BET")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	m, err := matchSvc.CreateMatch(ctx, service.CreateMatchInput{
		Team1ID:      alpha.ID,
		Team2ID:      beta.ID,
		Format:       "T20",
		TossWinner:   beta.ID,
		TossDecision: "bat",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	m, err = matchSvc.StartMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	return &fixture{teams: teamSvc, players: playerSvc, matches: matchSvc, alpha: alpha, beta: beta, match: m}
}

func TestStartMatch_TossDecidesBattingSide(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		decision   string
		wantTeam2  bool
		tossWinner bool // toss goes to team2 when true
	}{
		{"winner bats", "bat", true, true},
		{"winner bowls", "bowl", false, true},
		{"no toss defaults to team1", "", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			teamSvc, _, matchSvc := newServices(t)
			alpha, _ := teamSvc.CreateTeam(ctx, "Alpha", "ALP")
			beta, _ := teamSvc.CreateTeam(ctx, "Beta", "BET")
			in := service.CreateMatchInput{Team1ID: alpha.ID, Team2ID: beta.ID, Format: "T20"}
			if tc.tossWinner {
				in.TossWinner = beta.ID
				in.TossDecision = tc.decision
			}
			m, err := matchSvc.CreateMatch(ctx, in)
			if err != nil {
				t.Fatalf("create match: %v", err)
			}
			m, err = matchSvc.StartMatch(ctx, m.ID)
			if err != nil {
				t.Fatalf("start match: %v", err)
			}
			if m.Status != model.StatusInProgress || m.CurrentInnings != 1 {
				t.Fatalf("expected live first innings, got %q innings %d", m.Status, m.CurrentInnings)
			}
			want := alpha.ID
			if tc.wantTeam2 {
				want = beta.ID
			}
			if m.BattingTeam != want {
				t.Fatalf("expected batting team %s, got %s", want, m.BattingTeam)
			}
		})
	}
}

func TestStartMatch_AlreadyStartedConflicts(t *testing.T) {
	fx := liveMatch(t)
	if _, err := fx.matches.StartMatch(context.Background(), fx.match.ID); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRecordBall_RunsAccumulateOnBattingSide(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	var m model.Match
	var err error
	for _, runs := range []int{4, 1, 6} {
		m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: runs})
		if err != nil {
			t.Fatalf("record ball: %v", err)
		}
	}

	// Beta bats first, so team2's slot moves and team1's stays untouched.
	if m.Team2Score != 11 {
		t.Fatalf("expected team2 score 11, got %d", m.Team2Score)
	}
	if m.Team2Overs != 0.3 {
		t.Fatalf("expected 0.3 overs, got %v", m.Team2Overs)
	}
	if m.Team1Score != 0 || m.Team1Overs != 0 {
		t.Fatalf("team1 slot must not move, got score=%d overs=%v", m.Team1Score, m.Team1Overs)
	}
	if len(m.BallByBall) != 3 {
		t.Fatalf("expected 3 events in the log, got %d", len(m.BallByBall))
	}
}

func TestRecordBall_WideDoesNotConsumeABall(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	m, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventExtra, ExtraType: model.ExtraWide, Runs: 1})
	if err != nil {
		t.Fatalf("record wide: %v", err)
	}
	if m.Team2Score != 1 {
		t.Fatalf("expected score 1, got %d", m.Team2Score)
	}
	if m.Team2Overs != 0 {
		t.Fatalf("wide must not advance the over, got %v", m.Team2Overs)
	}

	m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventExtra, ExtraType: model.ExtraNoBall, Runs: 2})
	if err != nil {
		t.Fatalf("record no ball: %v", err)
	}
	if m.Team2Score != 3 || m.Team2Overs != 0 {
		t.Fatalf("no ball must score without consuming, got score=%d overs=%v", m.Team2Score, m.Team2Overs)
	}

	m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventExtra, ExtraType: model.ExtraBye, Runs: 1})
	if err != nil {
		t.Fatalf("record bye: %v", err)
	}
	if m.Team2Score != 4 || m.Team2Overs != 0.1 {
		t.Fatalf("bye is a legal delivery, got score=%d overs=%v", m.Team2Score, m.Team2Overs)
	}
}

func TestRecordBall_OverRollsAtSixLegalBalls(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	var m model.Match
	var err error
	for i := 0; i < 5; i++ {
		if m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: 0}); err != nil {
			t.Fatalf("record ball: %v", err)
		}
	}
	// A wide in the middle of the over must not bring the roll closer.
	if m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventExtra, ExtraType: model.ExtraWide, Runs: 1}); err != nil {
		t.Fatalf("record wide: %v", err)
	}
	if m.Team2Overs != 0.5 {
		t.Fatalf("expected 0.5 overs before the final ball, got %v", m.Team2Overs)
	}
	if m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: 1}); err != nil {
		t.Fatalf("record ball: %v", err)
	}
	if m.Team2Overs != 1.0 {
		t.Fatalf("expected the over to roll to 1.0, got %v", m.Team2Overs)
	}
}

func TestRecordBall_WicketAndPlayerStats(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	striker, err := fx.players.CreatePlayer(ctx, "Beta Opener", "batsman", fx.beta.ID)
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	bowler, err := fx.players.CreatePlayer(ctx, "Alpha Quick", "bowler", fx.alpha.ID)
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	if _, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{
		Kind: model.EventRun, Runs: 4, BatsmanID: striker.ID, BowlerID: bowler.ID,
	}); err != nil {
		t.Fatalf("record boundary: %v", err)
	}
	m, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{
		Kind: model.EventWicket, DismissalType: "bowled", BatsmanID: striker.ID, BowlerID: bowler.ID,
	})
	if err != nil {
		t.Fatalf("record wicket: %v", err)
	}

	if m.Team2Wickets != 1 {
		t.Fatalf("expected 1 wicket, got %d", m.Team2Wickets)
	}
	bs := m.PlayerStats[striker.ID]
	if bs.Runs != 4 || bs.Fours != 1 || bs.BallsFaced != 2 {
		t.Fatalf("unexpected batsman stats: %+v", bs)
	}
	bw := m.PlayerStats[bowler.ID]
	if bw.Wickets != 1 || bw.BallsBowled != 2 || bw.RunsConceded != 4 {
		t.Fatalf("unexpected bowler stats: %+v", bw)
	}
}

func TestRecordBall_RunOutNotCreditedToBowler(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	bowler, err := fx.players.CreatePlayer(ctx, "Alpha Quick", "bowler", fx.alpha.ID)
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	m, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{
		Kind: model.EventWicket, DismissalType: "run_out", Runs: 1, BowlerID: bowler.ID,
	})
	if err != nil {
		t.Fatalf("record run out: %v", err)
	}
	if m.Team2Wickets != 1 {
		t.Fatalf("expected 1 wicket, got %d", m.Team2Wickets)
	}
	if got := m.PlayerStats[bowler.ID].Wickets; got != 0 {
		t.Fatalf("run out must not credit the bowler, got %d", got)
	}
}

func TestRecordBall_StrikeRotation(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	b1, _ := fx.players.CreatePlayer(ctx, "Beta One", "batsman", fx.beta.ID)
	b2, _ := fx.players.CreatePlayer(ctx, "Beta Two", "batsman", fx.beta.ID)
	if _, err := fx.matches.UpdateMatch(ctx, fx.match.ID, model.MatchUpdate{
		CurrentBatsman1: &b1.ID,
		CurrentBatsman2: &b2.ID,
		OnStrike:        &b1.ID,
	}); err != nil {
		t.Fatalf("seat batsmen: %v", err)
	}

	m, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: 1})
	if err != nil {
		t.Fatalf("record single: %v", err)
	}
	if m.OnStrike != b2.ID {
		t.Fatalf("single must swap the striker, got %s", m.OnStrike)
	}
	m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: 4})
	if err != nil {
		t.Fatalf("record boundary: %v", err)
	}
	if m.OnStrike != b2.ID {
		t.Fatalf("boundary must keep the striker, got %s", m.OnStrike)
	}
}

func TestRecordBall_Validation(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   service.BallInput
	}{
		{"unknown kind", service.BallInput{Kind: "six"}},
		{"run out of range", service.BallInput{Kind: model.EventRun, Runs: 7}},
		{"extra on run event", service.BallInput{Kind: model.EventRun, Runs: 1, ExtraType: model.ExtraWide}},
		{"unknown extra", service.BallInput{Kind: model.EventExtra, ExtraType: "overthrow"}},
		{"unknown dismissal", service.BallInput{Kind: model.EventWicket, DismissalType: "retired"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := fx.matches.RecordBall(ctx, fx.match.ID, tc.in); !errors.Is(err, service.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestRecordBall_NotLiveConflicts(t *testing.T) {
	ctx := context.Background()
	teamSvc, _, matchSvc := newServices(t)
	alpha, _ := teamSvc.CreateTeam(ctx, "Alpha", "ALP")
	beta, _ := teamSvc.CreateTeam(ctx, "Beta", "BET")
	m, err := matchSvc.CreateMatch(ctx, service.CreateMatchInput{Team1ID: alpha.ID, Team2ID: beta.ID, Format: "T20"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := matchSvc.RecordBall(ctx, m.ID, service.BallInput{Kind: model.EventRun, Runs: 1}); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected conflict on a not-started match, got %v", err)
	}
}

func TestSwitchInnings(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	if _, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: 4}); err != nil {
		t.Fatalf("record ball: %v", err)
	}
	m, err := fx.matches.SwitchInnings(ctx, fx.match.ID)
	if err != nil {
		t.Fatalf("switch innings: %v", err)
	}
	if m.CurrentInnings != 2 {
		t.Fatalf("expected innings 2, got %d", m.CurrentInnings)
	}
	if m.BattingTeam != fx.alpha.ID || m.BowlingTeam != fx.beta.ID {
		t.Fatalf("expected sides to swap, got batting=%s bowling=%s", m.BattingTeam, m.BowlingTeam)
	}
	if m.OnStrike != "" || m.CurrentBatsman1 != "" || m.CurrentBowler != "" {
		t.Fatal("expected live player markers to reset")
	}
	if len(m.BallByBall) != 1 {
		t.Fatalf("ball log must survive the switch, got %d events", len(m.BallByBall))
	}

	// Second-innings runs land on alpha's slot now.
	m, err = fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{Kind: model.EventRun, Runs: 2})
	if err != nil {
		t.Fatalf("record ball: %v", err)
	}
	if m.Team1Score != 2 || m.Team2Score != 4 {
		t.Fatalf("expected 2/4 split across sides, got %d/%d", m.Team1Score, m.Team2Score)
	}

	if _, err := fx.matches.SwitchInnings(ctx, fx.match.ID); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected conflict on a second switch, got %v", err)
	}
}

func TestCompleteMatch_Margins(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, fx *fixture, t1Score, t2Score, chasingWickets int, chasing string) {
		t.Helper()
		innings := 2
		upd := model.MatchUpdate{
			Team1Score:     &t1Score,
			Team2Score:     &t2Score,
			CurrentInnings: &innings,
			BattingTeam:    &chasing,
		}
		if chasing == fx.match.Team1ID {
			upd.Team1Wickets = &chasingWickets
		} else {
			upd.Team2Wickets = &chasingWickets
		}
		if _, err := fx.matches.UpdateMatch(ctx, fx.match.ID, upd); err != nil {
			t.Fatalf("seed score: %v", err)
		}
	}

	t.Run("chasing side wins by wickets", func(t *testing.T) {
		fx := liveMatch(t)
		// Alpha (team1) chases Beta's 100 and passes it three down.
		seed(t, fx, 105, 100, 3, fx.alpha.ID)
		m, err := fx.matches.CompleteMatch(ctx, fx.match.ID)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if m.Winner != fx.alpha.ID {
			t.Fatalf("expected alpha to win, got %s", m.Winner)
		}
		if m.Result != "Alpha won by 7 wickets" {
			t.Fatalf("unexpected result line: %q", m.Result)
		}
	})

	t.Run("defending side wins by runs", func(t *testing.T) {
		fx := liveMatch(t)
		// Alpha chases Beta's 130 and falls short.
		seed(t, fx, 100, 130, 8, fx.alpha.ID)
		m, err := fx.matches.CompleteMatch(ctx, fx.match.ID)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if m.Winner != fx.beta.ID {
			t.Fatalf("expected beta to win, got %s", m.Winner)
		}
		if m.Result != "Beta won by 30 runs" {
			t.Fatalf("unexpected result line: %q", m.Result)
		}
	})

	t.Run("tie", func(t *testing.T) {
		fx := liveMatch(t)
		seed(t, fx, 120, 120, 5, fx.alpha.ID)
		m, err := fx.matches.CompleteMatch(ctx, fx.match.ID)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if m.Winner != "" || m.Result != "Match tied" {
			t.Fatalf("expected a tie, got winner=%q result=%q", m.Winner, m.Result)
		}
	})
}

func TestCompleteMatch_FoldsStatsAndTeamRecords(t *testing.T) {
	fx := liveMatch(t)
	ctx := context.Background()

	striker, _ := fx.players.CreatePlayer(ctx, "Beta Opener", "batsman", fx.beta.ID)
	bowler, _ := fx.players.CreatePlayer(ctx, "Alpha Quick", "bowler", fx.alpha.ID)

	// 13 boundaries: 52 runs for the striker, all conceded by the bowler.
	for i := 0; i < 13; i++ {
		if _, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{
			Kind: model.EventRun, Runs: 4, BatsmanID: striker.ID, BowlerID: bowler.ID,
		}); err != nil {
			t.Fatalf("record ball: %v", err)
		}
	}
	if _, err := fx.matches.RecordBall(ctx, fx.match.ID, service.BallInput{
		Kind: model.EventWicket, DismissalType: "bowled", BatsmanID: striker.ID, BowlerID: bowler.ID,
	}); err != nil {
		t.Fatalf("record wicket: %v", err)
	}

	if _, err := fx.matches.CompleteMatch(ctx, fx.match.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	bat, err := fx.players.GetPlayer(ctx, striker.ID)
	if err != nil {
		t.Fatalf("get striker: %v", err)
	}
	if bat.MatchesPlayed != 1 || bat.Runs != 52 || bat.Fours != 13 || bat.Fifties != 1 || bat.HighScore != 52 {
		t.Fatalf("unexpected career batting counters: %+v", bat)
	}
	bowl, err := fx.players.GetPlayer(ctx, bowler.ID)
	if err != nil {
		t.Fatalf("get bowler: %v", err)
	}
	if bowl.Wickets != 1 || bowl.RunsConceded != 52 || bowl.BestBowling != "1/52" {
		t.Fatalf("unexpected career bowling counters: %+v", bowl)
	}

	// Beta batted the only innings, so Beta wins by runs and both records bump.
	alpha, _ := fx.teams.GetTeam(ctx, fx.alpha.ID)
	beta, _ := fx.teams.GetTeam(ctx, fx.beta.ID)
	if beta.Matches != 1 || beta.Wins != 1 || beta.Losses != 0 {
		t.Fatalf("unexpected beta record: %+v", beta)
	}
	if alpha.Matches != 1 || alpha.Wins != 0 || alpha.Losses != 1 {
		t.Fatalf("unexpected alpha record: %+v", alpha)
	}

	if _, err := fx.matches.CompleteMatch(ctx, fx.match.ID); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected conflict on double completion, got %v", err)
	}
}
