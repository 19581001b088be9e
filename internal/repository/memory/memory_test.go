package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
	"github.com/cricketpro/cricket-scoring-service/internal/repository"
	"github.com/cricketpro/cricket-scoring-service/internal/repository/memory"
)

func TestTeamRepository_CreateAndGet(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	created, err := store.Teams().Create(ctx, model.Team{Name: "Mumbai Indians", ShortName: "MI"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	got, err := store.Teams().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Mumbai Indians" || got.ShortName != "MI" {
		t.Fatalf("mismatch: %+v", got)
	}
}

func TestTeamRepository_CreateZeroesCounters(t *testing.T) {
	store := memory.NewStore()

	created, err := store.Teams().Create(context.Background(), model.Team{
		Name: "Chennai Super Kings", ShortName: "CSK",
		Matches: 9, Wins: 5, Losses: 4, PlayerIDs: []string{"ghost"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Matches != 0 || created.Wins != 0 || created.Losses != 0 || len(created.PlayerIDs) != 0 {
		t.Fatalf("expected zeroed record, got %+v", created)
	}
}

func TestTeamRepository_UniqueIDs(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		created, err := store.Teams().Create(ctx, model.Team{Name: "Team", ShortName: "T"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestTeamRepository_GetNotFound(t *testing.T) {
	store := memory.NewStore()
	if _, err := store.Teams().GetByID(context.Background(), "missing"); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamRepository_DeleteNotFound(t *testing.T) {
	store := memory.NewStore()
	if err := store.Teams().Delete(context.Background(), "missing"); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamRepository_UpdateMergesPartially(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	created, _ := store.Teams().Create(ctx, model.Team{Name: "Royal Challengers", ShortName: "RCB"})
	wins := 3
	updated, err := store.Teams().Update(ctx, created.ID, model.TeamUpdate{Wins: &wins})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Wins != 3 {
		t.Fatalf("expected wins=3, got %d", updated.Wins)
	}
	if updated.Name != "Royal Challengers" || updated.ShortName != "RCB" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestPlayerRepository_RosterMaintenance(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	team, _ := store.Teams().Create(ctx, model.Team{Name: "Knight Riders", ShortName: "KKR"})
	p, err := store.Players().Create(ctx, model.Player{Name: "A. Russell", Role: "all-rounder", TeamID: team.ID})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if p.BestBowling != "0/0" {
		t.Fatalf("expected default best bowling, got %q", p.BestBowling)
	}

	got, _ := store.Teams().GetByID(ctx, team.ID)
	if len(got.PlayerIDs) != 1 || got.PlayerIDs[0] != p.ID {
		t.Fatalf("expected roster to contain player, got %v", got.PlayerIDs)
	}

	if err := store.Players().Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete player failed: %v", err)
	}
	got, _ = store.Teams().GetByID(ctx, team.ID)
	if len(got.PlayerIDs) != 0 {
		t.Fatalf("expected empty roster after delete, got %v", got.PlayerIDs)
	}
}

func TestPlayerRepository_TeamlessPlayer(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	p, err := store.Players().Create(ctx, model.Player{Name: "Free Agent", Role: "batsman"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.TeamID != "" {
		t.Fatalf("expected no team, got %q", p.TeamID)
	}
	byTeam, _ := store.Players().ListByTeam(ctx, "any")
	if len(byTeam) != 0 {
		t.Fatalf("expected no players for unknown team, got %d", len(byTeam))
	}
}

func TestMatchRepository_CreateZeroesScores(t *testing.T) {
	store := memory.NewStore()

	created, err := store.Matches().Create(context.Background(), model.Match{
		Team1ID: "t1", Team2ID: "t2", Team1Name: "Alpha", Team2Name: "Beta", Format: "T20",
		Team1Score: 180, Team1Wickets: 4, Team1Overs: 20,
		Team2Score: 140, Team2Wickets: 7, Team2Overs: 18.3,
		Status: model.StatusCompleted, Winner: "t1", CurrentInnings: 2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Team1Score != 0 || created.Team1Wickets != 0 || created.Team1Overs != 0 ||
		created.Team2Score != 0 || created.Team2Wickets != 0 || created.Team2Overs != 0 {
		t.Fatalf("expected zeroed innings, got %+v", created)
	}
	if created.Status != model.StatusNotStarted || created.CurrentInnings != 1 || created.Winner != "" {
		t.Fatalf("expected fresh lifecycle state, got %+v", created)
	}
	if created.BallByBall == nil || created.PlayerStats == nil {
		t.Fatal("expected initialized log and stats map")
	}
}

func TestMatchRepository_ListSortedByDateDesc(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	old := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{mid, recent, old} {
		if _, err := store.Matches().Create(ctx, model.Match{Team1ID: "a", Team2ID: "b", Format: "T20", Date: d}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	matches, err := store.Matches().List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if !matches[0].Date.Equal(recent) || !matches[1].Date.Equal(mid) || !matches[2].Date.Equal(old) {
		t.Fatalf("wrong order: %v %v %v", matches[0].Date, matches[1].Date, matches[2].Date)
	}
}

func TestMatchRepository_ListByTeamMatchesEitherSide(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if _, err := store.Matches().Create(ctx, model.Match{Team1ID: "a", Team2ID: "b", Format: "T20"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Matches().Create(ctx, model.Match{Team1ID: "c", Team2ID: "a", Format: "ODI"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Matches().Create(ctx, model.Match{Team1ID: "c", Team2ID: "b", Format: "Test"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	forA, _ := store.Matches().ListByTeam(ctx, "a")
	if len(forA) != 2 {
		t.Fatalf("expected 2 matches for team a, got %d", len(forA))
	}
}

func TestMatchRepository_UpdateLastWriteWins(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	created, _ := store.Matches().Create(ctx, model.Match{Team1ID: "a", Team2ID: "b", Format: "T20"})
	first, second := 10, 14
	if _, err := store.Matches().Update(ctx, created.ID, model.MatchUpdate{Team1Score: &first}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := store.Matches().Update(ctx, created.ID, model.MatchUpdate{Team1Score: &second})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Team1Score != 14 {
		t.Fatalf("expected last write to win, got %d", got.Team1Score)
	}
}

func TestStore_Ping(t *testing.T) {
	store := memory.NewStore()
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Ping(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
