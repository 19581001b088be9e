// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Match status lifecycle values.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Team represents a cricket team.
// PlayerIDs is denormalized (each Player also carries TeamID); kept because the
// exported snapshot shape includes it.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"shortName"`
	PlayerIDs []string  `json:"players"`
	Matches   int       `json:"matches"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	CreatedAt time.Time `json:"createdAt"`
}

// Player represents a squad member with cumulative career counters.
// TeamID is empty for unassigned players.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"` // batsman, bowler, all-rounder, wicket-keeper
	TeamID string `json:"teamId,omitempty"`

	// Batting career counters.
	MatchesPlayed int `json:"matches"`
	Runs          int `json:"runs"`
	BallsFaced    int `json:"ballsFaced"`
	Fours         int `json:"fours"`
	Sixes         int `json:"sixes"`
	Fifties       int `json:"fifties"`
	Hundreds      int `json:"hundreds"`
	HighScore     int `json:"highScore"`

	// Bowling career counters.
	Wickets      int    `json:"wickets"`
	BallsBowled  int    `json:"ballsBowled"`
	RunsConceded int    `json:"runsConceded"`
	Maidens      int    `json:"maidens"`
	BestBowling  string `json:"bestBowling"` // "wickets/runs"

	CreatedAt time.Time `json:"createdAt"`
}

// Match represents a scheduled, live or finished fixture.
// Overs are encoded as a decimal where the integer part is completed overs and
// the tenths digit is legal balls into the current over (3.4 = 3 overs, 4 balls).
type Match struct {
	ID        string    `json:"id"`
	Team1ID   string    `json:"team1Id"`
	Team2ID   string    `json:"team2Id"`
	Team1Name string    `json:"team1Name"`
	Team2Name string    `json:"team2Name"`
	Format    string    `json:"format"` // T20, ODI, Test
	Venue     string    `json:"venue,omitempty"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	TossWinner   string `json:"tossWinner,omitempty"`
	TossDecision string `json:"tossDecision,omitempty"` // bat, bowl

	Team1Score   int     `json:"team1Score"`
	Team1Wickets int     `json:"team1Wickets"`
	Team1Overs   float64 `json:"team1Overs"`
	Team2Score   int     `json:"team2Score"`
	Team2Wickets int     `json:"team2Wickets"`
	Team2Overs   float64 `json:"team2Overs"`

	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`

	CurrentInnings int    `json:"currentInnings"` // 1 or 2
	BattingTeam    string `json:"battingTeam,omitempty"`
	BowlingTeam    string `json:"bowlingTeam,omitempty"`

	CurrentBatsman1 string `json:"currentBatsman1,omitempty"`
	CurrentBatsman2 string `json:"currentBatsman2,omitempty"`
	CurrentBowler   string `json:"currentBowler,omitempty"`
	OnStrike        string `json:"onStrike,omitempty"`

	BallByBall  []BallEvent                 `json:"ballByBall"`
	PlayerStats map[string]PlayerMatchStats `json:"playerStats"`

	CreatedAt time.Time `json:"createdAt"`
}

// PlayerMatchStats accumulates a single player's contribution within one match,
// keyed by player id on the match. Folded into Player career counters when the
// match completes.
type PlayerMatchStats struct {
	Runs         int `json:"runs"`
	BallsFaced   int `json:"ballsFaced"`
	Fours        int `json:"fours"`
	Sixes        int `json:"sixes"`
	Wickets      int `json:"wickets"`
	BallsBowled  int `json:"ballsBowled"`
	RunsConceded int `json:"runsConceded"`
}
