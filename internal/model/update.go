package model

// Partial-update carriers for PATCH semantics: nil fields are left untouched,
// non-nil fields overwrite (last write wins). Repositories apply the merge.

// TeamUpdate patches a stored Team.
type TeamUpdate struct {
	Name      *string   `json:"name,omitempty"`
	ShortName *string   `json:"shortName,omitempty"`
	PlayerIDs *[]string `json:"players,omitempty"`
	Matches   *int      `json:"matches,omitempty"`
	Wins      *int      `json:"wins,omitempty"`
	Losses    *int      `json:"losses,omitempty"`
}

// PlayerUpdate patches a stored Player.
type PlayerUpdate struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	TeamID *string `json:"teamId,omitempty"`

	MatchesPlayed *int `json:"matches,omitempty"`
	Runs          *int `json:"runs,omitempty"`
	BallsFaced    *int `json:"ballsFaced,omitempty"`
	Fours         *int `json:"fours,omitempty"`
	Sixes         *int `json:"sixes,omitempty"`
	Fifties       *int `json:"fifties,omitempty"`
	Hundreds      *int `json:"hundreds,omitempty"`
	HighScore     *int `json:"highScore,omitempty"`

	Wickets      *int    `json:"wickets,omitempty"`
	BallsBowled  *int    `json:"ballsBowled,omitempty"`
	RunsConceded *int    `json:"runsConceded,omitempty"`
	Maidens      *int    `json:"maidens,omitempty"`
	BestBowling  *string `json:"bestBowling,omitempty"`
}

// MatchUpdate patches a stored Match. Live score increments from the client
// arrive through this shape.
type MatchUpdate struct {
	Venue        *string `json:"venue,omitempty"`
	Status       *string `json:"status,omitempty"`
	TossWinner   *string `json:"tossWinner,omitempty"`
	TossDecision *string `json:"tossDecision,omitempty"`

	Team1Score   *int     `json:"team1Score,omitempty"`
	Team1Wickets *int     `json:"team1Wickets,omitempty"`
	Team1Overs   *float64 `json:"team1Overs,omitempty"`
	Team2Score   *int     `json:"team2Score,omitempty"`
	Team2Wickets *int     `json:"team2Wickets,omitempty"`
	Team2Overs   *float64 `json:"team2Overs,omitempty"`

	Winner *string `json:"winner,omitempty"`
	Result *string `json:"result,omitempty"`

	CurrentInnings *int    `json:"currentInnings,omitempty"`
	BattingTeam    *string `json:"battingTeam,omitempty"`
	BowlingTeam    *string `json:"bowlingTeam,omitempty"`

	CurrentBatsman1 *string `json:"currentBatsman1,omitempty"`
	CurrentBatsman2 *string `json:"currentBatsman2,omitempty"`
	CurrentBowler   *string `json:"currentBowler,omitempty"`
	OnStrike        *string `json:"onStrike,omitempty"`

	BallByBall  *[]BallEvent                 `json:"ballByBall,omitempty"`
	PlayerStats *map[string]PlayerMatchStats `json:"playerStats,omitempty"`
}
