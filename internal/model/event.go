package model

import "time"

// Ball event kinds. Every entry appended to a match's ball-by-ball log carries
// exactly one of these tags.
const (
	EventRun    = "run"
	EventExtra  = "extra"
	EventWicket = "wicket"
)

// Extra delivery types. Wides and no-balls do not count as legal deliveries;
// byes and leg-byes do.
const (
	ExtraWide   = "wide"
	ExtraNoBall = "no_ball"
	ExtraBye    = "bye"
	ExtraLegBye = "leg_bye"
)

// BallEvent is one entry in a match's ball-by-ball log.
// Kind selects the variant: a run event carries Runs, an extra event carries
// ExtraType (and optionally Runs), a wicket event carries DismissalType.
type BallEvent struct {
	Kind          string    `json:"kind"`
	Innings       int       `json:"innings"`
	Over          int       `json:"over"` // completed overs before this delivery
	Ball          int       `json:"ball"` // legal balls into the over, 1-6; 0 for wides/no-balls
	Runs          int       `json:"runs"`
	ExtraType     string    `json:"extraType,omitempty"`
	DismissalType string    `json:"dismissalType,omitempty"` // bowled, caught, lbw, run_out, stumped
	BatsmanID     string    `json:"batsmanId,omitempty"`
	BowlerID      string    `json:"bowlerId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Legal reports whether the delivery counts toward the over.
func (e BallEvent) Legal() bool {
	return e.ExtraType != ExtraWide && e.ExtraType != ExtraNoBall
}
