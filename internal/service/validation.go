package service

import (
	"math"
	"strings"

	"github.com/cricketpro/cricket-scoring-service/internal/model"
)

func isValidRole(role string) bool {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "batsman", "bowler", "all-rounder", "wicket-keeper":
		return true
	default:
		return false
	}
}

func isValidFormat(format string) bool {
	switch strings.TrimSpace(format) {
	case "T20", "ODI", "Test":
		return true
	default:
		return false
	}
}

func isValidTossDecision(d string) bool {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "bat", "bowl":
		return true
	default:
		return false
	}
}

func isValidStatus(s string) bool {
	switch s {
	case model.StatusNotStarted, model.StatusInProgress, model.StatusCompleted:
		return true
	default:
		return false
	}
}

func isValidExtra(e string) bool {
	switch e {
	case model.ExtraWide, model.ExtraNoBall, model.ExtraBye, model.ExtraLegBye:
		return true
	default:
		return false
	}
}

func isValidDismissal(d string) bool {
	switch d {
	case "bowled", "caught", "lbw", "run_out", "stumped", "hit_wicket":
		return true
	default:
		return false
	}
}

// ballsFromOvers decodes the O.B overs encoding into total legal balls.
// 3.4 -> 22. The tenths digit is always 0-5 for well-formed values.
func ballsFromOvers(overs float64) int {
	whole := int(overs)
	balls := int(math.Round((overs - float64(whole)) * 10))
	return whole*6 + balls
}

// oversFromBalls encodes total legal balls into the O.B overs form. 22 -> 3.4.
func oversFromBalls(balls int) float64 {
	return float64(balls/6) + float64(balls%6)/10
}
