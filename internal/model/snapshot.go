package model

// SnapshotVersion tags the portable backup format.
const SnapshotVersion = "1.0.0"

// Snapshot is the portable point-in-time export of all collections, used for
// file backups and startup reconciliation. Only the presence of the three
// collections is validated on import; record-level problems surface as
// per-record import errors.
type Snapshot struct {
	Teams      []Team   `json:"teams" validate:"required"`
	Players    []Player `json:"players" validate:"required"`
	Matches    []Match  `json:"matches" validate:"required"`
	ExportDate string   `json:"exportDate"` // RFC 3339
	Version    string   `json:"version"`
}
