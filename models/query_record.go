package models

import "time"

// QueryRecord is one saved analysis result. Records are append-only: they are
// never updated or deleted once written.
type QueryRecord struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	QueryText        string     `json:"query"`
	MatchedActions   StringList `json:"actions"`
	MatchedProofs    StringList `json:"proofs"`
	WinEstimate      int        `json:"win"`
	StatuteReference string     `json:"statute"`
	CreatedAt        time.Time  `json:"created_at"`
}
