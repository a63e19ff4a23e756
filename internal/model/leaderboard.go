package model

// LeaderboardEntry is a read-only ranking row shown on the learner
// dashboard.
type LeaderboardEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Points int    `json:"points"`
}
