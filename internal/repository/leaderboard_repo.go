package repository

import (
	"context"
	"sort"

	"app/internal/model"
)

type LeaderboardRepository interface {
	// ListLeaderboard returns entries sorted by points descending.
	ListLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

type leaderboardRepo struct {
	db *DB
}

func NewLeaderboardRepo(db *DB) LeaderboardRepository {
	return &leaderboardRepo{db: db}
}

func (r *leaderboardRepo) ListLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.LeaderboardEntry, len(r.db.leaderboard))
	copy(out, r.db.leaderboard)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out, nil
}
