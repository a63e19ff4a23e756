package repository

import (
	"sync"

	"app/internal/model"
)

// DB is the process-wide in-memory store backing every repository. All
// collections live for the lifetime of the process; there is no
// persistence. A single RWMutex serializes writes so that multi-record
// mutations (quiz resubmission, schedule event plus its companion
// announcement) are atomic from the caller's perspective.
//
// DB is always an injected instance, never package state, so tests
// construct their own.
type DB struct {
	mu sync.RWMutex

	users         []model.User
	courses       []model.Course
	submissions   []model.QuizSubmission
	events        []model.ScheduleEvent
	announcements []model.Announcement
	messages      []model.Message
	transactions  []model.Transaction
	leaderboard   []model.LeaderboardEntry

	nextUserID         int
	nextSubmissionID   int
	nextEventID        int
	nextAnnouncementID int
	nextMessageID      int
	nextTransactionID  int
}

// NewDB returns an empty store. Collections are populated either by the
// seed loader or through repository writes.
func NewDB() *DB {
	return &DB{
		nextUserID:         1,
		nextSubmissionID:   1,
		nextEventID:        1,
		nextAnnouncementID: 1,
		nextMessageID:      1,
		nextTransactionID:  1,
	}
}

// bump raises an id counter so freshly assigned ids stay strictly
// greater than every seeded id.
func bump(counter *int, id int) {
	if id >= *counter {
		*counter = id + 1
	}
}

// Load replaces the store contents with the given dataset. Intended for
// startup seeding and test fixtures only.
func (db *DB) Load(users []model.User, courses []model.Course, announcements []model.Announcement,
	messages []model.Message, submissions []model.QuizSubmission, events []model.ScheduleEvent,
	transactions []model.Transaction, leaderboard []model.LeaderboardEntry) {

	db.mu.Lock()
	defer db.mu.Unlock()

	db.users = users
	db.courses = courses
	db.announcements = announcements
	db.messages = messages
	db.submissions = submissions
	db.events = events
	db.transactions = transactions
	db.leaderboard = leaderboard

	for i := range users {
		bump(&db.nextUserID, users[i].ID)
	}
	for i := range announcements {
		bump(&db.nextAnnouncementID, announcements[i].ID)
	}
	for i := range messages {
		bump(&db.nextMessageID, messages[i].ID)
	}
	for i := range submissions {
		bump(&db.nextSubmissionID, submissions[i].ID)
	}
	for i := range events {
		bump(&db.nextEventID, events[i].ID)
	}
	for i := range transactions {
		bump(&db.nextTransactionID, transactions[i].ID)
	}
}
