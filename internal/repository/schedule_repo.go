package repository

import (
	"context"

	"app/internal/model"
)

type ScheduleRepository interface {
	// CreateEventWithAnnouncement appends a new schedule event and its
	// companion announcement under one write lock, so either both become
	// visible or neither does.
	CreateEventWithAnnouncement(ctx context.Context, e *model.ScheduleEvent, a *model.Announcement) (*model.ScheduleEvent, *model.Announcement, error)
	// UpdateEvent fully overwrites the record with e.ID. Returns nil
	// when no record matches. Updates never produce a companion
	// announcement.
	UpdateEvent(ctx context.Context, e *model.ScheduleEvent) (*model.ScheduleEvent, error)
	ListEvents(ctx context.Context) ([]model.ScheduleEvent, error)
	CountEvents(ctx context.Context) (int, error)
}

type scheduleRepo struct {
	db *DB
}

func NewScheduleRepo(db *DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) CreateEventWithAnnouncement(ctx context.Context, e *model.ScheduleEvent, a *model.Announcement) (*model.ScheduleEvent, *model.Announcement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	e.ID = r.db.nextEventID
	r.db.nextEventID++
	r.db.events = append(r.db.events, *e)
	created := *e

	companion := r.db.appendAnnouncement(a)
	return &created, companion, nil
}

func (r *scheduleRepo) UpdateEvent(ctx context.Context, e *model.ScheduleEvent) (*model.ScheduleEvent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.events {
		if r.db.events[i].ID == e.ID {
			r.db.events[i] = *e
			updated := r.db.events[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (r *scheduleRepo) ListEvents(ctx context.Context) ([]model.ScheduleEvent, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.ScheduleEvent, len(r.db.events))
	copy(out, r.db.events)
	return out, nil
}

func (r *scheduleRepo) CountEvents(ctx context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return len(r.db.events), nil
}
