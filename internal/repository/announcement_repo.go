package repository

import (
	"context"

	"app/internal/model"
)

type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, a *model.Announcement) (*model.Announcement, error)
	// UpdateAnnouncement fully overwrites the record with a.ID. Returns
	// nil when no record matches.
	UpdateAnnouncement(ctx context.Context, a *model.Announcement) (*model.Announcement, error)
	// DeleteAnnouncement reports whether a record was removed.
	DeleteAnnouncement(ctx context.Context, id int) (bool, error)
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	CountAnnouncements(ctx context.Context) (int, error)
}

type announcementRepo struct {
	db *DB
}

func NewAnnouncementRepo(db *DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) CreateAnnouncement(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := r.db.appendAnnouncement(a)
	return created, nil
}

// appendAnnouncement assigns a fresh id and appends. Caller must hold
// the write lock.
func (db *DB) appendAnnouncement(a *model.Announcement) *model.Announcement {
	a.ID = db.nextAnnouncementID
	db.nextAnnouncementID++
	db.announcements = append(db.announcements, *a)
	created := *a
	return &created
}

func (r *announcementRepo) UpdateAnnouncement(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.announcements {
		if r.db.announcements[i].ID == a.ID {
			r.db.announcements[i] = *a
			updated := r.db.announcements[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (r *announcementRepo) DeleteAnnouncement(ctx context.Context, id int) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.announcements {
		if r.db.announcements[i].ID == id {
			r.db.announcements = append(r.db.announcements[:i], r.db.announcements[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *announcementRepo) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.Announcement, len(r.db.announcements))
	copy(out, r.db.announcements)
	return out, nil
}

func (r *announcementRepo) CountAnnouncements(ctx context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return len(r.db.announcements), nil
}
