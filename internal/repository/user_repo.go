package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/model"
)

// ErrDuplicateEmail is returned by CreateUser when another account
// already holds the email, compared case-insensitively.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	// CreateUser assigns a fresh id and appends. The duplicate-email
	// check runs under the same write lock as the insert, so two
	// concurrent creates with the same email cannot both succeed. A user
	// without an avatar gets one derived from the assigned id.
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateUserWith applies fn to the record with the given id under
	// the write lock and commits the result, so concurrent mutations
	// cannot drop one another's fields. fn receives a copy; an error
	// from fn aborts the update with nothing mutated. Returns nil when
	// no record matches.
	UpdateUserWith(ctx context.Context, id int, fn func(u *model.User) error) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CountUsersByRole(ctx context.Context) (map[model.Role]int, error)
}

type userRepo struct {
	db *DB
}

func NewUserRepo(db *DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if strings.EqualFold(r.db.users[i].Email, u.Email) {
			return nil, ErrDuplicateEmail
		}
	}

	u.ID = r.db.nextUserID
	r.db.nextUserID++
	if u.Avatar == "" {
		u.Avatar = model.AvatarURL(u.ID)
	}
	r.db.users = append(r.db.users, *u)
	created := *u
	return &created, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.users {
		if r.db.users[i].ID == id {
			u := r.db.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.users {
		if strings.EqualFold(r.db.users[i].Email, email) {
			u := r.db.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) UpdateUserWith(ctx context.Context, id int, fn func(u *model.User) error) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].ID == id {
			u := r.db.users[i]
			if err := fn(&u); err != nil {
				return nil, err
			}
			r.db.users[i] = u
			updated := u
			return &updated, nil
		}
	}
	return nil, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.User, len(r.db.users))
	copy(out, r.db.users)
	return out, nil
}

func (r *userRepo) CountUsersByRole(ctx context.Context) (map[model.Role]int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[model.Role]int)
	for i := range r.db.users {
		counts[r.db.users[i].Role]++
	}
	return counts, nil
}
