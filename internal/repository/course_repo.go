package repository

import (
	"context"

	"app/internal/model"
)

type CourseRepository interface {
	GetCourseByID(ctx context.Context, id int) (*model.Course, error)
	ListCourses(ctx context.Context) ([]model.Course, error)
	CountCourses(ctx context.Context) (int, error)
}

type courseRepo struct {
	db *DB
}

func NewCourseRepo(db *DB) CourseRepository {
	return &courseRepo{db: db}
}

// cloneCourse copies the course including its module, question and
// option slices, so callers never alias store memory.
func cloneCourse(c *model.Course) model.Course {
	out := *c
	out.Modules = make([]model.Module, len(c.Modules))
	copy(out.Modules, c.Modules)
	for i := range out.Modules {
		m := &out.Modules[i]
		if m.Questions == nil {
			continue
		}
		qs := make([]model.Question, len(m.Questions))
		copy(qs, m.Questions)
		for j := range qs {
			opts := make([]string, len(qs[j].Options))
			copy(opts, qs[j].Options)
			qs[j].Options = opts
		}
		m.Questions = qs
	}
	return out
}

func (r *courseRepo) GetCourseByID(ctx context.Context, id int) (*model.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for i := range r.db.courses {
		if r.db.courses[i].ID == id {
			c := cloneCourse(&r.db.courses[i])
			return &c, nil
		}
	}
	return nil, nil
}

func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.Course, len(r.db.courses))
	for i := range r.db.courses {
		out[i] = cloneCourse(&r.db.courses[i])
	}
	return out, nil
}

func (r *courseRepo) CountCourses(ctx context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return len(r.db.courses), nil
}
