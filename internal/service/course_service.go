package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

type CourseService interface {
	Get(ctx context.Context, id int) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) Get(ctx context.Context, id int) (*model.Course, error) {
	c, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.ListCourses(ctx)
}
