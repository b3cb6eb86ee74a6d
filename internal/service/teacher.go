package service

import (
	"context"
	"errors"

	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// TeacherStore reads teachers.
type TeacherStore interface {
	List(ctx context.Context) ([]model.Teacher, error)
	GetByID(ctx context.Context, id int64) (*model.Teacher, error)
}

// TeacherService exposes the read-only teacher directory.
type TeacherService struct {
	teachers TeacherStore
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teachers TeacherStore) *TeacherService {
	return &TeacherService{teachers: teachers}
}

// FindAll returns every teacher ordered by id.
func (s *TeacherService) FindAll(ctx context.Context) ([]model.Teacher, error) {
	return s.teachers.List(ctx)
}

// GetByID returns the teacher with id or ErrTeacherNotFound.
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return teacher, nil
}
