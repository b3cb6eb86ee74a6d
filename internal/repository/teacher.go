package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yogastudio/yoga-api/internal/model"
)

var ErrTeacherNotFound = errors.New("teacher not found")

// TeacherRepository reads teacher reference data.
type TeacherRepository struct {
	db *sql.DB
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(db *sql.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns every teacher ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, last_name, first_name, created_at, updated_at FROM teachers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.LastName, &t.FirstName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

// GetByID retrieves a teacher by their ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, last_name, first_name, created_at, updated_at FROM teachers WHERE id = ?`, id,
	).Scan(&t.ID, &t.LastName, &t.FirstName, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return t, nil
}
