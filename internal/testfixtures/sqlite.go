package testfixtures

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// SQLiteHarness provides repositories backed by a temporary, fully migrated
// SQLite database.
type SQLiteHarness struct {
	DB       *sql.DB
	Users    *repository.UserRepository
	Teachers *repository.TeacherRepository
	Sessions *repository.SessionRepository
}

// NewSQLiteHarness opens a database file under tb.TempDir, applies the embedded
// migrations and registers a cleanup that closes it.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "yoga.db")
	db, err := repository.Open(repository.DriverSQLite, "file:"+path)
	if err != nil {
		tb.Fatalf("failed to open database: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })

	if err := repository.Migrate(db, repository.DriverSQLite); err != nil {
		tb.Fatalf("failed to migrate database: %v", err)
	}

	return &SQLiteHarness{
		DB:       db,
		Users:    repository.NewUserRepository(db),
		Teachers: repository.NewTeacherRepository(db),
		Sessions: repository.NewSessionRepository(db),
	}
}

// CreateUser stores a user with the given email and a placeholder hash.
func (h *SQLiteHarness) CreateUser(tb testing.TB, email string) *model.User {
	tb.Helper()

	u := &model.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
	}
	if err := h.Users.Create(context.Background(), u); err != nil {
		tb.Fatalf("failed to create user %s: %v", email, err)
	}
	return u
}

// CreateSession stores a session taught by teacherID (0 for none).
func (h *SQLiteHarness) CreateSession(tb testing.TB, name string, teacherID int64, participants ...model.User) *model.Session {
	tb.Helper()

	s := &model.Session{
		Name:         name,
		Date:         ReferenceTime(),
		Description:  "A relaxing yoga session",
		Participants: participants,
	}
	if teacherID != 0 {
		s.Teacher = &model.Teacher{ID: teacherID}
	}
	if err := h.Sessions.Create(context.Background(), s); err != nil {
		tb.Fatalf("failed to create session %s: %v", name, err)
	}
	return s
}

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical session date used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}
