package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yogastudio/yoga-api/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionSelect = `SELECT s.id, s.name, s.date, s.description, s.created_at, s.updated_at,
		t.id, t.last_name, t.first_name, t.created_at, t.updated_at
	FROM sessions s LEFT JOIN teachers t ON t.id = s.teacher_id`

const participantSelect = `SELECT p.session_id,
		u.id, u.email, u.last_name, u.first_name, u.password, u.admin, u.created_at, u.updated_at
	FROM participate p JOIN users u ON u.id = p.user_id`

// SessionRepository persists sessions together with their participant set.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// List retrieves all sessions ordered by id, with teacher and participants loaded.
func (r *SessionRepository) List(ctx context.Context) ([]model.Session, error) {
	rows, err := r.db.QueryContext(ctx, sessionSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	participants, err := r.participants(ctx, participantSelect+` ORDER BY p.session_id, u.id`)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Participants = participants[sessions[i].ID]
	}

	return sessions, nil
}

// GetByID retrieves a session by ID with teacher and participants loaded.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx, sessionSelect+` WHERE s.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	participants, err := r.participants(ctx, participantSelect+` WHERE p.session_id = ? ORDER BY u.id`, id)
	if err != nil {
		return nil, err
	}
	s.Participants = participants[id]

	return s, nil
}

// Create inserts a session and its participants in one transaction, setting
// the generated ID and timestamps on the session struct.
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	result, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (name, date, description, teacher_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.Name, session.Date.UTC(), session.Description, teacherID(session), now, now,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if err := insertParticipants(ctx, tx, id, session.Participants); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	session.ID = id
	session.CreatedAt = now
	session.UpdatedAt = now
	return nil
}

// Save writes every field of an existing session and replaces its participant
// rows in one transaction. CreatedAt is never modified.
func (r *SessionRepository) Save(ctx context.Context, session *model.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	if _, err := tx.ExecContext(ctx,
		`UPDATE sessions SET name = ?, date = ?, description = ?, teacher_id = ?, updated_at = ? WHERE id = ?`,
		session.Name, session.Date.UTC(), session.Description, teacherID(session), now, session.ID,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM participate WHERE session_id = ?`, session.ID); err != nil {
		return err
	}
	if err := insertParticipants(ctx, tx, session.ID, session.Participants); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	session.UpdatedAt = now
	return nil
}

// Delete removes a session. Deleting a missing id is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

func (r *SessionRepository) participants(ctx context.Context, query string, args ...any) (map[int64][]model.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.User)
	for rows.Next() {
		var sessionID int64
		var u model.User
		if err := rows.Scan(
			&sessionID, &u.ID, &u.Email, &u.LastName, &u.FirstName,
			&u.PasswordHash, &u.Admin, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result[sessionID] = append(result[sessionID], u)
	}

	return result, rows.Err()
}

func insertParticipants(ctx context.Context, tx *sql.Tx, sessionID int64, users []model.User) error {
	seen := make(map[int64]bool, len(users))
	for _, u := range users {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO participate (session_id, user_id) VALUES (?, ?)`, sessionID, u.ID,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanSession(row rowScanner) (*model.Session, error) {
	var (
		s          model.Session
		tID        sql.NullInt64
		tLastName  sql.NullString
		tFirstName sql.NullString
		tCreatedAt sql.NullTime
		tUpdatedAt sql.NullTime
	)
	if err := row.Scan(
		&s.ID, &s.Name, &s.Date, &s.Description, &s.CreatedAt, &s.UpdatedAt,
		&tID, &tLastName, &tFirstName, &tCreatedAt, &tUpdatedAt,
	); err != nil {
		return nil, err
	}

	if tID.Valid {
		s.Teacher = &model.Teacher{
			ID:        tID.Int64,
			LastName:  tLastName.String,
			FirstName: tFirstName.String,
			CreatedAt: tCreatedAt.Time,
			UpdatedAt: tUpdatedAt.Time,
		}
	}

	return &s, nil
}

func teacherID(s *model.Session) sql.NullInt64 {
	if s.Teacher == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: s.Teacher.ID, Valid: true}
}
