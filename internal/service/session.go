package service

import (
	"context"
	"errors"

	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// SessionStore persists sessions together with their participant set.
type SessionStore interface {
	List(ctx context.Context) ([]model.Session, error)
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
}

// SessionService handles session CRUD and participation.
type SessionService struct {
	sessions SessionStore
	users    UserStore
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions SessionStore, users UserStore) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// FindAll returns every session.
func (s *SessionService) FindAll(ctx context.Context) ([]model.Session, error) {
	return s.sessions.List(ctx)
}

// GetByID returns the session with id or ErrSessionNotFound.
func (s *SessionService) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Create stores a new session.
func (s *SessionService) Create(ctx context.Context, session *model.Session) (*model.Session, error) {
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("session created", "session_id", session.ID)
	return session, nil
}

// Update replaces the session with id by session, keeping its creation time.
func (s *SessionService) Update(ctx context.Context, id int64, session *model.Session) (*model.Session, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session.ID = id
	session.CreatedAt = existing.CreatedAt
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("session updated", "session_id", id)
	return session, nil
}

// Delete removes the session with id.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.sessions.Delete(ctx, id)
}

// Participate adds the user to the session's participants. Joining twice
// yields ErrAlreadyParticipating and leaves the session untouched.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if session.HasParticipant(user.ID) {
		return ErrAlreadyParticipating
	}

	session.Participants = append(session.Participants, *user)
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("user joined session", "session_id", sessionID, "user_id", userID)
	return nil
}

// NoLongerParticipate removes the user from the session's participants.
// Leaving a session the user never joined yields ErrNotParticipating.
func (s *SessionService) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if !session.HasParticipant(userID) {
		return ErrNotParticipating
	}

	remaining := make([]model.User, 0, len(session.Participants)-1)
	for _, u := range session.Participants {
		if u.ID != userID {
			remaining = append(remaining, u)
		}
	}
	session.Participants = remaining

	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("user left session", "session_id", sessionID, "user_id", userID)
	return nil
}
