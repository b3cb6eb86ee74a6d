package service

import (
	"context"
	"errors"

	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// UserService exposes account lookup and self-service deletion.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID returns the user with id or ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the account with id on behalf of caller. Only the account
// owner may delete it; anyone else gets ErrNotAccountOwner.
func (s *UserService) Delete(ctx context.Context, caller model.Identity, id int64) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Email != caller.Email {
		return ErrNotAccountOwner
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	logging.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}
