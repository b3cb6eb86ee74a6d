package service

import (
	"context"
	"errors"

	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// UserStore is the credential store the services depend on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// IdentityService resolves the identity of an authenticated caller.
type IdentityService struct {
	users UserStore
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(users UserStore) *IdentityService {
	return &IdentityService{users: users}
}

// LoadByEmail loads the user registered with email as an Identity. A missing
// user yields *UserNotFoundError.
func (s *IdentityService) LoadByEmail(ctx context.Context, email string) (model.Identity, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Identity{}, &UserNotFoundError{Email: email}
		}
		return model.Identity{}, err
	}

	return model.NewIdentity(user), nil
}
