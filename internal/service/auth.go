package service

import (
	"context"
	"errors"

	"github.com/yogastudio/yoga-api/internal/crypto"
	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// TokenIssuer signs authentication tokens.
type TokenIssuer interface {
	Issue(identity model.Identity) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// AuthService handles login and registration.
type AuthService struct {
	users      UserStore
	identities *IdentityService
	tokens     TokenIssuer
	hasher     PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, identities *IdentityService, tokens TokenIssuer, hasher PasswordHasher) *AuthService {
	return &AuthService{
		users:      users,
		identities: identities,
		tokens:     tokens,
		hasher:     hasher,
	}
}

// Authenticate verifies an email/password pair against the stored hash and
// returns the resolved identity. Unknown emails and wrong passwords both yield
// ErrBadCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (model.Identity, error) {
	identity, err := s.identities.LoadByEmail(ctx, email)
	if err != nil {
		var notFound *UserNotFoundError
		if errors.As(err, &notFound) {
			return model.Identity{}, ErrBadCredentials
		}
		return model.Identity{}, err
	}

	if err := s.hasher.Verify(password, identity.PasswordHash); err != nil {
		if !errors.Is(err, crypto.ErrMismatchedPassword) {
			logging.FromContext(ctx).Warn("stored password hash could not be verified", "user_id", identity.UserID, "error", err)
		}
		return model.Identity{}, ErrBadCredentials
	}

	return identity, nil
}

// Login authenticates the caller and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.JWTResponse, error) {
	if err := req.Validate(); err != nil {
		return model.JWTResponse{}, &ValidationError{Err: err}
	}

	identity, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return model.JWTResponse{}, err
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return model.JWTResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.JWTResponse{}, ErrBadCredentials
		}
		return model.JWTResponse{}, err
	}

	return model.JWTResponse{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Admin:     user.Admin,
	}, nil
}

// Register creates a new non-admin account. No token is issued.
func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (model.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return model.MessageResponse{}, &ValidationError{Err: err}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return model.MessageResponse{}, err
	}
	if exists {
		return model.MessageResponse{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.MessageResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Admin:        false,
	}
	if err := user.Validate(); err != nil {
		return model.MessageResponse{}, &ValidationError{Err: err}
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.MessageResponse{}, ErrEmailTaken
		}
		return model.MessageResponse{}, err
	}

	logging.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return model.MessageResponse{Message: "User registered successfully!"}, nil
}
