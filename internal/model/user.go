package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// User represents a user in the database.
type User struct {
	ID           int64
	Email        string
	LastName     string
	FirstName    string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the column constraints before the user is persisted.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email, validation.Required, validation.Length(0, 50), is.Email),
		validation.Field(&u.LastName, validation.Required, validation.Length(0, 20)),
		validation.Field(&u.FirstName, validation.Required, validation.Length(0, 20)),
		validation.Field(&u.PasswordHash, validation.Required, validation.Length(0, 120)),
	)
}

// Identity is the authenticated caller of a single request. It is built from a
// User on every authenticated request and never persisted.
type Identity struct {
	UserID       int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Admin        bool
}

// NewIdentity copies the user fields the authentication context needs.
func NewIdentity(u *User) Identity {
	return Identity{
		UserID:       u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		Admin:        u.Admin,
	}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// Validate checks the registration payload against the column limits.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(0, 50), is.Email),
		validation.Field(&r.FirstName, validation.Required, validation.Length(0, 20)),
		validation.Field(&r.LastName, validation.Required, validation.Length(0, 20)),
		validation.Field(&r.Password, validation.Required, validation.Length(0, 40)),
	)
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate requires both credentials.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// JWTResponse is returned by a successful login.
type JWTResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
