package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogastudio/yoga-api/internal/crypto"
	"github.com/yogastudio/yoga-api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	svc    *AuthService
	users  *fakeUsers
	tokens *crypto.TokenService
	issuer *countingIssuer
}

func newAuthFixture() authFixture {
	users := newFakeUsers()
	tokens := crypto.NewTokenService("test-secret", time.Hour)
	issuer := &countingIssuer{TokenIssuer: tokens}
	svc := NewAuthService(users, NewIdentityService(users), issuer, crypto.NewPasswordHasher(bcrypt.MinCost))
	return authFixture{svc: svc, users: users, tokens: tokens, issuer: issuer}
}

func signup(email string) model.SignupRequest {
	return model.SignupRequest{Email: email, FirstName: "Toto", LastName: "Toto", Password: "test!1234"}
}

func TestRegister(t *testing.T) {
	f := newAuthFixture()

	resp, err := f.svc.Register(context.Background(), signup("a@x.com"))

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully!", resp.Message)

	stored, err := f.users.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.False(t, stored.Admin)
	assert.NotEqual(t, "test!1234", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("test!1234")))
	assert.Zero(t, f.issuer.issued)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, signup("a@x.com"))
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, signup("a@x.com"))

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Error: Email is already taken!", Message(err))
	assert.Equal(t, 1, f.users.countEmail("a@x.com"))
}

func TestRegisterInvalid(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), model.SignupRequest{Email: "bad", Password: "pw"})

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, f.users.byID)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	_, err := f.svc.Register(ctx, signup("a@x.com"))
	require.NoError(t, err)

	resp, err := f.svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "test!1234"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.Type)
	assert.Equal(t, "a@x.com", resp.Username)
	assert.Equal(t, "Toto", resp.FirstName)
	assert.NotZero(t, resp.ID)
	assert.False(t, resp.Admin)
	require.True(t, f.tokens.Validate(ctx, resp.Token))
	subject, err := f.tokens.Subject(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	_, err := f.svc.Register(ctx, signup("a@x.com"))
	require.NoError(t, err)

	resp, err := f.svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, resp.Token)
	assert.Zero(t, f.issuer.issued)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Login(context.Background(), model.LoginRequest{Email: "nobody@x.com", Password: "test!1234"})

	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Zero(t, f.issuer.issued)
}

func TestLoginMissingFields(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Login(context.Background(), model.LoginRequest{})

	assert.ErrorIs(t, err, ErrBadRequest)
}
