package crypto

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenService issues and verifies HS512 signed tokens whose subject is the
// user's email. Tokens are stateless: validity is signature plus expiry.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. An expiry of zero yields tokens that
// are already expired when validated.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue creates a signed token for the given identity.
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(s.secret)
}

// Validate reports whether tokenString is well formed, correctly signed and
// not expired. The failure reason is logged and never returned.
func (s *TokenService) Validate(ctx context.Context, tokenString string) bool {
	logger := logging.FromContext(ctx)

	if tokenString == "" {
		logger.Debug("JWT claims string is empty")
		return false
	}

	if _, err := s.parse(tokenString); err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			logger.Debug("invalid JWT token", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			logger.Debug("invalid JWT signature", "error", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			logger.Debug("JWT token is expired", "error", err)
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			logger.Debug("JWT token is unsupported", "error", err)
		default:
			logger.Debug("JWT token rejected", "error", err)
		}
		return false
	}

	return true
}

// Subject returns the subject of a token that has passed Validate.
func (s *TokenService) Subject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// NumericDate has second precision, so a zero TTL can produce exp == now.
	if !claims.ExpiresAt.After(s.now()) {
		return nil, jwt.ErrTokenExpired
	}

	return claims, nil
}
