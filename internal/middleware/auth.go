package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

const bearerPrefix = "Bearer "

// TokenVerifier validates bearer tokens and reads their subject.
type TokenVerifier interface {
	Validate(ctx context.Context, token string) bool
	Subject(token string) (string, error)
}

// IdentityLoader resolves the identity registered under an email.
type IdentityLoader interface {
	LoadByEmail(ctx context.Context, email string) (model.Identity, error)
}

// Authenticate returns middleware that resolves the caller from a
// "Bearer <token>" Authorization header and stores the identity in the request
// context. It never rejects a request: a missing, invalid or unresolvable
// token leaves the request unauthenticated for RequireAuth to handle.
func Authenticate(tokens TokenVerifier, identities IdentityLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolveIdentity(r.Context(), tokens, identities, token)
			if err != nil {
				logging.FromContext(r.Context()).Warn("cannot set user authentication", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if identity == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
		})
	}
}

// resolveIdentity returns nil with no error when the token does not validate.
func resolveIdentity(ctx context.Context, tokens TokenVerifier, identities IdentityLoader, token string) (identity *model.Identity, err error) {
	defer func() {
		if p := recover(); p != nil {
			identity, err = nil, fmt.Errorf("panic while resolving identity: %v", p)
		}
	}()

	if !tokens.Validate(ctx, token) {
		return nil, nil
	}

	email, err := tokens.Subject(token)
	if err != nil {
		return nil, err
	}

	resolved, err := identities.LoadByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// RequireAuth rejects requests that Authenticate did not attach an identity to.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			logging.FromContext(r.Context()).Debug("unauthorized request")
			WriteUnauthorized(w, r, "Full authentication is required to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity returns a derived context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}

// UnauthorizedResponse is the body of every 401 response.
type UnauthorizedResponse struct {
	Path    string `json:"path"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// WriteUnauthorized writes a 401 with the structured error body.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, http.StatusUnauthorized, UnauthorizedResponse{
		Path:    r.URL.Path,
		Error:   "Unauthorized",
		Message: msg,
		Status:  http.StatusUnauthorized,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
