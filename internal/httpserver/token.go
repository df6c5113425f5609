package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/infinite/internal/store"
)

// roundClaims binds a token to one session.
type roundClaims struct {
	jwt.RegisteredClaims
}

// signRoundToken creates an HS256 JWT whose subject is the session ID.
func signRoundToken(secret []byte, id string, now time.Time, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, roundClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return t.SignedString(secret)
}

// parseRoundToken verifies tok and returns the session ID it carries.
func parseRoundToken(secret []byte, tok string, now func() time.Time) (string, error) {
	var claims roundClaims
	t, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

type ctxSessionKey struct{}

// requireRound enforces a valid round token and injects its session into the context.
func (s *Server) requireRound() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearer(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			id, err := parseRoundToken(s.cfg.Secret, tok, s.cfg.Now)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			sess, err := s.store.Get(r.Context(), id)
			if err != nil {
				writeError(w, http.StatusNotFound, "round_not_found")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(ctx context.Context) *store.Session {
	s, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return s
}
