package ctxtr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type ctxKey string

const UserIDKey ctxKey = "user_id"

var ErrUserNotFound = errors.New("user not found")

// Tokens resolves bearer tokens to user ids.
type Tokens map[string]int64

// ParseTokens converts the "token -> user id" config map.
func ParseTokens(raw map[string]string) (Tokens, error) {
	tokens := make(Tokens, len(raw))
	for token, rawID := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse user id for token: %v", err)
		}
		tokens[strings.TrimSpace(token)] = id
	}

	return tokens, nil
}

// AuthMiddleware puts the user id of a known bearer token into the request context.
func AuthMiddleware(tokens Tokens, unauthorized http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				unauthorized.ServeHTTP(w, r)
				return
			}

			userID, ok := tokens[strings.TrimSpace(token)]
			if !ok {
				unauthorized.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	if !ok {
		return 0, ErrUserNotFound
	}

	return userID, nil
}
