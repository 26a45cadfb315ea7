package repository

import (
	"context"
	"sort"
	"sync"

	"wellness-backend/internal/domain"
)

// TokenRepository manages device tokens for push notifications in memory.
type TokenRepository struct {
	tokens map[string]domain.DeviceToken // token -> DeviceToken
	mu     sync.RWMutex
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{
		tokens: make(map[string]domain.DeviceToken),
	}
}

// RegisterToken adds or updates a device token
func (r *TokenRepository) RegisterToken(_ context.Context, tok domain.DeviceToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[tok.Token] = tok
	return nil
}

// UnregisterToken removes a device token
func (r *TokenRepository) UnregisterToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	return nil
}

// TokensForUser returns the user's registered tokens, sorted.
func (r *TokenRepository) TokensForUser(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0)
	for token, tok := range r.tokens {
		if tok.UserID == userID {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens, nil
}

// Count returns the number of registered tokens
func (r *TokenRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tokens), nil
}

var _ domain.DeviceTokenRepository = (*TokenRepository)(nil)
