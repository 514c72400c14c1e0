package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Registry tracks the opaque tokens that currently represent a logged-in
// admin. Tokens live in memory only: a restart logs everyone out. There is no
// expiry and no per-token metadata.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]struct{})}
}

// Issue generates a crypto-random token, records it, and returns it.
func (r *Registry) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()
	return token, nil
}

// IsValid reports whether the token was issued and not yet revoked.
func (r *Registry) IsValid(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[token]
	return ok
}

// Revoke removes the token. Revoking an unknown token is a no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
