package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// tokenValidatorMock is a mock implementation of tokenValidator.
type tokenValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (domain.Identity, error)

	mu    sync.Mutex
	calls []string
}

func (m *tokenValidatorMock) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	m.mu.Lock()
	m.calls = append(m.calls, token)
	m.mu.Unlock()
	if m.ValidateTokenFunc == nil {
		panic("tokenValidatorMock.ValidateTokenFunc: method is nil but ValidateToken was just called")
	}
	return m.ValidateTokenFunc(ctx, token)
}

// ValidateTokenCalls returns the tokens passed to ValidateToken.
func (m *tokenValidatorMock) ValidateTokenCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
