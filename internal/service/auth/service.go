// Package auth implements account sign-up, login and session validation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordassist-backend/internal/auth"
	"github.com/heartmarshall/wordassist-backend/internal/config"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type tokenManager interface {
	GenerateAccessToken(id domain.Identity) (string, error)
	ValidateAccessToken(token string) (domain.Identity, error)
	AccessTTL() time.Duration
}

// Service provides authentication operations.
type Service struct {
	users      userRepo
	tokens     tokenManager
	bcryptCost int
	gate       config.GateConfig
	log        *slog.Logger

	// dummyHash is compared against when the username is unknown, so a
	// missing account costs the same as a wrong password.
	dummyHash string
}

// NewService creates a new auth service.
func NewService(
	log *slog.Logger,
	users userRepo,
	tokens tokenManager,
	authCfg config.AuthConfig,
	gate config.GateConfig,
) (*Service, error) {
	dummy, err := auth.HashPassword("wordassist-dummy-password", authCfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: authCfg.BcryptCost,
		gate:       gate,
		log:        log.With("service", "auth"),
		dummyHash:  dummy,
	}, nil
}

// Credentials holds a username and password.
type Credentials struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (c Credentials) Validate() error {
	if errs := auth.ValidateCredentials(c.Username, c.Password, false); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	ExpiresIn   time.Duration
	Identity    domain.Identity
	// LandingPath is where the client should navigate next.
	LandingPath string
}

// Signup creates a standard account. A taken username yields
// ErrAlreadyExists.
func (s *Service) Signup(ctx context.Context, in Credentials) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: hash,
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", u.ID.String()),
		slog.String("username", u.Username),
	)
	return u, nil
}

// Login verifies the password and issues an access token. Unknown users
// and wrong passwords both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, in Credentials) (*Session, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get user: %w", err)
		}
		_, _ = auth.CheckPassword(s.dummyHash, in.Password)
		return nil, domain.ErrUnauthorized
	}

	ok, err := auth.CheckPassword(u.PasswordHash, in.Password)
	if err != nil {
		s.log.ErrorContext(ctx, "stored password hash unusable",
			slog.String("user_id", u.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrUnauthorized
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	id := domain.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
	token, err := s.tokens.GenerateAccessToken(id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", u.ID.String()),
		slog.Bool("admin", id.IsAdmin()),
	)

	return &Session{
		AccessToken: token,
		ExpiresIn:   s.tokens.AccessTTL(),
		Identity:    id,
		LandingPath: s.LandingPath(id),
	}, nil
}

// LandingPath returns the admin surface for administrators and the
// standard surface for everyone else.
func (s *Service) LandingPath(id domain.Identity) string {
	if id.IsAdmin() {
		return s.gate.AdminLandingPath
	}
	return s.gate.LandingPath
}

// ValidateToken resolves an access token to the identity it carries.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Identity, error) {
	id, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return id, nil
}
