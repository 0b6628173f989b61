// Package user implements account administration.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordassist-backend/internal/auth"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type userRepo interface {
	Search(ctx context.Context, q domain.AccountQuery) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides account administration. Every operation requires an
// administrator identity.
type Service struct {
	users      userRepo
	bcryptCost int
	log        *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo, bcryptCost int) *Service {
	return &Service{
		users:      users,
		bcryptCost: bcryptCost,
		log:        log.With("service", "user"),
	}
}

func requireAdmin(id domain.Identity) error {
	if id.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	if !id.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// SearchInput filters the account list. A nil Admin lists both roles.
type SearchInput struct {
	Keyword string
	Mode    string
	Admin   *bool
}

// AccountInput holds the editable account fields. On update an empty
// Password keeps the stored hash.
type AccountInput struct {
	Username string
	Password string
	IsAdmin  bool
}

func (i AccountInput) validate(passwordOptional bool) error {
	if errs := auth.ValidateCredentials(i.Username, i.Password, passwordOptional); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Search lists accounts, oldest first.
func (s *Service) Search(ctx context.Context, id domain.Identity, in SearchInput) ([]domain.User, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	mode, ok := domain.ParseMatchMode(in.Mode)
	if !ok {
		return nil, domain.NewValidationError("match", "must be exact or partial")
	}

	q := domain.AccountQuery{Keyword: strings.TrimSpace(in.Keyword), Mode: mode}
	if in.Admin != nil {
		role := domain.RoleFromAdminFlag(*in.Admin)
		q.Role = &role
	}

	users, err := s.users.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Create adds an account with the given role.
func (s *Service) Create(ctx context.Context, id domain.Identity, in AccountInput) (*domain.User, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if err := in.validate(false); err != nil {
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
		Role:         domain.RoleFromAdminFlag(in.IsAdmin),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("admin_id", id.UserID.String()),
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)
	return u, nil
}

// Update edits an account. Renaming to a username held by another
// account yields ErrAlreadyExists.
func (s *Service) Update(ctx context.Context, id domain.Identity, userID uuid.UUID, in AccountInput) (*domain.User, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if err := in.validate(true); err != nil {
		return nil, err
	}

	if userID == id.UserID && !in.IsAdmin {
		return nil, domain.NewValidationError("is_admin", "cannot revoke your own administrator role")
	}

	params := domain.UserUpdateParams{
		Username: strings.TrimSpace(in.Username),
		Role:     domain.RoleFromAdminFlag(in.IsAdmin),
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		params.PasswordHash = &hash
	}

	u, err := s.users.Update(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("admin_id", id.UserID.String()),
		slog.String("user_id", u.ID.String()),
		slog.Bool("password_changed", params.PasswordHash != nil),
	)
	return u, nil
}

// Delete removes an account. Administrators cannot delete themselves.
func (s *Service) Delete(ctx context.Context, id domain.Identity, userID uuid.UUID) error {
	if err := requireAdmin(id); err != nil {
		return err
	}
	if userID == id.UserID {
		return domain.NewValidationError("id", "cannot delete your own account")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("admin_id", id.UserID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
