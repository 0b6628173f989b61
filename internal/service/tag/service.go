// Package tag implements administration of the tag vocabulary.
package tag

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const maxNameLength = 50

type tagRepo interface {
	Search(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error)
	Create(ctx context.Context, name string) (*domain.Tag, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides tag administration. Every operation requires an
// administrator identity.
type Service struct {
	tags tagRepo
	log  *slog.Logger
}

// NewService creates a new tag service.
func NewService(log *slog.Logger, tags tagRepo) *Service {
	return &Service{
		tags: tags,
		log:  log.With("service", "tag"),
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

func validateName(raw string) (string, error) {
	name := domain.NormalizeTagName(raw)
	if name == "" {
		return "", domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", domain.NewValidationError("name", "max 50 characters")
	}
	return name, nil
}

// Search lists tags by name. Exact matching ignores case.
func (s *Service) Search(ctx context.Context, id domain.Identity, keyword, mode string) ([]domain.Tag, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}

	m, ok := domain.ParseMatchMode(mode)
	if !ok {
		return nil, domain.NewValidationError("match", "must be exact or partial")
	}

	tags, err := s.tags.Search(ctx, domain.TagQuery{Keyword: domain.NormalizeTagName(keyword), Mode: m})
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// Create adds a tag. Names are unique regardless of case.
func (s *Service) Create(ctx context.Context, id domain.Identity, rawName string) (*domain.Tag, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	name, err := validateName(rawName)
	if err != nil {
		return nil, err
	}

	t, err := s.tags.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("admin_id", id.UserID.String()),
		slog.Int64("tag_id", t.ID),
		slog.String("name", t.Name),
	)
	return t, nil
}

// Rename changes a tag's name. Entries follow the rename since they
// reference the tag by id.
func (s *Service) Rename(ctx context.Context, id domain.Identity, tagID int64, rawName string) (*domain.Tag, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	name, err := validateName(rawName)
	if err != nil {
		return nil, err
	}

	t, err := s.tags.Rename(ctx, tagID, name)
	if err != nil {
		return nil, fmt.Errorf("rename tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag renamed",
		slog.String("admin_id", id.UserID.String()),
		slog.Int64("tag_id", t.ID),
		slog.String("name", t.Name),
	)
	return t, nil
}

// Delete removes a tag that no entry references.
func (s *Service) Delete(ctx context.Context, id domain.Identity, tagID int64) error {
	if err := requireAdmin(id); err != nil {
		return err
	}

	if err := s.tags.Delete(ctx, tagID); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("admin_id", id.UserID.String()),
		slog.Int64("tag_id", tagID),
	)
	return nil
}
