// Package registration implements the entry registration workflow:
// optional draft generation, human confirmation and commit, plus edit
// and delete of committed entries.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)
	LockWordTag(ctx context.Context, word string, tagID int64) error
	ExistsByWordTag(ctx context.Context, word string, tagID int64, excludeID *int64) (bool, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id int64) error
}

type tagRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
}

type draftStore interface {
	Save(ctx context.Context, d domain.Draft) error
	Get(ctx context.Context, userID uuid.UUID, token string) (*domain.Draft, error)
	Delete(ctx context.Context, userID uuid.UUID, token string) error
}

type generator interface {
	Summarize(ctx context.Context, word, details string) (string, error)
	Snippet(ctx context.Context, word, details, tagName string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the registration workflow. Every operation takes the
// caller's identity explicitly.
type Service struct {
	entries entryRepo
	tags    tagRepo
	drafts  draftStore
	gen     generator
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new registration service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	tags tagRepo,
	drafts draftStore,
	gen generator,
	tx txManager,
) *Service {
	return &Service{
		entries: entries,
		tags:    tags,
		drafts:  drafts,
		gen:     gen,
		tx:      tx,
		log:     log.With("service", "registration"),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func requireIdentity(id domain.Identity) error {
	if id.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	return nil
}

// resolveTag loads the tag, reporting a missing one as a field error on
// tag_id rather than a missing resource.
func (s *Service) resolveTag(ctx context.Context, tagID int64) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("tag_id", "unknown tag")
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return tag, nil
}

// guard fails with ErrDuplicateEntry when another entry already holds
// (word, tagID). It must run inside the transaction that writes: the
// advisory lock serializes concurrent writers of the same pair until
// commit.
func (s *Service) guard(ctx context.Context, word string, tagID int64, excludeID *int64) error {
	if err := s.entries.LockWordTag(ctx, word, tagID); err != nil {
		return fmt.Errorf("lock word/tag: %w", err)
	}

	exists, err := s.entries.ExistsByWordTag(ctx, word, tagID, excludeID)
	if err != nil {
		return fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return fmt.Errorf("word %q under tag %d: %w", word, tagID, domain.ErrDuplicateEntry)
	}
	return nil
}
