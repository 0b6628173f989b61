// Package search runs keyword and tag searches over committed entries.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type entryRepo interface {
	Search(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error)
}

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
}

// Service executes entry searches.
type Service struct {
	entries entryRepo
	tags    tagRepo
	log     *slog.Logger
}

// NewService creates a new search service.
func NewService(log *slog.Logger, entries entryRepo, tags tagRepo) *Service {
	return &Service{
		entries: entries,
		tags:    tags,
		log:     log.With("service", "search"),
	}
}

// Input is an unparsed search request as it arrives from a form or query
// string. Empty Mode means partial; empty Fields means all fields.
type Input struct {
	TagID   *int64
	Keyword string
	Mode    string
	Fields  []string
}

// Result holds matching entries, newest first. NoResults is set when the
// search succeeded but matched nothing.
type Result struct {
	Entries   []domain.Entry
	NoResults bool
}

// toQuery validates the input and collects all errors.
func (i Input) toQuery() (domain.EntryQuery, error) {
	var errs []domain.FieldError

	mode, ok := domain.ParseMatchMode(i.Mode)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "match", Message: "must be exact or partial"})
	}

	fields := make([]domain.SearchField, 0, len(i.Fields))
	for _, raw := range i.Fields {
		f := domain.SearchField(strings.ToLower(strings.TrimSpace(raw)))
		if f == "" {
			continue
		}
		if !f.IsValid() {
			errs = append(errs, domain.FieldError{Field: "fields", Message: fmt.Sprintf("unknown field %q", raw)})
			continue
		}
		fields = append(fields, f)
	}

	if i.TagID != nil && *i.TagID <= 0 {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.EntryQuery{}, domain.NewValidationErrors(errs)
	}

	return domain.EntryQuery{
		TagID:   i.TagID,
		Keyword: strings.TrimSpace(i.Keyword),
		Mode:    mode,
		Fields:  domain.NewFieldSet(fields...),
	}, nil
}

// Search runs the query. An empty result is not an error.
func (s *Service) Search(ctx context.Context, id domain.Identity, input Input) (*Result, error) {
	if id.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}

	q, err := input.toQuery()
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	s.log.DebugContext(ctx, "entries searched",
		slog.String("user_id", id.UserID.String()),
		slog.String("mode", q.Mode.String()),
		slog.Int("fields", len(q.Fields)),
		slog.Bool("match_all", q.IsMatchAll()),
		slog.Int("results", len(entries)),
	)

	if entries == nil {
		entries = []domain.Entry{}
	}
	return &Result{Entries: entries, NoResults: len(entries) == 0}, nil
}

// Tags lists the tag vocabulary for the search and registration forms.
func (s *Service) Tags(ctx context.Context, id domain.Identity) ([]domain.Tag, error) {
	if id.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}
