// Package tag implements the Tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const entryFKConstraint = "entries_tag_id_fkey"

var columns = []string{"id", "name", "created_at"}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("tags").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.Tag
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return &t, nil
}

// List returns all tags ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	return r.Search(ctx, domain.TagQuery{})
}

// Search filters tags by name. Exact mode is case-insensitive equality,
// partial mode is ILIKE containment. An empty keyword lists everything.
func (r *Repo) Search(ctx context.Context, q domain.TagQuery) ([]domain.Tag, error) {
	sb := postgres.Builder().
		Select(columns...).
		From("tags").
		OrderBy("id")

	if q.Keyword != "" {
		if q.Mode == domain.MatchExact {
			sb = sb.Where("lower(name) = lower(?)", q.Keyword)
		} else {
			sb = sb.Where(squirrel.ILike{"name": postgres.ContainsPattern(q.Keyword)})
		}
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var tags []domain.Tag
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &tags, query, args...); err != nil {
		return nil, postgres.MapError(err, "tag", "search")
	}
	return tags, nil
}

// Create inserts a tag. Returns ErrAlreadyExists when the name is taken
// (case-insensitively).
func (r *Repo) Create(ctx context.Context, name string) (*domain.Tag, error) {
	query, args, err := postgres.Builder().
		Insert("tags").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.Tag
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, postgres.MapError(err, "tag", name)
	}
	return &t, nil
}

// Rename changes a tag's name.
func (r *Repo) Rename(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	query, args, err := postgres.Builder().
		Update("tags").
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.Tag
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return &t, nil
}

// Delete removes a tag. A tag still referenced by entries cannot be
// deleted and yields a validation error.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete("tags").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsConstraintViolation(err, postgres.CodeForeignKeyViolation, entryFKConstraint) {
			return fmt.Errorf("tag %d: %w", id, domain.NewValidationError("tag", "in use by entries"))
		}
		return postgres.MapError(err, "tag", id)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("tag %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
