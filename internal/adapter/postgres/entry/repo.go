// Package entry implements the Entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const (
	wordTagConstraint = "entries_word_tag_key"
	tagFKConstraint   = "entries_tag_id_fkey"
)

var selectColumns = []string{
	"e.id", "e.word", "e.details", "e.tag_id", "t.name AS tag_name",
	"e.summary", "e.code", "e.code_language", "e.created_by",
	"e.created_at", "e.updated_at",
}

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID           int64      `db:"id"`
	Word         string     `db:"word"`
	Details      string     `db:"details"`
	TagID        int64      `db:"tag_id"`
	TagName      string     `db:"tag_name"`
	Summary      string     `db:"summary"`
	Code         string     `db:"code"`
	CodeLanguage string     `db:"code_language"`
	CreatedBy    *uuid.UUID `db:"created_by"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r entryRow) toDomain() domain.Entry {
	return domain.Entry{
		ID:           r.ID,
		Word:         r.Word,
		Details:      r.Details,
		TagID:        r.TagID,
		TagName:      r.TagName,
		Summary:      r.Summary,
		Code:         r.Code,
		CodeLanguage: r.CodeLanguage,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From("entries e").
		Join("tags t ON t.id = e.tag_id")
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns an entry joined with its tag name.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	query, args, err := baseSelect().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	e := row.toDomain()
	return &e, nil
}

// Search returns entries matching the query, most recent first. Ties on
// created_at come back in no particular order.
func (r *Repo) Search(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error) {
	pred := BuildPredicate(q)

	query, args, err := baseSelect().
		Where(pred.Where).
		OrderBy("e.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", "search")
	}

	entries := make([]domain.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Uniqueness guard
// ---------------------------------------------------------------------------

// LockWordTag takes a transaction-scoped advisory lock on the (word, tag)
// key so concurrent check-then-write sequences on the same pair serialize.
// Must be called inside RunInTx.
func (r *Repo) LockWordTag(ctx context.Context, word string, tagID int64) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2::text, 0))`,
		word, tagID,
	)
	if err != nil {
		return postgres.MapError(err, "entry lock", word)
	}
	return nil
}

// ExistsByWordTag reports whether an entry other than excludeID holds the
// (word, tagID) pair. A nil excludeID checks against all entries.
func (r *Repo) ExistsByWordTag(ctx context.Context, word string, tagID int64, excludeID *int64) (bool, error) {
	sub := postgres.Builder().
		Select("1").
		From("entries").
		Where(squirrel.Eq{"word": word}).
		Where(squirrel.Eq{"tag_id": tagID})
	if excludeID != nil {
		sub = sub.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := sub.Prefix("SELECT EXISTS(").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "entry", word)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns it with its generated id.
// TagName is carried over from the input, not re-read.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Insert("entries").
		Columns("word", "details", "tag_id", "summary", "code", "code_language", "created_by", "created_at", "updated_at").
		Values(e.Word, e.Details, e.TagID, e.Summary, e.Code, e.CodeLanguage, e.CreatedBy, e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created := *e
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, mapWriteError(err, e.Word)
	}
	return &created, nil
}

// Update overwrites the editable columns of an entry. created_at is never
// touched.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Update("entries").
		Set("word", e.Word).
		Set("details", e.Details).
		Set("tag_id", e.TagID).
		Set("summary", e.Summary).
		Set("code", e.Code).
		Set("code_language", e.CodeLanguage).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING created_by, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	updated := *e
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&updated.CreatedBy, &updated.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, e.ID)
	}
	return &updated, nil
}

// Delete hard-deletes an entry. Returns ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete("entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// mapWriteError distinguishes the (word, tag) unique constraint and the
// tag foreign key from generic write failures.
func mapWriteError(err error, id any) error {
	switch {
	case postgres.IsConstraintViolation(err, postgres.CodeUniqueViolation, wordTagConstraint):
		return fmt.Errorf("entry %v: %w", id, domain.ErrDuplicateEntry)
	case postgres.IsConstraintViolation(err, postgres.CodeForeignKeyViolation, tagFKConstraint):
		return fmt.Errorf("entry %v: %w", id, domain.NewValidationError("tag_id", "unknown tag"))
	}
	return postgres.MapError(err, "entry", id)
}
