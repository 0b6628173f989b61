// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

var columns = []string{"id", "username", "password_hash", "role", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// Search lists accounts matching the query, oldest first.
func (r *Repo) Search(ctx context.Context, q domain.AccountQuery) ([]domain.User, error) {
	sb := postgres.Builder().
		Select(columns...).
		From("users").
		OrderBy("created_at", "id")

	if q.Keyword != "" {
		if q.Mode == domain.MatchExact {
			sb = sb.Where(squirrel.Eq{"username": q.Keyword})
		} else {
			sb = sb.Where(squirrel.ILike{"username": postgres.ContainsPattern(q.Keyword)})
		}
	}
	if q.Role != nil {
		sb = sb.Where(squirrel.Eq{"role": string(*q.Role)})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var users []domain.User
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &users, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", "search")
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user. A taken username yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var created domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return &created, nil
}

// Update modifies the username and role, and the password hash when given.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.UserUpdateParams) (*domain.User, error) {
	ub := postgres.Builder().
		Update("users").
		Set("username", p.Username).
		Set("role", string(p.Role)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())
	if p.PasswordHash != nil {
		ub = ub.Set("password_hash", *p.PasswordHash)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// SetRoleByUsername changes the role of the named account.
func (r *Repo) SetRoleByUsername(ctx context.Context, username string, role domain.UserRole) error {
	query, args, err := postgres.Builder().
		Update("users").
		Set("role", string(role)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", username)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a user. Entries the user created keep existing with no
// author.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
