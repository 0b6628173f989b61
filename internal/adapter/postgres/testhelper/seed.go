package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a standard user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + UniqueSuffix(),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpl",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTag creates a tag with a unique name derived from prefix.
func SeedTag(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Tag {
	t.Helper()

	tag := domain.Tag{Name: prefix + "-" + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (name) VALUES ($1) RETURNING id, created_at`,
		tag.Name,
	).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedEntry inserts an entry directly, bypassing the repository, with the
// given created_at so ordering can be asserted.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, e domain.Entry) domain.Entry {
	t.Helper()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	if e.Details == "" {
		e.Details = "details for " + e.Word
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO entries (word, details, tag_id, summary, code, code_language, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		e.Word, e.Details, e.TagID, e.Summary, e.Code, e.CodeLanguage, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}
