package entry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordassist-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/wordassist-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

func ids(entries []domain.Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestIntegration_CreateDuplicateRejected(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := entry.New(pool)
	ctx := context.Background()
	goTag := testhelper.SeedTag(t, pool, "go")
	pyTag := testhelper.SeedTag(t, pool, "py")
	now := time.Now().UTC()

	first, err := repo.Create(ctx, &domain.Entry{Word: "loop", Details: "d", TagID: goTag.ID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Entry{Word: "loop", Details: "other", TagID: goTag.ID, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	_, err = repo.Create(ctx, &domain.Entry{Word: "loop", Details: "d", TagID: pyTag.ID, CreatedAt: now, UpdatedAt: now})
	assert.NoError(t, err, "same word under another tag is allowed")

	exists, err := repo.ExistsByWordTag(ctx, "loop", goTag.ID, nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByWordTag(ctx, "loop", goTag.ID, &first.ID)
	require.NoError(t, err)
	assert.False(t, exists, "an entry never conflicts with itself")
}

func TestIntegration_UpdateKeepsCreatedAt(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := entry.New(pool)
	ctx := context.Background()
	tag := testhelper.SeedTag(t, pool, "go")
	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)

	seeded := testhelper.SeedEntry(t, pool, domain.Entry{Word: "chan", TagID: tag.ID, CreatedAt: created})

	later := time.Now().UTC().Truncate(time.Microsecond)
	seeded.Details = "typed conduit"
	seeded.UpdatedAt = later
	_, err := repo.Update(ctx, &seeded)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "typed conduit", got.Details)
	assert.Equal(t, tag.Name, got.TagName)
	assert.True(t, got.CreatedAt.Equal(created), "created_at must not change")
	assert.True(t, got.UpdatedAt.Equal(later))
}

func TestIntegration_DeleteMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := entry.New(pool)

	err := repo.Delete(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_SearchSemantics(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := entry.New(pool)
	ctx := context.Background()
	tag := testhelper.SeedTag(t, pool, "search")
	other := testhelper.SeedTag(t, pool, "other")
	base := time.Now().UTC().Truncate(time.Microsecond)

	python := testhelper.SeedEntry(t, pool, domain.Entry{Word: "Python", TagID: tag.ID, CreatedAt: base.Add(-3 * time.Minute)})
	micro := testhelper.SeedEntry(t, pool, domain.Entry{Word: "MicroPython", TagID: tag.ID, CreatedAt: base.Add(-2 * time.Minute)})
	viaCode := testhelper.SeedEntry(t, pool, domain.Entry{Word: "interp", Code: "import python_thing", TagID: tag.ID, CreatedAt: base.Add(-1 * time.Minute)})
	elsewhere := testhelper.SeedEntry(t, pool, domain.Entry{Word: "Python", TagID: other.ID, CreatedAt: base})

	t.Run("exact matches only equal values", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.EntryQuery{
			TagID:   &tag.ID,
			Keyword: "Python",
			Mode:    domain.MatchExact,
			Fields:  domain.NewFieldSet(domain.SearchFieldWord),
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{python.ID}, ids(got))
	})

	t.Run("partial adds substrings newest first", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.EntryQuery{
			TagID:   &tag.ID,
			Keyword: "Python",
			Mode:    domain.MatchPartial,
			Fields:  domain.NewFieldSet(domain.SearchFieldWord),
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{micro.ID, python.ID}, ids(got))
	})

	t.Run("empty field set searches all fields case-insensitively", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.EntryQuery{
			TagID:   &tag.ID,
			Keyword: "python",
			Mode:    domain.MatchPartial,
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{viaCode.ID, micro.ID, python.ID}, ids(got))
	})

	t.Run("tag filter scopes results", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.EntryQuery{TagID: &other.ID, Mode: domain.MatchPartial})
		require.NoError(t, err)
		assert.Equal(t, []int64{elsewhere.ID}, ids(got))
	})

	t.Run("no match is an empty result not an error", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.EntryQuery{
			TagID:   &tag.ID,
			Keyword: "does-not-exist",
			Mode:    domain.MatchPartial,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestIntegration_GuardInsideTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := entry.New(pool)
	tm := postgres.NewTxManager(pool)
	tag := testhelper.SeedTag(t, pool, "tx")
	now := time.Now().UTC()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := repo.LockWordTag(ctx, "defer", tag.ID); err != nil {
			return err
		}
		exists, err := repo.ExistsByWordTag(ctx, "defer", tag.ID, nil)
		if err != nil {
			return err
		}
		require.False(t, exists)
		_, err = repo.Create(ctx, &domain.Entry{Word: "defer", Details: "d", TagID: tag.ID, CreatedAt: now, UpdatedAt: now})
		return err
	})
	require.NoError(t, err)

	exists, err := repo.ExistsByWordTag(context.Background(), "defer", tag.ID, nil)
	require.NoError(t, err)
	assert.True(t, exists)
}
