package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type entryRepoMock struct {
	SearchFunc func(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error)
	calls      []domain.EntryQuery
}

func (m *entryRepoMock) Search(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error) {
	m.calls = append(m.calls, q)
	return m.SearchFunc(ctx, q)
}

type tagRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Tag, error)
}

func (m *tagRepoMock) List(ctx context.Context) ([]domain.Tag, error) {
	return m.ListFunc(ctx)
}

func identity() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Username: "u", Role: domain.UserRoleUser}
}

func ptr[T any](v T) *T { return &v }

func TestSearch_BuildsQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Input
		want  domain.EntryQuery
	}{
		{
			name:  "match all defaults to partial",
			input: Input{},
			want:  domain.EntryQuery{Mode: domain.MatchPartial, Fields: domain.NewFieldSet()},
		},
		{
			name:  "exact with fields, trimmed keyword",
			input: Input{Keyword: " Python ", Mode: "exact", Fields: []string{"word", "Summary", ""}},
			want: domain.EntryQuery{
				Keyword: "Python",
				Mode:    domain.MatchExact,
				Fields:  domain.NewFieldSet(domain.SearchFieldWord, domain.SearchFieldSummary),
			},
		},
		{
			name:  "tag only",
			input: Input{TagID: ptr(int64(3))},
			want:  domain.EntryQuery{TagID: ptr(int64(3)), Mode: domain.MatchPartial, Fields: domain.NewFieldSet()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &entryRepoMock{SearchFunc: func(context.Context, domain.EntryQuery) ([]domain.Entry, error) {
				return nil, nil
			}}
			svc := NewService(slog.Default(), repo, &tagRepoMock{})

			_, err := svc.Search(context.Background(), identity(), tt.input)

			require.NoError(t, err)
			require.Len(t, repo.calls, 1)
			assert.Equal(t, tt.want, repo.calls[0])
		})
	}
}

func TestSearch_NoResultsIsNotAnError(t *testing.T) {
	t.Parallel()
	repo := &entryRepoMock{SearchFunc: func(context.Context, domain.EntryQuery) ([]domain.Entry, error) {
		return nil, nil
	}}
	svc := NewService(slog.Default(), repo, &tagRepoMock{})

	res, err := svc.Search(context.Background(), identity(), Input{Keyword: "zzz"})

	require.NoError(t, err)
	assert.True(t, res.NoResults)
	assert.NotNil(t, res.Entries)
}

func TestSearch_ReturnsEntriesInRepoOrder(t *testing.T) {
	t.Parallel()
	rows := []domain.Entry{{ID: 3}, {ID: 2}, {ID: 1}}
	repo := &entryRepoMock{SearchFunc: func(context.Context, domain.EntryQuery) ([]domain.Entry, error) {
		return rows, nil
	}}
	svc := NewService(slog.Default(), repo, &tagRepoMock{})

	res, err := svc.Search(context.Background(), identity(), Input{})

	require.NoError(t, err)
	assert.False(t, res.NoResults)
	assert.Equal(t, rows, res.Entries)
}

func TestSearch_InvalidInput(t *testing.T) {
	t.Parallel()
	repo := &entryRepoMock{}
	svc := NewService(slog.Default(), repo, &tagRepoMock{})

	_, err := svc.Search(context.Background(), identity(), Input{
		Mode:   "fuzzy",
		Fields: []string{"word", "title"},
		TagID:  ptr(int64(0)),
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
	assert.Empty(t, repo.calls)
}

func TestSearch_StoreFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("db down")
	repo := &entryRepoMock{SearchFunc: func(context.Context, domain.EntryQuery) ([]domain.Entry, error) {
		return nil, boom
	}}
	svc := NewService(slog.Default(), repo, &tagRepoMock{})

	res, err := svc.Search(context.Background(), identity(), Input{})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}

func TestSearch_Anonymous(t *testing.T) {
	t.Parallel()
	svc := NewService(slog.Default(), &entryRepoMock{}, &tagRepoMock{})

	_, err := svc.Search(context.Background(), domain.Identity{}, Input{})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTags(t *testing.T) {
	t.Parallel()
	svc := NewService(slog.Default(), &entryRepoMock{}, &tagRepoMock{ListFunc: func(context.Context) ([]domain.Tag, error) {
		return []domain.Tag{{ID: 1, Name: "Go"}}, nil
	}})

	tags, err := svc.Tags(context.Background(), identity())

	require.NoError(t, err)
	assert.Equal(t, []domain.Tag{{ID: 1, Name: "Go"}}, tags)
}
