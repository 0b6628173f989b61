package registration

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type entryRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Entry, error)
	LockWordTagFunc     func(ctx context.Context, word string, tagID int64) error
	ExistsByWordTagFunc func(ctx context.Context, word string, tagID int64, excludeID *int64) (bool, error)
	CreateFunc          func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	UpdateFunc          func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	DeleteFunc          func(ctx context.Context, id int64) error

	mu     sync.Mutex
	calls  map[string]int
	create []*domain.Entry
	update []*domain.Entry
}

func (m *entryRepoMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

func (m *entryRepoMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *entryRepoMock) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	m.record("GetByID")
	if m.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) LockWordTag(ctx context.Context, word string, tagID int64) error {
	m.record("LockWordTag")
	if m.LockWordTagFunc == nil {
		return nil
	}
	return m.LockWordTagFunc(ctx, word, tagID)
}

func (m *entryRepoMock) ExistsByWordTag(ctx context.Context, word string, tagID int64, excludeID *int64) (bool, error) {
	m.record("ExistsByWordTag")
	if m.ExistsByWordTagFunc == nil {
		panic("entryRepoMock.ExistsByWordTagFunc: method is nil but entryRepo.ExistsByWordTag was just called")
	}
	return m.ExistsByWordTagFunc(ctx, word, tagID, excludeID)
}

func (m *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	m.record("Create")
	m.mu.Lock()
	m.create = append(m.create, e)
	m.mu.Unlock()
	if m.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	return m.CreateFunc(ctx, e)
}

func (m *entryRepoMock) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	m.record("Update")
	m.mu.Lock()
	m.update = append(m.update, e)
	m.mu.Unlock()
	if m.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, e)
}

func (m *entryRepoMock) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	if m.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

type tagRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Tag, error)
}

func (m *tagRepoMock) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	if m.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

// draftStoreMock is an in-memory draft store keyed like the real one.
type draftStoreMock struct {
	mu      sync.Mutex
	drafts  map[string]domain.Draft
	saves   int
	deletes int
	SaveErr error
}

func newDraftStoreMock() *draftStoreMock {
	return &draftStoreMock{drafts: map[string]domain.Draft{}}
}

func draftKey(userID uuid.UUID, token string) string {
	return userID.String() + ":" + token
}

func (m *draftStoreMock) Save(_ context.Context, d domain.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.drafts[draftKey(d.UserID, d.Token)] = d
	return nil
}

func (m *draftStoreMock) Get(_ context.Context, userID uuid.UUID, token string) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[draftKey(userID, token)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (m *draftStoreMock) Delete(_ context.Context, userID uuid.UUID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.drafts, draftKey(userID, token))
	return nil
}

func (m *draftStoreMock) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.drafts)
}

type generatorMock struct {
	SummarizeFunc func(ctx context.Context, word, details string) (string, error)
	SnippetFunc   func(ctx context.Context, word, details, tagName string) (string, error)

	mu            sync.Mutex
	summarizeCall int
	snippetCall   int
}

func (m *generatorMock) Summarize(ctx context.Context, word, details string) (string, error) {
	m.mu.Lock()
	m.summarizeCall++
	m.mu.Unlock()
	if m.SummarizeFunc == nil {
		panic("generatorMock.SummarizeFunc: method is nil but generator.Summarize was just called")
	}
	return m.SummarizeFunc(ctx, word, details)
}

func (m *generatorMock) Snippet(ctx context.Context, word, details, tagName string) (string, error) {
	m.mu.Lock()
	m.snippetCall++
	m.mu.Unlock()
	if m.SnippetFunc == nil {
		panic("generatorMock.SnippetFunc: method is nil but generator.Snippet was just called")
	}
	return m.SnippetFunc(ctx, word, details, tagName)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
