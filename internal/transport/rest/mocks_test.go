package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/service/auth"
	"github.com/heartmarshall/wordassist-backend/internal/service/registration"
	"github.com/heartmarshall/wordassist-backend/internal/service/search"
	"github.com/heartmarshall/wordassist-backend/internal/service/user"
)

type authServiceMock struct {
	SignupFunc        func(ctx context.Context, in auth.Credentials) (*domain.User, error)
	LoginFunc         func(ctx context.Context, in auth.Credentials) (*auth.Session, error)
	ValidateTokenFunc func(ctx context.Context, token string) (domain.Identity, error)
}

func (m *authServiceMock) Signup(ctx context.Context, in auth.Credentials) (*domain.User, error) {
	return m.SignupFunc(ctx, in)
}

func (m *authServiceMock) Login(ctx context.Context, in auth.Credentials) (*auth.Session, error) {
	return m.LoginFunc(ctx, in)
}

func (m *authServiceMock) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	return m.ValidateTokenFunc(ctx, token)
}

type registrationServiceMock struct {
	RequestDraftFunc func(ctx context.Context, id domain.Identity, input registration.DraftInput) (*domain.Draft, error)
	GetDraftFunc     func(ctx context.Context, id domain.Identity, token string) (*domain.Draft, error)
	AbandonDraftFunc func(ctx context.Context, id domain.Identity, token string) error
	CommitFunc       func(ctx context.Context, id domain.Identity, input registration.CommitInput) (*domain.Entry, error)
	GetFunc          func(ctx context.Context, id domain.Identity, entryID int64) (*domain.Entry, error)
	EditFunc         func(ctx context.Context, id domain.Identity, entryID int64, input registration.EditInput) (*domain.Entry, error)
	DeleteFunc       func(ctx context.Context, id domain.Identity, entryID int64) error
}

func (m *registrationServiceMock) RequestDraft(ctx context.Context, id domain.Identity, input registration.DraftInput) (*domain.Draft, error) {
	return m.RequestDraftFunc(ctx, id, input)
}

func (m *registrationServiceMock) GetDraft(ctx context.Context, id domain.Identity, token string) (*domain.Draft, error) {
	return m.GetDraftFunc(ctx, id, token)
}

func (m *registrationServiceMock) AbandonDraft(ctx context.Context, id domain.Identity, token string) error {
	return m.AbandonDraftFunc(ctx, id, token)
}

func (m *registrationServiceMock) Commit(ctx context.Context, id domain.Identity, input registration.CommitInput) (*domain.Entry, error) {
	return m.CommitFunc(ctx, id, input)
}

func (m *registrationServiceMock) Get(ctx context.Context, id domain.Identity, entryID int64) (*domain.Entry, error) {
	return m.GetFunc(ctx, id, entryID)
}

func (m *registrationServiceMock) Edit(ctx context.Context, id domain.Identity, entryID int64, input registration.EditInput) (*domain.Entry, error) {
	return m.EditFunc(ctx, id, entryID, input)
}

func (m *registrationServiceMock) Delete(ctx context.Context, id domain.Identity, entryID int64) error {
	return m.DeleteFunc(ctx, id, entryID)
}

type searchServiceMock struct {
	SearchFunc func(ctx context.Context, id domain.Identity, input search.Input) (*search.Result, error)
	TagsFunc   func(ctx context.Context, id domain.Identity) ([]domain.Tag, error)
}

func (m *searchServiceMock) Search(ctx context.Context, id domain.Identity, input search.Input) (*search.Result, error) {
	return m.SearchFunc(ctx, id, input)
}

func (m *searchServiceMock) Tags(ctx context.Context, id domain.Identity) ([]domain.Tag, error) {
	return m.TagsFunc(ctx, id)
}

type tagAdminServiceMock struct {
	SearchFunc func(ctx context.Context, id domain.Identity, keyword, mode string) ([]domain.Tag, error)
	CreateFunc func(ctx context.Context, id domain.Identity, name string) (*domain.Tag, error)
	RenameFunc func(ctx context.Context, id domain.Identity, tagID int64, name string) (*domain.Tag, error)
	DeleteFunc func(ctx context.Context, id domain.Identity, tagID int64) error
}

func (m *tagAdminServiceMock) Search(ctx context.Context, id domain.Identity, keyword, mode string) ([]domain.Tag, error) {
	return m.SearchFunc(ctx, id, keyword, mode)
}

func (m *tagAdminServiceMock) Create(ctx context.Context, id domain.Identity, name string) (*domain.Tag, error) {
	return m.CreateFunc(ctx, id, name)
}

func (m *tagAdminServiceMock) Rename(ctx context.Context, id domain.Identity, tagID int64, name string) (*domain.Tag, error) {
	return m.RenameFunc(ctx, id, tagID, name)
}

func (m *tagAdminServiceMock) Delete(ctx context.Context, id domain.Identity, tagID int64) error {
	return m.DeleteFunc(ctx, id, tagID)
}

type userAdminServiceMock struct {
	SearchFunc func(ctx context.Context, id domain.Identity, in user.SearchInput) ([]domain.User, error)
	CreateFunc func(ctx context.Context, id domain.Identity, in user.AccountInput) (*domain.User, error)
	UpdateFunc func(ctx context.Context, id domain.Identity, userID uuid.UUID, in user.AccountInput) (*domain.User, error)
	DeleteFunc func(ctx context.Context, id domain.Identity, userID uuid.UUID) error
}

func (m *userAdminServiceMock) Search(ctx context.Context, id domain.Identity, in user.SearchInput) ([]domain.User, error) {
	return m.SearchFunc(ctx, id, in)
}

func (m *userAdminServiceMock) Create(ctx context.Context, id domain.Identity, in user.AccountInput) (*domain.User, error) {
	return m.CreateFunc(ctx, id, in)
}

func (m *userAdminServiceMock) Update(ctx context.Context, id domain.Identity, userID uuid.UUID, in user.AccountInput) (*domain.User, error) {
	return m.UpdateFunc(ctx, id, userID, in)
}

func (m *userAdminServiceMock) Delete(ctx context.Context, id domain.Identity, userID uuid.UUID) error {
	return m.DeleteFunc(ctx, id, userID)
}
