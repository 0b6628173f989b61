package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/service/user"
)

type userAdminService interface {
	Search(ctx context.Context, id domain.Identity, in user.SearchInput) ([]domain.User, error)
	Create(ctx context.Context, id domain.Identity, in user.AccountInput) (*domain.User, error)
	Update(ctx context.Context, id domain.Identity, userID uuid.UUID, in user.AccountInput) (*domain.User, error)
	Delete(ctx context.Context, id domain.Identity, userID uuid.UUID) error
}

// UserAdminHandler serves account administration.
type UserAdminHandler struct {
	svc  userAdminService
	errs errorMapper
}

// NewUserAdminHandler creates a UserAdminHandler.
func NewUserAdminHandler(svc userAdminService, logger *slog.Logger, landingPath string) *UserAdminHandler {
	return &UserAdminHandler{
		svc:  svc,
		errs: errorMapper{log: logger.With("handler", "admin_users"), landingPath: landingPath},
	}
}

type accountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (req accountRequest) input() user.AccountInput {
	return user.AccountInput{Username: req.Username, Password: req.Password, IsAdmin: req.IsAdmin}
}

// List handles GET /api/admin/users?keyword=&match=&admin=0|1.
func (h *UserAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := user.SearchInput{Keyword: q.Get("keyword"), Mode: q.Get("match")}
	switch q.Get("admin") {
	case "":
	case "1", "true":
		v := true
		in.Admin = &v
	case "0", "false":
		v := false
		in.Admin = &v
	default:
		h.errs.handle(w, r, domain.NewValidationError("admin", "must be 0 or 1"))
		return
	}

	users, err := h.svc.Search(r.Context(), identity(r), in)
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/admin/users.
func (h *UserAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Create(r.Context(), identity(r), req.input())
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Update handles PUT /api/admin/users/{id}.
func (h *UserAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Update(r.Context(), identity(r), userID, req.input())
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /api/admin/users/{id}.
func (h *UserAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), identity(r), userID); err != nil {
		h.errs.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
