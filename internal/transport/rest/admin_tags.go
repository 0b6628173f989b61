package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type tagAdminService interface {
	Search(ctx context.Context, id domain.Identity, keyword, mode string) ([]domain.Tag, error)
	Create(ctx context.Context, id domain.Identity, name string) (*domain.Tag, error)
	Rename(ctx context.Context, id domain.Identity, tagID int64, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id domain.Identity, tagID int64) error
}

// TagAdminHandler serves tag administration.
type TagAdminHandler struct {
	svc  tagAdminService
	errs errorMapper
}

// NewTagAdminHandler creates a TagAdminHandler.
func NewTagAdminHandler(svc tagAdminService, logger *slog.Logger, landingPath string) *TagAdminHandler {
	return &TagAdminHandler{
		svc:  svc,
		errs: errorMapper{log: logger.With("handler", "admin_tags"), landingPath: landingPath},
	}
}

type tagRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/admin/tags?keyword=&match=.
func (h *TagAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tags, err := h.svc.Search(r.Context(), identity(r), q.Get("keyword"), q.Get("match"))
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// Create handles POST /api/admin/tags.
func (h *TagAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Create(r.Context(), identity(r), req.Name)
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tagResponse{ID: t.ID, Name: t.Name})
}

// Rename handles PUT /api/admin/tags/{id}.
func (h *TagAdminHandler) Rename(w http.ResponseWriter, r *http.Request) {
	tagID, err := int64Param(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	var req tagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Rename(r.Context(), identity(r), tagID, req.Name)
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tagResponse{ID: t.ID, Name: t.Name})
}

// Delete handles DELETE /api/admin/tags/{id}.
func (h *TagAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tagID, err := int64Param(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), identity(r), tagID); err != nil {
		h.errs.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
