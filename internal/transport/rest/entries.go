package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/service/registration"
)

type registrationService interface {
	RequestDraft(ctx context.Context, id domain.Identity, input registration.DraftInput) (*domain.Draft, error)
	GetDraft(ctx context.Context, id domain.Identity, token string) (*domain.Draft, error)
	AbandonDraft(ctx context.Context, id domain.Identity, token string) error
	Commit(ctx context.Context, id domain.Identity, input registration.CommitInput) (*domain.Entry, error)
	Get(ctx context.Context, id domain.Identity, entryID int64) (*domain.Entry, error)
	Edit(ctx context.Context, id domain.Identity, entryID int64, input registration.EditInput) (*domain.Entry, error)
	Delete(ctx context.Context, id domain.Identity, entryID int64) error
}

// EntryHandler serves the registration workflow: drafting, committing,
// editing and deleting entries.
type EntryHandler struct {
	svc  registrationService
	errs errorMapper
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc registrationService, logger *slog.Logger, landingPath string) *EntryHandler {
	return &EntryHandler{
		svc:  svc,
		errs: errorMapper{log: logger.With("handler", "entries"), landingPath: landingPath},
	}
}

type draftRequest struct {
	Word        string `json:"word"`
	Details     string `json:"details"`
	TagID       int64  `json:"tagId"`
	WantSummary bool   `json:"wantSummary"`
	WantCode    bool   `json:"wantCode"`
}

type commitRequest struct {
	DraftToken   string `json:"draftToken"`
	Word         string `json:"word"`
	Details      string `json:"details"`
	TagID        int64  `json:"tagId"`
	Summary      string `json:"summary"`
	Code         string `json:"code"`
	CodeLanguage string `json:"codeLanguage"`
}

type editRequest struct {
	Word         string  `json:"word"`
	Details      string  `json:"details"`
	TagID        int64   `json:"tagId"`
	Summary      *string `json:"summary"`
	Code         *string `json:"code"`
	CodeLanguage *string `json:"codeLanguage"`
}

// Draft handles POST /api/entries/draft.
func (h *EntryHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.RequestDraft(r.Context(), identity(r), registration.DraftInput{
		Word:        req.Word,
		Details:     req.Details,
		TagID:       req.TagID,
		WantSummary: req.WantSummary,
		WantCode:    req.WantCode,
	})
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(d))
}

// GetDraft handles GET /api/entries/draft/{token}.
func (h *EntryHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDraft(r.Context(), identity(r), chi.URLParam(r, "token"))
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// AbandonDraft handles DELETE /api/entries/draft/{token}.
func (h *EntryHandler) AbandonDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AbandonDraft(r.Context(), identity(r), chi.URLParam(r, "token")); err != nil {
		h.errs.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Commit handles POST /api/entries.
func (h *EntryHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.Commit(r.Context(), identity(r), registration.CommitInput{
		DraftToken:   req.DraftToken,
		Word:         req.Word,
		Details:      req.Details,
		TagID:        req.TagID,
		Summary:      req.Summary,
		Code:         req.Code,
		CodeLanguage: req.CodeLanguage,
	})
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(e))
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, err := int64Param(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), identity(r), entryID)
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(e))
}

// Edit handles PUT /api/entries/{id}.
func (h *EntryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	entryID, err := int64Param(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	var req editRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.Edit(r.Context(), identity(r), entryID, registration.EditInput{
		Word:         req.Word,
		Details:      req.Details,
		TagID:        req.TagID,
		Summary:      req.Summary,
		Code:         req.Code,
		CodeLanguage: req.CodeLanguage,
	})
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(e))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := int64Param(r, "id")
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), identity(r), entryID); err != nil {
		h.errs.handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
