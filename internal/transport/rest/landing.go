package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type tagLister interface {
	Tags(ctx context.Context, id domain.Identity) ([]domain.Tag, error)
}

// LandingHandler serves the standard and administrator landing surfaces.
type LandingHandler struct {
	tags tagLister
	errs errorMapper
}

// NewLandingHandler creates a LandingHandler.
func NewLandingHandler(tags tagLister, logger *slog.Logger, landingPath string) *LandingHandler {
	return &LandingHandler{
		tags: tags,
		errs: errorMapper{log: logger.With("handler", "landing"), landingPath: landingPath},
	}
}

type assistResponse struct {
	User identityResponse `json:"user"`
	Tags []tagResponse    `json:"tags"`
}

type adminResponse struct {
	User     identityResponse `json:"user"`
	Sections []string         `json:"sections"`
}

// Assist handles GET /api/assist: who is signed in and which tags a new
// entry can be registered under.
func (h *LandingHandler) Assist(w http.ResponseWriter, r *http.Request) {
	id := identity(r)
	tags, err := h.tags.Tags(r.Context(), id)
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assistResponse{User: toIdentityResponse(id), Tags: toTagResponses(tags)})
}

// Admin handles GET /api/admin.
func (h *LandingHandler) Admin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, adminResponse{
		User:     toIdentityResponse(identity(r)),
		Sections: []string{"tags", "users"},
	})
}
