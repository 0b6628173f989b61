package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/service/search"
)

type searchService interface {
	Search(ctx context.Context, id domain.Identity, input search.Input) (*search.Result, error)
	Tags(ctx context.Context, id domain.Identity) ([]domain.Tag, error)
}

// SearchHandler serves entry search and the tag vocabulary.
type SearchHandler struct {
	svc  searchService
	errs errorMapper
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger, landingPath string) *SearchHandler {
	return &SearchHandler{
		svc:  svc,
		errs: errorMapper{log: logger.With("handler", "search"), landingPath: landingPath},
	}
}

type searchResponse struct {
	Entries   []entryResponse `json:"entries"`
	NoResults bool            `json:"noResults"`
}

// Search handles GET /api/search?tagId=&keyword=&match=exact|partial&fields=word,summary.
// fields may also be repeated.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := search.Input{
		Keyword: q.Get("keyword"),
		Mode:    q.Get("match"),
		Fields:  splitFields(q["fields"]),
	}
	if raw := strings.TrimSpace(q.Get("tagId")); raw != "" {
		tagID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errs.handle(w, r, domain.NewValidationError("tag_id", "must be an integer"))
			return
		}
		input.TagID = &tagID
	}

	h.search(w, r, input)
}

type searchRequest struct {
	TagID   *int64   `json:"tagId"`
	Keyword string   `json:"keyword"`
	Match   string   `json:"match"`
	Fields  []string `json:"fields"`
}

// SearchBody handles POST /api/search with the same filters as a JSON body.
func (h *SearchHandler) SearchBody(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.search(w, r, search.Input{
		TagID:   req.TagID,
		Keyword: req.Keyword,
		Mode:    req.Match,
		Fields:  splitFields(req.Fields),
	})
}

func (h *SearchHandler) search(w http.ResponseWriter, r *http.Request, input search.Input) {
	res, err := h.svc.Search(r.Context(), identity(r), input)
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	resp := searchResponse{
		Entries:   make([]entryResponse, len(res.Entries)),
		NoResults: res.NoResults,
	}
	for i := range res.Entries {
		resp.Entries[i] = toEntryResponse(&res.Entries[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Tags handles GET /api/tags.
func (h *SearchHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context(), identity(r))
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

func splitFields(values []string) []string {
	var out []string
	for _, v := range values {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}
