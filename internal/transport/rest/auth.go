package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/service/auth"
)

type authService interface {
	Signup(ctx context.Context, in auth.Credentials) (*domain.User, error)
	Login(ctx context.Context, in auth.Credentials) (*auth.Session, error)
}

// AuthHandler serves sign-up and login.
type AuthHandler struct {
	svc  authService
	errs errorMapper
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger, landingPath string) *AuthHandler {
	return &AuthHandler{
		svc:  svc,
		errs: errorMapper{log: logger.With("handler", "auth"), landingPath: landingPath},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string           `json:"accessToken"`
	TokenType   string           `json:"tokenType"`
	ExpiresIn   int64            `json:"expiresIn"`
	User        identityResponse `json:"user"`
	LandingPath string           `json:"landingPath"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Signup(r.Context(), auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.Login(r.Context(), auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		h.errs.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ExpiresIn.Seconds()),
		User:        toIdentityResponse(s.Identity),
		LandingPath: s.LandingPath,
	})
}

// LoginRequired handles GET /api/auth/login, where the gate sends
// anonymous requests.
func (h *AuthHandler) LoginRequired(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusUnauthorized, "login required: POST username and password to this path")
}
