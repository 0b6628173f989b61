package rest

import (
	"time"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

type entryResponse struct {
	ID           int64     `json:"id"`
	Word         string    `json:"word"`
	Details      string    `json:"details"`
	TagID        int64     `json:"tagId"`
	TagName      string    `json:"tagName"`
	Summary      string    `json:"summary"`
	Code         string    `json:"code"`
	CodeLanguage string    `json:"codeLanguage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:           e.ID,
		Word:         e.Word,
		Details:      e.Details,
		TagID:        e.TagID,
		TagName:      e.TagName,
		Summary:      e.Summary,
		Code:         e.Code,
		CodeLanguage: e.CodeLanguage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type draftResponse struct {
	Token        string `json:"token"`
	Word         string `json:"word"`
	Details      string `json:"details"`
	TagID        int64  `json:"tagId"`
	TagName      string `json:"tagName"`
	Summary      string `json:"summary"`
	Code         string `json:"code"`
	CodeLanguage string `json:"codeLanguage"`
}

func toDraftResponse(d *domain.Draft) draftResponse {
	return draftResponse{
		Token:        d.Token,
		Word:         d.Word,
		Details:      d.Details,
		TagID:        d.TagID,
		TagName:      d.TagName,
		Summary:      d.Summary,
		Code:         d.Code,
		CodeLanguage: d.CodeLanguage,
	}
}

type tagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = tagResponse{ID: t.ID, Name: t.Name}
	}
	return out
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role.String(),
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}

type identityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"isAdmin"`
}

func toIdentityResponse(id domain.Identity) identityResponse {
	return identityResponse{
		ID:       id.UserID.String(),
		Username: id.Username,
		Role:     id.Role.String(),
		IsAdmin:  id.IsAdmin(),
	}
}
