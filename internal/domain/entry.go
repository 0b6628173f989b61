package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCodeLanguage is used when generated code carries no language tag.
const DefaultCodeLanguage = "plaintext"

// Entry is a registered "word → explanation" study record.
// The pair (Word, TagID) is unique across all entries.
type Entry struct {
	ID           int64
	Word         string
	Details      string
	TagID        int64
	TagName      string // populated by reads that join the tag
	Summary      string
	Code         string
	CodeLanguage string
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Draft is the ephemeral result of optional generation, waiting for human
// confirmation. It lives in the draft store under Token and is never
// written to the entries table as is.
type Draft struct {
	Token        string    `json:"token"`
	UserID       uuid.UUID `json:"user_id"`
	Word         string    `json:"word"`
	Details      string    `json:"details"`
	TagID        int64     `json:"tag_id"`
	TagName      string    `json:"tag_name"`
	Summary      string    `json:"summary"`
	Code         string    `json:"code"`
	CodeLanguage string    `json:"code_language"`
	CreatedAt    time.Time `json:"created_at"`
}
