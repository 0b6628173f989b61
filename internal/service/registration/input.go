package registration

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const (
	maxWordLength    = 200
	maxDetailsLength = 5000
)

// DraftInput holds the parameters for requesting a draft.
type DraftInput struct {
	Word        string
	Details     string
	TagID       int64
	WantSummary bool
	WantCode    bool
}

// Validate checks all fields and collects all errors.
func (i DraftInput) Validate() error {
	return validateCore(i.Word, i.Details, i.TagID)
}

// CommitInput holds the parameters for committing an entry. With a
// DraftToken the drafted values are used and any non-empty field here
// overrides its drafted counterpart. Without one, Word, Details and TagID
// are required.
type CommitInput struct {
	DraftToken   string
	Word         string
	Details      string
	TagID        int64
	Summary      string
	Code         string
	CodeLanguage string
}

// merge overlays the non-empty fields of the input on a draft.
func (i CommitInput) merge(d *domain.Draft) CommitInput {
	out := CommitInput{
		DraftToken:   i.DraftToken,
		Word:         d.Word,
		Details:      d.Details,
		TagID:        d.TagID,
		Summary:      d.Summary,
		Code:         d.Code,
		CodeLanguage: d.CodeLanguage,
	}
	if strings.TrimSpace(i.Word) != "" {
		out.Word = i.Word
	}
	if strings.TrimSpace(i.Details) != "" {
		out.Details = i.Details
	}
	if i.TagID != 0 {
		out.TagID = i.TagID
	}
	if i.Summary != "" {
		out.Summary = i.Summary
	}
	if i.Code != "" {
		out.Code = i.Code
	}
	if i.CodeLanguage != "" {
		out.CodeLanguage = i.CodeLanguage
	}
	return out
}

// Validate checks all fields and collects all errors.
func (i CommitInput) Validate() error {
	return validateCore(i.Word, i.Details, i.TagID)
}

// EditInput holds the parameters for editing a committed entry. Nil
// Summary, Code or CodeLanguage keep the stored value.
type EditInput struct {
	Word         string
	Details      string
	TagID        int64
	Summary      *string
	Code         *string
	CodeLanguage *string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	return validateCore(i.Word, i.Details, i.TagID)
}

func validateCore(word, details string, tagID int64) error {
	var errs []domain.FieldError

	w := domain.NormalizeWord(word)
	if w == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if utf8.RuneCountInString(w) > maxWordLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 200 characters"})
	}

	d := strings.TrimSpace(details)
	if d == "" {
		errs = append(errs, domain.FieldError{Field: "details", Message: "required"})
	} else if utf8.RuneCountInString(d) > maxDetailsLength {
		errs = append(errs, domain.FieldError{Field: "details", Message: "max 5000 characters"})
	}

	if tagID <= 0 {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
