package domain

import "strings"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// RoleFromAdminFlag maps the admin checkbox of the account forms to a role.
func RoleFromAdminFlag(isAdmin bool) UserRole {
	if isAdmin {
		return UserRoleAdmin
	}
	return UserRoleUser
}

// MatchMode selects how a keyword is compared against a column.
type MatchMode string

const (
	// MatchExact is case-sensitive equality.
	MatchExact MatchMode = "exact"
	// MatchPartial is case-insensitive substring containment.
	MatchPartial MatchMode = "partial"
)

func (m MatchMode) String() string { return string(m) }

func (m MatchMode) IsValid() bool {
	switch m {
	case MatchExact, MatchPartial:
		return true
	}
	return false
}

// ParseMatchMode parses a match mode, defaulting to partial for an empty
// string.
func ParseMatchMode(s string) (MatchMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MatchPartial, true
	}
	m := MatchMode(s)
	return m, m.IsValid()
}

// SearchField is one of the entry columns a keyword can target.
type SearchField string

const (
	SearchFieldWord    SearchField = "word"
	SearchFieldDetails SearchField = "details"
	SearchFieldSummary SearchField = "summary"
	SearchFieldCode    SearchField = "code"
)

// AllSearchFields lists every searchable field in a stable order.
var AllSearchFields = []SearchField{
	SearchFieldWord,
	SearchFieldDetails,
	SearchFieldSummary,
	SearchFieldCode,
}

func (f SearchField) String() string { return string(f) }

func (f SearchField) IsValid() bool {
	switch f {
	case SearchFieldWord, SearchFieldDetails, SearchFieldSummary, SearchFieldCode:
		return true
	}
	return false
}
