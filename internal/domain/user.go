package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application account.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// Identity is the authenticated session identity passed explicitly into
// every workflow call.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     UserRole
}

// IsAdmin reports whether the identity holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// IsAnonymous reports whether the identity is the zero value.
func (i Identity) IsAnonymous() bool {
	return i.UserID == uuid.Nil
}

// UserUpdateParams describes an account edit. A nil PasswordHash keeps
// the stored hash.
type UserUpdateParams struct {
	Username     string
	Role         UserRole
	PasswordHash *string
}
