package domain

import "time"

// Tag is a vocabulary label entries are grouped under.
// Names are unique case-insensitively.
type Tag struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
