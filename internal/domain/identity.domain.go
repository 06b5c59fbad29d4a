package domain

import "time"

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

type Identity struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Email     string    `json:"email"`
	Secret    string    `json:"-"` // plain text, demo only
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredSession is the single record persisted across restarts, kept under a
// fixed key in the session store. IdentityID is empty for a signup started
// without logging in.
type StoredSession struct {
	IdentityID string `json:"identity_id"`
	Role       Role   `json:"role"`
}
