package entity

import "time"

// AdminRole distinguishes the allow-list tiers.
type AdminRole string

// Admin roles.
const (
	AdminRolePrimary   AdminRole = "primary"
	AdminRoleSecondary AdminRole = "secondary"
)

// Admin is an entry on the administrator allow-list, keyed by email.
type Admin struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId,omitempty"` // Identity-provider uid, when known.
	Email   string    `json:"email"`            // Unique within the allow-list.
	Role    AdminRole `json:"role"`
	AddedAt time.Time `json:"addedAt"`
}
