package entity

import "time"

// UserType classifies an account on the storefront.
type UserType string

// Supported user types.
const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeAdmin  UserType = "admin"
	UserTypeGuest  UserType = "guest"
)

// UserProfile mirrors an identity-provider account with storefront metadata.
type UserProfile struct {
	UID         string    `json:"uid"` // Identity-provider uid, primary key.
	Email       *string   `json:"email"`
	DisplayName *string   `json:"displayName"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	UserType    UserType  `json:"userType"`
	CreatedAt   time.Time `json:"createdAt"`
}
