package domain

import "time"

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleDealer = "dealer"
)

// ValidRole reports whether role is one of the three account types.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleDealer
}

// User models an authenticated actor in the system. DealerID links a
// dealer-role account to the dealership it manages; it is zero for every
// other role.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"user_type"`
	DealerID     int       `json:"dealer_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Normalize enforces the dealer-association invariant: only dealer accounts
// carry a dealer id.
func (u *User) Normalize() {
	if u.Role != RoleDealer {
		u.DealerID = 0
	}
}

// CanEditDealer reports whether the user may mutate the given dealership.
// Admins may edit any dealer; a dealer account only its own.
func (u *User) CanEditDealer(dealerID int) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleDealer && u.DealerID == dealerID
}
