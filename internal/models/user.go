package models

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleStoreManager UserRole = "store_manager"
	RoleStaff        UserRole = "staff"
)

// User: Password holds a bcrypt hash, never the cleartext.
// Store binds a staff user to one store; admins are unbound.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      UserRole  `json:"role"`
	Store     string    `json:"store,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
