package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleManager  UserRole = "MANAGER"
	RoleVendor   UserRole = "VENDOR"
	RoleAdmin    UserRole = "ADMIN"
)

// ParseUserRole validates a role string coming from a registration request.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleCustomer, RoleManager, RoleVendor, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

func ValidUserRoles() []UserRole {
	return []UserRole{RoleCustomer, RoleManager, RoleVendor, RoleAdmin}
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VendorProfile is the empty storefront created alongside a user who
// registers with the VENDOR role. It gets filled in later from the vendor
// dashboard.
type VendorProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}
