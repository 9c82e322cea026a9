package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the identity a request acts under. Services take it explicitly
// instead of reading ambient session state.
type Actor struct {
	ID      int64
	IsStaff bool
}

func (u *User) Actor() Actor {
	return Actor{ID: u.ID, IsStaff: u.Role == RoleStaff}
}
