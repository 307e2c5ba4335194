package user

import "time"

// Role tags the three account variants sharing the users table. Endpoints
// dispatch on the tag explicitly instead of behaving differently behind a
// shared polymorphic surface.
type Role string

const (
	RoleCompany Role = "C"
	RoleWorker  Role = "W"
	RoleAdmin   Role = "A"
)

var RoleValues = []string{
	string(RoleCompany),
	string(RoleWorker),
	string(RoleAdmin),
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCompany reports whether the account is a company owner account.
func (u *User) IsCompany() bool {
	return u.Role == RoleCompany
}

// IsWorker reports whether the account is a hired worker account.
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
