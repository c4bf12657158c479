package domain

type UserRole string

const (
	RoleBuyer  UserRole = "BUYER"
	RoleSeller UserRole = "SELLER"
	RoleAdmin  UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

type User struct {
	ID       uint64
	Email    string
	Password string
	Name     string
	Role     UserRole
}
