package model

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

func RoleFromString(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
