package authz

// Role values stored on accounts and embedded into tokens.
const (
	RoleUser      = "user"
	RoleBusiness  = "business"
	RoleAdmin     = "admin"
	RoleSuperUser = "super_user"
)

// Account-type tag: which login surface issued the token.
const (
	TypeAccountNormal   = "normal"
	TypeAccountBusiness = "business"
)

func IsManager(role string) bool {
	return role == RoleBusiness || role == RoleAdmin || role == RoleSuperUser
}

func IsAdmin(role string) bool {
	return role == RoleAdmin || role == RoleSuperUser
}
