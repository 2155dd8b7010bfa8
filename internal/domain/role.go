package domain

import "fmt"

type Role string

const (
	RoleMember     Role = "MEMBER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleMember, RoleAdmin, RoleSuperAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) level() int {
	switch r {
	case RoleMember:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// CanAdminister reports whether the role may use administrative endpoints.
func CanAdminister(r Role) bool {
	return r.level() >= RoleAdmin.level()
}

// CanImpersonate reports whether actor may assume an identity holding target.
// Administrators may only assume strictly lower roles, and a super-administrator
// is never assumed.
func CanImpersonate(actor, target Role) bool {
	if !CanAdminister(actor) || !target.Valid() || target == RoleSuperAdmin {
		return false
	}
	return actor.level() > target.level()
}
