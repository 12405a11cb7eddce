package access

// Role of a staff user. The set is closed; anything else is rejected
// at the boundary.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleStylist      Role = "stylist"
)

// hierarchy maps a role to the roles it may create or manage. Loaded
// once, never mutated. This table is the single source of truth for
// role authority; no entity or handler carries its own copy.
var hierarchy = map[Role][]Role{
	RoleSuperAdmin:   {RoleAdmin, RoleReceptionist, RoleStylist},
	RoleAdmin:        {RoleReceptionist, RoleStylist},
	RoleReceptionist: {RoleStylist},
	RoleStylist:      {},
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleReceptionist, RoleStylist:
		return Role(s), true
	}
	return "", false
}

// CanCreateRole reports whether creator may create or manage a user
// holding target. Pure and total: it never consults persisted state.
func CanCreateRole(creator, target Role) bool {
	if creator == RoleSuperAdmin {
		return true
	}
	for _, r := range hierarchy[creator] {
		if r == target {
			return true
		}
	}
	return false
}
