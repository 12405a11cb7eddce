package access

// Actor is the authenticated identity behind a request, resolved once
// from a verified token. SalonID is nil only for super admins.
type Actor struct {
	ID       uint
	Email    string
	Role     Role
	SalonID  *uint
	IsActive bool
}

// Subject is the slice of a target user that scoping decisions need.
type Subject struct {
	ID      uint
	Role    Role
	SalonID *uint
}

func (a Actor) InSalon(salonID uint) bool {
	return a.SalonID != nil && *a.SalonID == salonID
}

// CanAccessSalon: super admins see every salon, everyone else only
// their own.
func CanAccessSalon(actor Actor, salonID uint) bool {
	if actor.Role == RoleSuperAdmin {
		return true
	}
	return actor.InSalon(salonID)
}

// CanModifySalon: super admins may modify any salon, admins only their
// own.
func CanModifySalon(actor Actor, salonID uint) bool {
	if actor.Role == RoleSuperAdmin {
		return true
	}
	return actor.Role == RoleAdmin && actor.InSalon(salonID)
}

func CanAccessUser(actor Actor, target Subject) bool {
	if actor.Role == RoleSuperAdmin {
		return true
	}
	return sameSalon(actor.SalonID, target.SalonID)
}

// CanModifyUser is stricter than CanAccessUser: a super admin may
// modify anyone except another super admin (themself excepted); other
// actors must share the target's salon and outrank the target per the
// role hierarchy.
func CanModifyUser(actor Actor, target Subject) bool {
	if actor.Role == RoleSuperAdmin {
		return target.Role != RoleSuperAdmin || actor.ID == target.ID
	}

	if !sameSalon(actor.SalonID, target.SalonID) {
		return false
	}

	switch actor.Role {
	case RoleAdmin:
		return target.Role == RoleReceptionist || target.Role == RoleStylist
	case RoleReceptionist:
		return target.Role == RoleStylist
	}

	return false
}

func sameSalon(a, b *uint) bool {
	return a != nil && b != nil && *a == *b
}
