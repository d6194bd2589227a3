package domain

// Role is the caller's role as reported by the user directory.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// IsClinicStaff reports whether the role grants clinic-wide visibility.
func (r Role) IsClinicStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// ViewerScope is the explicit visibility scope passed into every read path.
// Owner scope carries the owner's user id; staff and admin scopes see the
// whole clinic. There is no ambient current-user state anywhere below the
// HTTP layer.
type ViewerScope struct {
	Role   Role
	UserID int64 // the calling user; constrains reads only for owner scope
}

func OwnerScope(userID int64) ViewerScope {
	return ViewerScope{Role: RoleOwner, UserID: userID}
}

func StaffScope(userID int64) ViewerScope {
	return ViewerScope{Role: RoleStaff, UserID: userID}
}

func AdminScope(userID int64) ViewerScope {
	return ViewerScope{Role: RoleAdmin, UserID: userID}
}

// SeesAllReservations reports whether the scope covers reservations of all
// users, not just the caller's own.
func (s ViewerScope) SeesAllReservations() bool {
	return s.Role.IsClinicStaff()
}
