package domain

// Identity is the resolved owner of a session. It is either a Session or an
// Impersonation; no other implementations exist.
type Identity interface {
	UserID() int
	Role() Role
	identity()
}

// Session is a normal login of UserID.
type Session struct {
	ID   int
	Kind Role
}

func NewSession(userID int, role Role) Session {
	return Session{ID: userID, Kind: role}
}

func (s Session) UserID() int { return s.ID }
func (s Session) Role() Role  { return s.Kind }
func (Session) identity()     {}

// Impersonation grants the target user's view while keeping the real
// administrator on record.
type Impersonation struct {
	Target    Session
	AdminID   int
	AdminRole Role
}

func NewImpersonation(target Session, adminID int, adminRole Role) Impersonation {
	return Impersonation{Target: target, AdminID: adminID, AdminRole: adminRole}
}

func (i Impersonation) UserID() int { return i.Target.ID }
func (i Impersonation) Role() Role  { return i.Target.Kind }
func (Impersonation) identity()     {}

// Provenance returns the acting administrator behind id, if any.
func Provenance(id Identity) (adminID int, adminRole Role, ok bool) {
	imp, ok := id.(Impersonation)
	if !ok {
		return 0, "", false
	}
	return imp.AdminID, imp.AdminRole, true
}
