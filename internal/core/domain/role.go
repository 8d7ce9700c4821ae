package domain

// Role is a named privilege tier. The set is closed: the backend may send
// arbitrary strings, but everything outside the known set collapses to
// RoleStaff before it reaches an authorization or navigation decision.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// DefaultRole is the tier assigned when a profile carries a missing or
// unrecognised role. It is the lowest-privilege tier.
const DefaultRole = RoleStaff

// ParseRole maps a raw role string to a member of the closed set. The second
// return value reports whether the input was recognised; on false the result
// is DefaultRole.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleOwner, RoleManager, RoleStaff:
		return Role(s), true
	}
	return DefaultRole, false
}

// Member reports whether r is in the given set. An empty set matches nothing;
// callers that treat "no constraint" specially do so before calling Member.
func (r Role) Member(set []Role) bool {
	for _, candidate := range set {
		if r == candidate {
			return true
		}
	}
	return false
}
