package model

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// roleLevels defines the total ordering member < trainer < admin.
var roleLevels = map[Role]int{
	RoleMember:  1,
	RoleTrainer: 2,
	RoleAdmin:   3,
}

// ParseRole maps a transport-level string onto the closed role set.
// Unknown values are rejected here, at the boundary, not at comparison time.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if _, ok := roleLevels[r]; !ok {
		return "", false
	}
	return r, true
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants at least the access level of min.
// Unknown roles on either side always compare as insufficient.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevels[r]
	minLevel, minOK := roleLevels[min]
	if !ok || !minOK {
		return false
	}
	return level >= minLevel
}
