package domain

// Role is the caller's role claim
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleArtistManager Role = "artist_manager"
	RoleArtist        Role = "artist"
)

// Roles lists every known role
var Roles = []Role{RoleSuperAdmin, RoleArtistManager, RoleArtist}

// ParseRole maps a claim string onto a known role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleArtistManager, RoleArtist:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Label is the human readable role name
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleArtistManager:
		return "Artist Manager"
	case RoleArtist:
		return "Artist"
	}
	return string(r)
}

// Registrable reports whether visitors may sign up with this role
func (r Role) Registrable() bool {
	return r == RoleArtist || r == RoleArtistManager
}

// In reports whether r is one of roles
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
