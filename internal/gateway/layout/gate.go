// Package layout holds the role gate and navigation shared by every
// dashboard page.
package layout

import (
	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
)

// GateState is the outcome of evaluating a gate. Every evaluation starts
// from Unknown and makes exactly one transition.
type GateState int

const (
	GateUnknown GateState = iota
	GateDenied
	GateAllowed
	// GateAnonymous is a denial because nobody is signed in
	GateAnonymous
)

func (s GateState) String() string {
	switch s {
	case GateDenied:
		return "denied"
	case GateAllowed:
		return "allowed"
	case GateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Gate admits the listed roles
type Gate struct {
	Allowed []domain.Role
}

func NewGate(roles ...domain.Role) Gate {
	return Gate{Allowed: roles}
}

// Evaluate decides the gate for state
func (g Gate) Evaluate(state domain.AuthState) GateState {
	switch {
	case !state.IsAuthenticated:
		return GateAnonymous
	case state.HasRole(g.Allowed...):
		return GateAllowed
	default:
		return GateDenied
	}
}

var (
	AllRoles     = NewGate(domain.Roles...)
	UsersGate    = NewGate(domain.RoleSuperAdmin)
	ArtistsGate  = NewGate(domain.RoleSuperAdmin, domain.RoleArtistManager)
	ManagersGate = NewGate(domain.RoleSuperAdmin)
	MusicGate    = NewGate(domain.RoleSuperAdmin, domain.RoleArtist)
	ProfileGate  = NewGate(domain.RoleArtist, domain.RoleArtistManager)
)
