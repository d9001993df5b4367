package domain

import (
	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	resourceDomain "github.com/saransh1220/artist-console/internal/modules/resource/domain"
)

// Capabilities are the row actions a role has on a kind
type Capabilities struct {
	Edit   bool
	Delete bool
}

type grant struct {
	role authDomain.Role
	kind resourceDomain.Kind
}

// Explicit sets rather than a role hierarchy: a manager may edit artists but
// never delete them.
var (
	editGrants = map[grant]bool{
		{authDomain.RoleArtistManager, resourceDomain.KindArtist}: true,
		{authDomain.RoleArtist, resourceDomain.KindMusic}:         true,
	}
	// Deleting is otherwise super_admin only. Artists may remove their own
	// songs, which is all the music table shows them.
	deleteGrants = map[grant]bool{
		{authDomain.RoleArtist, resourceDomain.KindMusic}: true,
	}
	createGrants = map[grant]bool{
		{authDomain.RoleArtistManager, resourceDomain.KindArtist}: true,
		{authDomain.RoleArtist, resourceDomain.KindMusic}:         true,
	}
)

// Permit computes the row capabilities of role on kind
func Permit(role authDomain.Role, kind resourceDomain.Kind) Capabilities {
	if role == authDomain.RoleSuperAdmin {
		return Capabilities{Edit: true, Delete: true}
	}
	g := grant{role, kind}
	return Capabilities{Edit: editGrants[g], Delete: deleteGrants[g]}
}

// CanCreate reports whether role may add items of kind from the table page
func CanCreate(role authDomain.Role, kind resourceDomain.Kind) bool {
	return role == authDomain.RoleSuperAdmin || createGrants[grant{role, kind}]
}
