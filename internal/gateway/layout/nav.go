package layout

import "github.com/saransh1220/artist-console/internal/modules/auth/domain"

// NavItem is one sidebar link
type NavItem struct {
	Label  string
	Path   string
	Gate   Gate
	Active bool
}

var navigation = []NavItem{
	{Label: "Home", Path: "/dashboard", Gate: AllRoles},
	{Label: "Users", Path: "/dashboard/users", Gate: UsersGate},
	{Label: "Artists", Path: "/dashboard/artists", Gate: ArtistsGate},
	{Label: "Managers", Path: "/dashboard/managers", Gate: ManagersGate},
	{Label: "Music", Path: "/dashboard/music", Gate: MusicGate},
	{Label: "My Profile", Path: "/dashboard/profile", Gate: ProfileGate},
}

// Navigation returns the links the caller may follow, marking the one
// matching current
func Navigation(state domain.AuthState, current string) []NavItem {
	var out []NavItem
	for _, item := range navigation {
		if item.Gate.Evaluate(state) != GateAllowed {
			continue
		}
		item.Active = item.Path == current
		out = append(out, item)
	}
	return out
}
