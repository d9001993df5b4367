package application

import (
	"strconv"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/management/domain"
	resourceDomain "github.com/saransh1220/artist-console/internal/modules/resource/domain"
)

// Column describes one table column. Render overrides the default cell
// policy and receives the per-render lookup.
type Column[T domain.Item] struct {
	Key    string
	Label  string
	Render func(item T, lookup domain.Lookup) string
}

// Config is the table configuration of one kind
type Config[T domain.Item] struct {
	Kind        resourceDomain.Kind
	Title       string
	CreateLabel string
	Singular    string
	Noun        string
	Columns     []Column[T]
	Search      func(item T, lookup domain.Lookup) []string
}

// Cell renders column c of item
func (c Column[T]) Cell(item T, lookup domain.Lookup) string {
	if c.Render != nil {
		return c.Render(item, lookup)
	}
	return domain.FormatCell(c.Key, item.Fields()[c.Key])
}

func Users() Config[resourceDomain.User] {
	return Config[resourceDomain.User]{
		Kind:        resourceDomain.KindUser,
		Title:       "Users",
		CreateLabel: "Add User",
		Singular:    "User",
		Noun:        "users",
		Columns: []Column[resourceDomain.User]{
			{Key: "email", Label: "Email"},
			{Key: "role", Label: "Role", Render: func(u resourceDomain.User, _ domain.Lookup) string {
				if r, err := authDomain.ParseRole(u.Role); err == nil {
					return r.Label()
				}
				return domain.FormatCell("role", u.Role)
			}},
			{Key: "is_active", Label: "Active"},
		},
		Search: func(u resourceDomain.User, _ domain.Lookup) []string {
			return []string{u.Email}
		},
	}
}

func Artists() Config[resourceDomain.ArtistProfile] {
	return Config[resourceDomain.ArtistProfile]{
		Kind:        resourceDomain.KindArtist,
		Title:       "Artists",
		CreateLabel: "Add Artist",
		Singular:    "Artist",
		Noun:        "artists",
		Columns: []Column[resourceDomain.ArtistProfile]{
			{Key: "name", Label: "Name"},
			{Key: "gender", Label: "Gender"},
			{Key: "date_of_birth", Label: "Date of Birth"},
			{Key: "first_release_year", Label: "First Release"},
			{Key: "no_of_albums_released", Label: "Albums"},
			{Key: "manager_id_id", Label: "Manager", Render: func(a resourceDomain.ArtistProfile, l domain.Lookup) string {
				return l.Name(a.ManagerID)
			}},
		},
		Search: func(a resourceDomain.ArtistProfile, l domain.Lookup) []string {
			fields := []string{a.Name}
			if a.ManagerID != nil {
				fields = append(fields, l[*a.ManagerID])
			}
			return fields
		},
	}
}

func Managers() Config[resourceDomain.ManagerProfile] {
	return Config[resourceDomain.ManagerProfile]{
		Kind:        resourceDomain.KindManager,
		Title:       "Managers",
		CreateLabel: "Add Manager",
		Singular:    "Manager",
		Noun:        "managers",
		Columns: []Column[resourceDomain.ManagerProfile]{
			{Key: "name", Label: "Name"},
			{Key: "company_name", Label: "Company"},
			{Key: "company_email", Label: "Company Email"},
			{Key: "company_phone", Label: "Company Phone"},
			{Key: "gender", Label: "Gender"},
			{Key: "date_of_birth", Label: "Date of Birth"},
		},
		Search: func(m resourceDomain.ManagerProfile, _ domain.Lookup) []string {
			return []string{m.Name}
		},
	}
}

// Songs is the music table. The lookup resolves artist profile ids.
func Songs() Config[resourceDomain.Music] {
	return Config[resourceDomain.Music]{
		Kind:        resourceDomain.KindMusic,
		Title:       "Music",
		CreateLabel: "Add Song",
		Singular:    "Song",
		Noun:        "songs",
		Columns: []Column[resourceDomain.Music]{
			{Key: "title", Label: "Title"},
			{Key: "album_name", Label: "Album"},
			{Key: "genre", Label: "Genre"},
			{Key: "release_date", Label: "Release Date"},
			{Key: "created_by_id", Label: "Artist", Render: func(m resourceDomain.Music, l domain.Lookup) string {
				if name, ok := l[m.CreatedByID]; ok {
					return name
				}
				return "#" + strconv.Itoa(m.CreatedByID)
			}},
		},
		Search: func(m resourceDomain.Music, _ domain.Lookup) []string {
			return []string{m.Title, m.AlbumName}
		},
	}
}
