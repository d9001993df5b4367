package domain

// Genre is a music genre accepted by the backend
type Genre string

const (
	GenreRnB     Genre = "rnb"
	GenreCountry Genre = "country"
	GenreClassic Genre = "classic"
	GenreRock    Genre = "rock"
	GenreJazz    Genre = "jazz"
	GenrePop     Genre = "pop"
)

// Genres lists every genre in display order
var Genres = []Genre{GenreRnB, GenreCountry, GenreClassic, GenreRock, GenreJazz, GenrePop}

// Genders lists the choices offered on profile forms
var Genders = []string{"male", "female", "other"}

// Valid reports whether g is a known genre
func (g Genre) Valid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

// Music is a song owned by an artist profile. CreatedByID is the
// ArtistProfile id, not the user id.
type Music struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	AlbumName   string  `json:"album_name"`
	Genre       Genre   `json:"genre"`
	ReleaseDate *string `json:"release_date"`
	CreatedByID int     `json:"created_by_id"`
}

func (m Music) ItemID() int { return m.ID }

func (m Music) Fields() map[string]any {
	return map[string]any{
		"id":            m.ID,
		"title":         m.Title,
		"album_name":    m.AlbumName,
		"genre":         string(m.Genre),
		"release_date":  deref(m.ReleaseDate),
		"created_by_id": m.CreatedByID,
	}
}

// MusicInput is the create/update payload
type MusicInput struct {
	Title       string  `json:"title"`
	AlbumName   string  `json:"album_name"`
	Genre       Genre   `json:"genre"`
	ReleaseDate *string `json:"release_date"`
	CreatedByID int     `json:"created_by_id,omitempty"`
}
