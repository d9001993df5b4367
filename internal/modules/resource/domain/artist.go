package domain

// ArtistProfile belongs to a user with the artist role. ManagerID is a weak
// reference to a ManagerProfile.
type ArtistProfile struct {
	ID                 int     `json:"id"`
	UserID             int     `json:"user_id"`
	Name               string  `json:"name"`
	DateOfBirth        *string `json:"date_of_birth"`
	Gender             *string `json:"gender"`
	Address            *string `json:"address"`
	FirstReleaseYear   *int    `json:"first_release_year"`
	NoOfAlbumsReleased int     `json:"no_of_albums_released"`
	ManagerID          *int    `json:"manager_id_id"`
}

func (a ArtistProfile) ItemID() int { return a.ID }

func (a ArtistProfile) Fields() map[string]any {
	return map[string]any{
		"id":                    a.ID,
		"user_id":               a.UserID,
		"name":                  a.Name,
		"date_of_birth":         deref(a.DateOfBirth),
		"gender":                deref(a.Gender),
		"address":               deref(a.Address),
		"first_release_year":    deref(a.FirstReleaseYear),
		"no_of_albums_released": a.NoOfAlbumsReleased,
		"manager_id_id":         deref(a.ManagerID),
	}
}

// ManagedBy reports whether the artist is linked to manager profile id
func (a ArtistProfile) ManagedBy(managerID int) bool {
	return a.ManagerID != nil && *a.ManagerID == managerID
}

// ArtistInput is the create/update payload
type ArtistInput struct {
	UserID             int     `json:"user_id,omitempty"`
	Name               string  `json:"name"`
	DateOfBirth        *string `json:"date_of_birth"`
	Gender             *string `json:"gender"`
	Address            *string `json:"address"`
	FirstReleaseYear   *int    `json:"first_release_year"`
	NoOfAlbumsReleased int     `json:"no_of_albums_released"`
	ManagerID          *int    `json:"manager_id_id"`
}

// deref turns typed nil pointers into untyped nil so cell rendering sees absence
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
