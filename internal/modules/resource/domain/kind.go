package domain

import "fmt"

// Kind is one of the managed resource kinds
type Kind string

const (
	KindUser    Kind = "user"
	KindArtist  Kind = "artist"
	KindManager Kind = "manager"
	KindMusic   Kind = "music"
)

// Kinds lists every kind in display order
var Kinds = []Kind{KindUser, KindArtist, KindManager, KindMusic}

// ParseKind accepts a kind name or its dashboard route segment
func ParseKind(s string) (Kind, error) {
	switch s {
	case "user", "users":
		return KindUser, nil
	case "artist", "artists":
		return KindArtist, nil
	case "manager", "managers":
		return KindManager, nil
	case "music", "songs":
		return KindMusic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Collection is the backend path segment for the kind
func (k Kind) Collection() string {
	switch k {
	case KindUser:
		return "users"
	case KindArtist:
		return "artists"
	case KindManager:
		return "manager-profile"
	case KindMusic:
		return "music"
	}
	panic("unknown kind " + string(k))
}

// Segment is the dashboard route segment for the kind
func (k Kind) Segment() string {
	switch k {
	case KindUser:
		return "users"
	case KindArtist:
		return "artists"
	case KindManager:
		return "managers"
	case KindMusic:
		return "music"
	}
	panic("unknown kind " + string(k))
}

// ListPath is the collection path, e.g. "artists/"
func (k Kind) ListPath() string {
	return k.Collection() + "/"
}

// ItemPath is the detail path, e.g. "artists/4/"
func (k Kind) ItemPath(id int) string {
	return fmt.Sprintf("%s/%d/", k.Collection(), id)
}

// OwnerPath looks a profile up by its user id, e.g. "artists/user/7/"
func (k Kind) OwnerPath(userID int) string {
	return fmt.Sprintf("%s/user/%d/", k.Collection(), userID)
}
