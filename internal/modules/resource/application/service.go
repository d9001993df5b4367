package application

import (
	"context"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"go.uber.org/zap"
)

// Service groups the four resources and the role-aware queries built on them
type Service struct {
	Users    *Resource[domain.User]
	Artists  *Resource[domain.ArtistProfile]
	Managers *Resource[domain.ManagerProfile]
	Songs    *Resource[domain.Music]

	logger *zap.Logger
}

func NewService(backend Backend, cache *Cache, logger *zap.Logger) *Service {
	return &Service{
		Users:    NewResource[domain.User](domain.KindUser, backend, cache),
		Artists:  NewResource[domain.ArtistProfile](domain.KindArtist, backend, cache),
		Managers: NewResource[domain.ManagerProfile](domain.KindManager, backend, cache),
		Songs:    NewResource[domain.Music](domain.KindMusic, backend, cache),
		logger:   logger.Named("resource"),
	}
}

// MyUser returns the caller's own account
func (s *Service) MyUser(ctx context.Context, sess *authDomain.Session) (*domain.User, error) {
	uid, ok := sess.UserID()
	if !ok {
		return nil, nil
	}
	return s.Users.Get(ctx, sess, uid)
}

// MyArtistProfile returns the caller's artist profile. Callers without the
// artist role get nil, not an error.
func (s *Service) MyArtistProfile(ctx context.Context, sess *authDomain.Session) (*domain.ArtistProfile, error) {
	uid, ok := ownerOf(sess, authDomain.RoleArtist)
	if !ok {
		return nil, nil
	}
	return s.Artists.ByOwner(ctx, sess, uid)
}

// MyManagerProfile returns the caller's manager profile, nil for other roles
func (s *Service) MyManagerProfile(ctx context.Context, sess *authDomain.Session) (*domain.ManagerProfile, error) {
	uid, ok := ownerOf(sess, authDomain.RoleArtistManager)
	if !ok {
		return nil, nil
	}
	return s.Managers.ByOwner(ctx, sess, uid)
}

func ownerOf(sess *authDomain.Session, role authDomain.Role) (int, bool) {
	r, ok := sess.Role()
	if !ok || r != role {
		return 0, false
	}
	return sess.UserID()
}

// MyMusic returns the songs created by the caller's artist profile
func (s *Service) MyMusic(ctx context.Context, sess *authDomain.Session) ([]domain.Music, error) {
	profile, err := s.MyArtistProfile(ctx, sess)
	if err != nil || profile == nil {
		return []domain.Music{}, err
	}
	songs, err := s.Songs.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return filter(songs, func(m domain.Music) bool { return m.CreatedByID == profile.ID }), nil
}

// VisibleArtists is the artist list scoped to the caller: everything for a
// super admin, the manager's own artists for a manager, the artist's own
// profile for an artist.
func (s *Service) VisibleArtists(ctx context.Context, sess *authDomain.Session) ([]domain.ArtistProfile, error) {
	role, _ := sess.Role()
	switch role {
	case authDomain.RoleSuperAdmin:
		return s.Artists.List(ctx, sess)

	case authDomain.RoleArtistManager:
		mine, err := s.MyManagerProfile(ctx, sess)
		if err != nil {
			return nil, err
		}
		if mine == nil {
			return []domain.ArtistProfile{}, nil
		}
		all, err := s.Artists.List(ctx, sess)
		if err != nil {
			return nil, err
		}
		return filter(all, func(a domain.ArtistProfile) bool { return a.ManagedBy(mine.ID) }), nil

	case authDomain.RoleArtist:
		mine, err := s.MyArtistProfile(ctx, sess)
		if err != nil || mine == nil {
			return []domain.ArtistProfile{}, err
		}
		return []domain.ArtistProfile{*mine}, nil
	}
	return []domain.ArtistProfile{}, nil
}

// VisibleMusic is the song list scoped to the caller
func (s *Service) VisibleMusic(ctx context.Context, sess *authDomain.Session) ([]domain.Music, error) {
	role, _ := sess.Role()
	switch role {
	case authDomain.RoleSuperAdmin:
		return s.Songs.List(ctx, sess)

	case authDomain.RoleArtist:
		return s.MyMusic(ctx, sess)

	case authDomain.RoleArtistManager:
		artists, err := s.VisibleArtists(ctx, sess)
		if err != nil {
			return nil, err
		}
		ids := make(map[int]bool, len(artists))
		for _, a := range artists {
			ids[a.ID] = true
		}
		songs, err := s.Songs.List(ctx, sess)
		if err != nil {
			return nil, err
		}
		return filter(songs, func(m domain.Music) bool { return ids[m.CreatedByID] }), nil
	}
	return []domain.Music{}, nil
}

// CreateMyMusic creates a song owned by the caller's artist profile. Without
// a profile it fails before anything is sent to the backend.
func (s *Service) CreateMyMusic(ctx context.Context, sess *authDomain.Session, in domain.MusicInput) (*domain.Music, error) {
	profile, err := s.MyArtistProfile(ctx, sess)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		sess.Notify(authDomain.NoticeError, domain.ErrArtistProfileNotFound.Error())
		return nil, domain.ErrArtistProfileNotFound
	}

	in.CreatedByID = profile.ID
	return s.Songs.Create(ctx, sess, in)
}

// EnlistArtist creates an artist account and its profile in one step. A
// manager's new artists are always linked to the manager's own profile.
func (s *Service) EnlistArtist(ctx context.Context, sess *authDomain.Session, account domain.UserCreate, profile domain.ArtistInput) (*domain.ArtistProfile, error) {
	if role, _ := sess.Role(); role == authDomain.RoleArtistManager {
		mine, err := s.MyManagerProfile(ctx, sess)
		if err != nil {
			return nil, err
		}
		if mine == nil {
			sess.Notify(authDomain.NoticeError, domain.ErrManagerProfileNotFound.Error())
			return nil, domain.ErrManagerProfileNotFound
		}
		profile.ManagerID = &mine.ID
	}

	account.Role = string(authDomain.RoleArtist)
	account.IsActive = true
	user, err := s.Users.Create(ctx, sess, account)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotCreated
	}

	profile.UserID = user.ID
	created, err := s.Artists.Create(ctx, sess, profile)
	if err != nil {
		s.dropAccount(ctx, sess, user.ID, err)
		return nil, err
	}
	return created, nil
}

// EnlistManager creates a manager account and its profile in one step
func (s *Service) EnlistManager(ctx context.Context, sess *authDomain.Session, account domain.UserCreate, profile domain.ManagerInput) (*domain.ManagerProfile, error) {
	account.Role = string(authDomain.RoleArtistManager)
	account.IsActive = true
	user, err := s.Users.Create(ctx, sess, account)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotCreated
	}

	profile.UserID = user.ID
	created, err := s.Managers.Create(ctx, sess, profile)
	if err != nil {
		s.dropAccount(ctx, sess, user.ID, err)
		return nil, err
	}
	return created, nil
}

// dropAccount removes an account whose profile could not be created so the
// same email can be enlisted again
func (s *Service) dropAccount(ctx context.Context, sess *authDomain.Session, userID int, cause error) {
	s.logger.Warn("profile rejected, removing new account",
		zap.Int("user_id", userID),
		zap.Error(cause))
	if sess.Cleared() {
		return
	}
	if err := s.Users.Delete(ctx, sess, userID); err != nil {
		s.logger.Error("orphan account left behind",
			zap.Int("user_id", userID),
			zap.Error(err))
	}
}

// ArtistNames maps artist profile ids to names for the music table
func (s *Service) ArtistNames(ctx context.Context, sess *authDomain.Session) (map[int]string, error) {
	artists, err := s.VisibleArtists(ctx, sess)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}
	return names, nil
}

// ManagerNames maps manager profile ids to names for the artist table
func (s *Service) ManagerNames(ctx context.Context, sess *authDomain.Session) (map[int]string, error) {
	role, _ := sess.Role()
	var managers []domain.ManagerProfile
	switch role {
	case authDomain.RoleSuperAdmin:
		all, err := s.Managers.List(ctx, sess)
		if err != nil {
			return nil, err
		}
		managers = all
	case authDomain.RoleArtistManager:
		mine, err := s.MyManagerProfile(ctx, sess)
		if err != nil {
			return nil, err
		}
		if mine != nil {
			managers = []domain.ManagerProfile{*mine}
		}
	}

	names := make(map[int]string, len(managers))
	for _, m := range managers {
		names[m.ID] = m.Name
	}
	return names, nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
