package application

import (
	"context"
	"net/http"
	"testing"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(be *fakeBackend) *Service {
	return NewService(be, newTestCache(), zap.NewNop())
}

func TestService_MyProfilesFollowRole(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	be.set(http.MethodGet, "artists/user/7/", domain.ArtistProfile{ID: 3, UserID: 7, Name: "Ana"})
	be.set(http.MethodGet, "manager-profile/user/8/", domain.ManagerProfile{ID: 5, UserID: 8, Name: "Max"})
	svc := newTestService(be)

	artist, err := svc.MyArtistProfile(ctx, sessionFor(authDomain.RoleArtist, 7))
	require.NoError(t, err)
	require.NotNil(t, artist)
	assert.Equal(t, 3, artist.ID)

	manager, err := svc.MyManagerProfile(ctx, sessionFor(authDomain.RoleArtistManager, 8))
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.Equal(t, 5, manager.ID)

	none, err := svc.MyArtistProfile(ctx, sessionFor(authDomain.RoleArtistManager, 8))
	require.NoError(t, err)
	assert.Nil(t, none)
	assert.Zero(t, be.count(http.MethodGet, "artists/user/8/"))
}

func TestService_MyUser(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodGet, "users/7/", domain.User{ID: 7, Email: "ana@x.io"})
	svc := newTestService(be)

	got, err := svc.MyUser(context.Background(), sessionFor(authDomain.RoleArtist, 7))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.io", got.Email)

	anon, err := svc.MyUser(context.Background(), authDomain.NewSession("", "", nil))
	require.NoError(t, err)
	assert.Nil(t, anon)
}

func TestService_VisibleArtists(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	be.set(http.MethodGet, "artists/", []domain.ArtistProfile{
		{ID: 1, Name: "Mine", ManagerID: ptr(5)},
		{ID: 2, Name: "Other", ManagerID: ptr(6)},
		{ID: 3, Name: "Free"},
	})
	be.set(http.MethodGet, "manager-profile/user/8/", domain.ManagerProfile{ID: 5, UserID: 8})
	be.set(http.MethodGet, "artists/user/7/", domain.ArtistProfile{ID: 3, UserID: 7, Name: "Free"})
	svc := newTestService(be)

	all, err := svc.VisibleArtists(ctx, sessionFor(authDomain.RoleSuperAdmin, 1))
	require.NoError(t, err)
	assert.Len(t, all, 3)

	managed, err := svc.VisibleArtists(ctx, sessionFor(authDomain.RoleArtistManager, 8))
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, "Mine", managed[0].Name)

	own, err := svc.VisibleArtists(ctx, sessionFor(authDomain.RoleArtist, 7))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, 3, own[0].ID)
}

func TestService_VisibleArtists_ManagerWithoutProfile(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodGet, "artists/", []domain.ArtistProfile{{ID: 1, ManagerID: ptr(5)}})
	svc := newTestService(be)

	got, err := svc.VisibleArtists(context.Background(), sessionFor(authDomain.RoleArtistManager, 8))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, be.count(http.MethodGet, "artists/"))
}

func TestService_VisibleMusic(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	be.set(http.MethodGet, "music/", []domain.Music{
		{ID: 1, Title: "A", CreatedByID: 3},
		{ID: 2, Title: "B", CreatedByID: 4},
	})
	be.set(http.MethodGet, "artists/user/7/", domain.ArtistProfile{ID: 3, UserID: 7})
	be.set(http.MethodGet, "manager-profile/user/8/", domain.ManagerProfile{ID: 5, UserID: 8})
	be.set(http.MethodGet, "artists/", []domain.ArtistProfile{{ID: 4, ManagerID: ptr(5)}})
	svc := newTestService(be)

	all, err := svc.VisibleMusic(ctx, sessionFor(authDomain.RoleSuperAdmin, 1))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.VisibleMusic(ctx, sessionFor(authDomain.RoleArtist, 7))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Title)

	managed, err := svc.VisibleMusic(ctx, sessionFor(authDomain.RoleArtistManager, 8))
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, "B", managed[0].Title)
}

func TestService_CreateMyMusic(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodGet, "artists/user/7/", domain.ArtistProfile{ID: 3, UserID: 7})
	be.set(http.MethodPost, "music/", domain.Music{ID: 10, Title: "Song", CreatedByID: 3})
	svc := newTestService(be)

	got, err := svc.CreateMyMusic(context.Background(), sessionFor(authDomain.RoleArtist, 7), domain.MusicInput{Title: "Song", Genre: domain.GenrePop})
	require.NoError(t, err)
	assert.Equal(t, 10, got.ID)

	sent, ok := be.body(http.MethodPost, "music/").(domain.MusicInput)
	require.True(t, ok)
	assert.Equal(t, 3, sent.CreatedByID)
}

func TestService_CreateMyMusic_NoProfile(t *testing.T) {
	be := newFakeBackend()
	svc := newTestService(be)
	sess := sessionFor(authDomain.RoleArtist, 7)

	got, err := svc.CreateMyMusic(context.Background(), sess, domain.MusicInput{Title: "Song"})
	assert.ErrorIs(t, err, domain.ErrArtistProfileNotFound)
	assert.Nil(t, got)
	assert.Zero(t, be.count(http.MethodPost, "music/"))

	notices := sess.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, authDomain.NoticeError, notices[0].Level)
	assert.Equal(t, "Artist profile not found", notices[0].Message)
}

func TestService_EnlistArtist_ManagerLinksOwnProfile(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodGet, "manager-profile/user/8/", domain.ManagerProfile{ID: 5, UserID: 8})
	be.set(http.MethodPost, "users/", domain.User{ID: 20, Email: "new@x.io", Role: "artist"})
	be.set(http.MethodPost, "artists/", domain.ArtistProfile{ID: 9, UserID: 20, ManagerID: ptr(5)})
	svc := newTestService(be)

	got, err := svc.EnlistArtist(context.Background(), sessionFor(authDomain.RoleArtistManager, 8),
		domain.UserCreate{Email: "new@x.io", Password: "secret123", Role: "super_admin"},
		domain.ArtistInput{Name: "New", ManagerID: ptr(6)})
	require.NoError(t, err)
	assert.Equal(t, 9, got.ID)

	account := be.body(http.MethodPost, "users/").(domain.UserCreate)
	assert.Equal(t, "artist", account.Role)
	assert.True(t, account.IsActive)

	profile := be.body(http.MethodPost, "artists/").(domain.ArtistInput)
	assert.Equal(t, 20, profile.UserID)
	require.NotNil(t, profile.ManagerID)
	assert.Equal(t, 5, *profile.ManagerID)
}

func TestService_EnlistArtist_AccountRejected(t *testing.T) {
	be := newFakeBackend()
	svc := newTestService(be)

	_, err := svc.EnlistArtist(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1),
		domain.UserCreate{Email: "new@x.io"}, domain.ArtistInput{Name: "New"})
	assert.ErrorIs(t, err, domain.ErrAccountNotCreated)
	assert.Zero(t, be.count(http.MethodPost, "artists/"))
}

func TestService_ManagerNames(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodGet, "manager-profile/", []domain.ManagerProfile{{ID: 5, Name: "Max"}, {ID: 6, Name: "Mia"}})
	svc := newTestService(be)

	names, err := svc.ManagerNames(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1))
	require.NoError(t, err)
	assert.Equal(t, map[int]string{5: "Max", 6: "Mia"}, names)
}

func TestService_EnlistManager(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodPost, "users/", domain.User{ID: 30, Email: "m@x.io", Role: "artist_manager"})
	be.set(http.MethodPost, "manager-profile/", domain.ManagerProfile{ID: 11, UserID: 30, Name: "Max"})
	svc := newTestService(be)

	got, err := svc.EnlistManager(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1),
		domain.UserCreate{Email: "m@x.io", Password: "secret123"}, domain.ManagerInput{Name: "Max"})
	require.NoError(t, err)
	assert.Equal(t, 11, got.ID)

	account := be.body(http.MethodPost, "users/").(domain.UserCreate)
	assert.Equal(t, "artist_manager", account.Role)
	profile := be.body(http.MethodPost, "manager-profile/").(domain.ManagerInput)
	assert.Equal(t, 30, profile.UserID)
}

func TestService_EnlistManager_ProfileRejectedRemovesAccount(t *testing.T) {
	be := newFakeBackend()
	rejected := &restapi.APIError{Status: http.StatusBadRequest, Message: "name taken"}
	be.set(http.MethodPost, "users/", domain.User{ID: 40, Email: "m@x.io", Role: "artist_manager"})
	be.set(http.MethodPost, "manager-profile/", rejected)
	svc := newTestService(be)

	got, err := svc.EnlistManager(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1),
		domain.UserCreate{Email: "m@x.io", Password: "secret123"}, domain.ManagerInput{Name: "Max"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, be.count(http.MethodDelete, "users/40/"))
}

func TestService_EnlistArtist_ProfileRejectedRemovesAccount(t *testing.T) {
	be := newFakeBackend()
	rejected := &restapi.APIError{Status: http.StatusBadRequest, Message: "bad genre"}
	be.set(http.MethodPost, "users/", domain.User{ID: 41, Email: "a@x.io", Role: "artist"})
	be.set(http.MethodPost, "artists/", rejected)
	svc := newTestService(be)

	got, err := svc.EnlistArtist(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1),
		domain.UserCreate{Email: "a@x.io", Password: "secret123"}, domain.ArtistInput{Name: "Ana"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, be.count(http.MethodDelete, "users/41/"))
}

func TestService_EnlistArtist_RemovalFailureKeepsProfileError(t *testing.T) {
	be := newFakeBackend()
	rejected := &restapi.APIError{Status: http.StatusBadRequest, Message: "bad genre"}
	be.set(http.MethodPost, "users/", domain.User{ID: 42, Email: "a@x.io", Role: "artist"})
	be.set(http.MethodPost, "artists/", rejected)
	be.set(http.MethodDelete, "users/42/", restapi.ErrTransport)
	svc := newTestService(be)

	_, err := svc.EnlistArtist(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1),
		domain.UserCreate{Email: "a@x.io", Password: "secret123"}, domain.ArtistInput{Name: "Ana"})
	assert.ErrorIs(t, err, rejected)
	assert.NotErrorIs(t, err, restapi.ErrTransport)
	assert.Equal(t, 1, be.count(http.MethodDelete, "users/42/"))
}

func TestService_ArtistNames(t *testing.T) {
	be := newFakeBackend()
	be.set(http.MethodGet, "artists/", []domain.ArtistProfile{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Ben"}})
	svc := newTestService(be)

	names, err := svc.ArtistNames(context.Background(), sessionFor(authDomain.RoleSuperAdmin, 1))
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Ana", 2: "Ben"}, names)
}
