package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("root")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRole_Registrable(t *testing.T) {
	assert.True(t, RoleArtist.Registrable())
	assert.True(t, RoleArtistManager.Registrable())
	assert.False(t, RoleSuperAdmin.Registrable())
}

func TestDeriveAuthState(t *testing.T) {
	t.Run("nil token", func(t *testing.T) {
		state := DeriveAuthState(nil)
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.Role)
		assert.Nil(t, state.Name)
		assert.Nil(t, state.Email)
	})

	for _, r := range Roles {
		t.Run(string(r), func(t *testing.T) {
			state := DeriveAuthState(&DecodedToken{Role: string(r), UserID: 3, Email: "a@x.com"})
			assert.True(t, state.IsAuthenticated)
			require.NotNil(t, state.Role)
			assert.Equal(t, r, *state.Role)
			require.NotNil(t, state.Email)
			assert.Equal(t, "a@x.com", *state.Email)
			assert.Nil(t, state.Name)
			assert.Equal(t, "a@x.com", state.DisplayName())
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		state := DeriveAuthState(&DecodedToken{Role: "root"})
		assert.True(t, state.IsAuthenticated)
		assert.Nil(t, state.Role)
		assert.False(t, state.HasRole(Roles...))
	})
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession("tok", "ref", &DecodedToken{Role: "artist", UserID: 9})
	assert.Equal(t, "tok", s.Token())
	id, ok := s.UserID()
	assert.True(t, ok)
	assert.Equal(t, 9, id)
	role, ok := s.Role()
	assert.True(t, ok)
	assert.Equal(t, RoleArtist, role)
	assert.False(t, s.Changed())

	s.Clear()
	assert.Empty(t, s.Token())
	assert.Empty(t, s.RefreshToken())
	assert.True(t, s.Cleared())
	assert.False(t, s.State().IsAuthenticated)

	s.SignIn("new", "r2", &DecodedToken{Role: "super_admin"})
	assert.False(t, s.Cleared())
	assert.True(t, s.Changed())
	assert.Equal(t, "new", s.Token())
}

func TestNewSession_DropsUndecodableToken(t *testing.T) {
	s := NewSession("garbage", "ref", nil)
	assert.Empty(t, s.Token())
	assert.False(t, s.State().IsAuthenticated)
}

func TestSession_Notices(t *testing.T) {
	s := NewSession("", "", nil)
	s.Notify(NoticeError, "boom")
	s.Notify(NoticeSuccess, "ok")

	assert.Len(t, s.Notices(), 2)
	taken := s.TakeNotices()
	assert.Equal(t, Notice{Level: NoticeError, Message: "boom"}, taken[0])
	assert.Empty(t, s.Notices())
}

func TestFromContext(t *testing.T) {
	anon := FromContext(context.Background())
	assert.False(t, anon.State().IsAuthenticated)

	s := NewSession("t", "", &DecodedToken{Role: "artist"})
	assert.Same(t, s, FromContext(WithSession(context.Background(), s)))
}
