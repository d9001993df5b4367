package application

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/jwt"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Do(ctx context.Context, sess restapi.Session, method, path string, body, out any) (bool, error) {
	args := m.Called(ctx, sess, method, path, body, out)
	if fn, ok := args.Get(0).(func(restapi.Session, any) bool); ok {
		return fn(sess, out), args.Error(1)
	}
	return args.Bool(0), args.Error(1)
}

func newService(be *mockBackend) *AuthService {
	return NewAuthService(be, jwt.Decode, zap.NewNop())
}

func issue(t *testing.T, userID int, role string) string {
	t.Helper()
	tok, err := jwt.GenerateToken("secret", time.Hour, userID, role, "u@x.io")
	require.NoError(t, err)
	return tok
}

func TestLogin_Success(t *testing.T) {
	be := new(mockBackend)
	access := issue(t, 7, "artist")
	be.On("Do", mock.Anything, mock.Anything, http.MethodPost, "auth/login/", LoginRequest{Email: "u@x.io", Password: "pw"}, mock.Anything).
		Return(func(_ restapi.Session, out any) bool {
			*out.(*TokenPair) = TokenPair{Access: access, Refresh: "ref"}
			return true
		}, nil).Once()

	sess := domain.NewSession("", "", nil)
	state, err := newService(be).Login(context.Background(), sess, LoginRequest{Email: "u@x.io", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.Role)
	assert.Equal(t, domain.RoleArtist, *state.Role)
	assert.Equal(t, access, sess.Token())
	assert.Equal(t, "ref", sess.RefreshToken())
	assert.True(t, sess.Changed())
	be.AssertExpectations(t)
}

func TestLogin_BadCredentials(t *testing.T) {
	be := new(mockBackend)
	be.On("Do", mock.Anything, mock.Anything, http.MethodPost, "auth/login/", mock.Anything, mock.Anything).
		Return(func(s restapi.Session, _ any) bool {
			s.Clear()
			s.Notify(domain.NoticeError, restapi.MsgSessionExpired)
			return false
		}, nil).Once()

	sess := domain.NewSession("", "", nil)
	_, err := newService(be).Login(context.Background(), sess, LoginRequest{Email: "u@x.io", Password: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, sess.State().IsAuthenticated)

	notices := sess.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Invalid email or password.", notices[0].Message)
}

func TestLogin_BusinessErrorIsSurfaced(t *testing.T) {
	be := new(mockBackend)
	apiErr := &restapi.APIError{Status: http.StatusBadRequest, Message: "Account disabled"}
	be.On("Do", mock.Anything, mock.Anything, http.MethodPost, "auth/login/", mock.Anything, mock.Anything).
		Return(func(s restapi.Session, _ any) bool {
			s.Notify(domain.NoticeError, apiErr.Message)
			return false
		}, apiErr).Once()

	sess := domain.NewSession("", "", nil)
	_, err := newService(be).Login(context.Background(), sess, LoginRequest{Email: "u@x.io", Password: "pw"})
	var got *restapi.APIError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "Account disabled", sess.Notices()[0].Message)
}

func TestLogin_UndecodableToken(t *testing.T) {
	be := new(mockBackend)
	be.On("Do", mock.Anything, mock.Anything, http.MethodPost, "auth/login/", mock.Anything, mock.Anything).
		Return(func(_ restapi.Session, out any) bool {
			*out.(*TokenPair) = TokenPair{Access: "garbage"}
			return true
		}, nil).Once()

	sess := domain.NewSession("", "", nil)
	_, err := newService(be).Login(context.Background(), sess, LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrUndecodableToken)
	assert.Empty(t, sess.Token())
}

func TestLogin_MissingToken(t *testing.T) {
	be := new(mockBackend)
	be.On("Do", mock.Anything, mock.Anything, http.MethodPost, "auth/login/", mock.Anything, mock.Anything).
		Return(true, nil).Once()

	_, err := newService(be).Login(context.Background(), domain.NewSession("", "", nil), LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestRegister(t *testing.T) {
	be := new(mockBackend)
	req := RegisterRequest{Email: "new@x.io", Password: "password1", Role: "artist_manager"}
	be.On("Do", mock.Anything, mock.Anything, http.MethodPost, "auth/register/", req, nil).Return(true, nil).Once()

	err := newService(be).Register(context.Background(), domain.NewSession("", "", nil), req)
	require.NoError(t, err)
	be.AssertExpectations(t)
}

func TestRegister_RejectsRoles(t *testing.T) {
	be := new(mockBackend)
	svc := newService(be)
	sess := domain.NewSession("", "", nil)

	err := svc.Register(context.Background(), sess, RegisterRequest{Email: "a@x.io", Role: "super_admin"})
	assert.ErrorIs(t, err, domain.ErrRoleNotRegistrable)

	err = svc.Register(context.Background(), sess, RegisterRequest{Email: "a@x.io", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	be.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	sess := domain.NewSession("tok", "ref", &domain.DecodedToken{Role: "artist", UserID: 7})
	newService(new(mockBackend)).Logout(sess)
	assert.True(t, sess.Cleared())
	assert.Empty(t, sess.Token())
}
