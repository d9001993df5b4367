package application

import (
	"context"
	"net/http"

	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"go.uber.org/zap"
)

const (
	loginPath    = "auth/login/"
	registerPath = "auth/register/"
)

// Backend is the API gateway as seen by the auth service
type Backend interface {
	Do(ctx context.Context, sess restapi.Session, method, path string, body, out any) (bool, error)
}

// Decoder turns a raw access token into its payload, nil when undecodable
type Decoder func(raw string) *domain.DecodedToken

// RegisterRequest is the sign-up payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the backend's login response
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService signs callers in and out against the backend
type AuthService struct {
	backend Backend
	decode  Decoder
	logger  *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(backend Backend, decode Decoder, logger *zap.Logger) *AuthService {
	return &AuthService{
		backend: backend,
		decode:  decode,
		logger:  logger.Named("auth"),
	}
}

// anonymous stands in for the request session while credentials are
// exchanged. A 401 here means bad credentials, not an expired session.
type anonymous struct {
	sess         *domain.Session
	unauthorized bool
}

func (a *anonymous) Token() string { return "" }
func (a *anonymous) Clear()        { a.unauthorized = true }
func (a *anonymous) Notify(level domain.NoticeLevel, message string) {
	if message == restapi.MsgSessionExpired {
		return
	}
	a.sess.Notify(level, message)
}

// Login exchanges credentials for tokens and stores them in sess
func (s *AuthService) Login(ctx context.Context, sess *domain.Session, req LoginRequest) (domain.AuthState, error) {
	anon := &anonymous{sess: sess}
	var pair TokenPair
	found, err := s.backend.Do(ctx, anon, http.MethodPost, loginPath, req, &pair)
	if err != nil {
		return domain.AuthState{}, err
	}
	if anon.unauthorized {
		sess.Notify(domain.NoticeError, "Invalid email or password.")
		return domain.AuthState{}, domain.ErrInvalidCredentials
	}
	if !found || pair.Access == "" {
		sess.Notify(domain.NoticeError, restapi.MsgGenericFailure)
		return domain.AuthState{}, domain.ErrMissingToken
	}

	token := s.decode(pair.Access)
	if token == nil {
		s.logger.Warn("backend issued an undecodable access token")
		sess.Notify(domain.NoticeError, restapi.MsgGenericFailure)
		return domain.AuthState{}, domain.ErrUndecodableToken
	}

	sess.SignIn(pair.Access, pair.Refresh, token)
	state := sess.State()
	s.logger.Info("signed in", zap.Int("user_id", token.UserID), zap.String("role", token.Role))
	return state, nil
}

// Register creates an account. Only artist and artist_manager may sign up.
func (s *AuthService) Register(ctx context.Context, sess *domain.Session, req RegisterRequest) error {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	if !role.Registrable() {
		return domain.ErrRoleNotRegistrable
	}

	anon := &anonymous{sess: sess}
	if _, err := s.backend.Do(ctx, anon, http.MethodPost, registerPath, req, nil); err != nil {
		return err
	}
	s.logger.Info("registered account", zap.String("role", string(role)))
	return nil
}

// Logout drops the caller's tokens
func (s *AuthService) Logout(sess *domain.Session) {
	if id, ok := sess.UserID(); ok {
		s.logger.Info("signed out", zap.Int("user_id", id))
	}
	sess.Clear()
}
