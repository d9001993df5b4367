package auth

import (
	"github.com/saransh1220/artist-console/internal/modules/auth/application"
	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/cookie"
	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/jwt"
	auth_http "github.com/saransh1220/artist-console/internal/modules/auth/interfaces/http"
	"github.com/saransh1220/artist-console/internal/shared/web"
	"go.uber.org/zap"
)

// Module represents the Auth module
type Module struct {
	service *application.AuthService
	cookies *cookie.Store
	handler *auth_http.AuthHandler
}

// NewModule creates and initializes the Auth module
func NewModule(backend application.Backend, cookieOpts cookie.Options, render *web.Renderer, logger *zap.Logger) *Module {
	service := application.NewAuthService(backend, jwt.Decode, logger)
	return &Module{
		service: service,
		cookies: cookie.NewStore(cookieOpts, jwt.Decode),
		handler: auth_http.NewAuthHandler(service, render),
	}
}

// Service returns the auth service for use by the gateway layer
func (m *Module) Service() *application.AuthService {
	return m.service
}

// Cookies returns the cookie-backed session store
func (m *Module) Cookies() *cookie.Store {
	return m.cookies
}

// HTTPHandler returns the HTTP handler for the auth module
func (m *Module) HTTPHandler() *auth_http.AuthHandler {
	return m.handler
}
