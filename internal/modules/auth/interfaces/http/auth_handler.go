package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/saransh1220/artist-console/internal/modules/auth/application"
	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"github.com/saransh1220/artist-console/internal/shared/validation"
	"github.com/saransh1220/artist-console/internal/shared/web"
)

// AuthService defines the interface for auth operations
type AuthService interface {
	Login(ctx context.Context, sess *domain.Session, req application.LoginRequest) (domain.AuthState, error)
	Register(ctx context.Context, sess *domain.Session, req application.RegisterRequest) error
	Logout(sess *domain.Session)
}

// LoginForm is the submitted login page
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (f LoginForm) view() web.Form {
	return web.Form{
		Submit: "Log in",
		Fields: []web.Field{
			{Name: "email", Label: "Email", Type: "email", Value: f.Email, Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
	}
}

// RegisterForm is the submitted sign-up page
type RegisterForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"confirm_password" validate:"required,eqfield=Password"`
	Role     string `form:"role" validate:"required,oneof=artist artist_manager"`
}

func (f RegisterForm) view() web.Form {
	roles := []web.Option{
		{Value: string(domain.RoleArtist), Label: domain.RoleArtist.Label()},
		{Value: string(domain.RoleArtistManager), Label: domain.RoleArtistManager.Label()},
	}
	return web.Form{
		Submit: "Register",
		Fields: []web.Field{
			{Name: "email", Label: "Email", Type: "email", Value: f.Email, Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
			{Name: "confirm_password", Label: "Confirm password", Type: "password", Required: true},
			{Name: "role", Label: "I am", Type: "select", Value: f.Role, Options: roles, Required: true},
		},
	}
}

type AuthHandler struct {
	service AuthService
	render  *web.Renderer
}

func NewAuthHandler(service AuthService, render *web.Renderer) *AuthHandler {
	return &AuthHandler{service: service, render: render}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "login", "Log in", LoginForm{}.view())
}

// Login signs the caller in and sends them to the dashboard
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}
	form := LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	if errs := validation.Struct(form); errs != nil {
		h.render.Render(w, r, http.StatusUnprocessableEntity, "login", "Log in", form.view().WithErrors(errs))
		return
	}

	sess := domain.FromContext(r.Context())
	state, err := h.service.Login(r.Context(), sess, application.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		h.render.Render(w, r, statusFor(err), "login", "Log in", form.view())
		return
	}

	sess.Notify(domain.NoticeSuccess, "Welcome back, "+state.DisplayName()+".")
	web.Redirect(w, r, "/dashboard")
}

// RegisterPage renders the sign-up form
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "register", "Register", RegisterForm{Role: string(domain.RoleArtist)}.view())
}

// Register creates the account and sends the visitor to the login page
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}
	form := RegisterForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm_password"),
		Role:     r.PostFormValue("role"),
	}
	if errs := validation.Struct(form); errs != nil {
		h.render.Render(w, r, http.StatusUnprocessableEntity, "register", "Register", form.view().WithErrors(errs))
		return
	}

	sess := domain.FromContext(r.Context())
	err := h.service.Register(r.Context(), sess, application.RegisterRequest{Email: form.Email, Password: form.Password, Role: form.Role})
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotRegistrable) || errors.Is(err, domain.ErrInvalidRole) {
			h.render.Render(w, r, http.StatusUnprocessableEntity, "register", "Register",
				form.view().WithErrors(validation.FieldErrors{"role": "Choose one of the listed options."}))
			return
		}
		h.render.Render(w, r, statusFor(err), "register", "Register", form.view())
		return
	}

	sess.Notify(domain.NoticeSuccess, "Account created. Please log in.")
	web.Redirect(w, r, "/login")
}

// Logout clears the session cookies
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := domain.FromContext(r.Context())
	h.service.Logout(sess)
	sess.Notify(domain.NoticeInfo, "You have been logged out.")
	web.Redirect(w, r, "/login")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, restapi.ErrTransport):
		return http.StatusBadGateway
	}
	return http.StatusUnprocessableEntity
}
