package middleware

import (
	"net/http"

	"github.com/saransh1220/artist-console/internal/gateway/layout"
	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/cookie"
	"github.com/saransh1220/artist-console/internal/shared/web"
)

// SessionStore loads and commits the cookie-backed session
type SessionStore interface {
	Load(r *http.Request) *domain.Session
	Commit(w http.ResponseWriter, r *http.Request, sess *domain.Session, carryNotices bool)
}

var _ SessionStore = (*cookie.Store)(nil)

type AuthMiddleware struct {
	store  SessionStore
	render *web.Renderer
}

func NewAuthMiddleware(store SessionStore, render *web.Renderer) *AuthMiddleware {
	return &AuthMiddleware{store: store, render: render}
}

// Session loads the caller's session into the request context and commits
// it to cookies right before the response headers go out. Notices survive
// redirects; anything else has already rendered them.
func (m *AuthMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.store.Load(r)
		r = r.WithContext(domain.WithSession(r.Context(), sess))

		cw := &commitWriter{ResponseWriter: w, commit: func(status int) {
			m.store.Commit(w, r, sess, status >= 300 && status < 400)
		}}
		next.ServeHTTP(cw, r)
		if !cw.committed {
			cw.WriteHeader(http.StatusOK)
		}
	})
}

// RequireRoles lets through callers the gate allows. Anonymous callers are
// sent to the login page; signed-in callers without a matching role get the
// permission denied page.
func (m *AuthMiddleware) RequireRoles(gate layout.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := domain.FromContext(r.Context()).State()
			switch gate.Evaluate(state) {
			case layout.GateAllowed:
				next.ServeHTTP(w, r)
			case layout.GateAnonymous:
				web.Redirect(w, r, "/login")
			default:
				m.render.Denied(w, r)
			}
		})
	}
}

// PublicOnly keeps signed-in callers off the login and register pages
func (m *AuthMiddleware) PublicOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.FromContext(r.Context()).State().IsAuthenticated {
			web.Redirect(w, r, "/dashboard")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type commitWriter struct {
	http.ResponseWriter
	commit    func(status int)
	committed bool
}

func (w *commitWriter) WriteHeader(status int) {
	if !w.committed {
		w.committed = true
		w.commit(status)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *commitWriter) Write(b []byte) (int, error) {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *commitWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
