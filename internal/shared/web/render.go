// Package web renders the console's server-side pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/saransh1220/artist-console/internal/gateway/layout"
	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"login", "register", "home", "table", "form", "profile", "denied", "error"}

// Page is what the layout sees
type Page struct {
	Title   string
	State   authDomain.AuthState
	Nav     []layout.NavItem
	Notices []authDomain.Notice
	Content any
}

// Renderer executes a page inside the shared layout
type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"lower": strings.ToLower,
		"roleLabel": func(r *authDomain.Role) string {
			if r == nil {
				return ""
			}
			return r.Label()
		},
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{templates: templates, logger: logger.Named("web")}, nil
}

// Render writes page name with status. Pending notices are drained into the
// page so they are shown once.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, content any) {
	t, ok := rd.templates[name]
	if !ok {
		rd.logger.Error("unknown template", zap.String("template", name))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sess := authDomain.FromContext(r.Context())
	state := sess.State()
	page := Page{
		Title:   title,
		State:   state,
		Nav:     layout.Navigation(state, r.URL.Path),
		Notices: sess.TakeNotices(),
		Content: content,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		rd.logger.Error("render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Redirect sends a 303 so notices queued on the session survive in the
// notice cookie
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Denied renders the permission-denied page
func (rd *Renderer) Denied(w http.ResponseWriter, r *http.Request) {
	rd.Render(w, r, http.StatusForbidden, "denied", "Permission denied", nil)
}

// Error renders the generic failure page
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, "error", http.StatusText(status), message)
}
