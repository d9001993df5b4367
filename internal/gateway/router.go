package gateway

import (
	"net/http"
)

// Middleware wraps a handler with request-scoped behavior
type Middleware func(http.Handler) http.Handler

// Router registers console routes on a ServeMux and carries the middleware
// chain applied around it.
type Router struct {
	mux   *http.ServeMux
	chain []Middleware
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Mux returns the bare mux, without the middleware chain
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

// Use appends middleware. The first one added is the outermost.
func (r *Router) Use(mw ...Middleware) {
	r.chain = append(r.chain, mw...)
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Handler returns the mux wrapped in the middleware chain
func (r *Router) Handler() http.Handler {
	var h http.Handler = r.mux
	for i := len(r.chain) - 1; i >= 0; i-- {
		h = r.chain[i](h)
	}
	return h
}
