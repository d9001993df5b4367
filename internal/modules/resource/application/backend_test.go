package application

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/cache"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"go.uber.org/zap"
)

// fakeBackend answers "<METHOD> <path>" from a table. Missing entries are
// absences, as the gateway reports a 404; error entries are returned as is.
type fakeBackend struct {
	mu           sync.Mutex
	responses    map[string]any
	calls        []string
	bodies       map[string]any
	onGet        func(path string)
	err          error
	unauthorized bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{responses: map[string]any{}, bodies: map[string]any{}}
}

func (f *fakeBackend) Do(_ context.Context, sess restapi.Session, method, path string, body, out any) (bool, error) {
	call := method + " " + path

	f.mu.Lock()
	f.calls = append(f.calls, call)
	if body != nil {
		f.bodies[call] = body
	}
	v, ok := f.responses[call]
	hook, err, unauthorized := f.onGet, f.err, f.unauthorized
	f.mu.Unlock()

	if method == http.MethodGet && hook != nil {
		hook(path)
	}
	if err != nil {
		return false, err
	}
	if unauthorized {
		sess.Clear()
		sess.Notify(authDomain.NoticeError, restapi.MsgSessionExpired)
		return false, nil
	}
	if !ok {
		return false, nil
	}
	if rejected, isErr := v.(error); isErr {
		return false, rejected
	}
	if out == nil {
		return true, nil
	}
	raw, _ := json.Marshal(v)
	return true, json.Unmarshal(raw, out)
}

func (f *fakeBackend) set(method, path string, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = v
}

func (f *fakeBackend) remove(method, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.responses, method+" "+path)
}

func (f *fakeBackend) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method+" "+path {
			n++
		}
	}
	return n
}

func (f *fakeBackend) body(method, path string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[method+" "+path]
}

func newTestCache() *Cache {
	return NewCache(cache.NewMemoryStore(), time.Minute, zap.NewNop())
}

func sessionFor(role authDomain.Role, userID int) *authDomain.Session {
	return authDomain.NewSession("tok", "ref", &authDomain.DecodedToken{Role: string(role), UserID: userID})
}

func ptr[T any](v T) *T { return &v }
