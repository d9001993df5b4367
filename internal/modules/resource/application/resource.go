package application

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
)

// Backend is the API gateway as seen by the query layer
type Backend interface {
	Do(ctx context.Context, sess restapi.Session, method, path string, body, out any) (bool, error)
}

// Resource is the query/mutation surface of one resource kind. Reads go
// through the cache; successful mutations invalidate it after the response.
type Resource[T any] struct {
	kind    domain.Kind
	backend Backend
	cache   *Cache
}

func NewResource[T any](kind domain.Kind, backend Backend, cache *Cache) *Resource[T] {
	return &Resource[T]{kind: kind, backend: backend, cache: cache}
}

// Kind returns the resource kind
func (r *Resource[T]) Kind() domain.Kind {
	return r.kind
}

func scope(sess *authDomain.Session) int {
	id, _ := sess.UserID()
	return id
}

// read is the shared read-through path
func (r *Resource[T]) read(ctx context.Context, sess *authDomain.Session, op, path string, out any) (bool, error) {
	key := Key(r.kind, scope(sess), op)
	if r.cache.load(ctx, r.kind, key, out) {
		return true, nil
	}

	gen := r.cache.generation(r.kind)
	found, err := r.backend.Do(ctx, sess, http.MethodGet, path, nil, out)
	if err != nil || !found {
		return found, err
	}
	r.cache.fill(ctx, r.kind, key, gen, out)
	return true, nil
}

// List returns the whole collection; absence is an empty list
func (r *Resource[T]) List(ctx context.Context, sess *authDomain.Session) ([]T, error) {
	var items []T
	found, err := r.read(ctx, sess, "list", r.kind.ListPath(), &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// Get returns one item, nil when the backend reports none
func (r *Resource[T]) Get(ctx context.Context, sess *authDomain.Session, id int) (*T, error) {
	item := new(T)
	found, err := r.read(ctx, sess, "item:"+strconv.Itoa(id), r.kind.ItemPath(id), item)
	if err != nil || !found {
		return nil, err
	}
	return item, nil
}

// ByOwner returns the profile owned by userID, cached as the caller's "mine"
func (r *Resource[T]) ByOwner(ctx context.Context, sess *authDomain.Session, userID int) (*T, error) {
	item := new(T)
	found, err := r.read(ctx, sess, "owner:"+strconv.Itoa(userID), r.kind.OwnerPath(userID), item)
	if err != nil || !found {
		return nil, err
	}
	return item, nil
}

// Create posts a new item
func (r *Resource[T]) Create(ctx context.Context, sess *authDomain.Session, data any) (*T, error) {
	return r.mutate(ctx, sess, http.MethodPost, r.kind.ListPath(), data)
}

// Update patches an existing item. An item the backend no longer has yields
// ErrNotFound; a cleared session yields nil with no error.
func (r *Resource[T]) Update(ctx context.Context, sess *authDomain.Session, id int, data any) (*T, error) {
	item, err := r.mutate(ctx, sess, http.MethodPatch, r.kind.ItemPath(id), data)
	if err != nil || item != nil || sess.Cleared() {
		return item, err
	}
	return nil, fmt.Errorf("%s %d: %w", r.kind, id, domain.ErrNotFound)
}

// Delete removes an item. Deleting something already gone is not an error.
func (r *Resource[T]) Delete(ctx context.Context, sess *authDomain.Session, id int) error {
	if _, err := r.backend.Do(ctx, sess, http.MethodDelete, r.kind.ItemPath(id), nil, nil); err != nil {
		return err
	}
	if sess.Cleared() {
		return nil
	}
	r.cache.Invalidate(ctx, r.kind)
	return nil
}

func (r *Resource[T]) mutate(ctx context.Context, sess *authDomain.Session, method, path string, data any) (*T, error) {
	item := new(T)
	found, err := r.backend.Do(ctx, sess, method, path, data, item)
	if err != nil {
		return nil, err
	}
	if sess.Cleared() {
		return nil, nil
	}
	r.cache.Invalidate(ctx, r.kind)
	if !found {
		return nil, nil
	}
	return item, nil
}
