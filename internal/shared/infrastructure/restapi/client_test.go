package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type thing struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL+"/api", 0, zap.NewNop())
	require.NoError(t, err)
	return c
}

func authed() *domain.Session {
	return domain.NewSession("tok", "ref", &domain.DecodedToken{Role: "super_admin", UserID: 1})
}

func TestDo_AttachesBearerAndBody(t *testing.T) {
	var gotAuth, gotType, gotPath, gotReqID string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":4,"name":"Tom"}`))
	})

	got, err := Request[thing](context.Background(), c, authed(), http.MethodPost, "artists/", map[string]string{"name": "Tom"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, thing{ID: 4, Name: "Tom"}, *got)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "/api/artists/", gotPath)
	assert.Equal(t, "Tom", gotBody["name"])
}

func TestDo_OmitsBearerWhenLoggedOut(t *testing.T) {
	var hasAuth bool
	var bodyLen int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		b, _ := io.ReadAll(r.Body)
		bodyLen = len(b)
		_, _ = w.Write([]byte(`[]`))
	})

	var out []thing
	found, err := c.Do(context.Background(), domain.NewSession("", "", nil), http.MethodGet, "music/", nil, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, hasAuth)
	assert.Zero(t, bodyLen)
}

func TestDo_AbsenceOutcomes(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		sess := authed()
		got, err := Request[thing](context.Background(), c, sess, http.MethodDelete, "artists/9/", nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Empty(t, sess.Notices())
		assert.False(t, sess.Cleared())
	}
}

func TestDo_UnauthorizedClearsSession(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
	})
	sess := authed()

	got, err := Request[thing](context.Background(), c, sess, http.MethodGet, "users/1/", nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, calls)
	assert.True(t, sess.Cleared())
	assert.Empty(t, sess.Token())
	assert.Equal(t, []domain.Notice{{Level: domain.NoticeError, Message: MsgSessionExpired}}, sess.Notices())
}

func TestDo_BusinessErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail":"Email already taken"}`, "Email already taken"},
		{"message", `{"message":"Manager has artists"}`, "Manager has artists"},
		{"detail wins", `{"detail":"first","message":"second"}`, "first"},
		{"list", `{"detail":["a","b"]}`, "a b"},
		{"not json", `<html>oops</html>`, "Request failed with status 400"},
		{"no fields", `{"errors":{}}`, "Request failed with status 400"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			})
			sess := authed()

			_, err := Request[thing](context.Background(), c, sess, http.MethodPost, "users/", map[string]string{})
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
			assert.Equal(t, http.StatusBadRequest, StatusOf(err))
			assert.Equal(t, tc.want, sess.Notices()[0].Message)
		})
	}
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, 0, zap.NewNop())
	require.NoError(t, err)
	sess := authed()

	_, err = Request[thing](context.Background(), c, sess, http.MethodGet, "users/", nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 0, StatusOf(err))
	assert.Equal(t, MsgGenericFailure, sess.Notices()[0].Message)
}

func TestDo_NonJSONSuccessIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>proxy page</html>`))
	})
	sess := authed()

	_, err := Request[thing](context.Background(), c, sess, http.MethodGet, "users/1/", nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Len(t, sess.Notices(), 1)
}

func TestDo_EmptySuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	found, err := c.Do(context.Background(), authed(), http.MethodDelete, "music/1/", nil, nil)
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("://bad", 0, zap.NewNop())
	assert.Error(t, err)
}
