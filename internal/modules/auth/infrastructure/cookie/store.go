package cookie

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
)

const (
	AccessCookie  = "access"
	RefreshCookie = "refresh"
	RoleCookie    = "role"
	NoticeCookie  = "notice"

	maxStoredNotices = 5
	maxNoticeBytes   = 256
	// maxNoticeCookie keeps the notice cookie clear of the 4096-byte
	// browser limit once name and attributes are added.
	maxNoticeCookie = 3072
)

// Decoder turns a raw access token into its payload
type Decoder func(raw string) *domain.DecodedToken

// Options configures cookie attributes
type Options struct {
	Secure bool
	Domain string
}

// Store reads and writes the token cookies
type Store struct {
	opts   Options
	decode Decoder
}

func NewStore(opts Options, decode Decoder) *Store {
	return &Store{opts: opts, decode: decode}
}

// Load builds the request session from cookies. Notices carried over from a
// redirect are restored into the session.
func (s *Store) Load(r *http.Request) *domain.Session {
	access := value(r, AccessCookie)
	sess := domain.NewSession(access, value(r, RefreshCookie), s.decode(access))

	if raw := value(r, NoticeCookie); raw != "" {
		for _, n := range decodeNotices(raw) {
			sess.Notify(n.Level, n.Message)
		}
	}
	return sess
}

// Commit writes Set-Cookie headers for whatever changed in the session.
// carryNotices keeps pending notices for the next request, which is what a
// redirect wants; otherwise notices are assumed rendered and dropped.
func (s *Store) Commit(w http.ResponseWriter, r *http.Request, sess *domain.Session, carryNotices bool) {
	if sess.Changed() {
		if sess.Cleared() {
			s.expire(w, AccessCookie)
			s.expire(w, RefreshCookie)
			s.expire(w, RoleCookie)
		} else {
			var expires time.Time
			if t := sess.Decoded(); t != nil {
				expires = t.Expiry
			}
			s.set(w, AccessCookie, sess.Token(), expires)
			s.set(w, RefreshCookie, sess.RefreshToken(), time.Time{})
			if role, ok := sess.Role(); ok {
				s.set(w, RoleCookie, string(role), expires)
			}
		}
	}

	pending := sess.Notices()
	switch {
	case carryNotices && len(pending) > 0:
		s.set(w, NoticeCookie, encodeNotices(pending), time.Time{})
	case value(r, NoticeCookie) != "":
		s.expire(w, NoticeCookie)
	}
}

func (s *Store) set(w http.ResponseWriter, name, val string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    val,
		Path:     "/",
		Domain:   s.opts.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) expire(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   s.opts.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func value(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func encodeNotices(notices []domain.Notice) string {
	if len(notices) > maxStoredNotices {
		notices = notices[len(notices)-maxStoredNotices:]
	}
	kept := make([]domain.Notice, len(notices))
	for i, n := range notices {
		n.Message = truncate(n.Message, maxNoticeBytes)
		kept[i] = n
	}
	for {
		b, _ := json.Marshal(kept)
		enc := base64.RawURLEncoding.EncodeToString(b)
		if len(enc) <= maxNoticeCookie || len(kept) == 1 {
			return enc
		}
		kept = kept[1:]
	}
}

// truncate cuts s to at most n bytes on a rune boundary
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func decodeNotices(raw string) []domain.Notice {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var notices []domain.Notice
	if err := json.Unmarshal(b, &notices); err != nil {
		return nil
	}
	return notices
}
