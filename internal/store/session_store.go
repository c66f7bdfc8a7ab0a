package store

import (
	"crypto/rand"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"forkful/internal/domain"
)

const (
	sessionFile = "session.enc"
	keyFile     = "session.key" // 32-byte machine-local secret
)

// sessionCookie is the on-disk shape of one stored cookie.
type sessionCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Host     string    `json:"host"`
	Path     string    `json:"path,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

func (c sessionCookie) expired(now time.Time) bool {
	return !c.Expires.IsZero() && c.Expires.Before(now)
}

// SessionStore is a file-backed cookie jar scoped to a single API origin.
// Cookie path and domain attributes are not matched; the CLI only ever
// talks to one host. The jar is sealed at rest under a machine-local key
// created on first use.
type SessionStore struct {
	mu      sync.Mutex
	dir     string
	key     []byte
	cookies map[string]sessionCookie // keyed by host|name
}

// NewSessionStore opens (or initialises) the session jar under dir.
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	key, err := loadOrCreateKey(filepath.Join(dir, keyFile))
	if err != nil {
		return nil, err
	}

	s := &SessionStore{dir: dir, key: key, cookies: make(map[string]sessionCookie)}

	blob, err := readFile(filepath.Join(dir, sessionFile))
	if err != nil {
		return nil, err
	}
	if blob != nil {
		raw, err := open(key, blob)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &s.cookies); err != nil {
			return nil, errCorruptSession
		}
	}
	return s, nil
}

// SetCookies records the response cookies for u and persists the jar.
func (s *SessionStore) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		key := u.Hostname() + "|" + c.Name

		// MaxAge<0 and already-expired cookies are deletions.
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(s.cookies, key)
			continue
		}
		sc := sessionCookie{
			Name:     c.Name,
			Value:    c.Value,
			Host:     u.Hostname(),
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
		switch {
		case c.MaxAge > 0:
			sc.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		case !c.Expires.IsZero():
			sc.Expires = c.Expires
		}
		s.cookies[key] = sc
	}

	if err := s.persist(); err != nil {
		slog.Warn("failed to persist session", "error", err)
	}
}

// Cookies returns the live cookies for u's host.
func (s *SessionStore) Cookies(u *url.URL) []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var out []*http.Cookie
	for _, sc := range s.cookies {
		if sc.Host != u.Hostname() || sc.expired(now) {
			continue
		}
		out = append(out, &http.Cookie{Name: sc.Name, Value: sc.Value})
	}
	return out
}

// Clear drops every stored cookie, logging the user out locally.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookies = make(map[string]sessionCookie)
	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// persist seals the jar and writes it to disk. Caller holds the lock.
func (s *SessionStore) persist() error {
	raw, err := json.Marshal(s.cookies)
	if err != nil {
		return err
	}
	blob, err := seal(s.key, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, sessionFile), blob, 0o600)
}

// loadOrCreateKey returns the machine-local secret, generating it on first use.
func loadOrCreateKey(path string) ([]byte, error) {
	key, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if len(key) == 32 {
		return key, nil
	}
	key = make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := writeFile(path, key, 0o600); err != nil {
		return nil, err
	}
	return key, nil
}

// Compile-time assertion that SessionStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionStore)(nil)
