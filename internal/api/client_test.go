package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/api"
	"forkful/internal/domain"
)

// newTestClient returns a Client pointed at srv, with a cookie jar so the
// session cookie round-trips.
func newTestClient(t *testing.T, srv *httptest.Server) *api.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return api.New(srv.URL, api.WithHTTPClient(&http.Client{Jar: jar}))
}

func TestDo_RefreshThenRetry(t *testing.T) {
	var refreshCalls, recipeCalls atomic.Int32
	var refreshed atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		refreshed.Store(true)
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "rotated"})
	})
	mux.HandleFunc("GET /api/recipes/", func(w http.ResponseWriter, r *http.Request) {
		recipeCalls.Add(1)
		if !refreshed.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"count":1,"results":[{"id":7,"title":"Shakshuka"}]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	page, err := c.ListRecipes(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Shakshuka", page.Results[0].Title)
	assert.Equal(t, int32(1), refreshCalls.Load(), "expected exactly one refresh call")
	assert.Equal(t, int32(2), recipeCalls.Load(), "expected original request plus one retry")
}

func TestDo_SecondUnauthorizedIsTerminal(t *testing.T) {
	var refreshCalls, recipeCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("GET /api/recipes/", func(w http.ResponseWriter, r *http.Request) {
		recipeCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.ListRecipes(context.Background(), 0)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(1), refreshCalls.Load(), "no second refresh cycle")
	assert.Equal(t, int32(2), recipeCalls.Load(), "no retry loop")
}

// concurrentServer releases n parked recipe requests at once so their 401s
// land simultaneously and must share one refresh.
func concurrentServer(n int, refreshStatus int) (*http.ServeMux, *atomic.Int32) {
	var refreshCalls atomic.Int32
	var refreshed atomic.Bool

	var mu sync.Mutex
	arrived := 0
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		// Hold the shared flight open long enough for every 401 to join it.
		time.Sleep(100 * time.Millisecond)
		if refreshStatus == http.StatusOK {
			refreshed.Store(true)
		}
		w.WriteHeader(refreshStatus)
	})
	mux.HandleFunc("GET /api/recipes/", func(w http.ResponseWriter, r *http.Request) {
		if refreshed.Load() {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"count":0,"results":[]}`)
			return
		}
		mu.Lock()
		arrived++
		if arrived == n {
			close(release)
		}
		mu.Unlock()
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	})
	return mux, &refreshCalls
}

func TestDo_ConcurrentRefreshIsCoalesced(t *testing.T) {
	const n = 8
	mux, refreshCalls := concurrentServer(n, http.StatusOK)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)

	errs := make(chan error, n)
	for range n {
		go func() {
			_, err := c.ListRecipes(context.Background(), 0)
			errs <- err
		}()
	}
	for range n {
		require.NoError(t, <-errs)
	}
	assert.Equal(t, int32(1), refreshCalls.Load(), "concurrent 401s must share one refresh")
}

func TestDo_ConcurrentRefreshFailure_AllSessionExpired(t *testing.T) {
	const n = 8
	mux, refreshCalls := concurrentServer(n, http.StatusForbidden)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)

	errs := make(chan error, n)
	for range n {
		go func() {
			_, err := c.ListRecipes(context.Background(), 0)
			errs <- err
		}()
	}
	for range n {
		require.ErrorIs(t, <-errs, api.ErrSessionExpired)
	}
	assert.Equal(t, int32(1), refreshCalls.Load())
}

func TestDo_SkipListedEndpointNeverRefreshes(t *testing.T) {
	var refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid credentials"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "nope"})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Equal(t, int32(0), refreshCalls.Load(), "login 401 must not trigger a refresh")
}

func TestDo_JSONRoundTrip(t *testing.T) {
	want := map[string]any{
		"id":    float64(42),
		"title": "Pão de queijo",
		"tags":  []any{"brazilian", "snack"},
		"meta":  map[string]any{"servings": float64(12)},
	}

	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	var got map[string]any
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/api/recipes/42/", api.WithOut(&got)))

	assert.Equal(t, want, got)
	assert.NotEmpty(t, gotRequestID, "every request carries an X-Request-ID")
}

func TestDo_EmptyBodyLeavesOutUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	out := map[string]any{"sentinel": true}
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "/api/recipes/1/", api.WithOut(&out)))
	assert.Equal(t, map[string]any{"sentinel": true}, out)
}

func TestDo_ValidationErrorsAreJoined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"email":["Invalid email"],"password":["Too short"]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Register(context.Background(), domain.Registration{})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Invalid email")
	assert.Contains(t, apiErr.Message, "Too short")
	assert.Equal(t, map[string][]string{
		"email":    {"Invalid email"},
		"password": {"Too short"},
	}, apiErr.Fields)
}

func TestDo_MultipartUploadKeepsBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if !assert.True(t, strings.HasPrefix(ct, "multipart/form-data; boundary="), "got content type %q", ct) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		assert.NoError(t, err)
		assert.Equal(t, "avatar.png", header.Filename)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"user":{"username":"dana"},"image_url":"/media/avatar.png"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	profile, err := c.UpdateProfileImage(context.Background(), "avatar.png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	assert.Equal(t, "/media/avatar.png", profile.ImageURL)
}

func TestDo_SessionCookieRoundTrips(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"username":"dana","email":"dana@example.com"}`)
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"username":"dana","email":"dana@example.com"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Login(context.Background(), domain.Credentials{Email: "dana@example.com", Password: "pw"})
	require.NoError(t, err)

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dana", me.Username)
}
