package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/shareit-backend/internal/api"
	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	*httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
	lastReq  atomic.Value
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		u.lastBody.Store(string(body))
		u.lastReq.Store(r.Clone(r.Context()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"from":"server"}`))
	}))
	t.Cleanup(u.Close)
	return u
}

func setup(t *testing.T) (*gin.Engine, *upstream) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	up := newUpstream(t)
	r, err := NewRouter(Config{ServerURL: up.URL})
	require.NoError(t, err)
	return r, up
}

// serve runs the gateway on a real listener; the reverse proxy needs a
// ResponseWriter that supports CloseNotify.
func serve(t *testing.T, r *gin.Engine) string {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

type reply struct {
	Code   int
	Header http.Header
	Body   string
}

func call(t *testing.T, base, method, path, userID, body string) reply {
	t.Helper()
	req, err := http.NewRequest(method, base+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(auth.HeaderUserID, userID)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return reply{Code: resp.StatusCode, Header: resp.Header, Body: string(raw)}
}

// send drives the router in process; only for requests rejected before forwarding.
func send(r *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(auth.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouterRejectsBadURL(t *testing.T) {
	_, err := NewRouter(Config{ServerURL: "not a url"})
	assert.Error(t, err)
}

func TestForwardsValidRequests(t *testing.T) {
	r, up := setup(t)
	base := serve(t, r)

	start := time.Now().Add(time.Hour).Format("2006-01-02T15:04:05")
	end := time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04:05")
	body := `{"itemId":1,"start":"` + start + `","end":"` + end + `"}`

	w := call(t, base, http.MethodPost, "/bookings", "7", body)
	require.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"from":"server"}`, w.Body)
	assert.Equal(t, body, up.lastBody.Load())

	fwd := up.lastReq.Load().(*http.Request)
	assert.Equal(t, "/bookings", fwd.URL.Path)
	assert.Equal(t, "7", fwd.Header.Get(auth.HeaderUserID))
	assert.NotEmpty(t, fwd.Header.Get(api.HeaderRequestID))
	assert.Equal(t, fwd.Header.Get(api.HeaderRequestID), w.Header.Get(api.HeaderRequestID))

	w = call(t, base, http.MethodGet, "/bookings/owner?state=current&from=0&size=10", "7", "")
	require.Equal(t, http.StatusTeapot, w.Code)
	fwd = up.lastReq.Load().(*http.Request)
	assert.Equal(t, "state=current&from=0&size=10", fwd.URL.RawQuery)
}

func TestRejectsInvalidRequests(t *testing.T) {
	past := time.Now().Add(-time.Hour).Format("2006-01-02T15:04:05")
	future := time.Now().Add(time.Hour).Format("2006-01-02T15:04:05")

	tests := []struct {
		name         string
		method, path string
		userID       string
		body         string
		wantBody     string
	}{
		{"booking without header", http.MethodGet, "/bookings", "", "", `{"error":"Header X-Sharer-User-Id requested"}`},
		{"unknown state", http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", "1", "", `{"error":"Unknown state: UNSUPPORTED_STATUS"}`},
		{"negative from", http.MethodGet, "/requests/all?from=-1&size=10", "1", "", ""},
		{"zero size", http.MethodGet, "/items/search?text=a&size=0", "", "", ""},
		{"booking starts in the past", http.MethodPost, "/bookings", "1", `{"itemId":1,"start":"` + past + `","end":"` + future + `"}`, ""},
		{"booking without item", http.MethodPost, "/bookings", "1", `{"start":"` + future + `","end":"` + future + `"}`, ""},
		{"approve without flag", http.MethodPatch, "/bookings/1", "1", "", ""},
		{"user with bad email", http.MethodPost, "/users", "", `{"name":"A","email":"nope"}`, ""},
		{"user with blank name", http.MethodPost, "/users", "", `{"name":"  ","email":"a@b.cd"}`, ""},
		{"item without available", http.MethodPost, "/items", "1", `{"name":"Drill","description":"d"}`, ""},
		{"blank comment", http.MethodPost, "/items/1/comment", "1", `{"text":" "}`, ""},
		{"blank request", http.MethodPost, "/requests", "1", `{"description":""}`, ""},
		{"bad id", http.MethodGet, "/users/abc", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, up := setup(t)
			w := send(r, tt.method, tt.path, tt.userID, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Zero(t, up.calls.Load())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestUpstreamDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := newUpstream(t)
	r, err := NewRouter(Config{ServerURL: up.URL})
	require.NoError(t, err)
	base := serve(t, r)
	up.Close()

	w := call(t, base, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"server unavailable"}`, w.Body)
	assert.NotEmpty(t, w.Header.Get(api.HeaderRequestID))
}

func TestRejectsOversizedBody(t *testing.T) {
	r, up := setup(t)

	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `","email":"a@b.cd"}`
	w := send(r, http.MethodPost, "/users", "", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error":"request body too large"}`, w.Body.String())
	assert.Zero(t, up.calls.Load())
}
