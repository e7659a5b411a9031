package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(Config{})
	require.NoError(t, err)
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)

	id := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set(HeaderRequestID, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(HeaderRequestID))
}

func TestIdentifiedRoutesNeedHeader(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/bookings", "/bookings/owner", "/items", "/requests", "/requests/all"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"Header X-Sharer-User-Id requested"}`, w.Body.String(), path)
	}
}

func TestRouterEnforcesCustomTags(t *testing.T) {
	r := newTestRouter(t)

	past := time.Now().Add(-time.Hour).Format("2006-01-02T15:04:05")
	future := time.Now().Add(time.Hour).Format("2006-01-02T15:04:05")

	tests := []struct {
		name, path, body string
	}{
		{"booking starts in the past", "/bookings", `{"itemId":1,"start":"` + past + `","end":"` + future + `"}`},
		{"booking ends before it starts", "/bookings", `{"itemId":1,"start":"` + future + `","end":"` + future + `"}`},
		{"user with blank name", "/users", `{"name":"   ","email":"a@b.cd"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Sharer-User-Id", "1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestMetricsExposesBookingCounters(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shareit_booking_created_total")
}

func TestCORSConfig(t *testing.T) {
	dev := CORSConfig(false, "")
	assert.Contains(t, dev.AllowOrigins, "http://localhost:8080")
	assert.Contains(t, dev.AllowHeaders, "X-Sharer-User-Id")

	prod := CORSConfig(true, "https://a.example, https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, prod.AllowOrigins)

	open := CORSConfig(true, "")
	assert.True(t, open.AllowAllOrigins)
	assert.NoError(t, open.Validate())
}
