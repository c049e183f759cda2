package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/classtym/campaign/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{
			name:       "first forwarded entry wins",
			forwarded:  "1.2.3.4, 5.6.7.8",
			remoteAddr: "10.0.0.1:54321",
			expected:   "1.2.3.4",
		},
		{
			name:       "single forwarded entry",
			forwarded:  "203.0.113.195",
			remoteAddr: "10.0.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name:       "forwarded entry is not validated",
			forwarded:  "unknown, 5.6.7.8",
			remoteAddr: "10.0.0.1:54321",
			expected:   "unknown",
		},
		{
			name:       "empty first entry falls back to remote address",
			forwarded:  " , 5.6.7.8",
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:       "remote address fallback",
			remoteAddr: "127.0.0.1:8080",
			expected:   "127.0.0.1",
		},
		{
			name:       "ipv6 remote address",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "remote address without port",
			remoteAddr: "192.168.1.10",
			expected:   "192.168.1.10",
		},
		{
			name:     "nothing available",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(clientip.ForwardedForHeader, tt.forwarded)
			}

			assert.Equal(t, tt.expected, clientip.GetIP(req))
		})
	}
}

func TestGetIPNilRequest(t *testing.T) {
	t.Parallel()
	assert.Empty(t, clientip.GetIP(nil))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/ip", nil)
	req.Header.Set(clientip.ForwardedForHeader, "198.51.100.178, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "198.51.100.178", got)
}

func TestFromContextEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, clientip.FromContext(context.Background()))
	assert.Equal(t, "1.2.3.4", clientip.FromContext(clientip.WithContext(context.Background(), "1.2.3.4")))
}
