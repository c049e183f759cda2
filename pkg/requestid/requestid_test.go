package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtym/campaign/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{"generates when missing", "", false},
		{"reuses valid id", "abc-123_XYZ", true},
		{"replaces invalid characters", "abc 123;drop", false},
		{"replaces overlong id", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(requestid.Header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(requestid.Header))
			if tt.reuse {
				assert.Equal(t, tt.incoming, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}

func TestTransport(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		got []string
	)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, r.Header.Get(requestid.Header))
	}))
	t.Cleanup(upstream.Close)

	client := &http.Client{Transport: requestid.Transport(nil)}

	send := func(ctx context.Context, header string) *http.Request {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstream.URL, nil)
		require.NoError(t, err)
		if header != "" {
			req.Header.Set(requestid.Header, header)
		}
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return req
	}

	req := send(requestid.WithContext(context.Background(), "req-1"), "")
	assert.Empty(t, req.Header.Get(requestid.Header), "caller request untouched")
	send(context.Background(), "")
	send(requestid.WithContext(context.Background(), "req-2"), "explicit")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"req-1", "", "explicit"}, got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()
	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck
}
