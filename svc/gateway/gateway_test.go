package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/classtym/campaign/svc/gateway"
)

func newClient(t *testing.T, h http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := gateway.New(gateway.Config{BaseURL: srv.URL + "/", StaticToken: "secret"})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := gateway.New(gateway.Config{StaticToken: "x"})
	assert.ErrorIs(t, err, gateway.ErrMissingBaseURL)

	_, err = gateway.New(gateway.Config{BaseURL: "   "})
	assert.ErrorIs(t, err, gateway.ErrMissingBaseURL)

	_, err = gateway.New(gateway.Config{BaseURL: "https://api.example.com"})
	assert.ErrorIs(t, err, gateway.ErrMissingTokenSource)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, gateway.Config{}.Validate(), gateway.ErrMissingBaseURL)
	assert.ErrorIs(t, gateway.Config{BaseURL: "https://api"}.Validate(), gateway.ErrMissingTokenSource)
	assert.NoError(t, gateway.Config{BaseURL: "https://api", StaticToken: "t"}.Validate())
}

func TestCall(t *testing.T) {
	t.Parallel()

	t.Run("sends json with auth and no-cache headers", func(t *testing.T) {
		t.Parallel()

		var got *http.Request
		var body []byte
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r
			body, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"success":true,"result":{"display_message":"Welcome!"}}`))
		})

		raw, err := c.Call(context.Background(), http.MethodPost, "student/registration",
			map[string]string{"ip_address": "1.2.3.4"},
			gateway.WithHeader("X-Funnel", "student"),
		)
		require.NoError(t, err)

		assert.Equal(t, "/student/registration", got.URL.Path)
		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
		assert.Equal(t, "no-store", got.Header.Get("Cache-Control"))
		assert.Equal(t, "no-cache", got.Header.Get("Pragma"))
		assert.Equal(t, "student", got.Header.Get("X-Funnel"))
		assert.JSONEq(t, `{"ip_address":"1.2.3.4"}`, string(body))
		assert.JSONEq(t, `{"success":true,"result":{"display_message":"Welcome!"}}`, string(raw))
	})

	t.Run("caller authorization wins", func(t *testing.T) {
		t.Parallel()

		var auth string
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
		})

		raw, err := c.Call(context.Background(), http.MethodGet, "banner", nil,
			gateway.WithHeaders(map[string]string{"Authorization": "Bearer caller"}))
		require.NoError(t, err)
		assert.Equal(t, "Bearer caller", auth)
		assert.Equal(t, "null", string(raw))
	})

	t.Run("header values are stripped of line breaks", func(t *testing.T) {
		t.Parallel()

		var funnel, trace string
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			funnel = r.Header.Get("X-Funnel")
			trace = r.Header.Get("X-Trace")
		})

		_, err := c.Call(context.Background(), http.MethodGet, "banner", nil,
			gateway.WithHeader("X-Funnel", "student\r\nX-Evil: 1"),
			gateway.WithHeaders(map[string]string{"X-Trace": "abc\n"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "studentX-Evil: 1", funnel)
		assert.Equal(t, "abc", trace)
	})

	t.Run("content type cannot be overridden", func(t *testing.T) {
		t.Parallel()

		var ct string
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			ct = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := c.Call(context.Background(), http.MethodPost, "meta-data", nil, gateway.WithHeader("Content-Type", "text/plain"))
		require.NoError(t, err)
		assert.Equal(t, "application/json", ct)
	})

	t.Run("every call reaches upstream", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Header().Set("Cache-Control", "max-age=3600")
			_, _ = w.Write([]byte(`{"n":1}`))
		})

		for range 3 {
			_, err := c.Call(context.Background(), http.MethodGet, "banner", nil)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("invalid json on success", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := c.Call(context.Background(), http.MethodGet, "banner", nil)
		assert.ErrorIs(t, err, gateway.ErrInvalidResponse)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[[{"path":"email_id","msg":"Email already registered"}]]}`))
		})

		_, err := c.Call(context.Background(), http.MethodPost, "student/registration", map[string]string{})
		var verr *gateway.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, http.StatusBadRequest, verr.Status)
		assert.Equal(t, gateway.Violation{Path: "email_id", Msg: "Email already registered"}, verr.First())
		assert.Len(t, verr.Violations, 1)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("opaque failure", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		_, err := c.Call(context.Background(), http.MethodPost, "student/registration", nil)
		var oerr *gateway.OpaqueError
		require.ErrorAs(t, err, &oerr)
		assert.Equal(t, http.StatusBadGateway, oerr.Status)
		assert.Contains(t, oerr.Body, "bad gateway")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c, err := gateway.New(gateway.Config{BaseURL: srv.URL, StaticToken: "x"})
		require.NoError(t, err)

		_, err = c.Call(context.Background(), http.MethodGet, "banner", nil)
		assert.ErrorIs(t, err, gateway.ErrTransport)
	})

	t.Run("token failure stops the call", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))
		t.Cleanup(srv.Close)

		boom := gateway.TokenSourceFunc(func(context.Context) (*oauth2.Token, error) { return nil, gateway.ErrToken })
		c, err := gateway.New(gateway.Config{BaseURL: srv.URL}, gateway.WithTokenSource(boom))
		require.NoError(t, err)

		_, err = c.Call(context.Background(), http.MethodGet, "banner", nil)
		assert.ErrorIs(t, err, gateway.ErrToken)
		assert.Zero(t, hits.Load())
	})
}

func TestFetch(t *testing.T) {
	t.Parallel()

	type banner struct {
		Title string `json:"title"`
	}

	var page map[string]string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&page)
		_, _ = w.Write([]byte(`{"title":"Learn anything"}`))
	})

	got, err := gateway.Fetch[banner](context.Background(), c, http.MethodPost, "banner", map[string]string{"page_name": "Student"})
	require.NoError(t, err)
	assert.Equal(t, "Learn anything", got.Title)
	assert.Equal(t, "Student", page["page_name"])
}

func TestFailureClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		violations []gateway.Violation
	}{
		{
			name:       "first value first group first entry",
			body:       `{"b":[[{"path":"full_name","msg":"Name too short"},{"path":"email_id","msg":"Bad"}]],"a":[[{"path":"mobile_number","msg":"Taken"}]]}`,
			violations: []gateway.Violation{{"full_name", "Name too short"}, {"email_id", "Bad"}, {"mobile_number", "Taken"}},
		},
		{
			name:       "malformed later groups are skipped",
			body:       `{"errors":[[{"path":"email_id","msg":"Taken"}]],"meta":"x"}`,
			violations: []gateway.Violation{{"email_id", "Taken"}},
		},
		{
			name:       "flat entries",
			body:       `{"errors":[{"path":"student_email_id","msg":"Email already registered"},{"path":"full_name","msg":"Too short"}]}`,
			violations: []gateway.Violation{{"student_email_id", "Email already registered"}, {"full_name", "Too short"}},
		},
		{
			name:       "flat first value with nested later value",
			body:       `{"errors":[{"path":"email_id","msg":"Taken"}],"more":[[{"path":"mobile_number","msg":"Taken"}]]}`,
			violations: []gateway.Violation{{"email_id", "Taken"}, {"mobile_number", "Taken"}},
		},
		{name: "not json", body: `Internal Server Error`},
		{name: "empty flat list", body: `{"errors":[]}`},
		{name: "flat entry without path", body: `{"errors":[{"msg":"x"}]}`},
		{name: "list of strings", body: `{"errors":["email taken"]}`},
		{name: "array", body: `[[{"path":"email_id","msg":"x"}]]`},
		{name: "empty object", body: `{}`},
		{name: "first value not groups", body: `{"message":"nope","errors":[[{"path":"email_id","msg":"x"}]]}`},
		{name: "empty first group", body: `{"errors":[[],[{"path":"email_id","msg":"x"}]]}`},
		{name: "entry without msg", body: `{"errors":[[{"path":"email_id"}]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Call(context.Background(), http.MethodPost, "expert/registration", nil)
			require.Error(t, err)

			var verr *gateway.ValidationError
			if tt.violations == nil {
				var oerr *gateway.OpaqueError
				assert.False(t, errors.As(err, &verr))
				require.ErrorAs(t, err, &oerr)
				assert.Equal(t, tt.body, oerr.Body)
				return
			}
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.violations, verr.Violations)
		})
	}
}

func TestTokenSources(t *testing.T) {
	t.Parallel()

	t.Run("endpoint", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth/token":
				calls.Add(1)
				_, _ = w.Write([]byte(`{"token":"abc"}`))
			default:
				assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`{}`))
			}
		}))
		t.Cleanup(srv.Close)

		c, err := gateway.New(gateway.Config{BaseURL: srv.URL, TokenEndpoint: "auth/token"})
		require.NoError(t, err)

		for range 2 {
			_, err = c.Call(context.Background(), http.MethodGet, "banner", nil)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("endpoint empty token", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"token":""}`))
		}))
		t.Cleanup(srv.Close)

		_, err := gateway.EndpointToken(srv.Client(), srv.URL).Token(context.Background())
		assert.ErrorIs(t, err, gateway.ErrToken)
	})

	t.Run("signed", func(t *testing.T) {
		t.Parallel()

		tok, err := gateway.SignedToken("s3cret", "campaign", time.Minute).Token(context.Background())
		require.NoError(t, err)

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(tok.AccessToken, claims, func(*jwt.Token) (any, error) {
			return []byte("s3cret"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "campaign", claims.Issuer)
	})

	t.Run("auth headers", func(t *testing.T) {
		t.Parallel()

		c, err := gateway.New(gateway.Config{BaseURL: "https://api.example.com", StaticToken: "tok"})
		require.NoError(t, err)

		h, err := c.AuthHeaders(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Authorization": "Bearer tok"}, h)
	})
}
