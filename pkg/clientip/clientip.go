package clientip

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// ForwardedForHeader is the proxy header the resolver reads.
const ForwardedForHeader = "X-Forwarded-For"

// GetIP returns the visitor address for r.
// Resolution order:
// 1. X-Forwarded-For (first comma-separated entry)
// 2. RemoteAddr host (or the whole RemoteAddr when it carries no port)
// Returns an empty string when neither yields a value.
func GetIP(r *http.Request) string {
	if r == nil {
		return ""
	}

	if forwarded := r.Header.Get(ForwardedForHeader); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	return remoteHost(r.RemoteAddr)
}

// remoteHost strips the port from a transport address without validating it.
func remoteHost(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

type contextKey struct{}

// WithContext stores the resolved address in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or an empty string.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the visitor address once per request and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), GetIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
