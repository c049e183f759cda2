// Package clientip resolves the visitor address that is attached to submitted
// leads for attribution.
//
// The address is taken from the first entry of the X-Forwarded-For header set
// by the edge proxy. When the header is absent the host part of the TCP peer
// address is used instead. The value is never parsed or validated: consumers
// treat it as an opaque attribution string, and an empty string means the
// address is unknown.
//
// # Usage
//
//	ip := clientip.GetIP(r)
//
//	// As middleware
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	r.Get("/api/ip", func(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//		...
//	})
//
// GetIP never returns an error.
package clientip
