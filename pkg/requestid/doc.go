// Package requestid attaches a correlation id to every request and carries it
// to logs and upstream calls.
//
// Middleware reuses a well-formed client supplied X-Request-ID header or
// generates a UUIDv4, stores it in the request context and echoes it in the
// response. LoggerExtractor exposes it to pkg/logger, and Transport forwards
// it on outgoing requests so upstream logs can be joined with ours:
//
//	router.Use(requestid.Middleware)
//	client := &http.Client{Transport: requestid.Transport(http.DefaultTransport)}
package requestid
