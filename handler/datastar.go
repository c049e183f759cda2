package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is sent by the Datastar client on every fetch.
	DataStarRequestHeader = "Datastar-Request"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request was issued by the Datastar client and
// expects a Server-Sent Events response.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

type dataStarResponse struct {
	signals  []any
	redirect string
}

// DataStarOption adds an event to a DataStar response.
type DataStarOption func(*dataStarResponse)

// WithSignals patches the client signals with v, marshalled as JSON.
// Multiple patches are sent in order.
func WithSignals(v any) DataStarOption {
	return func(d *dataStarResponse) {
		if v != nil {
			d.signals = append(d.signals, v)
		}
	}
}

// WithRedirect navigates the browser to url after the signal patches.
func WithRedirect(url string) DataStarOption {
	return func(d *dataStarResponse) {
		d.redirect = url
	}
}

// DataStar creates a Server-Sent Events response for the Datastar client.
func DataStar(opts ...DataStarOption) Response {
	d := &dataStarResponse{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *dataStarResponse) Render(w http.ResponseWriter, r *http.Request) error {
	sse := datastar.NewSSE(w, r)

	for _, s := range d.signals {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal signals: %w", err)
		}
		if err := sse.PatchSignals(payload); err != nil {
			return err
		}
	}

	if d.redirect != "" {
		return sse.Redirect(d.redirect)
	}
	return nil
}
