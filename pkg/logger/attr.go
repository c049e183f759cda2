package logger

import (
	"log/slog"
	"time"

	"github.com/classtym/campaign/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Funnel records the registration funnel under the key "funnel".
func Funnel(name string) slog.Attr {
	return slog.String("funnel", name)
}

// Upstream groups the method, endpoint and status of an upstream call.
// A zero status is omitted.
func Upstream(method, endpoint string, status int) slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", method),
		slog.String("endpoint", endpoint),
	}
	if status != 0 {
		attrs = append(attrs, slog.Int("status", status))
	}
	return Group("upstream", attrs...)
}

// Duration records an elapsed time in milliseconds under the key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}

// Transition records a state change under the key "transition".
func Transition(from, to, event string) slog.Attr {
	return Group("transition",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("event", event),
	)
}

// Lead records masked contact details of a registrant under the key "lead".
func Lead(name, email, phone string) slog.Attr {
	return Group("lead",
		slog.String("name", sanitizer.MaskName(name)),
		slog.String("email", sanitizer.MaskEmail(email)),
		slog.String("phone", sanitizer.MaskPhone(phone)),
	)
}
