package registration

import (
	"encoding/json"
	"maps"
	"net/http"

	"github.com/classtym/campaign/handler"
)

// Status is the result of one submission attempt.
type Status int

const (
	// StatusInvalid means client-side validation failed; nothing was sent.
	StatusInvalid Status = iota
	// StatusRejected means the upstream validator rejected a field.
	StatusRejected
	// StatusFailed means any other upstream or transport failure.
	StatusFailed
	// StatusSucceeded means the lead was registered.
	StatusSucceeded
)

// GenericFailureMessage is shown when a failure has no field attribution.
const GenericFailureMessage = "Something went wrong. Please try again."

// Outcome is what the visitor sees after an attempt.
type Outcome struct {
	Status         Status
	Errors         ErrorSet
	Focus          string
	Result         json.RawMessage
	DisplayMessage string
	RedirectURL    string
	Err            error
}

type successBody struct {
	Success        bool            `json:"success"`
	Result         json.RawMessage `json:"result"`
	DisplayMessage string          `json:"display_message,omitempty"`
	RedirectURL    string          `json:"redirect_url,omitempty"`
}

type invalidBody struct {
	Success bool     `json:"success"`
	Errors  ErrorSet `json:"errors"`
	Focus   string   `json:"focus"`
}

type failureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSON renders the outcome for plain API clients.
func (o Outcome) JSON() handler.Response {
	switch o.Status {
	case StatusSucceeded:
		result := o.Result
		if result == nil {
			result = json.RawMessage("null")
		}
		return handler.JSON(successBody{
			Success:        true,
			Result:         result,
			DisplayMessage: o.DisplayMessage,
			RedirectURL:    o.RedirectURL,
		})
	case StatusInvalid, StatusRejected:
		return handler.JSON(invalidBody{Errors: o.Errors, Focus: o.Focus},
			handler.WithJSONStatus(http.StatusUnprocessableEntity))
	default:
		return handler.JSON(failureBody{Error: GenericFailureMessage},
			handler.WithJSONStatus(http.StatusBadGateway))
	}
}

// DataStar renders the outcome as signal patches for the landing page.
// Every visible field gets an entry in "errors" so stale messages are
// cleared; on success the form values are patched back to their reset
// state before any redirect.
func (o Outcome) DataStar(form *Form) handler.Response {
	errs := make(map[string]string, len(o.Errors)+4)
	for field := range form.Values() {
		errs[field] = ""
	}
	maps.Copy(errs, o.Errors)

	signals := map[string]any{
		"loading": false,
		"errors":  errs,
		"focus":   o.Focus,
		"error":   "",
	}

	opts := []handler.DataStarOption{}
	switch o.Status {
	case StatusSucceeded:
		for field, value := range form.Values() {
			signals[field] = value
		}
		signals["display_message"] = o.DisplayMessage
		opts = append(opts, handler.WithSignals(signals))
		if o.RedirectURL != "" {
			opts = append(opts, handler.WithRedirect(o.RedirectURL))
		}
	case StatusFailed:
		signals["error"] = GenericFailureMessage
		opts = append(opts, handler.WithSignals(signals))
	default:
		opts = append(opts, handler.WithSignals(signals))
	}

	return handler.DataStar(opts...)
}
