package registration

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/pkg/statemachine"
	"github.com/classtym/campaign/svc/gateway"
)

// Submission states.
const (
	StateIdle       = statemachine.StringState("idle")
	StateValidating = statemachine.StringState("validating")
	StateInvalid    = statemachine.StringState("invalid")
	StateSubmitting = statemachine.StringState("submitting")
	StateRejected   = statemachine.StringState("rejected")
	StateFailed     = statemachine.StringState("failed")
	StateSucceeded  = statemachine.StringState("succeeded")
)

// Submission events.
const (
	EventSubmit  = statemachine.StringEvent("submit")
	EventInvalid = statemachine.StringEvent("invalid")
	EventValid   = statemachine.StringEvent("valid")
	EventReject  = statemachine.StringEvent("reject")
	EventFail    = statemachine.StringEvent("fail")
	EventSucceed = statemachine.StringEvent("succeed")
	EventSettle  = statemachine.StringEvent("settle")
)

var transitions = []statemachine.Option{
	statemachine.WithTransition(StateIdle, StateValidating, EventSubmit),
	statemachine.WithTransition(StateValidating, StateInvalid, EventInvalid),
	statemachine.WithTransition(StateValidating, StateSubmitting, EventValid),
	statemachine.WithTransition(StateSubmitting, StateRejected, EventReject),
	statemachine.WithTransition(StateSubmitting, StateFailed, EventFail),
	statemachine.WithTransition(StateSubmitting, StateSucceeded, EventSucceed),
	statemachine.WithTransitions(
		[]statemachine.State{StateInvalid, StateRejected, StateFailed, StateSucceeded},
		StateIdle, EventSettle,
	),
}

// Caller is the part of the gateway the flow needs.
type Caller interface {
	Call(ctx context.Context, method, endpoint string, body any, opts ...gateway.CallOption) (json.RawMessage, error)
}

// WelcomeSender sends the post-registration welcome email.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, req Request) error
}

// Flow runs registration attempts against the upstream API.
type Flow struct {
	gateway Caller
	welcome WelcomeSender
	log     *slog.Logger
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithWelcome sends a welcome email after every successful registration.
func WithWelcome(w WelcomeSender) FlowOption {
	return func(f *Flow) {
		f.welcome = w
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) FlowOption {
	return func(f *Flow) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFlow creates a Flow calling gw.
func NewFlow(gw Caller, opts ...FlowOption) *Flow {
	f := &Flow{
		gateway: gw,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type upstreamSuccess struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
}

type displayResult struct {
	DisplayMessage string `json:"display_message"`
}

// Submit runs one attempt for form. Errors and focus are recomputed from
// scratch; on success the form is reset. The returned Outcome describes
// what the visitor should see.
func (fl *Flow) Submit(ctx context.Context, form *Form) Outcome {
	funnel := form.Funnel
	log := fl.log.With(logger.Component("registration"), logger.Funnel(funnel.Name))

	sm := statemachine.MustNew(StateIdle, append(slices.Clip(transitions),
		statemachine.WithObserver(func(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
			log.DebugContext(ctx, "submission transition", logger.Transition(from.Name(), to.Name(), event.Name()))
		}),
	)...)
	fire := func(event statemachine.Event) {
		if err := sm.Fire(ctx, event, nil); err != nil {
			log.ErrorContext(ctx, "submission state machine", logger.Error(err))
		}
	}
	defer fire(EventSettle)

	fire(EventSubmit)
	form.Errors = ErrorSet{}
	form.Focus = ""

	if ferr := Validate(funnel, form.Request); ferr != nil {
		fire(EventInvalid)
		form.Errors[ferr.Field] = ferr.Message
		form.Focus = ferr.Field
		return Outcome{Status: StatusInvalid, Errors: form.Errors, Focus: form.Focus}
	}
	fire(EventValid)

	raw, err := fl.gateway.Call(ctx, http.MethodPost, funnel.Endpoint, form.Request.Wire(funnel))
	if err != nil {
		var verr *gateway.ValidationError
		if errors.As(err, &verr) {
			fire(EventReject)
			violations := verr.Violations
			if !funnel.ReportAllErrors {
				violations = violations[:1]
			}
			for _, v := range violations {
				field := funnel.FieldFor(v.Path)
				if _, seen := form.Errors[field]; !seen {
					form.Errors[field] = v.Msg
				}
				if form.Focus == "" {
					form.Focus = field
				}
			}
			log.InfoContext(ctx, "registration rejected upstream",
				slog.String("field", form.Focus),
				slog.Int("violations", len(verr.Violations)),
			)
			return Outcome{Status: StatusRejected, Errors: form.Errors, Focus: form.Focus, Err: err}
		}

		fire(EventFail)
		log.WarnContext(ctx, "registration failed", logger.Error(err))
		return Outcome{Status: StatusFailed, Errors: form.Errors, Err: err}
	}

	fire(EventSucceed)
	out := Outcome{
		Status:      StatusSucceeded,
		Errors:      ErrorSet{},
		RedirectURL: funnel.RedirectURL(),
	}
	var body upstreamSuccess
	if json.Unmarshal(raw, &body) == nil && body.Result != nil {
		out.Result = body.Result
		var dr displayResult
		if json.Unmarshal(body.Result, &dr) == nil {
			out.DisplayMessage = dr.DisplayMessage
		}
	} else {
		out.Result = raw
	}

	log.InfoContext(ctx, "registration accepted",
		logger.Lead(form.Request.FullName, form.Request.Email, form.Request.MobileNumber),
	)

	if fl.welcome != nil {
		if err := fl.welcome.SendWelcome(ctx, form.Request); err != nil {
			log.WarnContext(ctx, "welcome email not sent", logger.Error(err))
		}
	}

	form.Reset()
	return out
}
