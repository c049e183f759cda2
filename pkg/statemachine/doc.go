// Package statemachine provides a small finite-state-machine used to model
// request lifecycles such as a registration attempt.
//
// States and events are modelled by the State and Event interfaces;
// StringState and StringEvent cover the common case. Transitions are
// registered with functional options and may carry guards, which veto a
// transition, and actions, which run before the state changes and abort the
// transition on error. Observers are notified after every successful
// transition.
//
// Usage:
//
//	const (
//	    Idle       = statemachine.StringState("idle")
//	    Submitting = statemachine.StringState("submitting")
//	    Submit     = statemachine.StringEvent("submit")
//	)
//
//	machine := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Submitting, Submit),
//	    statemachine.WithObserver(func(ctx context.Context, from, to statemachine.State, evt statemachine.Event) {
//	        log.Printf("%s -> %s via %s", from, to, evt)
//	    }),
//	)
//
//	if err := machine.Fire(ctx, Submit, nil); err != nil {
//	    if errors.Is(err, statemachine.ErrNoTransition) { /* ... */ }
//	}
//
// Machine is safe for concurrent use.
package statemachine
