package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is the in-memory StateMachine implementation.
// Transitions are indexed as [fromState][event][]Transition.
type Machine struct {
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	observers   []Observer
	mu          sync.RWMutex
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is currently in state.
func (m *Machine) Is(state State) bool {
	if state == nil {
		return false
	}
	return m.Current().Name() == state.Name()
}

// AddTransition registers a transition. Several transitions may share the
// same from/event pair; the first one whose guards pass wins.
func (m *Machine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[from.Name()] = byEvent
	}

	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.pick(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
	}

	m.current = t.To
	observers := m.observers
	m.mu.Unlock()

	for _, observe := range observers {
		observe(ctx, from, t.To, event)
	}
	return nil
}

func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.pick(ctx, event, data)
	return err == nil
}

// Reset moves the machine back to its initial state without running actions or observers.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// pick returns the first transition from the current state whose guards pass.
// Callers must hold the lock.
func (m *Machine) pick(ctx context.Context, event Event, data any) (*Transition, error) {
	candidates := m.transitions[m.current.Name()][event.Name()]
	if len(candidates) == 0 {
		return nil, &TransitionError{State: m.current.Name(), Event: event.Name(), Err: ErrNoTransition}
	}

	for i := range candidates {
		if m.allowed(ctx, &candidates[i], event, data) {
			return &candidates[i], nil
		}
	}
	return nil, &TransitionError{State: m.current.Name(), Event: event.Name(), Err: ErrTransitionRejected}
}

func (m *Machine) allowed(ctx context.Context, t *Transition, event Event, data any) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(ctx, m.current, event, data) {
			return false
		}
	}
	return true
}
