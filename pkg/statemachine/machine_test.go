package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtym/campaign/pkg/statemachine"
)

const (
	idle       = statemachine.StringState("idle")
	validating = statemachine.StringState("validating")
	invalid    = statemachine.StringState("invalid")
	submitting = statemachine.StringState("submitting")
	succeeded  = statemachine.StringState("succeeded")

	submit   = statemachine.StringEvent("submit")
	fail     = statemachine.StringEvent("fail")
	pass     = statemachine.StringEvent("pass")
	complete = statemachine.StringEvent("complete")
	settle   = statemachine.StringEvent("settle")
)

func newLifecycle(t *testing.T, opts ...statemachine.Option) *statemachine.Machine {
	t.Helper()

	opts = append([]statemachine.Option{
		statemachine.WithTransition(idle, validating, submit),
		statemachine.WithTransition(validating, invalid, fail),
		statemachine.WithTransition(validating, submitting, pass),
		statemachine.WithTransition(submitting, succeeded, complete),
		statemachine.WithTransitions([]statemachine.State{invalid, succeeded}, idle, settle),
	}, opts...)

	m, err := statemachine.New(idle, opts...)
	require.NoError(t, err)
	return m
}

func TestMachine_Fire(t *testing.T) {
	t.Parallel()

	t.Run("walks the happy path", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		m := newLifecycle(t)

		require.NoError(t, m.Fire(ctx, submit, nil))
		require.NoError(t, m.Fire(ctx, pass, nil))
		require.NoError(t, m.Fire(ctx, complete, nil))
		assert.True(t, m.Is(succeeded))

		require.NoError(t, m.Fire(ctx, settle, nil))
		assert.Equal(t, idle, m.Current())
	})

	t.Run("rejects undefined transitions", func(t *testing.T) {
		t.Parallel()
		m := newLifecycle(t)

		err := m.Fire(context.Background(), complete, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, statemachine.ErrNoTransition)

		var terr *statemachine.TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "idle", terr.State)
		assert.Equal(t, "complete", terr.Event)
		assert.True(t, m.Is(idle))
	})

	t.Run("nil event", func(t *testing.T) {
		t.Parallel()
		m := newLifecycle(t)
		assert.ErrorIs(t, m.Fire(context.Background(), nil, nil), statemachine.ErrInvalidEvent)
		assert.False(t, m.CanFire(context.Background(), nil, nil))
	})
}

func TestMachine_Guards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onlyValid := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
		ok, _ := data.(bool)
		return ok
	}

	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, submitting, submit, statemachine.WithGuard(onlyValid)),
		statemachine.WithTransition(idle, invalid, submit),
	)

	assert.True(t, m.CanFire(ctx, submit, false))
	require.NoError(t, m.Fire(ctx, submit, false))
	assert.True(t, m.Is(invalid), "falls through to the unguarded transition")

	m.Reset()
	require.NoError(t, m.Fire(ctx, submit, true))
	assert.True(t, m.Is(submitting))

	guarded := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, submitting, submit, statemachine.WithGuard(onlyValid)),
	)
	err := guarded.Fire(ctx, submit, false)
	assert.ErrorIs(t, err, statemachine.ErrTransitionRejected)
	assert.False(t, guarded.CanFire(ctx, submit, false))
}

func TestMachine_Actions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")

	var seen []string
	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, submitting, submit,
			statemachine.WithAction(func(_ context.Context, from, to statemachine.State, evt statemachine.Event, _ any) error {
				seen = append(seen, from.Name()+">"+to.Name()+":"+evt.Name())
				return nil
			}),
		),
		statemachine.WithTransition(submitting, succeeded, complete,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				return boom
			}),
		),
	)

	require.NoError(t, m.Fire(ctx, submit, nil))
	assert.Equal(t, []string{"idle>submitting:submit"}, seen)

	err := m.Fire(ctx, complete, nil)
	assert.ErrorIs(t, err, statemachine.ErrActionFailed)
	assert.ErrorIs(t, err, boom)
	assert.True(t, m.Is(submitting), "failed action keeps the current state")
}

func TestMachine_Observer(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		path []string
	)
	m := newLifecycle(t, statemachine.WithObserver(func(_ context.Context, from, to statemachine.State, _ statemachine.Event) {
		mu.Lock()
		defer mu.Unlock()
		path = append(path, from.Name()+">"+to.Name())
	}))

	ctx := context.Background()
	require.NoError(t, m.Fire(ctx, submit, nil))
	require.NoError(t, m.Fire(ctx, fail, nil))
	require.NoError(t, m.Fire(ctx, settle, nil))
	require.Error(t, m.Fire(ctx, complete, nil))

	assert.Equal(t, []string{"idle>validating", "validating>invalid", "invalid>idle"}, path)
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(nil)
	assert.ErrorIs(t, err, statemachine.ErrInvalidState)

	_, err = statemachine.New(idle, statemachine.WithTransition(idle, nil, submit))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.Panics(t, func() {
		statemachine.MustNew(idle, statemachine.WithTransition(nil, idle, submit))
	})
}

func TestMachine_Concurrent(t *testing.T) {
	t.Parallel()

	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, submitting, submit),
		statemachine.WithTransition(submitting, idle, settle),
	)

	ctx := context.Background()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Fire(ctx, submit, nil)
			_ = m.Current()
			_ = m.Fire(ctx, settle, nil)
		}()
	}
	wg.Wait()

	assert.Contains(t, []statemachine.State{idle, submitting}, m.Current())
}
