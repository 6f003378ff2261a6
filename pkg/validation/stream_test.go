package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/livevalidation/pkg/observable"
	"github.com/dmitrymomot/livevalidation/pkg/validation"
)

func TestNewStreamValidator_InvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := validation.NewStreamValidator[int](nil, func(int) bool { return true }, validation.StaticMessage[int]("x"))
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)

	_, err = validation.NewStreamValidator[int](observable.NewSubject[int](), nil, validation.StaticMessage[int]("x"))
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)

	_, err = validation.NewStreamValidator[int](observable.NewSubject[int](), func(int) bool { return true }, nil)
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)

	_, err = validation.NewStateValidator(nil)
	assert.ErrorIs(t, err, validation.ErrInvalidArgument)

	_, err = validation.NewStateValidator(observable.NewSubject[validation.State](), validation.WithProperties("Items[0]"))
	assert.ErrorIs(t, err, validation.ErrInvalidKeyExpression)
}

func TestStreamValidator(t *testing.T) {
	t.Parallel()

	t.Run("valid before first value", func(t *testing.T) {
		src := observable.NewSubject[int]()
		v, err := validation.NewStreamValidator[int](src, func(n int) bool { return n > 0 }, validation.StaticMessage[int]("must be positive"))
		require.NoError(t, err)

		assert.True(t, v.IsValid())
		assert.True(t, v.Text().IsEmpty())
		assert.Equal(t, 0, v.PropertyCount())

		src.OnNext(-1)
		assert.False(t, v.IsValid())
		assert.Equal(t, "must be positive", v.Text().String())
	})

	t.Run("shared activation and dedup", func(t *testing.T) {
		src := observable.NewSubject[int]()
		v, err := validation.NewStreamValidator[int](src, func(n int) bool { return n > 0 }, validation.StaticMessage[int]("must be positive"))
		require.NoError(t, err)

		a, b := &stateRecorder{}, &stateRecorder{}
		v.StatusChanges().Subscribe(a)
		v.StatusChanges().Subscribe(b)
		assert.Equal(t, 1, src.ObserverCount())

		src.OnNext(1)
		src.OnNext(2)
		src.OnNext(-3)
		src.OnNext(-4)

		assert.Len(t, a.States(), 2)
		assert.Equal(t, a.States(), b.States())
	})

	t.Run("cross-field rule associated with both fields", func(t *testing.T) {
		form := newSignUpForm()
		matches := observable.CombineLatest2[string, string](form.Password, form.ConfirmPassword, func(a, b string) bool {
			return a == b
		})
		v, err := validation.NewValidityValidator(matches, "Passwords must match.",
			validation.WithProperties("Password", "ConfirmPassword"))
		require.NoError(t, err)

		assert.Equal(t, 2, v.PropertyCount())
		assert.True(t, v.ContainsProperty("ConfirmPassword", false))

		form.ConfirmPassword.Set("abc")
		assert.False(t, v.IsValid())
		form.Password.Set("abc")
		assert.True(t, v.IsValid())
	})

	t.Run("precomputed states", func(t *testing.T) {
		src := observable.NewValue(validation.InvalidState("server rejected the value"))
		v, err := validation.NewStateValidator(src, validation.WithProperties("Email"))
		require.NoError(t, err)

		assert.False(t, v.IsValid())
		assert.Equal(t, "server rejected the value", v.Text().String())

		src.Set(validation.ValidState())
		assert.True(t, v.IsValid())
		assert.Equal(t, []string{"Email"}, v.Properties())
	})

	t.Run("close", func(t *testing.T) {
		src := observable.NewSubject[int]()
		v, err := validation.NewStreamValidator[int](src, func(n int) bool { return n > 0 }, validation.StaticMessage[int]("must be positive"))
		require.NoError(t, err)

		rec := &stateRecorder{}
		v.StatusChanges().Subscribe(rec)
		src.OnNext(1)
		require.NoError(t, v.Close())
		src.OnNext(-1)

		assert.Len(t, rec.States(), 1)
		assert.Equal(t, 0, src.ObserverCount())
	})

	t.Run("close drops states queued on scheduler", func(t *testing.T) {
		q := observable.NewSerialQueue(t.Context())
		t.Cleanup(func() { _ = q.Close() })
		release := make(chan struct{})
		q.Schedule(func() { <-release })

		src := observable.NewValue(validation.InvalidState("x"))
		v, err := validation.NewStateValidator(src, validation.WithScheduler(q))
		require.NoError(t, err)

		rec := &stateRecorder{}
		v.StatusChanges().Subscribe(rec)
		src.Set(validation.ValidState())
		require.NoError(t, v.Close())

		flushed := make(chan struct{})
		q.Schedule(func() { close(flushed) })
		close(release)
		<-flushed

		assert.Empty(t, rec.States())
		assert.True(t, v.Closed())
	})
}
