package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/livevalidation/pkg/observable"
	"github.com/dmitrymomot/livevalidation/pkg/validation"
)

func TestNewField(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		f, err := validation.NewField[string]("Address.City", observable.NewValue(""))
		require.NoError(t, err)
		assert.Equal(t, "Address.City", f.Path)
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := validation.NewField[string]("Tags[0]", observable.NewValue(""))
		assert.ErrorIs(t, err, validation.ErrInvalidKeyExpression)
	})

	t.Run("nil source", func(t *testing.T) {
		var src *observable.Value[string]
		_, err := validation.NewField[string]("Name", src)
		assert.ErrorIs(t, err, validation.ErrInvalidArgument)
	})
}

func TestNewPropertyValidator_InvalidArguments(t *testing.T) {
	t.Parallel()

	name := field[string]("Name", observable.NewValue(""))
	msg := validation.StaticMessage[string]("Name is required.")

	tests := []struct {
		name    string
		build   func() error
		argName string
	}{
		{
			name: "nil predicate",
			build: func() error {
				_, err := validation.NewPropertyValidator(name, nil, msg)
				return err
			},
			argName: "predicate",
		},
		{
			name: "nil message",
			build: func() error {
				_, err := validation.NewPropertyValidator(name, nonEmpty, nil)
				return err
			},
			argName: "message",
		},
		{
			name: "missing field source",
			build: func() error {
				_, err := validation.NewPropertyValidator(validation.Field[string]{Path: "Name"}, nonEmpty, msg)
				return err
			},
			argName: "field",
		},
		{
			name: "multi property nil predicate",
			build: func() error {
				_, err := validation.NewPropertyValidator2[string, string](name, name, nil, validation.StaticMessage2[string, string]("x"))
				return err
			},
			argName: "predicate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, validation.IsInvalidArgument(err))

			var argErr *validation.InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.argName, argErr.Name)
		})
	}

	t.Run("invalid field path", func(t *testing.T) {
		_, err := validation.NewPropertyValidator(validation.Field[string]{Path: "Name()", Values: observable.NewValue("")}, nonEmpty, msg)
		assert.ErrorIs(t, err, validation.ErrInvalidKeyExpression)
	})
}

func TestPropertyValidator(t *testing.T) {
	t.Parallel()

	t.Run("required name", func(t *testing.T) {
		name := observable.NewValue("")
		v, err := validation.NewPropertyValidator(field[string]("Name", name), nonEmpty, validation.StaticMessage[string]("Name is required."))
		require.NoError(t, err)

		assert.False(t, v.IsValid())
		assert.Equal(t, []string{"Name is required."}, v.Text().Messages())

		name.Set("Bob")
		assert.True(t, v.IsValid())
		assert.True(t, v.Text().IsEmpty())
	})

	t.Run("inert until activated", func(t *testing.T) {
		src := &countingSource[string]{inner: observable.NewValue("")}
		v, err := validation.NewPropertyValidator(field[string]("Name", src), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)

		assert.Equal(t, 0, src.Subscriptions())
		assert.False(t, v.Active())

		_ = v.StatusChanges()
		assert.Equal(t, 0, src.Subscriptions())

		v.IsValid()
		assert.True(t, v.Active())
		assert.Equal(t, 1, src.Subscriptions())
	})

	t.Run("one upstream subscription for every reader", func(t *testing.T) {
		value := observable.NewValue("")
		src := &countingSource[string]{inner: value}
		v, err := validation.NewPropertyValidator(field[string]("Name", src), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)

		a, b := &stateRecorder{}, &stateRecorder{}
		v.StatusChanges().Subscribe(a)
		v.IsValid()
		v.Text()
		v.StatusChanges().Subscribe(b)
		value.Set("x")

		assert.Equal(t, 1, src.Subscriptions())
		assert.Equal(t, 1, value.ObserverCount())
		assert.Len(t, a.States(), 2)
		assert.Len(t, b.States(), 2)
	})

	t.Run("duplicate values emit once", func(t *testing.T) {
		name := observable.NewValue("")
		v, err := validation.NewPropertyValidator(field[string]("Name", name), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)

		rec := &stateRecorder{}
		v.StatusChanges().Subscribe(rec)
		name.Set("")
		name.Set("")
		name.Set("Bob")
		name.Set("Bob")
		name.Set("Alice")

		states := rec.States()
		require.Len(t, states, 2)
		assert.False(t, states[0].IsValid())
		assert.True(t, states[1].IsValid())
	})

	t.Run("late subscriber gets latest only", func(t *testing.T) {
		count := observable.NewValue(0)
		v, err := validation.NewPropertyValidator(field[int]("Count", count),
			func(n int) bool { return n%2 == 0 },
			validation.DynamicMessage(func(n int) string { return "odd value" }),
		)
		require.NoError(t, err)
		v.IsValid()

		for i := 1; i <= 5; i++ {
			count.Set(i)
		}

		late := &stateRecorder{}
		v.StatusChanges().Subscribe(late)
		require.Len(t, late.States(), 1)
		assert.Equal(t, validation.InvalidState("odd value"), late.Last())
	})

	t.Run("message sees validity", func(t *testing.T) {
		age := observable.NewValue(15)
		v, err := validation.NewPropertyValidator(field[int]("Age", age),
			func(n int) bool { return n >= 18 },
			func(n int, valid bool) validation.Text {
				if valid {
					return validation.NewText("ok")
				}
				return validation.NewText("too young")
			},
		)
		require.NoError(t, err)

		assert.Equal(t, "too young", v.Text().String())
		age.Set(20)
		assert.True(t, v.IsValid())
		assert.Equal(t, "ok", v.Text().String())
	})

	t.Run("properties", func(t *testing.T) {
		v, err := validation.NewPropertyValidator(field[string]("Name", observable.NewValue("")), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)

		assert.Equal(t, 1, v.PropertyCount())
		assert.Equal(t, []string{"Name"}, v.Properties())
		assert.True(t, v.ContainsProperty("Name", true))
		assert.False(t, v.ContainsProperty("Password", false))
		assert.Equal(t, "Name", v.Field().Path)
	})

	t.Run("close stops emissions forever", func(t *testing.T) {
		name := observable.NewValue("")
		v, err := validation.NewPropertyValidator(field[string]("Name", name), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)

		rec := &stateRecorder{}
		v.StatusChanges().Subscribe(rec)
		require.NoError(t, v.Close())
		require.NoError(t, v.Close())

		name.Set("Bob")
		assert.Len(t, rec.States(), 1)
		assert.Equal(t, 0, name.ObserverCount())

		late := &stateRecorder{}
		v.StatusChanges().Subscribe(late)
		assert.Empty(t, late.States())
		assert.False(t, v.IsValid(), "keeps the last state")
	})

	t.Run("closed before activation stays inert", func(t *testing.T) {
		src := &countingSource[string]{inner: observable.NewValue("")}
		v, err := validation.NewPropertyValidator(field[string]("Name", src), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)
		require.NoError(t, v.Close())

		assert.True(t, v.IsValid())
		assert.Equal(t, 0, src.Subscriptions())
	})

	t.Run("source failure propagates", func(t *testing.T) {
		name := observable.NewValue("")
		v, err := validation.NewPropertyValidator(field[string]("Name", name), nonEmpty, validation.StaticMessage[string]("required"))
		require.NoError(t, err)

		rec := &stateRecorder{}
		v.StatusChanges().Subscribe(rec)

		boom := errors.New("notification source failed")
		name.Fail(boom)

		assert.ErrorIs(t, rec.err, boom)
		assert.ErrorIs(t, v.Err(), boom)
		assert.Len(t, rec.States(), 1, "failure is not turned into a state")
	})

	t.Run("scheduler delivers changes", func(t *testing.T) {
		var queued []func()
		sched := observable.SchedulerFunc(func(task func()) { queued = append(queued, task) })

		name := observable.NewValue("")
		v, err := validation.NewPropertyValidator(field[string]("Name", name), nonEmpty,
			validation.StaticMessage[string]("required"), validation.WithScheduler(sched))
		require.NoError(t, err)

		rec := &stateRecorder{}
		v.StatusChanges().Subscribe(rec)
		assert.Empty(t, rec.States())
		assert.False(t, v.IsValid(), "reads are synchronous")

		for _, task := range queued {
			task()
		}
		assert.Len(t, rec.States(), 1)
	})
}

func TestMultiPropertyValidator(t *testing.T) {
	t.Parallel()

	form := newSignUpForm()
	v, err := validation.NewPropertyValidator2(
		field[string]("Password", form.Password),
		field[string]("ConfirmPassword", form.ConfirmPassword),
		func(a, b string) bool { return a == b },
		validation.StaticMessage2[string, string]("Passwords must match."),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, v.PropertyCount())
	assert.Equal(t, []string{"Password", "ConfirmPassword"}, v.Properties())
	assert.True(t, v.ContainsProperty("ConfirmPassword", false))
	assert.False(t, v.ContainsProperty("ConfirmPassword", true))

	assert.True(t, v.IsValid())

	form.Password.Set("secret")
	assert.False(t, v.IsValid())
	assert.Equal(t, "Passwords must match.", v.Text().String())

	form.ConfirmPassword.Set("secret")
	assert.True(t, v.IsValid())
	assert.Equal(t, 1, form.Password.ObserverCount())
	assert.Equal(t, 1, form.ConfirmPassword.ObserverCount())
}
