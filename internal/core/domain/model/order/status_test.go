package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		wire string
		want order.Status
	}{
		{"pending", order.Pending},
		{"assigned", order.Assigned},
		{"in_progress", order.InProgress},
		{"delivered", order.Delivered},
		{"cancelled", order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			got, err := order.StatusFromString(tt.wire)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wire, got.String())
		})
	}

	t.Run("unrecognized value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_TransitionGraph(t *testing.T) {
	t.Run("assign only from pending", func(t *testing.T) {
		got, err := order.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, got)

		for _, s := range []order.Status{order.Assigned, order.InProgress, order.Delivered, order.Cancelled} {
			_, err := s.Assign()
			require.Error(t, err, s.String())
		}
	})

	t.Run("unassign from assigned and in_progress", func(t *testing.T) {
		got, err := order.Assigned.Unassign()
		require.NoError(t, err)
		assert.Equal(t, order.Pending, got)

		got, err = order.InProgress.Unassign()
		require.NoError(t, err)
		assert.Equal(t, order.Pending, got)

		for _, s := range []order.Status{order.Pending, order.Delivered, order.Cancelled} {
			_, err := s.Unassign()
			require.Error(t, err, s.String())
		}
	})

	t.Run("start only from assigned", func(t *testing.T) {
		got, err := order.Assigned.Start()
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, got)

		_, err = order.Pending.Start()
		require.Error(t, err)
	})

	t.Run("deliver only from in_progress", func(t *testing.T) {
		got, err := order.InProgress.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got)

		_, err = order.Assigned.Deliver()
		require.Error(t, err)
	})

	t.Run("cancel from any non-terminal", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Assigned, order.InProgress} {
			got, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, got)
		}

		for _, s := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := s.Cancel()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
}

func TestStatus_ValidateCanHavePartner(t *testing.T) {
	require.NoError(t, order.Assigned.ValidateCanHavePartner(true))
	require.NoError(t, order.InProgress.ValidateCanHavePartner(true))
	require.NoError(t, order.Pending.ValidateCanHavePartner(false))
	require.NoError(t, order.Delivered.ValidateCanHavePartner(false))

	require.Error(t, order.Pending.ValidateCanHavePartner(true))
	require.Error(t, order.Delivered.ValidateCanHavePartner(true))
	require.Error(t, order.Cancelled.ValidateCanHavePartner(true))
	require.Error(t, order.Assigned.ValidateCanHavePartner(false))
	require.Error(t, order.InProgress.ValidateCanHavePartner(false))
}
