package model_test

import (
	"testing"

	"github.com/shoplite/storeapi/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{"pending_to_confirmed", model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{"confirmed_to_processing", model.OrderStatusConfirmed, model.OrderStatusProcessing, true},
		{"processing_to_shipped", model.OrderStatusProcessing, model.OrderStatusShipped, true},
		{"shipped_to_delivered", model.OrderStatusShipped, model.OrderStatusDelivered, true},
		{"no_skipping_ahead", model.OrderStatusPending, model.OrderStatusShipped, false},
		{"no_going_backward", model.OrderStatusShipped, model.OrderStatusConfirmed, false},
		{"pending_can_cancel", model.OrderStatusPending, model.OrderStatusCancelled, true},
		{"shipped_can_refund", model.OrderStatusShipped, model.OrderStatusRefunded, true},
		{"delivered_is_terminal", model.OrderStatusDelivered, model.OrderStatusRefunded, false},
		{"cancelled_is_terminal", model.OrderStatusCancelled, model.OrderStatusConfirmed, false},
		{"refunded_is_terminal", model.OrderStatusRefunded, model.OrderStatusCancelled, false},
		{"unknown_target_rejected", model.OrderStatusPending, model.OrderStatus("mislaid"), false},
		{"self_transition_rejected", model.OrderStatusPending, model.OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, model.OrderStatusDelivered.Terminal())
	assert.True(t, model.OrderStatusCancelled.Terminal())
	assert.True(t, model.OrderStatusRefunded.Terminal())
	assert.False(t, model.OrderStatusPending.Terminal())
	assert.False(t, model.OrderStatusProcessing.Terminal())
}

func TestAdjustedStock(t *testing.T) {
	assert.Equal(t, 8, model.AdjustedStock(5, 3))
	assert.Equal(t, 2, model.AdjustedStock(5, -3))
	assert.Equal(t, 0, model.AdjustedStock(5, -5))
	// A huge negative delta clamps at zero instead of going negative
	assert.Equal(t, 0, model.AdjustedStock(5, -1000))
	assert.Equal(t, 0, model.AdjustedStock(0, 0))
}
