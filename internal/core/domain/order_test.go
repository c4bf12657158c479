package domain_test

import (
	"testing"

	"github.com/shopease/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		ok   bool
	}{
		{"placed to confirmed", domain.OrderStatusPlaced, domain.OrderStatusConfirmed, true},
		{"placed to cancelled", domain.OrderStatusPlaced, domain.OrderStatusCancelled, true},
		{"placed to shipped", domain.OrderStatusPlaced, domain.OrderStatusShipped, false},
		{"placed to delivered", domain.OrderStatusPlaced, domain.OrderStatusDelivered, false},
		{"confirmed to shipped", domain.OrderStatusConfirmed, domain.OrderStatusShipped, true},
		{"confirmed to cancelled", domain.OrderStatusConfirmed, domain.OrderStatusCancelled, true},
		{"confirmed to delivered", domain.OrderStatusConfirmed, domain.OrderStatusDelivered, false},
		{"confirmed back to placed", domain.OrderStatusConfirmed, domain.OrderStatusPlaced, false},
		{"shipped to delivered", domain.OrderStatusShipped, domain.OrderStatusDelivered, true},
		{"shipped to cancelled", domain.OrderStatusShipped, domain.OrderStatusCancelled, false},
		{"delivered is terminal", domain.OrderStatusDelivered, domain.OrderStatusCancelled, false},
		{"cancelled is terminal", domain.OrderStatusCancelled, domain.OrderStatusPlaced, false},
		{"cancel twice", domain.OrderStatusCancelled, domain.OrderStatusCancelled, false},
		{"no self transition", domain.OrderStatusPlaced, domain.OrderStatusPlaced, false},
		{"unknown source", domain.OrderStatus("UNKNOWN"), domain.OrderStatusConfirmed, false},
		{"unknown target", domain.OrderStatusPlaced, domain.OrderStatus("UNKNOWN"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.ok, domain.CanTransition(test.from, test.to))
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.True(t, domain.CanCancel(domain.OrderStatusPlaced))
	assert.True(t, domain.CanCancel(domain.OrderStatusConfirmed))
	assert.False(t, domain.CanCancel(domain.OrderStatusShipped))
	assert.False(t, domain.CanCancel(domain.OrderStatusDelivered))
	assert.False(t, domain.CanCancel(domain.OrderStatusCancelled))
}
