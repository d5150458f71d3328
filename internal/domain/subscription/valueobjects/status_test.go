package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanCheckout(t *testing.T) {
	assert.True(t, StatusNone.CanCheckout())
	assert.True(t, StatusPending.CanCheckout())
	assert.True(t, StatusExpired.CanCheckout())
	assert.False(t, StatusActive.CanCheckout())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    SubscriptionStatus
		to      SubscriptionStatus
		allowed bool
	}{
		{"trial to pending", StatusNone, StatusPending, true},
		{"trial straight to active", StatusNone, StatusActive, false},
		{"pending retry", StatusPending, StatusPending, true},
		{"pending to active", StatusPending, StatusActive, true},
		{"active to expired", StatusActive, StatusExpired, true},
		{"active to pending", StatusActive, StatusPending, false},
		{"expired back to pending", StatusExpired, StatusPending, true},
		{"expired straight to active", StatusExpired, StatusActive, false},
		{"unknown status", SubscriptionStatus("bogus"), StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
