package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPayoutTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{PayoutStatusPending, PayoutStatusApproved, true},
		{PayoutStatusPending, PayoutStatusRejected, true},
		{PayoutStatusPending, PayoutStatusPaid, false},
		{PayoutStatusPending, PayoutStatusPending, false},
		{PayoutStatusApproved, PayoutStatusPaid, true},
		{PayoutStatusApproved, PayoutStatusRejected, false},
		{PayoutStatusApproved, PayoutStatusPending, false},
		{PayoutStatusRejected, PayoutStatusApproved, false},
		{PayoutStatusRejected, PayoutStatusPending, false},
		{PayoutStatusPaid, PayoutStatusApproved, false},
		{PayoutStatusPaid, PayoutStatusRejected, false},
		{"bogus", PayoutStatusApproved, false},
	}

	for _, tc := range tests {
		got := ValidPayoutTransition(tc.from, tc.to)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestCountsAgainstBalance(t *testing.T) {
	assert.True(t, CountsAgainstBalance(PayoutStatusPending))
	assert.True(t, CountsAgainstBalance(PayoutStatusApproved))
	assert.True(t, CountsAgainstBalance(PayoutStatusPaid))
	assert.False(t, CountsAgainstBalance(PayoutStatusRejected))
}
