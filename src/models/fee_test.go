package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeIsOutstanding(t *testing.T) {
	cases := []struct {
		name        string
		fee         FeeRecord
		outstanding bool
	}{
		{"OverdueAlwaysCounts", FeeRecord{Status: FeeStatusOverdue, AmountDue: 100, AmountPaid: 100}, true},
		{"PendingWithBalanceCounts", FeeRecord{Status: FeeStatusPending, AmountDue: 100, AmountPaid: 40}, true},
		{"PendingFullyPaidDoesNot", FeeRecord{Status: FeeStatusPending, AmountDue: 100, AmountPaid: 100}, false},
		{"PaidDoesNot", FeeRecord{Status: FeeStatusPaid, AmountDue: 100, AmountPaid: 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.outstanding, c.fee.IsOutstanding())
		})
	}
}
