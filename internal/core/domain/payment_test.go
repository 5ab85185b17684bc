package domain_test

import (
	"testing"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPayment_AwaitingApproval(t *testing.T) {
	tests := []struct {
		name    string
		payment domain.Payment
		want    bool
	}{
		{
			name:    "member requested, not yet approved",
			payment: domain.Payment{Status: domain.PaymentPending, MemberRequested: true},
			want:    true,
		},
		{
			name:    "member requested and already approved",
			payment: domain.Payment{Status: domain.PaymentPending, MemberRequested: true, AdminApproved: true},
			want:    false,
		},
		{
			name:    "admin-recorded payment never queues",
			payment: domain.Payment{Status: domain.PaymentPending, MemberRequested: false},
			want:    false,
		},
		{
			name:    "rejected request leaves the queue",
			payment: domain.Payment{Status: domain.PaymentCancelled, MemberRequested: true},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payment.AwaitingApproval())
		})
	}
}
