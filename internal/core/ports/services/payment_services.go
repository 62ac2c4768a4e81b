package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// PaymentSvc applies payments to lease charges.
type PaymentSvc interface {
	// RecordPayment creates a payment and reduces the charge balance.
	RecordPayment(ctx context.Context, ws domain.WorkspaceContext, input domain.RecordPaymentInput) (*domain.RecordPaymentResult, error)
}
