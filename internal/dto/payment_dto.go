package dto

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is the body of a payment against a lease charge.
type RecordPaymentRequest struct {
	LeaseChargeID   string          `json:"leaseChargeId" binding:"required"`
	LeaseID         string          `json:"leaseId" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     string          `json:"paymentDate" binding:"required"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Memo            string          `json:"memo,omitempty"`
}

// ToRecordPaymentInput maps the request to the service input.
func (r RecordPaymentRequest) ToRecordPaymentInput() domain.RecordPaymentInput {
	return domain.RecordPaymentInput{
		LeaseChargeID:   r.LeaseChargeID,
		LeaseID:         r.LeaseID,
		Amount:          r.Amount,
		PaymentDate:     r.PaymentDate,
		ReferenceNumber: r.ReferenceNumber,
		Memo:            r.Memo,
	}
}
