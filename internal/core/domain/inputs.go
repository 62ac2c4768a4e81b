package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentInput describes a payment to apply against one lease charge.
type RecordPaymentInput struct {
	LeaseChargeID   string
	LeaseID         string
	Amount          decimal.Decimal
	PaymentDate     string
	ReferenceNumber string
	Memo            string
}

// RentRollFilter narrows the rent roll report. Zero values mean "no restriction".
type RentRollFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	PropertyID string
	Statuses   []string
}
