package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DelinquencySvc detects leases whose rent for a month is not fully paid.
type DelinquencySvc interface {
	// DelinquentLeases returns the delinquent leases of the month, optionally scoped to one property.
	DelinquentLeases(ctx context.Context, ws domain.WorkspaceContext, month domain.Month, propertyID string) ([]domain.DelinquentLease, error)

	// DelinquentByProperty sums the outstanding amounts of one property's delinquent leases.
	DelinquentByProperty(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error)
}
