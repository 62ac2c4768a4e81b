package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RentRollAggregatorSvc computes the monthly per-property money figures.
type RentRollAggregatorSvc interface {
	// PropertyRentRoll sums rent charges of the property due within the month.
	PropertyRentRoll(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error)

	// PropertyCollected sums completed payments of the property made within the month.
	PropertyCollected(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error)

	// PropertyDelinquent is max(rent roll - collected, 0).
	PropertyDelinquent(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error)
}

// RentRollReportSvc produces charge-level reports.
type RentRollReportSvc interface {
	// RentRoll lists charges with their payments and a summary.
	RentRoll(ctx context.Context, ws domain.WorkspaceContext, filter domain.RentRollFilter) (*domain.RentRollReport, error)

	// LeasePaymentHistory lists every charge of a lease with the running totals.
	LeasePaymentHistory(ctx context.Context, ws domain.WorkspaceContext, leaseID string) (*domain.LeasePaymentHistory, error)

	// DelinquencyReport lists open charges at least daysOverdue days past due.
	DelinquencyReport(ctx context.Context, ws domain.WorkspaceContext, daysOverdue int) (*domain.DelinquencyReport, error)
}

// RentRollSvcFacade combines the rent roll interfaces
type RentRollSvcFacade interface {
	RentRollAggregatorSvc
	RentRollReportSvc
}
