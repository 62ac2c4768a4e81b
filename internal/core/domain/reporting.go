package domain

import (
	"github.com/shopspring/decimal"
)

// PropertySummary is the per-property monthly rollup
type PropertySummary struct {
	PropertyID         string          `json:"propertyId"`
	Name               string          `json:"name"`
	Address            *string         `json:"address,omitempty"`
	TotalUnits         int             `json:"totalUnits"`
	OccupiedUnits      int             `json:"occupiedUnits"`
	OccupancyPercent   decimal.Decimal `json:"occupancyPercent"`
	MonthlyRentRoll    decimal.Decimal `json:"monthlyRentRoll"`
	MonthlyCollected   decimal.Decimal `json:"monthlyCollected"`
	MonthlyDelinquent  decimal.Decimal `json:"monthlyDelinquent"`
	OpenWorkOrderCount int             `json:"openWorkOrderCount"`
}

// PortfolioSummary aggregates every property of a workspace for one month
type PortfolioSummary struct {
	Month                   string            `json:"month"`
	TotalProperties         int               `json:"totalProperties"`
	TotalUnits              int               `json:"totalUnits"`
	OccupiedUnits           int               `json:"occupiedUnits"`
	OverallOccupancyPercent decimal.Decimal   `json:"overallOccupancyPercent"`
	PortfolioRentRoll       decimal.Decimal   `json:"portfolioRentRoll"`
	PortfolioCollected      decimal.Decimal   `json:"portfolioCollected"`
	PortfolioDelinquent     decimal.Decimal   `json:"portfolioDelinquent"`
	TotalOpenWorkOrders     int               `json:"totalOpenWorkOrders"`
	Properties              []PropertySummary `json:"properties"`
}

// DelinquentLease is a lease whose rent charged in the month exceeds what was paid
type DelinquentLease struct {
	LeaseID           string          `json:"leaseId"`
	PropertyID        *string         `json:"propertyId"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
}

// ChargeWithPayments is a lease charge in its stored shape together with the payments applied to it
type ChargeWithPayments struct {
	LeaseChargeRecord
	Payments    []PaymentRecord `json:"payments"`
	DaysOverdue int             `json:"daysOverdue"`
}

// RentRollSummary totals a rent roll report
type RentRollSummary struct {
	TotalCharges     decimal.Decimal `json:"totalCharges"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	ChargesCount     int             `json:"chargesCount"`
	PaidCount        int             `json:"paidCount"`
	OverdueCount     int             `json:"overdueCount"`
}

// RentRollReport lists charges with their payments
type RentRollReport struct {
	Charges []ChargeWithPayments `json:"charges"`
	Summary RentRollSummary      `json:"summary"`
}

// LeasePaymentHistory is every charge of a lease, newest due date first
type LeasePaymentHistory struct {
	LeaseID        string               `json:"leaseId"`
	Charges        []ChargeWithPayments `json:"charges"`
	TotalCharged   decimal.Decimal      `json:"totalCharged"`
	TotalPaid      decimal.Decimal      `json:"totalPaid"`
	CurrentBalance decimal.Decimal      `json:"currentBalance"`
}

// DelinquencyReport lists open charges at least DaysOverdue days past due
type DelinquencyReport struct {
	DaysOverdue        int                  `json:"daysOverdue"`
	DelinquentCharges  []ChargeWithPayments `json:"delinquentCharges"`
	TotalOverdue       decimal.Decimal      `json:"totalOverdue"`
	AffectedTenants    int                  `json:"affectedTenants"`
	AffectedProperties int                  `json:"affectedProperties"`
}

// RecordPaymentResult carries the created payment and the charge as it was updated
type RecordPaymentResult struct {
	Payment       PaymentRecord     `json:"payment"`
	UpdatedCharge LeaseChargeRecord `json:"updatedCharge"`
	NewBalance    decimal.Decimal   `json:"newBalance"`
}
