package dto

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthQuery is the month selector shared by the monthly reports.
type MonthQuery struct {
	Month string `form:"month" binding:"required,yyyymm"`
}

// DelinquentLeasesQuery selects the month and, optionally, the property to scan.
type DelinquentLeasesQuery struct {
	Month      string `form:"month" binding:"required,yyyymm"`
	PropertyID string `form:"propertyId"`
}

// RentRollQuery holds the optional rent roll filters. Dates accept YYYY-MM-DD or RFC3339.
type RentRollQuery struct {
	StartDate  string   `form:"startDate"`
	EndDate    string   `form:"endDate"`
	PropertyID string   `form:"propertyId"`
	Status     []string `form:"status"`
}

// DelinquencyReportQuery holds the minimum age, in days, of the reported charges.
type DelinquencyReportQuery struct {
	DaysOverdue *int `form:"daysOverdue" binding:"omitempty,min=0"`
}

// DelinquentLeasesResponse lists the delinquent leases of a month.
type DelinquentLeasesResponse struct {
	Month            string                   `json:"month"`
	PropertyID       *string                  `json:"propertyId,omitempty"`
	Leases           []domain.DelinquentLease `json:"leases"`
	TotalOutstanding decimal.Decimal          `json:"totalOutstanding"`
}

// ToDelinquentLeasesResponse totals the outstanding amounts of leases.
func ToDelinquentLeasesResponse(month domain.Month, propertyID string, leases []domain.DelinquentLease) DelinquentLeasesResponse {
	resp := DelinquentLeasesResponse{
		Month:            month.String(),
		Leases:           leases,
		TotalOutstanding: decimal.Zero,
	}
	if resp.Leases == nil {
		resp.Leases = []domain.DelinquentLease{}
	}
	if propertyID != "" {
		resp.PropertyID = &propertyID
	}
	for _, l := range leases {
		resp.TotalOutstanding = resp.TotalOutstanding.Add(l.OutstandingAmount)
	}
	resp.TotalOutstanding = domain.RoundCurrency(resp.TotalOutstanding)
	return resp
}
