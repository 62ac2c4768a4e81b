package services

import (
	"context"
	"math"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolio(store *recordingStore) portssvc.PortfolioSvc {
	objects := NewObjectService(store)
	return NewPortfolioService(objects, NewRentRollService(objects), NewDelinquencyService(objects), WithPortfolioConcurrency(2))
}

func TestPropertySummary(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectUnit,
		domain.Record{"id": "U1", "propertyId": "P1"},
		domain.Record{"id": "U2", "propertyId": "P1"},
	)
	seed(t, store, domain.ObjectLease,
		domain.Record{"id": "L1", "propertyId": "P1", "leaseStatus": "Active", "startDate": "2023-06-01"},
		domain.Record{"id": "L2", "propertyId": "P1", "leaseStatus": "Renewal Signed", "startDate": "2023-01-01", "endDate": "2024-03-01"},
		domain.Record{"id": "L3", "propertyId": "P1", "leaseStatus": "Active", "startDate": "2023-01-01", "endDate": "2024-02-29"},
		domain.Record{"id": "L4", "propertyId": "P1", "leaseStatus": "Active", "startDate": "2024-04-01"},
		domain.Record{"id": "L5", "propertyId": "P1", "leaseStatus": "Terminated", "startDate": "2023-01-01"},
	)
	seed(t, store, domain.ObjectLeaseCharge,
		domain.Record{"id": "C1", "leaseId": "L1", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(1000)},
		domain.Record{"id": "C2", "leaseId": "L2", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(800)},
	)
	seed(t, store, domain.ObjectPayment,
		domain.Record{"id": "Y1", "leaseId": "L1", "propertyId": "P1", "status": "Completed", "paymentDate": "2024-03-03", "amount": micros(1000)},
	)
	seed(t, store, domain.ObjectWorkOrder,
		domain.Record{"id": "W1", "propertyId": "P1", "status": "In Progress"},
		domain.Record{"id": "W2", "propertyId": "P1", "status": "Closed"},
	)
	svc := newPortfolio(store)

	property := domain.PropertyRecord{ID: "P1", Name: "  ", Street: "12 Elm St", City: "Springfield", State: " ", UnitCount: domain.NumberOf(4)}
	summary, err := svc.PropertySummary(context.Background(), testWS, property, march2024)
	require.NoError(t, err)

	assert.Equal(t, "P1", summary.PropertyID)
	assert.Equal(t, "Untitled Property", summary.Name)
	require.NotNil(t, summary.Address)
	assert.Equal(t, "12 Elm St, Springfield", *summary.Address)
	assert.Equal(t, 4, summary.TotalUnits)
	assert.Equal(t, 2, summary.OccupiedUnits)
	assert.Equal(t, "50", summary.OccupancyPercent.String())
	assert.Equal(t, "1800", summary.MonthlyRentRoll.String())
	assert.Equal(t, "1000", summary.MonthlyCollected.String())
	assert.Equal(t, "800", summary.MonthlyDelinquent.String())
	assert.Equal(t, 1, summary.OpenWorkOrderCount)
}

func TestPropertySummary_NoUnitsMeansZeroOccupancy(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectLease,
		domain.Record{"id": "L1", "propertyId": "P1", "leaseStatus": "Active", "startDate": "2023-06-01"},
	)
	svc := newPortfolio(store)

	summary, err := svc.PropertySummary(context.Background(), testWS, domain.PropertyRecord{ID: "P1", Name: "Lot"}, march2024)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalUnits)
	assert.True(t, summary.OccupancyPercent.IsZero())
	assert.Nil(t, summary.Address)
	assert.True(t, summary.MonthlyDelinquent.IsZero())
}

func TestResolveUnitCount(t *testing.T) {
	assert.Equal(t, 3, resolveUnitCount(domain.PropertyRecord{}, 3))
	assert.Equal(t, 7, resolveUnitCount(domain.PropertyRecord{UnitCount: domain.NumberOf(7.9)}, 3))
	assert.Equal(t, 0, resolveUnitCount(domain.PropertyRecord{UnitCount: domain.NumberOf(0)}, 3))
	assert.Equal(t, 3, resolveUnitCount(domain.PropertyRecord{UnitCount: domain.NumberOf(-1)}, 3))
	assert.Equal(t, 3, resolveUnitCount(domain.PropertyRecord{UnitCount: domain.NumberOf(math.NaN())}, 3))
	assert.Equal(t, 3, resolveUnitCount(domain.PropertyRecord{UnitCount: domain.NumberOf(math.Inf(1))}, 3))
}

func TestOccupancyPercent(t *testing.T) {
	assert.True(t, occupancyPercent(5, 0).IsZero())
	assert.True(t, occupancyPercent(0, -2).IsZero())
	assert.Equal(t, "33.33", occupancyPercent(1, 3).String())
	assert.Equal(t, "66.67", occupancyPercent(2, 3).String())
	assert.Equal(t, "100", occupancyPercent(4, 4).String())
}

func TestPortfolioSummary_OccupancyFromTotals(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectProperty,
		domain.Record{"id": "P1", "name": "Tower", "unitCount": 10},
		domain.Record{"id": "P2", "name": "Duplex"},
	)
	seed(t, store, domain.ObjectUnit,
		domain.Record{"id": "U1", "propertyId": "P2"},
		domain.Record{"id": "U2", "propertyId": "P2"},
	)
	seed(t, store, domain.ObjectLease,
		domain.Record{"id": "L1", "propertyId": "P1", "leaseStatus": "Active", "startDate": "2023-01-01"},
		domain.Record{"id": "L2", "propertyId": "P2", "leaseStatus": "Active", "startDate": "2023-01-01"},
		domain.Record{"id": "L3", "propertyId": "P2", "leaseStatus": "Renewal Offered", "startDate": "2023-01-01"},
	)
	seed(t, store, domain.ObjectLeaseCharge,
		domain.Record{"id": "C1", "leaseId": "L1", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(2000)},
		domain.Record{"id": "C2", "leaseId": "L2", "propertyId": "P2", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(900)},
	)
	seed(t, store, domain.ObjectPayment,
		domain.Record{"id": "Y1", "leaseId": "L2", "propertyId": "P2", "status": "Completed", "paymentDate": "2024-03-01", "amount": micros(900)},
	)
	seed(t, store, domain.ObjectWorkOrder,
		domain.Record{"id": "W1", "propertyId": "P1", "status": "New"},
		domain.Record{"id": "W2", "propertyId": "P2", "status": "Scheduled"},
	)
	svc := newPortfolio(store)

	portfolio, err := svc.PortfolioSummary(context.Background(), testWS, march2024)
	require.NoError(t, err)

	assert.Equal(t, "2024-03", portfolio.Month)
	assert.Equal(t, 2, portfolio.TotalProperties)
	require.Len(t, portfolio.Properties, 2)
	assert.Equal(t, "10", portfolio.Properties[0].OccupancyPercent.String())
	assert.Equal(t, "100", portfolio.Properties[1].OccupancyPercent.String())

	// 3 of 12 units, not the 55% mean of the two property percentages.
	assert.Equal(t, 12, portfolio.TotalUnits)
	assert.Equal(t, 3, portfolio.OccupiedUnits)
	assert.Equal(t, "25", portfolio.OverallOccupancyPercent.String())

	assert.True(t, decimal.NewFromInt(2900).Equal(portfolio.PortfolioRentRoll))
	assert.True(t, decimal.NewFromInt(900).Equal(portfolio.PortfolioCollected))
	assert.True(t, decimal.NewFromInt(2000).Equal(portfolio.PortfolioDelinquent))
	assert.Equal(t, 2, portfolio.TotalOpenWorkOrders)
}

func TestPortfolioSummary_TextualUnitCounts(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectProperty,
		domain.Record{"id": "P1", "name": "Tower", "unitCount": "10"},
		domain.Record{"id": "P2", "name": "Duplex", "unitCount": "a few"},
	)
	seed(t, store, domain.ObjectUnit,
		domain.Record{"id": "U1", "propertyId": "P2", "bedrooms": "2", "bathrooms": "one"},
		domain.Record{"id": "U2", "propertyId": "P2"},
	)
	svc := newPortfolio(store)

	portfolio, err := svc.PortfolioSummary(context.Background(), testWS, march2024)
	require.NoError(t, err)
	require.Len(t, portfolio.Properties, 2)
	assert.Equal(t, 10, portfolio.Properties[0].TotalUnits)
	// An unreadable declared count falls back to the unit records.
	assert.Equal(t, 2, portfolio.Properties[1].TotalUnits)
	assert.Equal(t, 12, portfolio.TotalUnits)
}

func TestPortfolioSummary_Empty(t *testing.T) {
	svc := newPortfolio(newRecordingStore())

	portfolio, err := svc.PortfolioSummary(context.Background(), testWS, march2024)
	require.NoError(t, err)
	assert.Zero(t, portfolio.TotalProperties)
	assert.True(t, portfolio.OverallOccupancyPercent.IsZero())
	assert.Empty(t, portfolio.Properties)
}

func TestPortfolioSummary_FailsWhenAnyPropertyFails(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectProperty, domain.Record{"id": "P1"}, domain.Record{"id": "P2"})
	store.failures["fetch:workOrder"] = apperrors.ErrStoreUnavailable
	svc := newPortfolio(store)

	_, err := svc.PortfolioSummary(context.Background(), testWS, march2024)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestPropertyDashboard(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectProperty, domain.Record{"id": "P1", "name": "Elm Court", "unitCount": 0})
	svc := newPortfolio(store)

	summary, err := svc.PropertyDashboard(context.Background(), testWS, "P1", march2024)
	require.NoError(t, err)
	assert.Equal(t, "Elm Court", summary.Name)

	_, err = svc.PropertyDashboard(context.Background(), testWS, "P404", march2024)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "P404")
}
