package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const untitledPropertyName = "Untitled Property"

type portfolioService struct {
	BaseService
	objects     portssvc.ObjectSvc
	rentRoll    portssvc.RentRollAggregatorSvc
	delinquency portssvc.DelinquencySvc
	concurrency int
}

// PortfolioServiceOption is a functional option for configuring the portfolio service
type PortfolioServiceOption func(*portfolioService)

// WithPortfolioConcurrency bounds how many property summaries are computed at once.
func WithPortfolioConcurrency(n int) PortfolioServiceOption {
	return func(s *portfolioService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewPortfolioService creates the portfolio rollup aggregator.
func NewPortfolioService(
	objects portssvc.ObjectSvc,
	rentRoll portssvc.RentRollAggregatorSvc,
	delinquency portssvc.DelinquencySvc,
	options ...PortfolioServiceOption,
) portssvc.PortfolioSvc {
	svc := &portfolioService{
		objects:     objects,
		rentRoll:    rentRoll,
		delinquency: delinquency,
		concurrency: DefaultConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PortfolioSvc = (*portfolioService)(nil)

// PropertySummary runs the six independent reads for one property and combines them.
func (s *portfolioService) PropertySummary(ctx context.Context, ws domain.WorkspaceContext, property domain.PropertyRecord, month domain.Month) (*domain.PropertySummary, error) {
	var (
		units          []domain.UnitRecord
		leases         []domain.LeaseRecord
		rentRoll       decimal.Decimal
		collected      decimal.Decimal
		delinquent     decimal.Decimal
		openWorkOrders int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		units, err = s.objects.ListUnits(gctx, ws, property.ID)
		return err
	})
	g.Go(func() (err error) {
		leases, err = s.objects.ListLeases(gctx, ws, property.ID, activeLeaseStatuses)
		return err
	})
	g.Go(func() (err error) {
		rentRoll, err = s.rentRoll.PropertyRentRoll(gctx, ws, property.ID, month)
		return err
	})
	g.Go(func() (err error) {
		collected, err = s.rentRoll.PropertyCollected(gctx, ws, property.ID, month)
		return err
	})
	g.Go(func() (err error) {
		delinquent, err = s.delinquency.DelinquentByProperty(gctx, ws, property.ID, month)
		return err
	})
	g.Go(func() (err error) {
		openWorkOrders, err = s.objects.CountOpenWorkOrders(gctx, ws, property.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build property summary",
			slog.String("property_id", property.ID),
			slog.String("month", month.String()))
		return nil, err
	}

	start, end := month.Range()
	occupied := 0
	for _, lease := range leases {
		if lease.IsActiveDuring(start, end) {
			occupied++
		}
	}
	totalUnits := resolveUnitCount(property, len(units))

	return &domain.PropertySummary{
		PropertyID:         property.ID,
		Name:               propertyName(property),
		Address:            propertyAddress(property),
		TotalUnits:         totalUnits,
		OccupiedUnits:      occupied,
		OccupancyPercent:   occupancyPercent(occupied, totalUnits),
		MonthlyRentRoll:    domain.RoundCurrency(rentRoll),
		MonthlyCollected:   domain.RoundCurrency(collected),
		MonthlyDelinquent:  domain.RoundCurrency(delinquent),
		OpenWorkOrderCount: openWorkOrders,
	}, nil
}

// PropertyDashboard summarizes one property, failing with ErrNotFound when it does not exist.
func (s *portfolioService) PropertyDashboard(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (*domain.PropertySummary, error) {
	property, err := s.objects.GetProperty(ctx, ws, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property %s could not be located in this workspace", apperrors.ErrNotFound, propertyID)
	}
	return s.PropertySummary(ctx, ws, *property, month)
}

// PortfolioSummary summarizes every property and sums the results. Overall occupancy is
// recomputed from the summed unit counts.
func (s *portfolioService) PortfolioSummary(ctx context.Context, ws domain.WorkspaceContext, month domain.Month) (*domain.PortfolioSummary, error) {
	properties, err := s.objects.ListProperties(ctx, ws)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.PropertySummary, len(properties))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, property := range properties {
		g.Go(func() error {
			summary, err := s.PropertySummary(gctx, ws, property, month)
			if err != nil {
				return err
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	portfolio := &domain.PortfolioSummary{
		Month:           month.String(),
		TotalProperties: len(summaries),
		Properties:      summaries,
	}
	rentRoll, collected, delinquent := decimal.Zero, decimal.Zero, decimal.Zero
	for _, p := range summaries {
		portfolio.TotalUnits += p.TotalUnits
		portfolio.OccupiedUnits += p.OccupiedUnits
		portfolio.TotalOpenWorkOrders += p.OpenWorkOrderCount
		rentRoll = rentRoll.Add(p.MonthlyRentRoll)
		collected = collected.Add(p.MonthlyCollected)
		delinquent = delinquent.Add(p.MonthlyDelinquent)
	}
	portfolio.OverallOccupancyPercent = occupancyPercent(portfolio.OccupiedUnits, portfolio.TotalUnits)
	portfolio.PortfolioRentRoll = domain.RoundCurrency(rentRoll)
	portfolio.PortfolioCollected = domain.RoundCurrency(collected)
	portfolio.PortfolioDelinquent = domain.RoundCurrency(delinquent)

	s.LogInfo(ctx, "Portfolio summary generated",
		slog.String("workspace_id", ws.WorkspaceID),
		slog.String("month", portfolio.Month),
		slog.Int("properties", portfolio.TotalProperties))
	return portfolio, nil
}

// resolveUnitCount prefers the declared unit count and falls back to the unit records.
func resolveUnitCount(property domain.PropertyRecord, unitRecords int) int {
	if property.UnitCount.Valid {
		declared := property.UnitCount.Value
		if !math.IsNaN(declared) && !math.IsInf(declared, 0) && declared >= 0 {
			return int(math.Trunc(declared))
		}
	}
	return unitRecords
}

func occupancyPercent(occupied, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(occupied)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

func propertyName(property domain.PropertyRecord) string {
	if name := strings.TrimSpace(property.Name); name != "" {
		return name
	}
	return untitledPropertyName
}

func propertyAddress(property domain.PropertyRecord) *string {
	var segments []string
	for _, part := range []string{property.Street, property.City, property.State, property.PostalCode} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	address := strings.Join(segments, ", ")
	return &address
}
