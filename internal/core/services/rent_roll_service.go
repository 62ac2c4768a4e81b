package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the store calls a single request may have in flight.
const DefaultConcurrency = 8

var (
	rentRollChargeStatuses = []string{
		domain.ChargeStatusOpen,
		domain.ChargeStatusPartiallyPaid,
		domain.ChargeStatusPaid,
	}
	unsettledChargeStatuses = []string{
		domain.ChargeStatusBilled,
		domain.ChargeStatusPartial,
		domain.ChargeStatusOverdue,
		domain.ChargeStatusOpen,
		domain.ChargeStatusPartiallyPaid,
	}
)

type rentRollService struct {
	BaseService
	objects     portssvc.ObjectSvc
	concurrency int
	now         func() time.Time
}

// RentRollServiceOption is a functional option for configuring the rent roll service
type RentRollServiceOption func(*rentRollService)

// WithRentRollConcurrency bounds the concurrent per-charge payment lookups.
func WithRentRollConcurrency(n int) RentRollServiceOption {
	return func(s *rentRollService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithRentRollClock replaces the clock used to compute days overdue.
func WithRentRollClock(now func() time.Time) RentRollServiceOption {
	return func(s *rentRollService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRentRollService creates the rent roll aggregator and report service.
func NewRentRollService(objects portssvc.ObjectSvc, options ...RentRollServiceOption) portssvc.RentRollSvcFacade {
	svc := &rentRollService{
		objects:     objects,
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RentRollSvcFacade = (*rentRollService)(nil)

// PropertyRentRoll sums the rent charges of the property due within the month.
func (s *rentRollService) PropertyRentRoll(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	start, end := month.Range()
	charges, err := s.objects.ListLeaseCharges(ctx, ws, domain.Where(
		domain.Eq(domain.FieldPropertyID, propertyID),
		domain.Eq(domain.FieldChargeType, domain.ChargeTypeRent),
		domain.In(domain.FieldStatus, rentRollChargeStatuses...),
		domain.Gte(domain.FieldDueDate, start),
		domain.Lt(domain.FieldDueDate, end),
	))
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(c.Amount.Normalize())
	}
	return total, nil
}

// PropertyCollected sums the completed payments of the property made within the month.
func (s *rentRollService) PropertyCollected(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	start, end := month.Range()
	payments, err := s.objects.ListPayments(ctx, ws, domain.Where(
		domain.Eq(domain.FieldPropertyID, propertyID),
		domain.Eq(domain.FieldStatus, domain.PaymentStatusCompleted),
		domain.Gte(domain.FieldPaymentDate, start),
		domain.Lt(domain.FieldPaymentDate, end),
	))
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount.Normalize())
	}
	return total, nil
}

// PropertyDelinquent is max(rent roll - collected, 0) for the month.
func (s *rentRollService) PropertyDelinquent(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	var rentRoll, collected decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rentRoll, err = s.PropertyRentRoll(gctx, ws, propertyID, month)
		return err
	})
	g.Go(func() error {
		var err error
		collected, err = s.PropertyCollected(gctx, ws, propertyID, month)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute delinquent balance",
			slog.String("property_id", propertyID),
			slog.String("month", month.String()))
		return decimal.Zero, err
	}

	return decimal.Max(rentRoll.Sub(collected), decimal.Zero), nil
}

// RentRoll lists charges matching the filter, each with its payments, plus a summary.
func (s *rentRollService) RentRoll(ctx context.Context, ws domain.WorkspaceContext, filter domain.RentRollFilter) (*domain.RentRollReport, error) {
	chargeFilter := domain.Filter{}
	if filter.StartDate != nil {
		chargeFilter = chargeFilter.And(domain.Gte(domain.FieldDueDate, *filter.StartDate))
	}
	if filter.EndDate != nil {
		chargeFilter = chargeFilter.And(domain.Lte(domain.FieldDueDate, *filter.EndDate))
	}
	if filter.PropertyID != "" {
		chargeFilter = chargeFilter.And(domain.Eq(domain.FieldPropertyID, filter.PropertyID))
	}
	if len(filter.Statuses) > 0 {
		chargeFilter = chargeFilter.And(domain.In(domain.FieldStatus, filter.Statuses...))
	}

	charges, err := s.objects.ListLeaseCharges(ctx, ws, chargeFilter)
	if err != nil {
		return nil, err
	}

	withPayments, err := s.attachPayments(ctx, ws, charges)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range withPayments {
		c := &withPayments[i]
		if c.Status == domain.ChargeStatusPaid || c.Status == domain.ChargeStatusWaived {
			continue
		}
		if due, ok := c.Due(); ok {
			if days := daysPastDue(now, due); days > 0 {
				c.DaysOverdue = days
			}
		}
	}

	report := &domain.RentRollReport{
		Charges: withPayments,
		Summary: summarizeRentRoll(withPayments),
	}

	s.LogInfo(ctx, "Rent roll generated",
		slog.String("workspace_id", ws.WorkspaceID),
		slog.Int("charges", report.Summary.ChargesCount))
	return report, nil
}

func summarizeRentRoll(charges []domain.ChargeWithPayments) domain.RentRollSummary {
	summary := domain.RentRollSummary{
		TotalCharges: decimal.Zero,
		TotalPaid:    decimal.Zero,
		ChargesCount: len(charges),
	}
	for _, c := range charges {
		summary.TotalCharges = summary.TotalCharges.Add(c.Amount.Normalize())
		summary.TotalPaid = summary.TotalPaid.Add(sumPayments(c.Payments))
		if c.Status == domain.ChargeStatusPaid {
			summary.PaidCount++
		}
		if c.Status == domain.ChargeStatusOverdue || c.DaysOverdue > 0 {
			summary.OverdueCount++
		}
	}
	summary.TotalOutstanding = summary.TotalCharges.Sub(summary.TotalPaid)
	return summary
}

// LeasePaymentHistory lists the lease's charges, most recent due date first.
func (s *rentRollService) LeasePaymentHistory(ctx context.Context, ws domain.WorkspaceContext, leaseID string) (*domain.LeasePaymentHistory, error) {
	if leaseID == "" {
		return nil, fmt.Errorf("%w: lease id is required", apperrors.ErrValidation)
	}

	charges, err := s.objects.ListLeaseCharges(ctx, ws, domain.Where(domain.Eq(domain.FieldLeaseID, leaseID)))
	if err != nil {
		return nil, err
	}

	withPayments, err := s.attachPayments(ctx, ws, charges)
	if err != nil {
		return nil, err
	}

	history := &domain.LeasePaymentHistory{
		LeaseID:      leaseID,
		TotalCharged: decimal.Zero,
		TotalPaid:    decimal.Zero,
	}
	for _, c := range withPayments {
		history.TotalCharged = history.TotalCharged.Add(c.Amount.Normalize())
		history.TotalPaid = history.TotalPaid.Add(sumPayments(c.Payments))
	}
	history.CurrentBalance = history.TotalCharged.Sub(history.TotalPaid)

	// Charges without a due date sort last.
	sort.SliceStable(withPayments, func(i, j int) bool {
		di, iok := withPayments[i].Due()
		dj, jok := withPayments[j].Due()
		if iok != jok {
			return iok
		}
		return di.After(dj)
	})
	history.Charges = withPayments

	return history, nil
}

// DelinquencyReport lists unsettled charges at least daysOverdue days past due, most overdue first.
func (s *rentRollService) DelinquencyReport(ctx context.Context, ws domain.WorkspaceContext, daysOverdue int) (*domain.DelinquencyReport, error) {
	if daysOverdue < 0 {
		return nil, fmt.Errorf("%w: daysOverdue must not be negative", apperrors.ErrValidation)
	}

	charges, err := s.objects.ListLeaseCharges(ctx, ws, domain.Where(
		domain.In(domain.FieldStatus, unsettledChargeStatuses...),
	))
	if err != nil {
		return nil, err
	}

	now := s.now()
	overdue := make([]domain.LeaseChargeRecord, 0, len(charges))
	days := make(map[string]int, len(charges))
	for _, c := range charges {
		due, ok := c.Due()
		if !ok {
			continue
		}
		d := daysPastDue(now, due)
		if d >= daysOverdue {
			overdue = append(overdue, c)
			days[c.ID] = d
		}
	}

	withPayments, err := s.attachPayments(ctx, ws, overdue)
	if err != nil {
		return nil, err
	}

	report := &domain.DelinquencyReport{
		DaysOverdue:  daysOverdue,
		TotalOverdue: decimal.Zero,
	}
	tenants := make(map[string]struct{})
	properties := make(map[string]struct{})
	for i := range withPayments {
		c := &withPayments[i]
		c.DaysOverdue = days[c.ID]

		owed := c.Amount
		if c.BalanceRemaining.IsPresent() {
			owed = c.BalanceRemaining
		}
		report.TotalOverdue = report.TotalOverdue.Add(owed.Normalize())

		if c.TenantID != "" {
			tenants[c.TenantID] = struct{}{}
		}
		if c.PropertyID != "" {
			properties[c.PropertyID] = struct{}{}
		}
	}

	sort.SliceStable(withPayments, func(i, j int) bool {
		return withPayments[i].DaysOverdue > withPayments[j].DaysOverdue
	})
	report.DelinquentCharges = withPayments
	report.AffectedTenants = len(tenants)
	report.AffectedProperties = len(properties)

	s.LogInfo(ctx, "Delinquency report generated",
		slog.String("workspace_id", ws.WorkspaceID),
		slog.Int("days_overdue", daysOverdue),
		slog.Int("charges", len(withPayments)))
	return report, nil
}

// attachPayments loads the payments of every charge, keeping the charge order.
func (s *rentRollService) attachPayments(ctx context.Context, ws domain.WorkspaceContext, charges []domain.LeaseChargeRecord) ([]domain.ChargeWithPayments, error) {
	out := make([]domain.ChargeWithPayments, len(charges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, charge := range charges {
		g.Go(func() error {
			payments, err := s.objects.ListPayments(gctx, ws, domain.Where(domain.Eq(domain.FieldRentChargeID, charge.ID)))
			if err != nil {
				return err
			}
			out[i] = domain.ChargeWithPayments{LeaseChargeRecord: charge, Payments: payments}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func sumPayments(payments []domain.PaymentRecord) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount.Normalize())
	}
	return total
}

// daysPastDue rounds partial days up, so anything past the due instant counts as a full day.
func daysPastDue(now, due time.Time) int {
	return int(math.Ceil(now.Sub(due).Hours() / 24))
}
