package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	openRentChargeStatuses = []string{domain.ChargeStatusOpen, domain.ChargeStatusPartiallyPaid}

	// Outstanding balances at or below one cent are treated as settled.
	delinquencyThreshold = decimal.New(1, -2)
)

type delinquencyService struct {
	BaseService
	objects portssvc.ObjectSvc
}

// NewDelinquencyService creates the per-lease delinquency detector.
func NewDelinquencyService(objects portssvc.ObjectSvc) portssvc.DelinquencySvc {
	return &delinquencyService{objects: objects}
}

var _ portssvc.DelinquencySvc = (*delinquencyService)(nil)

type leaseCharges struct {
	amount     decimal.Decimal
	propertyID string
}

// DelinquentLeases compares the rent charged to each lease in the month with what it paid.
// An empty propertyID covers the whole workspace. The result is ordered by lease id.
func (s *delinquencyService) DelinquentLeases(ctx context.Context, ws domain.WorkspaceContext, month domain.Month, propertyID string) ([]domain.DelinquentLease, error) {
	start, end := month.Range()

	chargeFilter := domain.Where(
		domain.Eq(domain.FieldChargeType, domain.ChargeTypeRent),
		domain.In(domain.FieldStatus, openRentChargeStatuses...),
		domain.Gte(domain.FieldDueDate, start),
		domain.Lt(domain.FieldDueDate, end),
	)
	paymentFilter := domain.Where(
		domain.Eq(domain.FieldStatus, domain.PaymentStatusCompleted),
		domain.Gte(domain.FieldPaymentDate, start),
		domain.Lt(domain.FieldPaymentDate, end),
	)
	if propertyID != "" {
		chargeFilter = chargeFilter.And(domain.Eq(domain.FieldPropertyID, propertyID))
		paymentFilter = paymentFilter.And(domain.Eq(domain.FieldPropertyID, propertyID))
	}

	var (
		charges  []domain.LeaseChargeRecord
		payments []domain.PaymentRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		charges, err = s.objects.ListLeaseCharges(gctx, ws, chargeFilter)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.objects.ListPayments(gctx, ws, paymentFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load delinquency inputs",
			slog.String("month", month.String()),
			slog.String("property_id", propertyID))
		return nil, err
	}

	charged := aggregateCharges(charges)
	paid := aggregatePayments(payments)

	delinquent := make([]domain.DelinquentLease, 0)
	for leaseID, totals := range charged {
		outstanding := decimal.Max(totals.amount.Sub(paid[leaseID]), decimal.Zero)
		if !outstanding.GreaterThan(delinquencyThreshold) {
			continue
		}

		lease := domain.DelinquentLease{
			LeaseID:           leaseID,
			OutstandingAmount: domain.RoundCurrency(outstanding),
		}
		if totals.propertyID != "" {
			pid := totals.propertyID
			lease.PropertyID = &pid
		}
		delinquent = append(delinquent, lease)
	}

	sort.Slice(delinquent, func(i, j int) bool {
		return delinquent[i].LeaseID < delinquent[j].LeaseID
	})
	return delinquent, nil
}

// DelinquentByProperty sums the outstanding amounts of the property's delinquent leases.
func (s *delinquencyService) DelinquentByProperty(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	leases, err := s.DelinquentLeases(ctx, ws, month, propertyID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, l := range leases {
		total = total.Add(l.OutstandingAmount)
	}
	return total, nil
}

// aggregateCharges groups charges by lease. Charges without a lease are skipped and
// the first non-empty property id seen for a lease is kept.
func aggregateCharges(charges []domain.LeaseChargeRecord) map[string]*leaseCharges {
	totals := make(map[string]*leaseCharges)
	for _, c := range charges {
		if c.LeaseID == "" {
			continue
		}
		t, ok := totals[c.LeaseID]
		if !ok {
			t = &leaseCharges{amount: decimal.Zero}
			totals[c.LeaseID] = t
		}
		t.amount = t.amount.Add(c.Amount.Normalize())
		if t.propertyID == "" {
			t.propertyID = c.PropertyID
		}
	}
	return totals
}

func aggregatePayments(payments []domain.PaymentRecord) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if p.LeaseID == "" {
			continue
		}
		totals[p.LeaseID] = totals[p.LeaseID].Add(p.Amount.Normalize())
	}
	return totals
}
