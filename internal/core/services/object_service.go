package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/platform/metrics"
)

// DefaultPageSize is the number of records requested per store round trip.
const DefaultPageSize = 200

var (
	activeLeaseStatuses = []string{
		domain.LeaseStatusActive,
		domain.LeaseStatusRenewalOffered,
		domain.LeaseStatusRenewalSigned,
	}
	openWorkOrderStatuses = []string{
		domain.WorkOrderStatusNew,
		domain.WorkOrderStatusInReview,
		domain.WorkOrderStatusScheduled,
		domain.WorkOrderStatusInProgress,
		domain.WorkOrderStatusWaitingOnResident,
	}
)

type objectService struct {
	BaseService
	store    portsrepo.RecordStore
	pageSize int
	metrics  *metrics.Metrics
}

// ObjectServiceOption is a functional option for configuring the object service
type ObjectServiceOption func(*objectService)

// WithPageSize overrides the store page size. Non-positive values are ignored.
func WithPageSize(size int) ObjectServiceOption {
	return func(s *objectService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithObjectMetrics records store call metrics.
func WithObjectMetrics(m *metrics.Metrics) ObjectServiceOption {
	return func(s *objectService) {
		s.metrics = m
	}
}

// NewObjectService creates the typed access layer over store.
func NewObjectService(store portsrepo.RecordStore, options ...ObjectServiceOption) portssvc.ObjectSvc {
	svc := &objectService{
		store:    store,
		pageSize: DefaultPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ObjectSvc = (*objectService)(nil)

// FetchAll pages through the store until totalCount records were read or a short page comes back.
func (s *objectService) FetchAll(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter) ([]domain.Record, error) {
	if err := s.RequireWorkspace(ctx, ws); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		s.LogError(ctx, err, "Rejected record filter",
			slog.String("object", objectName),
			slog.String("filter", filter.String()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	var records []domain.Record
	offset := 0
	for {
		page, err := s.fetchPage(ctx, ws, objectName, filter, domain.Page{Limit: s.pageSize, Offset: offset})
		if err != nil {
			return nil, err
		}

		records = append(records, page.Records...)
		if len(records) >= page.TotalCount || len(page.Records) < s.pageSize {
			break
		}
		offset += s.pageSize
	}

	s.LogDebug(ctx, "Loaded records",
		slog.String("object", objectName),
		slog.String("filter", filter.String()),
		slog.Int("count", len(records)))
	return records, nil
}

func (s *objectService) fetchPage(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter, page domain.Page) (domain.RecordPage, error) {
	start := time.Now()
	result, err := s.store.FetchRecords(ctx, ws, objectName, filter, page)
	s.metrics.ObserveStoreCall(objectName, "fetch", err, time.Since(start))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.RecordPage{}, err
		}
		s.LogError(ctx, err, "Failed to load records",
			slog.String("object", objectName),
			slog.String("filter", filter.String()),
			slog.Int("offset", page.Offset))
		return domain.RecordPage{}, storeError(err, fmt.Sprintf("unable to load %s records", objectName))
	}
	s.metrics.AddRecordsFetched(objectName, len(result.Records))
	return result, nil
}

// storeError tags err as a store failure unless the store already classified it.
func storeError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrStoreUnavailable) || errors.Is(err, apperrors.ErrStoreOperationFailed) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreOperationFailed, msg, err)
}

func decodeAll[T any](records []domain.Record, objectName string) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		typed, err := domain.DecodeRecord[T](r)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed %s record %q: %w", apperrors.ErrStoreOperationFailed, objectName, r.ID(), err)
		}
		out = append(out, typed)
	}
	return out, nil
}

func fetchTyped[T any](ctx context.Context, s *objectService, ws domain.WorkspaceContext, objectName string, filter domain.Filter) ([]T, error) {
	records, err := s.FetchAll(ctx, ws, objectName, filter)
	if err != nil {
		return nil, err
	}
	typed, err := decodeAll[T](records, objectName)
	if err != nil {
		s.LogError(ctx, err, "Failed to decode records", slog.String("object", objectName))
		return nil, err
	}
	return typed, nil
}

func (s *objectService) ListProperties(ctx context.Context, ws domain.WorkspaceContext) ([]domain.PropertyRecord, error) {
	return fetchTyped[domain.PropertyRecord](ctx, s, ws, domain.ObjectProperty, domain.Filter{})
}

func (s *objectService) GetProperty(ctx context.Context, ws domain.WorkspaceContext, propertyID string) (*domain.PropertyRecord, error) {
	if err := s.RequireWorkspace(ctx, ws); err != nil {
		return nil, err
	}
	page, err := s.fetchPage(ctx, ws, domain.ObjectProperty,
		domain.Where(domain.Eq(domain.FieldID, propertyID)), domain.Page{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, nil
	}
	property, err := domain.DecodeRecord[domain.PropertyRecord](page.Records[0])
	if err != nil {
		s.LogError(ctx, err, "Failed to decode property", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("%w: malformed property record %q: %w", apperrors.ErrStoreOperationFailed, propertyID, err)
	}
	return &property, nil
}

func (s *objectService) ListUnits(ctx context.Context, ws domain.WorkspaceContext, propertyID string) ([]domain.UnitRecord, error) {
	return fetchTyped[domain.UnitRecord](ctx, s, ws, domain.ObjectUnit,
		domain.Where(domain.Eq(domain.FieldPropertyID, propertyID)))
}

// ListLeases returns the property's leases, restricted to statuses when any are given.
func (s *objectService) ListLeases(ctx context.Context, ws domain.WorkspaceContext, propertyID string, statuses []string) ([]domain.LeaseRecord, error) {
	filter := domain.Where(domain.Eq(domain.FieldPropertyID, propertyID))
	if len(statuses) > 0 {
		filter = filter.And(domain.In(domain.FieldLeaseStatus, statuses...))
	}
	return fetchTyped[domain.LeaseRecord](ctx, s, ws, domain.ObjectLease, filter)
}

func (s *objectService) CountOpenWorkOrders(ctx context.Context, ws domain.WorkspaceContext, propertyID string) (int, error) {
	records, err := s.FetchAll(ctx, ws, domain.ObjectWorkOrder, domain.Where(
		domain.Eq(domain.FieldPropertyID, propertyID),
		domain.In(domain.FieldStatus, openWorkOrderStatuses...),
	))
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *objectService) ListLeaseCharges(ctx context.Context, ws domain.WorkspaceContext, filter domain.Filter) ([]domain.LeaseChargeRecord, error) {
	return fetchTyped[domain.LeaseChargeRecord](ctx, s, ws, domain.ObjectLeaseCharge, filter)
}

func (s *objectService) ListPayments(ctx context.Context, ws domain.WorkspaceContext, filter domain.Filter) ([]domain.PaymentRecord, error) {
	return fetchTyped[domain.PaymentRecord](ctx, s, ws, domain.ObjectPayment, filter)
}

func (s *objectService) CreatePayment(ctx context.Context, ws domain.WorkspaceContext, fields domain.Record) (*domain.PaymentRecord, error) {
	if err := s.RequireWorkspace(ctx, ws); err != nil {
		return nil, err
	}

	start := time.Now()
	created, err := s.store.CreateRecord(ctx, ws, domain.ObjectPayment, fields)
	s.metrics.ObserveStoreCall(domain.ObjectPayment, "create", err, time.Since(start))
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment")
		return nil, storeError(err, "unable to create payment")
	}

	payment, err := domain.DecodeRecord[domain.PaymentRecord](created)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed payment record: %w", apperrors.ErrStoreOperationFailed, err)
	}
	return &payment, nil
}

func (s *objectService) UpdateLeaseCharge(ctx context.Context, ws domain.WorkspaceContext, chargeID string, fields domain.Record) (*domain.LeaseChargeRecord, error) {
	if err := s.RequireWorkspace(ctx, ws); err != nil {
		return nil, err
	}

	start := time.Now()
	updated, err := s.store.UpdateRecord(ctx, ws, domain.ObjectLeaseCharge, chargeID, fields)
	s.metrics.ObserveStoreCall(domain.ObjectLeaseCharge, "update", err, time.Since(start))
	if err != nil {
		s.LogError(ctx, err, "Failed to update lease charge", slog.String("charge_id", chargeID))
		return nil, storeError(err, "unable to update lease charge")
	}

	charge, err := domain.DecodeRecord[domain.LeaseChargeRecord](updated)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed lease charge record: %w", apperrors.ErrStoreOperationFailed, err)
	}
	return &charge, nil
}
