package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// ObjectSvc is the typed access layer over the record store. Every call pages through
// the full result set and fails with apperrors.ErrMissingWorkspaceContext before touching the store
// when ws is incomplete.
type ObjectSvc interface {
	// FetchAll returns every record of objectName matching filter.
	FetchAll(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter) ([]domain.Record, error)

	ListProperties(ctx context.Context, ws domain.WorkspaceContext) ([]domain.PropertyRecord, error)
	// GetProperty returns nil, nil when no property has the id.
	GetProperty(ctx context.Context, ws domain.WorkspaceContext, propertyID string) (*domain.PropertyRecord, error)
	ListUnits(ctx context.Context, ws domain.WorkspaceContext, propertyID string) ([]domain.UnitRecord, error)
	ListLeases(ctx context.Context, ws domain.WorkspaceContext, propertyID string, statuses []string) ([]domain.LeaseRecord, error)
	CountOpenWorkOrders(ctx context.Context, ws domain.WorkspaceContext, propertyID string) (int, error)
	ListLeaseCharges(ctx context.Context, ws domain.WorkspaceContext, filter domain.Filter) ([]domain.LeaseChargeRecord, error)
	ListPayments(ctx context.Context, ws domain.WorkspaceContext, filter domain.Filter) ([]domain.PaymentRecord, error)

	CreatePayment(ctx context.Context, ws domain.WorkspaceContext, fields domain.Record) (*domain.PaymentRecord, error)
	UpdateLeaseCharge(ctx context.Context, ws domain.WorkspaceContext, chargeID string, fields domain.Record) (*domain.LeaseChargeRecord, error)
}
