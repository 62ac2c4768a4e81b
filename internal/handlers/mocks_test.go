package handlers_test

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PortfolioService ---
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) PropertySummary(ctx context.Context, ws domain.WorkspaceContext, property domain.PropertyRecord, month domain.Month) (*domain.PropertySummary, error) {
	args := m.Called(ctx, ws, property, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertySummary), args.Error(1)
}
func (m *MockPortfolioService) PropertyDashboard(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (*domain.PropertySummary, error) {
	args := m.Called(ctx, ws, propertyID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertySummary), args.Error(1)
}
func (m *MockPortfolioService) PortfolioSummary(ctx context.Context, ws domain.WorkspaceContext, month domain.Month) (*domain.PortfolioSummary, error) {
	args := m.Called(ctx, ws, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioSummary), args.Error(1)
}

var _ portssvc.PortfolioSvc = (*MockPortfolioService)(nil)

// --- Mock RentRollService ---
type MockRentRollService struct {
	mock.Mock
}

func (m *MockRentRollService) PropertyRentRoll(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, ws, propertyID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentRollService) PropertyCollected(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, ws, propertyID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentRollService) PropertyDelinquent(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, ws, propertyID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockRentRollService) RentRoll(ctx context.Context, ws domain.WorkspaceContext, filter domain.RentRollFilter) (*domain.RentRollReport, error) {
	args := m.Called(ctx, ws, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRollReport), args.Error(1)
}
func (m *MockRentRollService) LeasePaymentHistory(ctx context.Context, ws domain.WorkspaceContext, leaseID string) (*domain.LeasePaymentHistory, error) {
	args := m.Called(ctx, ws, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeasePaymentHistory), args.Error(1)
}
func (m *MockRentRollService) DelinquencyReport(ctx context.Context, ws domain.WorkspaceContext, daysOverdue int) (*domain.DelinquencyReport, error) {
	args := m.Called(ctx, ws, daysOverdue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DelinquencyReport), args.Error(1)
}

var _ portssvc.RentRollSvcFacade = (*MockRentRollService)(nil)

// --- Mock DelinquencyService ---
type MockDelinquencyService struct {
	mock.Mock
}

func (m *MockDelinquencyService) DelinquentLeases(ctx context.Context, ws domain.WorkspaceContext, month domain.Month, propertyID string) ([]domain.DelinquentLease, error) {
	args := m.Called(ctx, ws, month, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DelinquentLease), args.Error(1)
}
func (m *MockDelinquencyService) DelinquentByProperty(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (decimal.Decimal, error) {
	args := m.Called(ctx, ws, propertyID, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.DelinquencySvc = (*MockDelinquencyService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, ws domain.WorkspaceContext, input domain.RecordPaymentInput) (*domain.RecordPaymentResult, error) {
	args := m.Called(ctx, ws, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordPaymentResult), args.Error(1)
}

var _ portssvc.PaymentSvc = (*MockPaymentService)(nil)
