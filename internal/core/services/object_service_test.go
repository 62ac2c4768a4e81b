package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFetchAll_PagesUntilTotalCount(t *testing.T) {
	store := newRecordingStore()
	for i := range 5 {
		seed(t, store, domain.ObjectProperty, domain.Record{"id": fmt.Sprintf("P%d", i), "name": "p"})
	}
	svc := NewObjectService(store, WithPageSize(2))

	properties, err := svc.ListProperties(context.Background(), testWS)
	require.NoError(t, err)
	assert.Len(t, properties, 5)
	assert.Equal(t, 3, store.count("fetch", domain.ObjectProperty))
}

func TestFetchAll_ExactMultipleOfPageSize(t *testing.T) {
	store := newRecordingStore()
	for i := range 4 {
		seed(t, store, domain.ObjectUnit, domain.Record{"id": fmt.Sprintf("U%d", i), "propertyId": "P1"})
	}
	svc := NewObjectService(store, WithPageSize(2))

	units, err := svc.ListUnits(context.Background(), testWS, "P1")
	require.NoError(t, err)
	assert.Len(t, units, 4)
	assert.Equal(t, 2, store.count("fetch", domain.ObjectUnit))
}

func TestFetchAll_StopsOnShortPage(t *testing.T) {
	store := new(MockRecordStore)
	store.On("FetchRecords", mock.Anything, testWS, domain.ObjectLease, mock.Anything, domain.Page{Limit: 3, Offset: 0}).
		Return(domain.RecordPage{Records: []domain.Record{{"id": "L1"}}, TotalCount: 50}, nil).Once()
	svc := NewObjectService(store, WithPageSize(3))

	records, err := svc.FetchAll(context.Background(), testWS, domain.ObjectLease, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	store.AssertExpectations(t)
}

func TestObjectService_MissingWorkspaceMakesNoStoreCalls(t *testing.T) {
	store := new(MockRecordStore)
	svc := NewObjectService(store)
	ctx := context.Background()

	incomplete := []domain.WorkspaceContext{{}, {WorkspaceID: "ws-1"}, {UserID: "user-1"}}
	for _, ws := range incomplete {
		_, err := svc.ListProperties(ctx, ws)
		assert.ErrorIs(t, err, apperrors.ErrMissingWorkspaceContext)

		_, err = svc.GetProperty(ctx, ws, "P1")
		assert.ErrorIs(t, err, apperrors.ErrMissingWorkspaceContext)

		_, err = svc.CreatePayment(ctx, ws, domain.Record{"leaseId": "L1"})
		assert.ErrorIs(t, err, apperrors.ErrMissingWorkspaceContext)

		_, err = svc.UpdateLeaseCharge(ctx, ws, "C1", domain.Record{"status": "Paid"})
		assert.ErrorIs(t, err, apperrors.ErrMissingWorkspaceContext)
	}
	store.AssertNotCalled(t, "FetchRecords", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchAll_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"unclassified", errors.New("boom"), apperrors.ErrStoreOperationFailed},
		{"unavailable", fmt.Errorf("%w: dial tcp", apperrors.ErrStoreUnavailable), apperrors.ErrStoreUnavailable},
		{"cancelled", context.Canceled, context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockRecordStore)
			store.On("FetchRecords", mock.Anything, testWS, domain.ObjectPayment, mock.Anything, mock.Anything).
				Return(domain.RecordPage{}, tt.err).Once()
			svc := NewObjectService(store)

			_, err := svc.ListPayments(context.Background(), testWS, domain.Where(domain.Eq("leaseId", "L1")))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchAll_InvalidFilter(t *testing.T) {
	store := new(MockRecordStore)
	svc := NewObjectService(store)

	_, err := svc.FetchAll(context.Background(), testWS, domain.ObjectLeaseCharge, domain.Where(domain.In("status")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	store.AssertNotCalled(t, "FetchRecords", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProperty(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectProperty, domain.Record{"id": "P1", "name": "Elm Court", "unitCount": 12})
	svc := NewObjectService(store)

	property, err := svc.GetProperty(context.Background(), testWS, "P1")
	require.NoError(t, err)
	require.NotNil(t, property)
	assert.Equal(t, "Elm Court", property.Name)
	assert.Equal(t, domain.NumberOf(12), property.UnitCount)

	missing, err := svc.GetProperty(context.Background(), testWS, "P404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListLeasesAndWorkOrders(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectLease,
		domain.Record{"id": "L1", "propertyId": "P1", "leaseStatus": "Active"},
		domain.Record{"id": "L2", "propertyId": "P1", "leaseStatus": "Terminated"},
		domain.Record{"id": "L3", "propertyId": "P2", "leaseStatus": "Active"},
	)
	seed(t, store, domain.ObjectWorkOrder,
		domain.Record{"id": "W1", "propertyId": "P1", "status": "New"},
		domain.Record{"id": "W2", "propertyId": "P1", "status": "Waiting on Resident"},
		domain.Record{"id": "W3", "propertyId": "P1", "status": "Completed"},
		domain.Record{"id": "W4", "propertyId": "P2", "status": "New"},
	)
	svc := NewObjectService(store)
	ctx := context.Background()

	active, err := svc.ListLeases(ctx, testWS, "P1", activeLeaseStatuses)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "L1", active[0].ID)

	all, err := svc.ListLeases(ctx, testWS, "P1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := svc.CountOpenWorkOrders(ctx, testWS, "P1")
	require.NoError(t, err)
	assert.Equal(t, 2, open)
}

func TestUpdateLeaseCharge_MissingRecord(t *testing.T) {
	svc := NewObjectService(newRecordingStore())

	_, err := svc.UpdateLeaseCharge(context.Background(), testWS, "C404", domain.Record{"status": "Paid"})
	assert.ErrorIs(t, err, apperrors.ErrStoreOperationFailed)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
