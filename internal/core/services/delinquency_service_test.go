package services

import (
	"context"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDelinquencyExample(t *testing.T, store *recordingStore) {
	t.Helper()
	seed(t, store, domain.ObjectLeaseCharge,
		domain.Record{"id": "C1", "leaseId": "A", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(1200)},
		domain.Record{"id": "C2", "leaseId": "A", "propertyId": "P1", "chargeType": "Rent", "status": "Partially Paid", "dueDate": "2024-03-15", "amount": micros(100)},
		domain.Record{"id": "C3", "leaseId": "B", "propertyId": "P2", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(900)},
	)
	seed(t, store, domain.ObjectPayment,
		domain.Record{"id": "Y1", "leaseId": "A", "propertyId": "P1", "status": "Completed", "paymentDate": "2024-03-02", "amount": micros(1000)},
	)
}

func outstandingByLease(leases []domain.DelinquentLease) map[string]string {
	out := make(map[string]string, len(leases))
	for _, l := range leases {
		out[l.LeaseID] = l.OutstandingAmount.String()
	}
	return out
}

func TestDelinquentLeases(t *testing.T) {
	store := newRecordingStore()
	seedDelinquencyExample(t, store)
	svc := NewDelinquencyService(NewObjectService(store))

	leases, err := svc.DelinquentLeases(context.Background(), testWS, march2024, "")
	require.NoError(t, err)
	require.Len(t, leases, 2)

	assert.Equal(t, "A", leases[0].LeaseID)
	require.NotNil(t, leases[0].PropertyID)
	assert.Equal(t, "P1", *leases[0].PropertyID)
	assert.Equal(t, "B", leases[1].LeaseID)
	require.NotNil(t, leases[1].PropertyID)
	assert.Equal(t, "P2", *leases[1].PropertyID)
	assert.Equal(t, map[string]string{"A": "300", "B": "900"}, outstandingByLease(leases))
}

func TestDelinquentByProperty_ScopesToProperty(t *testing.T) {
	store := newRecordingStore()
	seedDelinquencyExample(t, store)
	svc := NewDelinquencyService(NewObjectService(store))

	total, err := svc.DelinquentByProperty(context.Background(), testWS, "P1", march2024)
	require.NoError(t, err)
	assert.Equal(t, "300", total.String())

	total, err = svc.DelinquentByProperty(context.Background(), testWS, "P2", march2024)
	require.NoError(t, err)
	assert.Equal(t, "900", total.String())
}

func TestDelinquentLeases_IgnoresSettledAndUnrelated(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectLeaseCharge,
		// Settled to within a cent.
		domain.Record{"id": "C1", "leaseId": "A", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": "500.01"},
		// No lease.
		domain.Record{"id": "C2", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(700)},
		// Paid status, other type, other month.
		domain.Record{"id": "C3", "leaseId": "B", "propertyId": "P1", "chargeType": "Rent", "status": "Paid", "dueDate": "2024-03-01", "amount": micros(700)},
		domain.Record{"id": "C4", "leaseId": "B", "propertyId": "P1", "chargeType": "Utility", "status": "Open", "dueDate": "2024-03-01", "amount": micros(700)},
		domain.Record{"id": "C5", "leaseId": "B", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-02-29", "amount": micros(700)},
		// Lease C has no property on its first charge.
		domain.Record{"id": "C6", "leaseId": "C", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(10)},
		domain.Record{"id": "C7", "leaseId": "C", "propertyId": "P3", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-02", "amount": micros(10)},
	)
	seed(t, store, domain.ObjectPayment,
		domain.Record{"id": "Y1", "leaseId": "A", "propertyId": "P1", "status": "Completed", "paymentDate": "2024-03-02", "amount": micros(500)},
		domain.Record{"id": "Y2", "leaseId": "C", "propertyId": "P3", "status": "Pending", "paymentDate": "2024-03-02", "amount": micros(20)},
	)
	svc := NewDelinquencyService(NewObjectService(store))

	leases, err := svc.DelinquentLeases(context.Background(), testWS, march2024, "")
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, "C", leases[0].LeaseID)
	require.NotNil(t, leases[0].PropertyID)
	assert.Equal(t, "P3", *leases[0].PropertyID)
	assert.Equal(t, "20", leases[0].OutstandingAmount.String())
}

func TestDelinquentLeases_OverpaidLeaseIsNotDelinquent(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, domain.ObjectLeaseCharge,
		domain.Record{"id": "C1", "leaseId": "A", "propertyId": "P1", "chargeType": "Rent", "status": "Open", "dueDate": "2024-03-01", "amount": micros(100)},
	)
	seed(t, store, domain.ObjectPayment,
		domain.Record{"id": "Y1", "leaseId": "A", "propertyId": "P1", "status": "Completed", "paymentDate": "2024-03-02", "amount": micros(300)},
	)
	svc := NewDelinquencyService(NewObjectService(store))

	leases, err := svc.DelinquentLeases(context.Background(), testWS, march2024, "P1")
	require.NoError(t, err)
	assert.Empty(t, leases)
	assert.NotNil(t, leases)
}

func TestDelinquentLeases_StoreFailure(t *testing.T) {
	store := newRecordingStore()
	store.failures["fetch:leaseCharge"] = apperrors.ErrStoreOperationFailed
	svc := NewDelinquencyService(NewObjectService(store))

	_, err := svc.DelinquentLeases(context.Background(), testWS, march2024, "")
	assert.ErrorIs(t, err, apperrors.ErrStoreOperationFailed)
}

func TestDelinquentLeases_MissingWorkspace(t *testing.T) {
	store := newRecordingStore()
	svc := NewDelinquencyService(NewObjectService(store))

	_, err := svc.DelinquentLeases(context.Background(), domain.WorkspaceContext{}, march2024, "")
	assert.ErrorIs(t, err, apperrors.ErrMissingWorkspaceContext)
	assert.Zero(t, store.total())
}
