package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testWS    = domain.WorkspaceContext{WorkspaceID: "ws-1", UserID: "user-1"}
	march2024 = domain.Month{Year: 2024, Month: time.March}
)

// recordingStore wraps the in-memory store, counting calls per "op:object" and
// failing the operations listed in failures.
type recordingStore struct {
	*memory.RecordStore
	mu       sync.Mutex
	calls    map[string]int
	failures map[string]error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		RecordStore: memory.NewRecordStore(),
		calls:       make(map[string]int),
		failures:    make(map[string]error),
	}
}

func (s *recordingStore) record(op, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := op + ":" + objectName
	s.calls[key]++
	return s.failures[key]
}

func (s *recordingStore) count(op, objectName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op+":"+objectName]
}

func (s *recordingStore) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *recordingStore) FetchRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter, page domain.Page) (domain.RecordPage, error) {
	if err := s.record("fetch", objectName); err != nil {
		return domain.RecordPage{}, err
	}
	return s.RecordStore.FetchRecords(ctx, ws, objectName, filter, page)
}

func (s *recordingStore) CreateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName string, fields domain.Record) (domain.Record, error) {
	if err := s.record("create", objectName); err != nil {
		return nil, err
	}
	return s.RecordStore.CreateRecord(ctx, ws, objectName, fields)
}

func (s *recordingStore) UpdateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName, id string, fields domain.Record) (domain.Record, error) {
	if err := s.record("update", objectName); err != nil {
		return nil, err
	}
	return s.RecordStore.UpdateRecord(ctx, ws, objectName, id, fields)
}

func seed(t *testing.T, s *recordingStore, objectName string, records ...domain.Record) {
	t.Helper()
	_, err := s.SeedRecords(context.Background(), testWS, objectName, records)
	require.NoError(t, err)
}

func micros(units int64) map[string]any {
	return map[string]any{"amountMicros": units * 1_000_000, "currencyCode": "USD"}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MockRecordStore is a testify mock of the record store port.
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) FetchRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter, page domain.Page) (domain.RecordPage, error) {
	args := m.Called(ctx, ws, objectName, filter, page)
	return args.Get(0).(domain.RecordPage), args.Error(1)
}

func (m *MockRecordStore) CreateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName string, fields domain.Record) (domain.Record, error) {
	args := m.Called(ctx, ws, objectName, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Record), args.Error(1)
}

func (m *MockRecordStore) UpdateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName, id string, fields domain.Record) (domain.Record, error) {
	args := m.Called(ctx, ws, objectName, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Record), args.Error(1)
}
