package memory

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// RecordStore keeps records in process memory, partitioned by workspace and object.
// Records are stored and returned as JSON-normalized copies.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]map[string][]domain.Record
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[string]map[string][]domain.Record)}
}

var _ portsrepo.RecordStoreWithSeed = (*RecordStore)(nil)

// FetchRecords returns the matching records in insertion order.
func (s *RecordStore) FetchRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter, page domain.Page) (domain.RecordPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecordPage{}, err
	}
	if err := filter.Validate(); err != nil {
		return domain.RecordPage{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if page.Limit <= 0 || page.Offset < 0 {
		return domain.RecordPage{}, fmt.Errorf("%w: invalid page limit=%d offset=%d", apperrors.ErrValidation, page.Limit, page.Offset)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	conds := filter.Conditions()
	var matched []domain.Record
	for _, r := range s.records[ws.WorkspaceID][objectName] {
		if matchesAll(r, conds) {
			matched = append(matched, r)
		}
	}

	out := domain.RecordPage{TotalCount: len(matched), Records: []domain.Record{}}
	if page.Offset >= len(matched) {
		return out, nil
	}
	end := min(page.Offset+page.Limit, len(matched))
	for _, r := range matched[page.Offset:end] {
		out.Records = append(out.Records, cloneRecord(r))
	}
	return out, nil
}

// CreateRecord stores fields, assigning an id when none is given.
func (s *RecordStore) CreateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName string, fields domain.Record) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record, err := normalize(fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(ws.WorkspaceID, objectName, record)
	return cloneRecord(record), nil
}

// UpdateRecord merges fields into an existing record. The id cannot be changed.
func (s *RecordStore) UpdateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName, id string, fields domain.Record) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patch, err := normalize(fields)
	if err != nil {
		return nil, err
	}
	delete(patch, domain.FieldID)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records[ws.WorkspaceID][objectName] {
		if r.ID() != id {
			continue
		}
		for k, v := range patch {
			r[k] = v
		}
		r["updatedAt"] = time.Now().UTC().Format(time.RFC3339Nano)
		return cloneRecord(r), nil
	}
	return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, objectName, id)
}

// SeedRecords inserts records, replacing any existing record with the same id.
func (s *RecordStore) SeedRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, records []domain.Record) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	normalized := make([]domain.Record, 0, len(records))
	for _, r := range records {
		n, err := normalize(r)
		if err != nil {
			return 0, err
		}
		normalized = append(normalized, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range normalized {
		existing := s.records[ws.WorkspaceID][objectName]
		idx := slices.IndexFunc(existing, func(e domain.Record) bool { return e.ID() == r.ID() })
		if idx >= 0 {
			existing[idx] = r
			continue
		}
		s.insert(ws.WorkspaceID, objectName, r)
	}
	return len(normalized), nil
}

// insert must be called with the write lock held.
func (s *RecordStore) insert(workspaceID, objectName string, record domain.Record) {
	if record.ID() == "" {
		record[domain.FieldID] = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := record["createdAt"]; !ok {
		record["createdAt"] = now
	}
	record["updatedAt"] = now

	objects, ok := s.records[workspaceID]
	if !ok {
		objects = make(map[string][]domain.Record)
		s.records[workspaceID] = objects
	}
	objects[objectName] = append(objects[objectName], record)
}

// normalize converts fields to their JSON form, so typed values such as
// domain.MonetaryAmount are stored the way a remote store would return them.
func normalize(fields domain.Record) (domain.Record, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: record is not JSON serializable: %w", apperrors.ErrValidation, err)
	}
	out := domain.Record{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return out, nil
}

func cloneRecord(r domain.Record) domain.Record {
	out, err := normalize(r)
	if err != nil {
		// Stored records are already normalized.
		panic(err)
	}
	return out
}

func matchesAll(r domain.Record, conds []domain.Condition) bool {
	for _, c := range conds {
		if !matches(r, c) {
			return false
		}
	}
	return true
}

func matches(r domain.Record, c domain.Condition) bool {
	raw, ok := r[c.Field]
	if !ok || raw == nil {
		return false
	}

	switch want := c.Value.(type) {
	case []string:
		got, ok := scalarString(raw)
		return ok && slices.Contains(want, got)
	case time.Time:
		s, ok := raw.(string)
		if !ok {
			return false
		}
		got, ok := domain.ParseRecordTime(s)
		if !ok {
			return false
		}
		return compareOrdered(got.Compare(want), c.Op)
	case string:
		got, ok := scalarString(raw)
		if !ok {
			return false
		}
		if c.Op == domain.OpEq {
			return got == want
		}
		gf, gerr := strconv.ParseFloat(got, 64)
		wf, werr := strconv.ParseFloat(want, 64)
		if gerr == nil && werr == nil {
			return compareOrdered(cmp.Compare(gf, wf), c.Op)
		}
		return compareOrdered(cmp.Compare(got, want), c.Op)
	}
	return false
}

func compareOrdered(order int, op domain.Operator) bool {
	switch op {
	case domain.OpEq:
		return order == 0
	case domain.OpGte:
		return order >= 0
	case domain.OpGt:
		return order > 0
	case domain.OpLte:
		return order <= 0
	case domain.OpLt:
		return order < 0
	}
	return false
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	}
	return "", false
}
