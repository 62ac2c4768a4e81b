package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecordStore keeps CRM records as JSONB documents in the pm_records table.
type PgxRecordStore struct {
	BaseRepository
}

// NewRecordStore creates a record store backed by pool.
func NewRecordStore(pool *pgxpool.Pool) *PgxRecordStore {
	return &PgxRecordStore{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var (
	_ portsrepo.RecordStoreWithSeed = (*PgxRecordStore)(nil)
	_ portsrepo.TransactionManager  = (*PgxRecordStore)(nil)
)

// buildFetchQueries returns the count and page queries for a filter together with their arguments.
// The page query takes two extra trailing arguments: limit and offset.
func buildFetchQueries(ws domain.WorkspaceContext, objectName string, filter domain.Filter) (countSQL, pageSQL string, args []any, err error) {
	b := &whereBuilder{}
	b.add("workspace_id = " + b.arg(ws.WorkspaceID))
	b.add("object_name = " + b.arg(objectName))
	if err := compileFilter(b, filter); err != nil {
		return "", "", nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	where := b.sql()
	countSQL = "SELECT count(*) FROM pm_records WHERE " + where
	pageSQL = fmt.Sprintf("SELECT data FROM pm_records WHERE %s ORDER BY created_at, id LIMIT $%d OFFSET $%d",
		where, len(b.args)+1, len(b.args)+2)
	return countSQL, pageSQL, b.args, nil
}

// FetchRecords returns one page of matching records ordered by creation time.
func (r *PgxRecordStore) FetchRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter, page domain.Page) (domain.RecordPage, error) {
	if page.Limit <= 0 || page.Offset < 0 {
		return domain.RecordPage{}, fmt.Errorf("%w: invalid page limit=%d offset=%d", apperrors.ErrValidation, page.Limit, page.Offset)
	}

	countSQL, pageSQL, args, err := buildFetchQueries(ws, objectName, filter)
	if err != nil {
		return domain.RecordPage{}, err
	}

	var total int
	if err := r.Pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return domain.RecordPage{}, classify(err, fmt.Sprintf("failed to count %s records", objectName))
	}

	rows, err := r.Pool.Query(ctx, pageSQL, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return domain.RecordPage{}, classify(err, fmt.Sprintf("failed to query %s records", objectName))
	}
	defer rows.Close()

	records := make([]domain.Record, 0, page.Limit)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return domain.RecordPage{}, classify(err, fmt.Sprintf("failed to scan %s record", objectName))
		}
		record, err := decodeData(raw)
		if err != nil {
			return domain.RecordPage{}, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return domain.RecordPage{}, classify(err, fmt.Sprintf("failed to iterate %s records", objectName))
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Fetched records",
		slog.String("object", objectName),
		slog.Int("returned", len(records)),
		slog.Int("total", total))
	return domain.RecordPage{Records: records, TotalCount: total}, nil
}

const insertRecordSQL = `
	INSERT INTO pm_records (workspace_id, object_name, id, data, created_at, updated_at)
	VALUES ($1, $2, $3, $4::jsonb, now(), now())
	RETURNING data;
`

// CreateRecord inserts fields as a new document, generating an id when absent.
func (r *PgxRecordStore) CreateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName string, fields domain.Record) (domain.Record, error) {
	id, payload, err := encodeWithID(fields)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if err := r.Pool.QueryRow(ctx, insertRecordSQL, ws.WorkspaceID, objectName, id, payload).Scan(&raw); err != nil {
		return nil, classify(err, fmt.Sprintf("failed to create %s record", objectName))
	}
	return decodeData(raw)
}

const updateRecordSQL = `
	UPDATE pm_records
	SET data = data || $4::jsonb, updated_at = now()
	WHERE workspace_id = $1 AND object_name = $2 AND id = $3
	RETURNING data;
`

// UpdateRecord merges fields into the stored document. The id key is never overwritten.
func (r *PgxRecordStore) UpdateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName, id string, fields domain.Record) (domain.Record, error) {
	patch := make(domain.Record, len(fields))
	for k, v := range fields {
		if k != domain.FieldID {
			patch[k] = v
		}
	}
	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: record is not JSON serializable: %w", apperrors.ErrValidation, err)
	}

	var raw []byte
	err = r.Pool.QueryRow(ctx, updateRecordSQL, ws.WorkspaceID, objectName, id, string(payload)).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, objectName, id)
		}
		return nil, classify(err, fmt.Sprintf("failed to update %s record %s", objectName, id))
	}
	return decodeData(raw)
}

const upsertRecordSQL = `
	INSERT INTO pm_records (workspace_id, object_name, id, data, created_at, updated_at)
	VALUES ($1, $2, $3, $4::jsonb, now(), now())
	ON CONFLICT (workspace_id, object_name, id) DO UPDATE SET
		data = EXCLUDED.data,
		updated_at = EXCLUDED.updated_at;
`

// SeedRecords upserts records in a single transaction.
func (r *PgxRecordStore) SeedRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, records []domain.Record) (int, error) {
	batch := &pgx.Batch{}
	for _, record := range records {
		id, payload, err := encodeWithID(record)
		if err != nil {
			return 0, err
		}
		batch.Queue(upsertRecordSQL, ws.WorkspaceID, objectName, id, payload)
	}

	err := withTx(ctx, r, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return classify(err, fmt.Sprintf("failed to seed %s records", objectName))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// encodeWithID assigns an id when missing and returns the JSON document.
func encodeWithID(fields domain.Record) (string, string, error) {
	doc := make(domain.Record, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	id := doc.ID()
	if id == "" {
		id = uuid.NewString()
		doc[domain.FieldID] = id
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", "", fmt.Errorf("%w: record is not JSON serializable: %w", apperrors.ErrValidation, err)
	}
	return id, string(payload), nil
}

func decodeData(raw []byte) (domain.Record, error) {
	record := domain.Record{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("%w: stored record is not a JSON object: %w", apperrors.ErrStoreOperationFailed, err)
	}
	return record, nil
}
