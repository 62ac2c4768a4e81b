package repositories

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// RecordReader reads records of one CRM object type, one page at a time.
type RecordReader interface {
	// FetchRecords returns the records matching filter within page, plus the total match count.
	FetchRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, filter domain.Filter, page domain.Page) (domain.RecordPage, error)
}

// RecordWriter creates and patches records.
type RecordWriter interface {
	// CreateRecord stores a new record and returns it with its assigned id.
	CreateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName string, fields domain.Record) (domain.Record, error)

	// UpdateRecord merges fields into the record with the given id and returns the result.
	// A missing record yields apperrors.ErrNotFound.
	UpdateRecord(ctx context.Context, ws domain.WorkspaceContext, objectName, id string, fields domain.Record) (domain.Record, error)
}

// RecordStore is the external record store the accounting core runs against.
type RecordStore interface {
	RecordReader
	RecordWriter
}

// RecordSeeder bulk-loads records, used by the seed command.
type RecordSeeder interface {
	SeedRecords(ctx context.Context, ws domain.WorkspaceContext, objectName string, records []domain.Record) (int, error)
}

// RecordStoreWithSeed is a store that can also be seeded.
type RecordStoreWithSeed interface {
	RecordStore
	RecordSeeder
}
