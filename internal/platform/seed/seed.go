package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
)

// File is the layout of a seed document:
//
//	{"workspaceId": "ws-1", "objects": {"property": [{...}], "leaseCharge": [{...}]}}
type File struct {
	WorkspaceID string                     `json:"workspaceId"`
	Objects     map[string][]domain.Record `json:"objects"`
}

var knownObjects = []string{
	domain.ObjectProperty,
	domain.ObjectUnit,
	domain.ObjectLease,
	domain.ObjectWorkOrder,
	domain.ObjectLeaseCharge,
	domain.ObjectPayment,
}

// Load decodes a seed document and writes every object list into the store.
// Objects are written in dependency order so properties exist before their charges.
func Load(ctx context.Context, r io.Reader, store portsrepo.RecordSeeder, logger *slog.Logger) (int, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&f); err != nil {
		return 0, fmt.Errorf("%w: decode seed file: %w", apperrors.ErrValidation, err)
	}
	if f.WorkspaceID == "" {
		return 0, fmt.Errorf("%w: seed file has no workspaceId", apperrors.ErrValidation)
	}
	for name := range f.Objects {
		if !slices.Contains(knownObjects, name) {
			return 0, fmt.Errorf("%w: unknown object %q in seed file", apperrors.ErrValidation, name)
		}
	}

	ws := domain.WorkspaceContext{WorkspaceID: f.WorkspaceID, UserID: "seed"}
	total := 0
	for _, name := range knownObjects {
		records := f.Objects[name]
		if len(records) == 0 {
			continue
		}
		n, err := store.SeedRecords(ctx, ws, name, records)
		if err != nil {
			return total, fmt.Errorf("seed %s: %w", name, err)
		}
		logger.Info("Seeded records", slog.String("workspace_id", ws.WorkspaceID), slog.String("object", name), slog.Int("count", n))
		total += n
	}
	return total, nil
}

// LoadFile opens path and passes it to Load.
func LoadFile(ctx context.Context, path string, store portsrepo.RecordSeeder, logger *slog.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(ctx, f, store, logger)
}
