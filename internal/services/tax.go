package services

import (
	"context"
	"fmt"

	"opyta/internal/core"
	"opyta/internal/log"
	"opyta/internal/pipeline"
	"opyta/internal/sheets"
)

// snapshotLoader is what the tax service needs from the dashboard side.
type snapshotLoader interface {
	Load(ctx context.Context) (core.Snapshot, error)
}

// TaxService computes the per-revenue tax breakdown and replaces the
// destination worksheet with it. Invocation is human-triggered and assumed
// single-writer; there is no locking around the overwrite.
type TaxService struct {
	loader snapshotLoader
	writer sheets.TaxTableWriter
	logger *log.Logger
}

func NewTaxService(loader snapshotLoader, writer sheets.TaxTableWriter, logger *log.Logger) *TaxService {
	return &TaxService{
		loader: loader,
		writer: writer,
		logger: logger.WithComponent(log.ComponentTax),
	}
}

// Recalculate recomputes the tax table from the current snapshot and writes
// it back, returning the number of rows written. The computation itself is
// deterministic (row IDs aside), so a failed write is repaired by running
// again.
func (s *TaxService) Recalculate(ctx context.Context) (int, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return 0, err
	}

	rows := pipeline.ComputeTaxes(snap.Revenues, snap.TaxParams)
	if err := s.writer.ReplaceTaxTable(ctx, snap.TaxParams, rows); err != nil {
		return 0, fmt.Errorf("replace tax table: %w", err)
	}

	s.logger.InfoContext(ctx, "Tax table recalculated", log.FieldRows, len(rows))
	return len(rows), nil
}
