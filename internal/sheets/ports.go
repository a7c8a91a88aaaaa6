// Package sheets defines the ports the pipeline uses to talk to the record
// store, plus the error taxonomy store adapters must surface.
package sheets

import (
	"context"
	"errors"
	"fmt"

	"opyta/internal/core"
)

// Ports for outbound adapters.
type (
	// SnapshotReader reads the five source worksheets as ordered raw rows.
	SnapshotReader interface {
		ReadSnapshot(ctx context.Context) (core.RawTables, error)
	}

	// TaxTableWriter replaces the tax results worksheet with freshly
	// computed rows. The replace is destructive: previous contents are
	// cleared, never merged or appended. Params give the column order for
	// the per-tax amounts.
	TaxTableWriter interface {
		ReplaceTaxTable(ctx context.Context, params []core.TaxParameter, rows []core.TaxRow) error
	}
)

// ErrNotConnected reports that the store is unreachable or the credentials
// were rejected. Callers treat it as "no data": the pipeline does not run
// and readers fall back to empty collections.
var ErrNotConnected = errors.New("record store not connected")

// MissingSheetError reports that a required worksheet tab is absent from the
// spreadsheet. It is kept distinguishable from connection failures so a
// human can fix the store's schema.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("worksheet not found: %s", e.Sheet)
}

// IsMissingSheet reports whether err is a MissingSheetError.
func IsMissingSheet(err error) bool {
	var m *MissingSheetError
	return errors.As(err, &m)
}
