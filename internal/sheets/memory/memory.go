// Package memory is an in-process record store used by tests and local
// development. It implements the same ports as the Google adapter.
package memory

import (
	"context"
	"sync"

	"opyta/internal/core"
	ports "opyta/internal/sheets"
)

type Store struct {
	mu      sync.Mutex
	tables  core.RawTables
	taxRows []core.TaxRow

	// Optional fault injection for boundary tests.
	readErr  error
	writeErr error
}

var (
	_ ports.SnapshotReader = (*Store)(nil)
	_ ports.TaxTableWriter = (*Store)(nil)
)

func New(tables core.RawTables) *Store {
	return &Store{tables: tables}
}

// NewSeeded returns a store with a small demo dataset so the server is
// usable without a spreadsheet.
func NewSeeded() *Store {
	return New(core.RawTables{
		Projects: core.RawTable{
			{core.ColProjectCode: "OPY-001", core.ColProjectClient: "Acme", core.ColRevenueTarget: "50000"},
			{core.ColProjectCode: "OPY-002", core.ColProjectClient: "Globex", core.ColRevenueTarget: "30000"},
		},
		Revenues: core.RawTable{
			{core.ColRecordProject: "OPY-001", core.ColCategory: "Consultoria", core.ColAmountReceived: "12000", core.ColDateReceived: "2024-01-15"},
			{core.ColRecordProject: "OPY-002", core.ColCategory: "Licença", core.ColAmountReceived: "31000", core.ColDateReceived: "2024-02-02"},
		},
		Expenses: core.RawTable{
			{core.ColRecordProject: "OPY-001", core.ColCategory: "Viagem", core.ColAmountPaid: "1800", core.ColDatePaid: "2024-01-20"},
			{core.ColRecordProject: "OPY-001", core.ColCategory: "Software", core.ColAmountPaid: "450", core.ColDatePaid: "2024-02-10"},
		},
		Costs: core.RawTable{
			{core.ColCategory: "Aluguel", core.ColCostAmount: "3500", core.ColCostDate: "2024-01-05"},
		},
		TaxParams: core.RawTable{
			{core.ColTaxName: "ISS", core.ColTaxRate: "0,05"},
			{core.ColTaxName: "PIS", core.ColTaxRate: "0,0065"},
			{core.ColTaxName: "COFINS", core.ColTaxRate: "0,03"},
		},
	})
}

// FailReads makes subsequent ReadSnapshot calls return err.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// FailWrites makes subsequent ReplaceTaxTable calls return err.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *Store) ReadSnapshot(_ context.Context) (core.RawTables, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return core.RawTables{}, s.readErr
	}
	return core.RawTables{
		Projects:  copyTable(s.tables.Projects),
		Revenues:  copyTable(s.tables.Revenues),
		Expenses:  copyTable(s.tables.Expenses),
		Costs:     copyTable(s.tables.Costs),
		TaxParams: copyTable(s.tables.TaxParams),
	}, nil
}

func (s *Store) ReplaceTaxTable(_ context.Context, _ []core.TaxParameter, rows []core.TaxRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.taxRows = append([]core.TaxRow(nil), rows...)
	return nil
}

// TaxTable returns the last written tax rows.
func (s *Store) TaxTable() []core.TaxRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.TaxRow(nil), s.taxRows...)
}

func copyTable(t core.RawTable) core.RawTable {
	if t == nil {
		return nil
	}
	out := make(core.RawTable, len(t))
	for i, row := range t {
		cp := make(core.RawRow, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
