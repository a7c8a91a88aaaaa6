// Package core holds the domain model shared by the pipeline, the store
// adapters and the presentation layer: typed financial records, the filter
// specification and the derived summary views.
package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worksheet column headers as they appear in the source spreadsheet.
const (
	ColProjectCode    = "Código"
	ColProjectClient  = "Cliente"
	ColRevenueTarget  = "Meta de Receita"
	ColRecordProject  = "Projeto"
	ColCategory       = "Categoria"
	ColAmountReceived = "Valor Recebido"
	ColDateReceived   = "Data Recebimento"
	ColAmountPaid     = "Valor Pago"
	ColDatePaid       = "Data Pagamento"
	ColCostAmount     = "Valor"
	ColCostDate       = "Data"
	ColTaxName        = "Imposto"
	ColTaxRate        = "Aliquota"
)

// FilterAll is the sentinel selector meaning "no narrowing" for the client
// and project filters. An empty string is treated the same way.
const FilterAll = "ALL"

type (
	// Date wraps time.Time; the zero value means "no date" (unparsable or
	// empty source cell).
	Date struct {
		time.Time
	}

	// Project is a row of the projects worksheet. Code is the unique key
	// revenue and expense records reference.
	Project struct {
		Code          string
		Client        string
		RevenueTarget decimal.Decimal
	}

	// RevenueRecord is a received payment attributed to a project.
	RevenueRecord struct {
		ProjectCode    string
		Category       string
		AmountReceived decimal.Decimal
		DateReceived   Date
	}

	// ExpenseRecord is a payment made on behalf of a project.
	ExpenseRecord struct {
		ProjectCode string
		Category    string
		AmountPaid  decimal.Decimal
		DatePaid    Date
	}

	// CostRecord is a fixed or variable cost; costs are not tied to a project.
	CostRecord struct {
		Category string
		Amount   decimal.Decimal
		Date     Date
	}

	// TaxParameter names a tax and its rate as a decimal fraction in [0,1].
	TaxParameter struct {
		Name string
		Rate decimal.Decimal
	}

	// TaxRow is one computed tax breakdown for a single revenue record.
	// The ID is freshly generated on every computation run.
	TaxRow struct {
		ID            string
		ProjectCode   string
		RevenueAmount decimal.Decimal
		Amounts       map[string]decimal.Decimal
		TotalTax      decimal.Decimal
	}

	// FilterSpec narrows record sets by client, project and date range.
	// Client and ProjectCode use FilterAll (or "") for pass-through.
	FilterSpec struct {
		Client      string
		ProjectCode string
		DateStart   Date
		DateEnd     Date
	}

	// RawRow is a single worksheet row keyed by its column header.
	RawRow map[string]string

	// RawTable is an ordered sequence of raw rows, header row excluded.
	RawTable []RawRow

	// RawTables carries the five source worksheets as read from the store.
	RawTables struct {
		Projects  RawTable
		Revenues  RawTable
		Expenses  RawTable
		Costs     RawTable
		TaxParams RawTable
	}

	// Snapshot is an immutable, point-in-time view of the normalized store
	// contents. Pipeline stages derive new views from it; they never mutate it.
	Snapshot struct {
		Projects  []Project
		Revenues  []RevenueRecord
		Expenses  []ExpenseRecord
		Costs     []CostRecord
		TaxParams []TaxParameter
		LoadedAt  time.Time
	}
)

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// IsEmpty reports whether the date is missing.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// Between reports whether d falls within [start, end] inclusive.
// A missing date is never within any range.
func (d Date) Between(start, end Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(start.Time) && !d.After(end.Time)
}

// FiltersClient reports whether the client pass applies.
func (f FilterSpec) FiltersClient() bool {
	return f.Client != "" && f.Client != FilterAll
}

// FiltersProject reports whether the project pass applies.
func (f FilterSpec) FiltersProject() bool {
	return f.ProjectCode != "" && f.ProjectCode != FilterAll
}

// FiltersDate reports whether the date pass applies. An absent bound or an
// inverted range (start after end) disables the pass entirely; callers get
// the input back unchanged rather than an empty result.
func (f FilterSpec) FiltersDate() bool {
	if f.DateStart.IsZero() || f.DateEnd.IsZero() {
		return false
	}
	return !f.DateStart.After(f.DateEnd.Time)
}
