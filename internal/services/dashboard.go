// Package services orchestrates the pipeline over the record store: one
// synchronous load-filter-aggregate pass per request, with the loaded
// snapshot cached for a bounded time window.
package services

import (
	"context"
	"fmt"

	"opyta/internal/cache"
	"opyta/internal/core"
	"opyta/internal/log"
	"opyta/internal/pipeline"
	"opyta/internal/sheets"
)

// TopExpenseCount is how many expense categories the overview highlights.
const TopExpenseCount = 5

// Overview is everything one dashboard view needs, computed in a single
// pass over the filtered snapshot.
type Overview struct {
	Totals            core.Totals
	Monthly           []core.MonthlyFlow
	RevenueCategories []core.CategoryTotal
	TopExpenses       []core.CategoryTotal
	Goals             []core.GoalStatus
	Ledger            core.LedgerView
}

// Records is the detailed listing view: the filtered revenue and expense
// rows themselves.
type Records struct {
	Revenues []core.RevenueRecord
	Expenses []core.ExpenseRecord
}

// DashboardService loads snapshots and runs the pipeline. The snapshot is
// cached with a TTL: every view within the window observes the same
// immutable data.
type DashboardService struct {
	reader sheets.SnapshotReader
	cache  *cache.TTLValue[core.Snapshot]
	logger *log.Logger
}

func NewDashboardService(reader sheets.SnapshotReader, snapshots *cache.TTLValue[core.Snapshot], logger *log.Logger) *DashboardService {
	return &DashboardService{
		reader: reader,
		cache:  snapshots,
		logger: logger.WithComponent(log.ComponentDashboard),
	}
}

// Load returns the current snapshot, refetching from the store when the
// cached one has expired.
func (s *DashboardService) Load(ctx context.Context) (core.Snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		return snap, nil
	}

	raw, err := s.reader.ReadSnapshot(ctx)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	snap := pipeline.Normalize(raw)
	s.cache.Set(snap)
	s.logger.InfoContext(ctx, "Snapshot refreshed",
		"projects", len(snap.Projects),
		"revenues", len(snap.Revenues),
		"expenses", len(snap.Expenses))
	return snap, nil
}

// Refresh drops the cached snapshot and loads a fresh one.
func (s *DashboardService) Refresh(ctx context.Context) (core.Snapshot, error) {
	s.cache.Invalidate()
	return s.Load(ctx)
}

// Overview runs the full filter-aggregate pass for one view.
func (s *DashboardService) Overview(ctx context.Context, spec core.FilterSpec) (Overview, error) {
	snap, err := s.Load(ctx)
	if err != nil {
		return Overview{}, err
	}

	revenues := pipeline.FilterRevenues(snap.Projects, snap.Revenues, spec)
	expenses := pipeline.FilterExpenses(snap.Projects, snap.Expenses, spec)
	costs := pipeline.FilterCosts(snap.Costs, spec)
	totals := pipeline.Summarize(revenues, expenses, costs)

	// Prior balance crosses the period's start date but stays inside the
	// same client/project selection as the period totals, so the ledger
	// inputs are filtered with the date passes disabled.
	scope := spec
	scope.DateStart, scope.DateEnd = core.Date{}, core.Date{}
	var cutoff core.Date
	if spec.FiltersDate() {
		cutoff = spec.DateStart
	}
	ledger := pipeline.Ledger(
		pipeline.FilterRevenues(snap.Projects, snap.Revenues, scope),
		pipeline.FilterExpenses(snap.Projects, snap.Expenses, scope),
		pipeline.FilterCosts(snap.Costs, scope),
		cutoff,
		totals,
	)

	return Overview{
		Totals:            totals,
		Monthly:           pipeline.MonthlyFlows(revenues, expenses),
		RevenueCategories: pipeline.RevenueByCategory(revenues),
		TopExpenses:       pipeline.TopExpenseCategories(expenses, TopExpenseCount),
		Goals:             pipeline.TrackGoals(snap.Projects, revenues),
		Ledger:            ledger,
	}, nil
}

// Records returns the filtered revenue and expense rows for the detail view.
func (s *DashboardService) Records(ctx context.Context, spec core.FilterSpec) (Records, error) {
	snap, err := s.Load(ctx)
	if err != nil {
		return Records{}, err
	}
	return Records{
		Revenues: pipeline.FilterRevenues(snap.Projects, snap.Revenues, spec),
		Expenses: pipeline.FilterExpenses(snap.Projects, snap.Expenses, spec),
	}, nil
}
