package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal status classification. Binary on purpose: the dashboard renders the
// two states as two colors.
const (
	GoalOnTarget    = "on-target"
	GoalBelowTarget = "below-target"
)

type (
	// Totals is the headline summary over a filtered record set.
	Totals struct {
		Revenue  decimal.Decimal
		Expense  decimal.Decimal
		Cost     decimal.Decimal
		Profit   decimal.Decimal
		CashFlow decimal.Decimal
	}

	// MonthlyFlow is the revenue/expense movement of one calendar month.
	MonthlyFlow struct {
		Year    int
		Month   time.Month
		Revenue decimal.Decimal
		Expense decimal.Decimal
		Result  decimal.Decimal
	}

	// CategoryTotal is an amount aggregated by category name.
	CategoryTotal struct {
		Category string
		Total    decimal.Decimal
	}

	// LedgerView is the opening-balance-plus-period-delta view: the net
	// position accumulated strictly before the period start, and that
	// position carried forward by the period's profit.
	LedgerView struct {
		PriorBalance   decimal.Decimal
		CurrentBalance decimal.Decimal
	}

	// GoalStatus is the achievement of one project against its revenue target.
	GoalStatus struct {
		ProjectCode string
		Target      decimal.Decimal
		Achieved    decimal.Decimal
		Percent     decimal.Decimal
		Status      string
	}
)
