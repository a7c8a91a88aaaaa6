package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opyta/internal/core"
)

func TestSummarizeIdentities(t *testing.T) {
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "1000.50", core.NewDate(2024, 1, 10)),
		revenue("P2", "Licença", "499.50", core.NewDate(2024, 1, 12)),
	}
	expenses := []core.ExpenseRecord{
		expense("P1", "Viagem", "320.25", core.NewDate(2024, 1, 15)),
	}
	costs := []core.CostRecord{
		{Category: "Aluguel", Amount: dec("400"), Date: core.NewDate(2024, 1, 1)},
	}

	totals := Summarize(revenues, expenses, costs)

	assert.True(t, totals.Revenue.Equal(dec("1500")))
	assert.True(t, totals.Expense.Equal(dec("320.25")))
	assert.True(t, totals.Cost.Equal(dec("400")))
	// cash_flow = revenue - expense; profit = cash_flow - cost.
	assert.True(t, totals.CashFlow.Equal(totals.Revenue.Sub(totals.Expense)))
	assert.True(t, totals.Profit.Equal(totals.CashFlow.Sub(totals.Cost)))
	assert.True(t, totals.Profit.Equal(dec("779.75")))
}

func TestSummarizeEmptyInputs(t *testing.T) {
	totals := Summarize(nil, nil, nil)

	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.Profit.IsZero())
	assert.True(t, totals.CashFlow.IsZero())
}

func TestMonthlyFlowsDenseIndex(t *testing.T) {
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "100", core.NewDate(2024, 1, 10)),
		revenue("P1", "Consultoria", "300", core.NewDate(2024, 4, 2)),
	}
	expenses := []core.ExpenseRecord{
		expense("P1", "Viagem", "80", core.NewDate(2024, 2, 5)),
	}

	flows := MonthlyFlows(revenues, expenses)

	require.Len(t, flows, 4, "every month between min and max must appear")
	assert.Equal(t, time.January, flows[0].Month)
	assert.True(t, flows[0].Revenue.Equal(dec("100")))
	assert.True(t, flows[0].Result.Equal(dec("100")))

	assert.Equal(t, time.February, flows[1].Month)
	assert.True(t, flows[1].Result.Equal(dec("-80")))

	// March has no records in either series; it is zero-filled, not omitted.
	assert.Equal(t, time.March, flows[2].Month)
	assert.True(t, flows[2].Revenue.IsZero())
	assert.True(t, flows[2].Expense.IsZero())

	assert.Equal(t, time.April, flows[3].Month)
	assert.True(t, flows[3].Revenue.Equal(dec("300")))
}

func TestMonthlyFlowsIgnoresUndatedRecords(t *testing.T) {
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "100", core.Date{}),
	}

	assert.Nil(t, MonthlyFlows(revenues, nil))
}

func TestExpenseByCategoryFirstSeenOrder(t *testing.T) {
	expenses := []core.ExpenseRecord{
		expense("P1", "Viagem", "50", core.NewDate(2024, 1, 1)),
		expense("P1", "Software", "70", core.NewDate(2024, 1, 2)),
		expense("P2", "Viagem", "30", core.NewDate(2024, 1, 3)),
	}

	totals := ExpenseByCategory(expenses)

	require.Len(t, totals, 2, "no zero fill: only categories present appear")
	assert.Equal(t, "Viagem", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(dec("80")))
	assert.Equal(t, "Software", totals[1].Category)
}

func TestTopExpenseCategories(t *testing.T) {
	expenses := []core.ExpenseRecord{
		expense("P1", "Viagem", "50", core.NewDate(2024, 1, 1)),
		expense("P1", "Software", "300", core.NewDate(2024, 1, 2)),
		expense("P1", "Alimentação", "120", core.NewDate(2024, 1, 3)),
	}

	top := TopExpenseCategories(expenses, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Software", top[0].Category)
	assert.Equal(t, "Alimentação", top[1].Category)
}

func TestLedgerPriorBalanceStrictlyBeforeCutoff(t *testing.T) {
	revenues := []core.RevenueRecord{
		revenue("P1", "Consultoria", "1000", core.NewDate(2023, 12, 20)),
		revenue("P1", "Consultoria", "600", core.NewDate(2024, 1, 10)),
	}
	expenses := []core.ExpenseRecord{
		expense("P1", "Viagem", "200", core.NewDate(2023, 11, 5)),
		expense("P1", "Viagem", "100", core.NewDate(2024, 1, 1)), // on cutoff: not prior
	}
	costs := []core.CostRecord{
		{Category: "Aluguel", Amount: dec("300"), Date: core.NewDate(2023, 12, 1)},
	}
	cutoff := core.NewDate(2024, 1, 1)
	period := core.Totals{Profit: dec("500")}

	ledger := Ledger(revenues, expenses, costs, cutoff, period)

	assert.True(t, ledger.PriorBalance.Equal(dec("500")), "1000 - 200 - 300")
	assert.True(t, ledger.CurrentBalance.Equal(dec("1000")))
}

func TestLedgerMissingCutoff(t *testing.T) {
	ledger := Ledger(nil, nil, nil, core.Date{}, core.Totals{Profit: dec("42")})

	assert.True(t, ledger.PriorBalance.IsZero())
	assert.True(t, ledger.CurrentBalance.Equal(dec("42")))
}
