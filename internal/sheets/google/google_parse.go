package google

import (
	"fmt"
	"strings"

	"opyta/internal/core"
)

// valuesToTable converts a values matrix (as returned by the Sheets API)
// into ordered string-keyed rows. The first row is the header; short rows
// are padded with empty fields and fully blank rows are skipped, matching
// how the dashboard always consumed worksheet records.
func valuesToTable(values [][]interface{}) core.RawTable {
	if len(values) < 2 {
		return nil
	}
	headers := toStrings(values[0])

	var out core.RawTable
	for _, raw := range values[1:] {
		cells := toStrings(raw)
		row := make(core.RawRow, len(headers))
		blank := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			v := safeGet(cells, i)
			if v != "" {
				blank = false
			}
			row[h] = v
		}
		if blank {
			continue
		}
		out = append(out, row)
	}
	return out
}

// taxTableValues lays the computed rows out as a values matrix: a header
// row, then one row per computation with one column per tax name in
// parameter order.
func taxTableValues(params []core.TaxParameter, rows []core.TaxRow) [][]interface{} {
	header := []interface{}{"ID", core.ColRecordProject, core.ColAmountReceived}
	for _, p := range params {
		header = append(header, p.Name)
	}
	header = append(header, "Total Impostos")

	values := [][]interface{}{header}
	for _, row := range rows {
		cells := []interface{}{row.ID, row.ProjectCode, row.RevenueAmount.String()}
		for _, p := range params {
			cells = append(cells, row.Amounts[p.Name].String())
		}
		cells = append(cells, row.TotalTax.String())
		values = append(values, cells)
	}
	return values
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
