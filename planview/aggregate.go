package planview

import (
	"fmt"
	"math"
	"strconv"

	"github.com/digitally-distinct/call-plan-system/models"
)

// SummaryRow aggregates the customer records sharing one rep, territory,
// product, and segment. Frequency averages are fixed to two decimals and
// coverage is a whole percentage, both kept as strings so the summary table
// sorts them with the same natural comparator as every other column.
type SummaryRow struct {
	RepID     string `json:"repId"`
	RepName   string `json:"repName"`
	Territory string `json:"territory"`
	Product   string `json:"product"`
	Segment   string `json:"segment"`

	NoOfCustomers        int    `json:"noOfCustomers"`
	RefinedNoOfCustomers int    `json:"refinedNoOfCustomers"`
	TotalCalls           int    `json:"totalCalls"`
	RefinedTotalCalls    int    `json:"refinedTotalCalls"`
	AvgFrequency         string `json:"avgFrequency"`
	RefinedAvgFrequency  string `json:"refinedAvgFrequency"`
	Coverage             string `json:"coverage"`
	RefinedCoverage      string `json:"refinedCoverage"`

	records []*models.CustomerRecord
}

// Aggregate groups records by rep, territory, product, and segment and
// computes the summary metrics per group. Groups appear in first-seen order.
//
// Every record in a group counts toward the base population, including
// deleted ones. The refined population counts only non-deleted records, and
// refined totals skip deleted records' refined calls. Refined coverage
// currently reports the same ratio as coverage; the refined population does
// not feed it.
func Aggregate(records []*models.CustomerRecord) []*SummaryRow {
	groups := make(map[string]*SummaryRow)
	order := []*SummaryRow{}

	for _, r := range records {
		key := fmt.Sprintf("%s-%s-%s-%s", r.RepID, r.Territory, r.Product, r.Segment)
		row, ok := groups[key]
		if !ok {
			row = &SummaryRow{
				RepID:     r.RepID,
				RepName:   r.RepName,
				Territory: r.Territory,
				Product:   r.Product,
				Segment:   r.Segment,
			}
			groups[key] = row
			order = append(order, row)
		}
		row.records = append(row.records, r)
	}

	for _, row := range order {
		for _, r := range row.records {
			row.NoOfCustomers++
			row.TotalCalls += r.Calls
			if !r.IsDeleted() {
				row.RefinedNoOfCustomers++
				row.RefinedTotalCalls += r.RefinedCalls
			}
		}

		row.AvgFrequency = average(row.TotalCalls, row.NoOfCustomers)
		row.RefinedAvgFrequency = average(row.RefinedTotalCalls, row.RefinedNoOfCustomers)
		row.Coverage = coverage(row.RefinedNoOfCustomers, row.NoOfCustomers)
		row.RefinedCoverage = row.Coverage
	}

	return order
}

// average formats total/n with two decimals, or "0" for an empty population.
func average(total, n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(total)/float64(n), 'f', 2, 64)
}

// coverage formats refined/n as a rounded whole percentage.
func coverage(refined, n int) string {
	if n == 0 {
		return "0%"
	}
	pct := math.Round(float64(refined) / float64(n) * 100)
	return fmt.Sprintf("%.0f%%", pct)
}
