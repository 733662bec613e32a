// Package planview implements the customer record view engine: the pure
// filter -> sort -> paginate -> aggregate pipeline behind the call plan
// review and summary tables. Functions here never mutate their inputs and
// never fail; missing values degrade to empty strings and out-of-range pages
// to empty slices.
package planview

import (
	"strconv"

	"github.com/digitally-distinct/call-plan-system/models"
)

// Field identifies a sortable/filterable column. Fields are declared rather
// than looked up by ambient string indexing so that every accessor is typed
// and checked at build time.
type Field string

const (
	FieldNone Field = ""

	// Customer record fields
	FieldID             Field = "id"
	FieldName           Field = "name"
	FieldTerritory      Field = "territory"
	FieldProduct        Field = "product"
	FieldSegment        Field = "segment"
	FieldRefinedSegment Field = "refinedSegment"
	FieldCalls          Field = "calls"
	FieldRefinedCalls   Field = "refinedCalls"
	FieldReason         Field = "reasonForChange"
	FieldComments       Field = "comments"
	FieldStatus         Field = "status"
	FieldTeam           Field = "team"

	// Shared with summary rows
	FieldRepID   Field = "repId"
	FieldRepName Field = "repName"

	// Summary-only fields
	FieldNoOfCustomers        Field = "noOfCustomers"
	FieldRefinedNoOfCustomers Field = "refinedNoOfCustomers"
	FieldTotalCalls           Field = "totalCalls"
	FieldRefinedTotalCalls    Field = "refinedTotalCalls"
	FieldAvgFrequency         Field = "avgFrequency"
	FieldRefinedAvgFrequency  Field = "refinedAvgFrequency"
	FieldCoverage             Field = "coverage"
	FieldRefinedCoverage      Field = "refinedCoverage"
)

var recordAccessors = map[Field]func(*models.CustomerRecord) string{
	FieldID:             func(r *models.CustomerRecord) string { return r.ID },
	FieldName:           func(r *models.CustomerRecord) string { return r.Name },
	FieldTerritory:      func(r *models.CustomerRecord) string { return r.Territory },
	FieldProduct:        func(r *models.CustomerRecord) string { return r.Product },
	FieldSegment:        func(r *models.CustomerRecord) string { return r.Segment },
	FieldRefinedSegment: func(r *models.CustomerRecord) string { return r.RefinedSegment },
	FieldCalls:          func(r *models.CustomerRecord) string { return strconv.Itoa(r.Calls) },
	FieldRefinedCalls:   func(r *models.CustomerRecord) string { return strconv.Itoa(r.RefinedCalls) },
	FieldReason:         func(r *models.CustomerRecord) string { return r.ReasonForChange },
	FieldComments:       func(r *models.CustomerRecord) string { return r.Comments },
	FieldStatus:         func(r *models.CustomerRecord) string { return r.Status },
	FieldTeam:           func(r *models.CustomerRecord) string { return r.Team },
	FieldRepID:          func(r *models.CustomerRecord) string { return r.RepID },
	FieldRepName:        func(r *models.CustomerRecord) string { return r.RepName },
}

var summaryAccessors = map[Field]func(*SummaryRow) string{
	FieldRepID:                func(s *SummaryRow) string { return s.RepID },
	FieldRepName:              func(s *SummaryRow) string { return s.RepName },
	FieldTerritory:            func(s *SummaryRow) string { return s.Territory },
	FieldProduct:              func(s *SummaryRow) string { return s.Product },
	FieldSegment:              func(s *SummaryRow) string { return s.Segment },
	FieldNoOfCustomers:        func(s *SummaryRow) string { return strconv.Itoa(s.NoOfCustomers) },
	FieldRefinedNoOfCustomers: func(s *SummaryRow) string { return strconv.Itoa(s.RefinedNoOfCustomers) },
	FieldTotalCalls:           func(s *SummaryRow) string { return strconv.Itoa(s.TotalCalls) },
	FieldRefinedTotalCalls:    func(s *SummaryRow) string { return strconv.Itoa(s.RefinedTotalCalls) },
	FieldAvgFrequency:         func(s *SummaryRow) string { return s.AvgFrequency },
	FieldRefinedAvgFrequency:  func(s *SummaryRow) string { return s.RefinedAvgFrequency },
	FieldCoverage:             func(s *SummaryRow) string { return s.Coverage },
	FieldRefinedCoverage:      func(s *SummaryRow) string { return s.RefinedCoverage },
}

// RecordValue returns the string value of a customer record field. Unknown
// fields and nil records degrade to the empty string.
func RecordValue(r *models.CustomerRecord, f Field) string {
	if r == nil {
		return ""
	}
	if fn, ok := recordAccessors[f]; ok {
		return fn(r)
	}
	return ""
}

// SummaryValue returns the string value of a summary row field. Unknown
// fields and nil rows degrade to the empty string.
func SummaryValue(s *SummaryRow, f Field) string {
	if s == nil {
		return ""
	}
	if fn, ok := summaryAccessors[f]; ok {
		return fn(s)
	}
	return ""
}
