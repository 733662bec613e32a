package models

// Record lifecycle statuses. A record's status tracks its relation to the
// original baseline plan, not whether the row physically exists: "deleted"
// rows stay in the collection and still count toward summary totals.
const (
	RecordStatusUnchanged = "unchanged"
	RecordStatusUpdated   = "updated"
	RecordStatusDeleted   = "deleted"
)

// Reasons a rep may give for changing a planned call count
const (
	ReasonLimitedAccess   = "Limited Access"
	ReasonHighPotential   = "High Potential"
	ReasonNewPractice     = "New Practice"
	ReasonCompetitorBlock = "Competitor Block"
)

// Segments available for customer classification
var Segments = []string{"A", "B", "C", "D"}

// RecordKey identifies a customer record within a plan. Customer ID alone is
// not unique: the same customer appears once per product.
type RecordKey struct {
	ID      string `json:"id"`
	Product string `json:"product"`
}

// CustomerRecord is one row of a rep's call plan.
type CustomerRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Territory string `json:"territory"`
	Product   string `json:"product"`
	Segment   string `json:"segment"`

	// Refined values hold the rep's intended changes against the baseline
	RefinedSegment  string `json:"refinedSegment"`
	Calls           int    `json:"calls"`
	RefinedCalls    int    `json:"refinedCalls"`
	ReasonForChange string `json:"reasonForChange"`
	Comments        string `json:"comments"`

	Status string `json:"status"`

	// Grouping attributes used by the summary aggregation only
	Team    string `json:"team"`
	RepID   string `json:"repId"`
	RepName string `json:"repName"`
}

func (r *CustomerRecord) Key() RecordKey {
	return RecordKey{ID: r.ID, Product: r.Product}
}

func (r *CustomerRecord) IsDeleted() bool {
	return r.Status == RecordStatusDeleted
}

// Clone returns a copy of the record so derived views never alias workspace state.
func (r *CustomerRecord) Clone() *CustomerRecord {
	c := *r
	return &c
}
