package models

// ReferenceRecord is one candidate customer/product combination from the
// master reference list. Reference data is read-only; adding a combination to
// a plan creates a new CustomerRecord, it never mutates the reference row.
type ReferenceRecord struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Segment      string `json:"segment"`
	Product      string `json:"product"`
	Territory    string `json:"territory"`
}

func (r *ReferenceRecord) Key() RecordKey {
	return RecordKey{ID: r.CustomerID, Product: r.Product}
}
