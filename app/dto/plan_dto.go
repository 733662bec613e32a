package dto

import (
	"github.com/digitally-distinct/call-plan-system/models"
)

// FilterClauseDTO is one column constraint of a table search
type FilterClauseDTO struct {
	Condition string `json:"condition" validate:"omitempty,oneof=equals contains" example:"contains"`
	Value     string `json:"value" validate:"max=255" example:"Territory 1"`
}

// ListRecordsRequest represents the review table query: filter, sort, and
// page selection. Zero values mean no filter, no sort, first page at the
// default page size.
type ListRecordsRequest struct {
	Page          int                        `json:"page" validate:"omitempty,min=1" example:"1"`
	PageSize      int                        `json:"page_size" validate:"omitempty,min=1,max=100" example:"20"`
	SortKey       string                     `json:"sort_key" validate:"omitempty,max=50" example:"territory"`
	SortDirection string                     `json:"sort_direction" validate:"omitempty,oneof=ascending descending" example:"ascending"`
	Filters       map[string]FilterClauseDTO `json:"filters" validate:"omitempty,max=20"`
}

// ListRecordsResponse represents one page of the review table plus the report
// header metadata.
type ListRecordsResponse struct {
	Records    []*models.CustomerRecord `json:"records"`
	Pagination PaginationDTO            `json:"pagination"`

	// HighlightedID is set when the filter matches exactly one record
	HighlightedID string `json:"highlighted_id,omitempty" example:"Customer ID7"`

	RefreshDate string `json:"refresh_date" example:"Jan 02, 2024"`
	SalesForce  string `json:"sales_force" example:"Team 1"`
	Cycle       string `json:"cycle" example:"Q1 2024"`
}

// AddRecordRequest identifies the reference row to add to the plan
type AddRecordRequest struct {
	CustomerID string `json:"customer_id" validate:"required,max=50" example:"ID1001"`
	Product    string `json:"product" validate:"required,max=50" example:"Product 1"`
}

// AddRecordResponse reports whether the row entered the plan. Added is false
// when the customer/product combination is already planned.
type AddRecordResponse struct {
	Added  bool                   `json:"added"`
	Record *models.CustomerRecord `json:"record,omitempty"`
}

// UpdateRecordRequest changes one editable field of a planned record
type UpdateRecordRequest struct {
	CustomerID string `json:"customer_id" validate:"required,max=50" example:"Customer ID7"`
	Product    string `json:"product" validate:"required,max=50" example:"Product 1"`
	Field      string `json:"field" validate:"required,max=50" example:"refinedCalls"`
	Value      string `json:"value" validate:"max=500" example:"11"`
}

// UpdateRecordResponse returns the record after the edit
type UpdateRecordResponse struct {
	Record *models.CustomerRecord `json:"record"`
}

// ToggleDeleteRequest marks a record deleted, or restores it
type ToggleDeleteRequest struct {
	CustomerID string `json:"customer_id" validate:"required,max=50" example:"Customer ID7"`
	Product    string `json:"product" validate:"required,max=50" example:"Product 1"`
}

// ToggleDeleteResponse returns the record after the status flip
type ToggleDeleteResponse struct {
	Record *models.CustomerRecord `json:"record"`
}

// SubmitPlanResponse confirms a plan submission and carries the new refresh
// date shown on the report header.
type SubmitPlanResponse struct {
	RefreshDate    string `json:"refresh_date" example:"Aug 27, 2026"`
	TotalRecords   int    `json:"total_records" example:"55"`
	UpdatedRecords int    `json:"updated_records" example:"4"`
	DeletedRecords int    `json:"deleted_records" example:"2"`
}
