package dto

import (
	"github.com/digitally-distinct/call-plan-system/planview"
)

// SummaryListRequest represents the summary table query. The summary always
// aggregates the full plan; only its presentation is sorted and paged.
type SummaryListRequest struct {
	Page          int    `json:"page" validate:"omitempty,min=1" example:"1"`
	PageSize      int    `json:"page_size" validate:"omitempty,min=1,max=100" example:"10"`
	SortKey       string `json:"sort_key" validate:"omitempty,max=50" example:"repId"`
	SortDirection string `json:"sort_direction" validate:"omitempty,oneof=ascending descending" example:"ascending"`
}

// SummaryListResponse represents one page of aggregated summary rows
type SummaryListResponse struct {
	Rows       []*planview.SummaryRow `json:"rows"`
	Pagination PaginationDTO          `json:"pagination"`

	RefreshDate string `json:"refresh_date" example:"Jan 02, 2024"`
	SalesForce  string `json:"sales_force" example:"Team 1"`
	Cycle       string `json:"cycle" example:"Q1 2024"`
}
