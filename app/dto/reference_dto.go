package dto

import (
	"github.com/digitally-distinct/call-plan-system/models"
)

// ReferenceRowDTO is one master list row, annotated with whether the
// customer/product combination is already part of the user's plan.
type ReferenceRowDTO struct {
	models.ReferenceRecord
	InPlan bool `json:"in_plan"`
}

// ReferenceListResponse represents one page of the master customer list
type ReferenceListResponse struct {
	Records    []*ReferenceRowDTO `json:"records"`
	Pagination PaginationDTO      `json:"pagination"`
	Search     string             `json:"search,omitempty" example:"ID10"`
}

// ExportResult carries a generated spreadsheet back to the handler
type ExportResult struct {
	FileName    string `json:"file_name" example:"call-plan-review.xlsx"`
	ContentType string `json:"content_type" example:"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"`
	Content     []byte `json:"-"`
}
