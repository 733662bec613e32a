package dto

// APIResponse represents the standard API response structure
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty" validate:"omitempty"`
	Error   any    `json:"error,omitempty" validate:"omitempty"`
}

// ErrorDetail represents error details in API responses
type ErrorDetail struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty" validate:"omitempty"`
}

// PaginationDTO describes one page of a table view, including the marker
// sequence the pagination control renders ("1", "...", "7").
type PaginationDTO struct {
	CurrentPage  int      `json:"current_page" example:"1"`
	PageSize     int      `json:"page_size" example:"20"`
	TotalPages   int      `json:"total_pages" example:"3"`
	TotalRecords int      `json:"total_records" example:"55"`
	Markers      []string `json:"markers"`
}
