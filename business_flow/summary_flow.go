package businessflow

import (
	"context"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/planview"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// SummaryFlow serves the aggregated summary view of a plan
type SummaryFlow interface {
	Summarize(ctx context.Context, userID uint, request *dto.SummaryListRequest) (*dto.SummaryListResponse, error)
}

// SummaryFlowImpl implements the summary business flow
type SummaryFlowImpl struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewSummaryFlow creates a new summary flow instance
func NewSummaryFlow(workspaceRepo repository.WorkspaceRepository) SummaryFlow {
	return &SummaryFlowImpl{workspaceRepo: workspaceRepo}
}

// Summarize aggregates the full plan into summary rows and returns the
// requested page. The aggregation always covers every planned record; review
// table filters never narrow the summary.
func (sf *SummaryFlowImpl) Summarize(ctx context.Context, userID uint, request *dto.SummaryListRequest) (*dto.SummaryListResponse, error) {
	page, pageSize, err := normalizePage(request.Page, request.PageSize, utils.SummaryPageSize)
	if err != nil {
		return nil, NewBusinessError("SUMMARY_FAILED", "Building plan summary failed", err)
	}

	ws, err := sf.workspaceRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, NewBusinessError("SUMMARY_FAILED", "Building plan summary failed", workspaceErr(err))
	}

	// The summary opens sorted by rep ID
	sortCfg := planview.SortConfig{
		Key:       planview.Field(request.SortKey),
		Direction: planview.Direction(request.SortDirection),
	}
	if sortCfg.Key == planview.FieldNone {
		sortCfg = planview.SortConfig{Key: planview.FieldRepID, Direction: planview.Ascending}
	}

	rows := planview.Aggregate(ws.Records)
	sorted := planview.SortSummary(rows, sortCfg)

	totalPages := planview.TotalPages(len(sorted), pageSize)
	return &dto.SummaryListResponse{
		Rows: planview.Paginate(sorted, page, pageSize),
		Pagination: dto.PaginationDTO{
			CurrentPage:  page,
			PageSize:     pageSize,
			TotalPages:   totalPages,
			TotalRecords: len(sorted),
			Markers:      planview.PageMarkers(page, totalPages),
		},
		RefreshDate: ws.RefreshDate.Format(utils.RefreshDateLayout),
		SalesForce:  ws.SalesForce,
		Cycle:       ws.Cycle,
	}, nil
}
