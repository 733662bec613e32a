package businessflow

import (
	"context"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/planview"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// ReferenceFlow serves the master customer list used to extend a plan
type ReferenceFlow interface {
	List(ctx context.Context, userID uint, search string, page, pageSize int) (*dto.ReferenceListResponse, error)
}

// ReferenceFlowImpl implements the reference list business flow
type ReferenceFlowImpl struct {
	referenceRepo repository.ReferenceRepository
	workspaceRepo repository.WorkspaceRepository
}

// NewReferenceFlow creates a new reference flow instance
func NewReferenceFlow(
	referenceRepo repository.ReferenceRepository,
	workspaceRepo repository.WorkspaceRepository,
) ReferenceFlow {
	return &ReferenceFlowImpl{
		referenceRepo: referenceRepo,
		workspaceRepo: workspaceRepo,
	}
}

// List returns one page of the reference list, optionally narrowed by a
// customer ID or name search. Rows already planned are flagged so the client
// can disable their add action.
func (rf *ReferenceFlowImpl) List(ctx context.Context, userID uint, search string, page, pageSize int) (*dto.ReferenceListResponse, error) {
	page, pageSize, err := normalizePage(page, pageSize, utils.ReferencePageSize)
	if err != nil {
		return nil, NewBusinessError("REFERENCE_LIST_FAILED", "Listing reference records failed", err)
	}

	ws, err := rf.workspaceRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, NewBusinessError("REFERENCE_LIST_FAILED", "Listing reference records failed", workspaceErr(err))
	}

	matches, err := rf.referenceRepo.Search(ctx, search)
	if err != nil {
		return nil, NewBusinessError("REFERENCE_LIST_FAILED", "Listing reference records failed", err)
	}

	planned := make(map[models.RecordKey]bool, len(ws.Records))
	for _, rec := range ws.Records {
		planned[rec.Key()] = true
	}

	rows := make([]*dto.ReferenceRowDTO, 0, len(matches))
	for _, ref := range matches {
		rows = append(rows, &dto.ReferenceRowDTO{
			ReferenceRecord: *ref,
			InPlan:          planned[ref.Key()],
		})
	}

	totalPages := planview.TotalPages(len(rows), pageSize)
	return &dto.ReferenceListResponse{
		Records: planview.Paginate(rows, page, pageSize),
		Pagination: dto.PaginationDTO{
			CurrentPage:  page,
			PageSize:     pageSize,
			TotalPages:   totalPages,
			TotalRecords: len(rows),
			Markers:      planview.PageMarkers(page, totalPages),
		},
		Search: search,
	}, nil
}
