package businessflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/planview"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// PlanFlow handles the call plan review table: listing, row edits, and plan
// submission.
type PlanFlow interface {
	ListRecords(ctx context.Context, userID uint, request *dto.ListRecordsRequest) (*dto.ListRecordsResponse, error)
	AddRecord(ctx context.Context, userID uint, request *dto.AddRecordRequest, metadata *ClientMetadata) (*dto.AddRecordResponse, error)
	UpdateRecord(ctx context.Context, userID uint, request *dto.UpdateRecordRequest, metadata *ClientMetadata) (*dto.UpdateRecordResponse, error)
	ToggleDelete(ctx context.Context, userID uint, request *dto.ToggleDeleteRequest, metadata *ClientMetadata) (*dto.ToggleDeleteResponse, error)
	Submit(ctx context.Context, userID uint, metadata *ClientMetadata) (*dto.SubmitPlanResponse, error)
}

// PlanFlowImpl implements the plan review business flow
type PlanFlowImpl struct {
	workspaceRepo repository.WorkspaceRepository
	referenceRepo repository.ReferenceRepository
	auditRepo     repository.AuditLogRepository
}

// NewPlanFlow creates a new plan flow instance
func NewPlanFlow(
	workspaceRepo repository.WorkspaceRepository,
	referenceRepo repository.ReferenceRepository,
	auditRepo repository.AuditLogRepository,
) PlanFlow {
	return &PlanFlowImpl{
		workspaceRepo: workspaceRepo,
		referenceRepo: referenceRepo,
		auditRepo:     auditRepo,
	}
}

// editableFields maps each editable column to its setter. Everything else on
// a record is baseline report data and stays read-only.
var editableFields = map[planview.Field]func(*models.CustomerRecord, string) error{
	planview.FieldRefinedSegment: setRefinedSegment,
	planview.FieldRefinedCalls:   setRefinedCalls,
	planview.FieldReason:         setReason,
	planview.FieldComments: func(r *models.CustomerRecord, value string) error {
		r.Comments = value
		return nil
	},
}

func setRefinedSegment(r *models.CustomerRecord, value string) error {
	if value != "" && !contains(models.Segments, value) {
		return ErrInvalidFieldValue
	}
	r.RefinedSegment = value
	return nil
}

func setRefinedCalls(r *models.CustomerRecord, value string) error {
	calls, err := strconv.Atoi(value)
	if err != nil || calls < 0 {
		return ErrInvalidCallCount
	}
	r.RefinedCalls = calls
	return nil
}

func setReason(r *models.CustomerRecord, value string) error {
	valid := []string{
		models.ReasonLimitedAccess,
		models.ReasonHighPotential,
		models.ReasonNewPractice,
		models.ReasonCompetitorBlock,
	}
	if value != "" && !contains(valid, value) {
		return ErrInvalidFieldValue
	}
	r.ReasonForChange = value
	return nil
}

func contains(values []string, v string) bool {
	for _, c := range values {
		if c == v {
			return true
		}
	}
	return false
}

// ListRecords runs the review table pipeline over the user's workspace:
// filter, sort, then page. When the filter narrows the plan down to exactly
// one record its ID is returned so the table can highlight the row.
func (pf *PlanFlowImpl) ListRecords(ctx context.Context, userID uint, request *dto.ListRecordsRequest) (*dto.ListRecordsResponse, error) {
	page, pageSize, err := normalizePage(request.Page, request.PageSize, utils.ReviewPageSize)
	if err != nil {
		return nil, NewBusinessError("PLAN_LIST_FAILED", "Listing plan records failed", err)
	}

	ws, err := pf.workspaceRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, NewBusinessError("PLAN_LIST_FAILED", "Listing plan records failed", workspaceErr(err))
	}

	criteria := toCriteria(request.Filters)
	filtered := planview.FilterRecords(ws.Records, criteria)

	highlightedID := ""
	if len(filtered) == 1 {
		highlightedID = filtered[0].ID
	}

	// The review table opens sorted by customer name
	sortCfg := planview.SortConfig{
		Key:       planview.Field(request.SortKey),
		Direction: planview.Direction(request.SortDirection),
	}
	if sortCfg.Key == planview.FieldNone {
		sortCfg = planview.SortConfig{Key: planview.FieldName, Direction: planview.Ascending}
	}
	sorted := planview.SortRecords(filtered, sortCfg)

	totalPages := planview.TotalPages(len(sorted), pageSize)
	return &dto.ListRecordsResponse{
		Records: planview.Paginate(sorted, page, pageSize),
		Pagination: dto.PaginationDTO{
			CurrentPage:  page,
			PageSize:     pageSize,
			TotalPages:   totalPages,
			TotalRecords: len(sorted),
			Markers:      planview.PageMarkers(page, totalPages),
		},
		HighlightedID: highlightedID,
		RefreshDate:   ws.RefreshDate.Format(utils.RefreshDateLayout),
		SalesForce:    ws.SalesForce,
		Cycle:         ws.Cycle,
	}, nil
}

// AddRecord plans a customer/product combination from the reference list.
// The new record starts with zero calls and counts as updated. Adding a
// combination that is already planned is not an error; it just reports
// Added=false.
func (pf *PlanFlowImpl) AddRecord(ctx context.Context, userID uint, request *dto.AddRecordRequest, metadata *ClientMetadata) (*dto.AddRecordResponse, error) {
	key := models.RecordKey{ID: request.CustomerID, Product: request.Product}

	ref, err := pf.referenceRepo.ByKey(ctx, key)
	if err != nil {
		return nil, NewBusinessError("PLAN_ADD_FAILED", "Adding plan record failed", err)
	}
	if ref == nil {
		return nil, NewBusinessError("PLAN_ADD_FAILED", "Adding plan record failed", ErrReferenceNotFound)
	}

	var added bool
	var record *models.CustomerRecord
	err = pf.workspaceRepo.Apply(ctx, userID, func(ws *models.PlanWorkspace) error {
		if ws.HasRecord(key) {
			return nil
		}
		rec := &models.CustomerRecord{
			ID:        ref.CustomerID,
			Name:      ref.CustomerName,
			Territory: ref.Territory,
			Product:   ref.Product,
			Segment:   ref.Segment,
			Status:    models.RecordStatusUpdated,
		}
		// New rows go on top so they are visible on the first page
		ws.Records = append([]*models.CustomerRecord{rec}, ws.Records...)
		added = true
		record = rec.Clone()
		return nil
	})
	if err != nil {
		return nil, NewBusinessError("PLAN_ADD_FAILED", "Adding plan record failed", workspaceErr(err))
	}

	if added {
		msg := fmt.Sprintf("Record added to plan: %s / %s", key.ID, key.Product)
		pf.logPlanAction(ctx, userID, models.AuditActionRecordAdded, msg, metadata)
	}

	return &dto.AddRecordResponse{Added: added, Record: record}, nil
}

// UpdateRecord changes one editable field of a planned record. An unchanged
// record becomes updated; updated and deleted records keep their status.
func (pf *PlanFlowImpl) UpdateRecord(ctx context.Context, userID uint, request *dto.UpdateRecordRequest, metadata *ClientMetadata) (*dto.UpdateRecordResponse, error) {
	setter, ok := editableFields[planview.Field(request.Field)]
	if !ok {
		return nil, NewBusinessError("PLAN_UPDATE_FAILED", "Updating plan record failed", ErrFieldNotEditable)
	}

	key := models.RecordKey{ID: request.CustomerID, Product: request.Product}

	var record *models.CustomerRecord
	err := pf.workspaceRepo.Apply(ctx, userID, func(ws *models.PlanWorkspace) error {
		rec := ws.FindRecord(key)
		if rec == nil {
			return ErrRecordNotFound
		}
		if err := setter(rec, request.Value); err != nil {
			return err
		}
		if rec.Status == models.RecordStatusUnchanged {
			rec.Status = models.RecordStatusUpdated
		}
		record = rec.Clone()
		return nil
	})
	if err != nil {
		return nil, NewBusinessError("PLAN_UPDATE_FAILED", "Updating plan record failed", workspaceErr(err))
	}

	msg := fmt.Sprintf("Record updated: %s / %s (%s)", key.ID, key.Product, request.Field)
	pf.logPlanAction(ctx, userID, models.AuditActionRecordUpdated, msg, metadata)

	return &dto.UpdateRecordResponse{Record: record}, nil
}

// ToggleDelete flips a record between deleted and unchanged. Restoring a
// deleted record always lands on unchanged, even if it had edits before the
// delete.
func (pf *PlanFlowImpl) ToggleDelete(ctx context.Context, userID uint, request *dto.ToggleDeleteRequest, metadata *ClientMetadata) (*dto.ToggleDeleteResponse, error) {
	key := models.RecordKey{ID: request.CustomerID, Product: request.Product}

	var record *models.CustomerRecord
	err := pf.workspaceRepo.Apply(ctx, userID, func(ws *models.PlanWorkspace) error {
		rec := ws.FindRecord(key)
		if rec == nil {
			return ErrRecordNotFound
		}
		if rec.Status == models.RecordStatusDeleted {
			rec.Status = models.RecordStatusUnchanged
		} else {
			rec.Status = models.RecordStatusDeleted
		}
		record = rec.Clone()
		return nil
	})
	if err != nil {
		return nil, NewBusinessError("PLAN_DELETE_FAILED", "Toggling plan record failed", workspaceErr(err))
	}

	msg := fmt.Sprintf("Record delete toggled: %s / %s -> %s", key.ID, key.Product, record.Status)
	pf.logPlanAction(ctx, userID, models.AuditActionRecordToggled, msg, metadata)

	return &dto.ToggleDeleteResponse{Record: record}, nil
}

// Submit finalizes the current review round and stamps a new refresh date on
// the report header.
func (pf *PlanFlowImpl) Submit(ctx context.Context, userID uint, metadata *ClientMetadata) (*dto.SubmitPlanResponse, error) {
	var resp dto.SubmitPlanResponse
	err := pf.workspaceRepo.Apply(ctx, userID, func(ws *models.PlanWorkspace) error {
		ws.RefreshDate = utils.UTCNow()

		resp.RefreshDate = ws.RefreshDate.Format(utils.RefreshDateLayout)
		resp.TotalRecords = len(ws.Records)
		for _, rec := range ws.Records {
			switch rec.Status {
			case models.RecordStatusUpdated:
				resp.UpdatedRecords++
			case models.RecordStatusDeleted:
				resp.DeletedRecords++
			}
		}
		return nil
	})
	if err != nil {
		return nil, NewBusinessError("PLAN_SUBMIT_FAILED", "Submitting plan failed", workspaceErr(err))
	}

	msg := fmt.Sprintf("Plan submitted: %d records, %d updated, %d deleted",
		resp.TotalRecords, resp.UpdatedRecords, resp.DeletedRecords)
	pf.logPlanAction(ctx, userID, models.AuditActionPlanSubmitted, msg, metadata)

	return &resp, nil
}

func (pf *PlanFlowImpl) logPlanAction(ctx context.Context, userID uint, action, description string, metadata *ClientMetadata) {
	_ = pf.auditRepo.Save(ctx, auditEntry(&userID, action, description, true, nil, metadata))
}

// normalizePage applies defaults and validates page selection
func normalizePage(page, pageSize, defaultSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultSize
	}
	if page < 1 {
		return 0, 0, ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return 0, 0, ErrInvalidPageSize
	}
	return page, pageSize, nil
}

// toCriteria converts request filters into the view engine's criteria
func toCriteria(filters map[string]dto.FilterClauseDTO) planview.Criteria {
	if len(filters) == 0 {
		return nil
	}
	criteria := make(planview.Criteria, len(filters))
	for field, clause := range filters {
		criteria[planview.Field(field)] = planview.Clause{
			Condition: planview.Condition(clause.Condition),
			Value:     clause.Value,
		}
	}
	return criteria
}
