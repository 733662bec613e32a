package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	businessflow "github.com/digitally-distinct/call-plan-system/business_flow"
)

// PlanHandlerInterface defines the contract for call plan handlers
type PlanHandlerInterface interface {
	ListRecords(c fiber.Ctx) error
	AddRecord(c fiber.Ctx) error
	UpdateRecord(c fiber.Ctx) error
	ToggleDelete(c fiber.Ctx) error
	Submit(c fiber.Ctx) error
	Summary(c fiber.Ctx) error
	Reference(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

// PlanHandler handles call plan HTTP requests
type PlanHandler struct {
	planFlow      businessflow.PlanFlow
	summaryFlow   businessflow.SummaryFlow
	referenceFlow businessflow.ReferenceFlow
	exportFlow    businessflow.ExportFlow
	validator     *validator.Validate
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(
	planFlow businessflow.PlanFlow,
	summaryFlow businessflow.SummaryFlow,
	referenceFlow businessflow.ReferenceFlow,
	exportFlow businessflow.ExportFlow,
) *PlanHandler {
	return &PlanHandler{
		planFlow:      planFlow,
		summaryFlow:   summaryFlow,
		referenceFlow: referenceFlow,
		exportFlow:    exportFlow,
		validator:     validator.New(),
	}
}

func (h *PlanHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *PlanHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (h *PlanHandler) clientMetadata(c fiber.Ctx) *businessflow.ClientMetadata {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get("X-Request-ID"))
	return metadata
}

// ListRecords serves one page of the review table
// @Summary List Plan Records
// @Description Filter, sort, and page the call plan review table
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListRecordsRequest true "Table query"
// @Success 200 {object} dto.APIResponse{data=dto.ListRecordsResponse} "Records listed"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "No active workspace"
// @Router /plan/records/list [post]
func (h *PlanHandler) ListRecords(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	var req dto.ListRecordsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	result, err := h.planFlow.ListRecords(createRequestContext(c, "/api/v1/plan/records/list"), userID, &req)
	if err != nil {
		return h.planError(c, err, "Listing plan records failed", "PLAN_LIST_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Plan records listed", result)
}

// AddRecord plans a customer from the reference list
// @Summary Add Plan Record
// @Description Add a reference customer/product combination to the plan
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddRecordRequest true "Customer and product to add"
// @Success 200 {object} dto.APIResponse{data=dto.AddRecordResponse} "Add processed"
// @Failure 404 {object} dto.APIResponse "Not in reference list"
// @Router /plan/records [post]
func (h *PlanHandler) AddRecord(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	var req dto.AddRecordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	result, err := h.planFlow.AddRecord(createRequestContext(c, "/api/v1/plan/records"), userID, &req, h.clientMetadata(c))
	if err != nil {
		if businessflow.IsReferenceNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer is not in the reference list", "REFERENCE_NOT_FOUND", nil)
		}
		return h.planError(c, err, "Adding plan record failed", "PLAN_ADD_FAILED")
	}

	message := "Record added to plan"
	if !result.Added {
		message = "Record is already in the plan"
	}
	return h.SuccessResponse(c, fiber.StatusOK, message, result)
}

// UpdateRecord edits one field of a planned record
// @Summary Update Plan Record
// @Description Change an editable field of a planned record
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateRecordRequest true "Field edit"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateRecordResponse} "Record updated"
// @Failure 400 {object} dto.APIResponse "Field not editable or invalid value"
// @Failure 404 {object} dto.APIResponse "Record not found"
// @Router /plan/records [patch]
func (h *PlanHandler) UpdateRecord(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	var req dto.UpdateRecordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	result, err := h.planFlow.UpdateRecord(createRequestContext(c, "/api/v1/plan/records"), userID, &req, h.clientMetadata(c))
	if err != nil {
		if businessflow.IsFieldNotEditable(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Field is not editable", "FIELD_NOT_EDITABLE", nil)
		}
		if businessflow.IsInvalidFieldValue(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid field value", "INVALID_FIELD_VALUE", nil)
		}
		if businessflow.IsRecordNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Record not found", "RECORD_NOT_FOUND", nil)
		}
		return h.planError(c, err, "Updating plan record failed", "PLAN_UPDATE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Record updated", result)
}

// ToggleDelete flips a record between deleted and unchanged
// @Summary Toggle Record Deletion
// @Description Mark a planned record deleted, or restore it
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ToggleDeleteRequest true "Record to toggle"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleDeleteResponse} "Record toggled"
// @Failure 404 {object} dto.APIResponse "Record not found"
// @Router /plan/records/toggle-delete [post]
func (h *PlanHandler) ToggleDelete(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	var req dto.ToggleDeleteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	result, err := h.planFlow.ToggleDelete(createRequestContext(c, "/api/v1/plan/records/toggle-delete"), userID, &req, h.clientMetadata(c))
	if err != nil {
		if businessflow.IsRecordNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Record not found", "RECORD_NOT_FOUND", nil)
		}
		return h.planError(c, err, "Toggling plan record failed", "PLAN_DELETE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Record delete toggled", result)
}

// Submit finalizes the current review round
// @Summary Submit Plan
// @Description Finalize the review and stamp a new refresh date
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SubmitPlanResponse} "Plan submitted"
// @Router /plan/submit [post]
func (h *PlanHandler) Submit(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	result, err := h.planFlow.Submit(createRequestContext(c, "/api/v1/plan/submit"), userID, h.clientMetadata(c))
	if err != nil {
		return h.planError(c, err, "Submitting plan failed", "PLAN_SUBMIT_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Plan submitted successfully!", result)
}

// Summary serves one page of the aggregated summary table
// @Summary Plan Summary
// @Description Aggregate the full plan and page the summary rows
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SummaryListRequest true "Summary query"
// @Success 200 {object} dto.APIResponse{data=dto.SummaryListResponse} "Summary listed"
// @Router /plan/summary/list [post]
func (h *PlanHandler) Summary(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	var req dto.SummaryListRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	result, err := h.summaryFlow.Summarize(createRequestContext(c, "/api/v1/plan/summary/list"), userID, &req)
	if err != nil {
		return h.planError(c, err, "Building plan summary failed", "SUMMARY_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Plan summary listed", result)
}

// Reference serves the master customer list
// @Summary Reference List
// @Description Search and page the master customer list
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param search query string false "Customer ID or name substring"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} dto.APIResponse{data=dto.ReferenceListResponse} "Reference listed"
// @Router /plan/reference [get]
func (h *PlanHandler) Reference(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	search := c.Query("search")
	page := queryInt(c, "page")
	pageSize := queryInt(c, "page_size")

	result, err := h.referenceFlow.List(createRequestContext(c, "/api/v1/plan/reference"), userID, search, page, pageSize)
	if err != nil {
		return h.planError(c, err, "Listing reference records failed", "REFERENCE_LIST_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Reference records listed", result)
}

// Export downloads the plan as a spreadsheet
// @Summary Export Plan
// @Description Download the review or summary view as an xlsx workbook
// @Tags Plan
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param view query string false "Export view: review or summary" default(review)
// @Success 200 {file} binary "Workbook"
// @Failure 400 {object} dto.APIResponse "Unknown export view"
// @Router /plan/export [get]
func (h *PlanHandler) Export(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	view := c.Query("view")
	if view == "" {
		view = businessflow.ExportViewReview
	}

	result, err := h.exportFlow.Export(createRequestContext(c, "/api/v1/plan/export"), userID, view, h.clientMetadata(c))
	if err != nil {
		if businessflow.IsWorkspaceNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "No active plan workspace", "WORKSPACE_NOT_FOUND", nil)
		}

		log.Println("Export failed", err)
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Exporting plan failed", "PLAN_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", result.ContentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	return c.Send(result.Content)
}

// planError maps the shared plan flow failures onto HTTP responses
func (h *PlanHandler) planError(c fiber.Ctx, err error, message, code string) error {
	if businessflow.IsWorkspaceNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusNotFound, "No active plan workspace", "WORKSPACE_NOT_FOUND", nil)
	}
	if businessflow.IsInvalidPagination(err) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page selection", "INVALID_PAGINATION", nil)
	}

	log.Println(message, err)
	return h.ErrorResponse(c, fiber.StatusInternalServerError, message, code, nil)
}

func queryInt(c fiber.Ctx, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
