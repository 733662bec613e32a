package businessflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/planview"
	"github.com/digitally-distinct/call-plan-system/repository"
)

// Export views
const (
	ExportViewReview  = "review"
	ExportViewSummary = "summary"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFlow generates spreadsheet downloads of a plan
type ExportFlow interface {
	Export(ctx context.Context, userID uint, view string, metadata *ClientMetadata) (*dto.ExportResult, error)
}

// ExportFlowImpl implements the export business flow
type ExportFlowImpl struct {
	workspaceRepo repository.WorkspaceRepository
	auditRepo     repository.AuditLogRepository
}

// NewExportFlow creates a new export flow instance
func NewExportFlow(
	workspaceRepo repository.WorkspaceRepository,
	auditRepo repository.AuditLogRepository,
) ExportFlow {
	return &ExportFlowImpl{
		workspaceRepo: workspaceRepo,
		auditRepo:     auditRepo,
	}
}

// Export renders the requested view of the user's plan as an xlsx workbook.
// The review view exports every record unfiltered; the summary view exports
// the aggregated rows.
func (ef *ExportFlowImpl) Export(ctx context.Context, userID uint, view string, metadata *ClientMetadata) (*dto.ExportResult, error) {
	ws, err := ef.workspaceRepo.ByUserID(ctx, userID)
	if err != nil {
		return nil, NewBusinessError("PLAN_EXPORT_FAILED", "Exporting plan failed", workspaceErr(err))
	}

	var filename string
	var content []byte
	switch view {
	case ExportViewReview:
		filename = "call-plan-review.xlsx"
		content, err = buildReviewWorkbook(ws.Records)
	case ExportViewSummary:
		filename = "call-plan-summary.xlsx"
		content, err = buildSummaryWorkbook(planview.Aggregate(ws.Records))
	default:
		return nil, NewBusinessError("PLAN_EXPORT_FAILED", "Exporting plan failed", ErrUnknownExportView)
	}
	if err != nil {
		return nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	msg := fmt.Sprintf("Plan exported: %s view, %d records", view, len(ws.Records))
	_ = ef.auditRepo.Save(ctx, auditEntry(&userID, models.AuditActionPlanExported, msg, true, nil, metadata))

	return &dto.ExportResult{
		FileName:    filename,
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func buildReviewWorkbook(records []*models.CustomerRecord) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Call Plan"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{
		"Customer ID", "Customer Name", "Territory", "Product", "Segment",
		"Refined Segment", "Calls", "Refined Calls", "Reason For Change",
		"Comments", "Status", "Team", "Rep ID", "Rep Name",
	}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, r := range records {
		row := []string{
			r.ID,
			r.Name,
			r.Territory,
			r.Product,
			r.Segment,
			r.RefinedSegment,
			strconv.Itoa(r.Calls),
			strconv.Itoa(r.RefinedCalls),
			r.ReasonForChange,
			r.Comments,
			r.Status,
			r.Team,
			r.RepID,
			r.RepName,
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &row)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildSummaryWorkbook(rows []*planview.SummaryRow) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Summary"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{
		"Rep ID", "Rep Name", "Territory", "Product", "Segment",
		"No Of Customers", "Refined No Of Customers", "Total Calls",
		"Refined Total Calls", "Avg Frequency", "Refined Avg Frequency",
		"Coverage", "Refined Coverage",
	}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, s := range rows {
		row := []string{
			s.RepID,
			s.RepName,
			s.Territory,
			s.Product,
			s.Segment,
			strconv.Itoa(s.NoOfCustomers),
			strconv.Itoa(s.RefinedNoOfCustomers),
			strconv.Itoa(s.TotalCalls),
			strconv.Itoa(s.RefinedTotalCalls),
			s.AvgFrequency,
			s.RefinedAvgFrequency,
			s.Coverage,
			s.RefinedCoverage,
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &row)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
