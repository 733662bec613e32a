package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	businessflow "github.com/digitally-distinct/call-plan-system/business_flow"
	"github.com/digitally-distinct/call-plan-system/models"
	testingutil "github.com/digitally-distinct/call-plan-system/testing"
	"github.com/digitally-distinct/call-plan-system/utils"
)

func newPlanEnv(t *testing.T) (*testingutil.TestEnv, businessflow.PlanFlow, uint) {
	t.Helper()

	env, err := testingutil.NewTestEnv()
	require.NoError(t, err)

	user, err := env.CreateApprovedRep()
	require.NoError(t, err)

	_, err = env.SeedWorkspace(user.ID)
	require.NoError(t, err)

	flow := businessflow.NewPlanFlow(env.WorkspaceRepo, env.ReferenceRepo, env.AuditRepo)
	return env, flow, user.ID
}

func TestPlanFlowListRecords(t *testing.T) {
	_, flow, userID := newPlanEnv(t)

	t.Run("DefaultsToFirstPage", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{})
		require.NoError(t, err)

		assert.Len(t, result.Records, utils.ReviewPageSize)
		assert.Equal(t, 1, result.Pagination.CurrentPage)
		assert.Equal(t, utils.ReviewPageSize, result.Pagination.PageSize)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		assert.Equal(t, 55, result.Pagination.TotalRecords)
		assert.Equal(t, []string{"1", "2", "3"}, result.Pagination.Markers)
		assert.Equal(t, "Jan 02, 2024", result.RefreshDate)
		assert.Equal(t, "Team 1", result.SalesForce)
		assert.Equal(t, "Q1 2024", result.Cycle)
	})

	t.Run("LastPageIsPartial", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{Page: 3})
		require.NoError(t, err)
		assert.Len(t, result.Records, 15)
	})

	t.Run("PageBeyondEndIsEmpty", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{Page: 9})
		require.NoError(t, err)
		assert.Empty(t, result.Records)
	})

	t.Run("NaturalSortById", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			SortKey:       "id",
			SortDirection: "ascending",
		})
		require.NoError(t, err)

		// Numeric runs compare as numbers: ID9 sorts before ID10
		assert.Equal(t, "Customer ID1", result.Records[0].ID)
		assert.Equal(t, "Customer ID9", result.Records[8].ID)
		assert.Equal(t, "Customer ID10", result.Records[9].ID)
	})

	t.Run("DescendingSort", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			SortKey:       "id",
			SortDirection: "descending",
		})
		require.NoError(t, err)
		assert.Equal(t, "Customer ID55", result.Records[0].ID)
	})

	t.Run("ContainsFilter", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			Filters: map[string]dto.FilterClauseDTO{
				"territory": {Condition: "contains", Value: "Territory 2"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, result.Pagination.TotalRecords)
		for _, r := range result.Records {
			assert.Equal(t, "Territory 2", r.Territory)
		}
	})

	t.Run("EqualsFilterSingleMatchHighlights", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			Filters: map[string]dto.FilterClauseDTO{
				"id": {Condition: "equals", Value: "Customer ID7"},
			},
		})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "Customer ID7", result.HighlightedID)
	})

	t.Run("MultipleMatchesNoHighlight", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			Filters: map[string]dto.FilterClauseDTO{
				"product": {Condition: "equals", Value: "Product 1"},
			},
		})
		require.NoError(t, err)
		assert.Empty(t, result.HighlightedID)
		assert.Greater(t, result.Pagination.TotalRecords, 1)
	})

	t.Run("FilterIsCaseInsensitive", func(t *testing.T) {
		result, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			Filters: map[string]dto.FilterClauseDTO{
				"name": {Condition: "contains", Value: "glenn"},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Records)
		for _, r := range result.Records {
			assert.Equal(t, "Glenn Phillips", r.Name)
		}
	})

	t.Run("NoWorkspace", func(t *testing.T) {
		_, err := flow.ListRecords(context.Background(), 99999, &dto.ListRecordsRequest{})
		require.Error(t, err)
		assert.True(t, businessflow.IsWorkspaceNotFound(err))
	})
}

func TestPlanFlowAddRecord(t *testing.T) {
	_, flow, userID := newPlanEnv(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("AddFromReferenceList", func(t *testing.T) {
		result, err := flow.AddRecord(context.Background(), userID, &dto.AddRecordRequest{
			CustomerID: "ID1001",
			Product:    "Product 1",
		}, metadata)
		require.NoError(t, err)
		require.True(t, result.Added)
		require.NotNil(t, result.Record)

		assert.Equal(t, "ID1001", result.Record.ID)
		assert.Equal(t, "Barry John", result.Record.Name)
		assert.Equal(t, "Territory 1", result.Record.Territory)
		assert.Equal(t, "A", result.Record.Segment)
		assert.Empty(t, result.Record.RefinedSegment)
		assert.Zero(t, result.Record.Calls)
		assert.Zero(t, result.Record.RefinedCalls)
		assert.Equal(t, models.RecordStatusUpdated, result.Record.Status)

		// New rows carry no rep assignment until the next report refresh
		assert.Empty(t, result.Record.Team)
		assert.Empty(t, result.Record.RepID)
		assert.Empty(t, result.Record.RepName)

		// The plan now holds the new row
		list, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{})
		require.NoError(t, err)
		assert.Equal(t, 56, list.Pagination.TotalRecords)

		single, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{
			Filters: map[string]dto.FilterClauseDTO{
				"id": {Condition: "equals", Value: "ID1001"},
			},
		})
		require.NoError(t, err)
		require.Len(t, single.Records, 1)
		assert.Equal(t, "ID1001", single.HighlightedID)
	})

	t.Run("DuplicateReportsNotAdded", func(t *testing.T) {
		result, err := flow.AddRecord(context.Background(), userID, &dto.AddRecordRequest{
			CustomerID: "ID1001",
			Product:    "Product 1",
		}, metadata)
		require.NoError(t, err)
		assert.False(t, result.Added)
	})

	t.Run("UnknownReferenceRejected", func(t *testing.T) {
		_, err := flow.AddRecord(context.Background(), userID, &dto.AddRecordRequest{
			CustomerID: "ID9999",
			Product:    "Product 1",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsReferenceNotFound(err))
	})

	t.Run("KnownCustomerWrongProductRejected", func(t *testing.T) {
		// ID1001 exists in the reference list only under Product 1
		_, err := flow.AddRecord(context.Background(), userID, &dto.AddRecordRequest{
			CustomerID: "ID1001",
			Product:    "Product 5",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsReferenceNotFound(err))
	})
}

func TestPlanFlowUpdateRecord(t *testing.T) {
	_, flow, userID := newPlanEnv(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("EditRefinedCallsMarksUpdated", func(t *testing.T) {
		// Customer ID1 starts unchanged in the seed plan
		result, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "refinedCalls",
			Value:      "11",
		}, metadata)
		require.NoError(t, err)

		assert.Equal(t, 11, result.Record.RefinedCalls)
		assert.Equal(t, models.RecordStatusUpdated, result.Record.Status)
	})

	t.Run("EditDeletedRecordKeepsDeletedStatus", func(t *testing.T) {
		// Customer ID3 starts deleted in the seed plan
		result, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID3",
			Product:    "Product 1",
			Field:      "comments",
			Value:      "restored next cycle",
		}, metadata)
		require.NoError(t, err)

		assert.Equal(t, "restored next cycle", result.Record.Comments)
		assert.Equal(t, models.RecordStatusDeleted, result.Record.Status)
	})

	t.Run("EditRefinedSegment", func(t *testing.T) {
		result, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "refinedSegment",
			Value:      "B",
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, "B", result.Record.RefinedSegment)
	})

	t.Run("EditReason", func(t *testing.T) {
		result, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "reasonForChange",
			Value:      models.ReasonHighPotential,
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, models.ReasonHighPotential, result.Record.ReasonForChange)
	})

	t.Run("InvalidSegmentRejected", func(t *testing.T) {
		_, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "refinedSegment",
			Value:      "Z",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsInvalidFieldValue(err))
	})

	t.Run("NegativeCallsRejected", func(t *testing.T) {
		_, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "refinedCalls",
			Value:      "-3",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsInvalidFieldValue(err))
	})

	t.Run("NonNumericCallsRejected", func(t *testing.T) {
		_, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "refinedCalls",
			Value:      "many",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsInvalidFieldValue(err))
	})

	t.Run("BaselineFieldNotEditable", func(t *testing.T) {
		_, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
			Field:      "calls",
			Value:      "99",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsFieldNotEditable(err))
	})

	t.Run("UnknownRecordRejected", func(t *testing.T) {
		_, err := flow.UpdateRecord(context.Background(), userID, &dto.UpdateRecordRequest{
			CustomerID: "Customer ID999",
			Product:    "Product 1",
			Field:      "comments",
			Value:      "x",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsRecordNotFound(err))
	})
}

func TestPlanFlowToggleDelete(t *testing.T) {
	_, flow, userID := newPlanEnv(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("DeleteThenRestore", func(t *testing.T) {
		// Customer ID1 starts unchanged
		result, err := flow.ToggleDelete(context.Background(), userID, &dto.ToggleDeleteRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, models.RecordStatusDeleted, result.Record.Status)

		result, err = flow.ToggleDelete(context.Background(), userID, &dto.ToggleDeleteRequest{
			CustomerID: "Customer ID1",
			Product:    "Product 1",
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, models.RecordStatusUnchanged, result.Record.Status)
	})

	t.Run("RestoringSeededDeletedRecord", func(t *testing.T) {
		// Customer ID3 starts deleted
		result, err := flow.ToggleDelete(context.Background(), userID, &dto.ToggleDeleteRequest{
			CustomerID: "Customer ID3",
			Product:    "Product 1",
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, models.RecordStatusUnchanged, result.Record.Status)
	})

	t.Run("UnknownRecordRejected", func(t *testing.T) {
		_, err := flow.ToggleDelete(context.Background(), userID, &dto.ToggleDeleteRequest{
			CustomerID: "Customer ID999",
			Product:    "Product 1",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsRecordNotFound(err))
	})
}

func TestPlanFlowSubmit(t *testing.T) {
	env, flow, userID := newPlanEnv(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("SubmitStampsRefreshDate", func(t *testing.T) {
		result, err := flow.Submit(context.Background(), userID, metadata)
		require.NoError(t, err)

		assert.Equal(t, utils.UTCNow().Format(utils.RefreshDateLayout), result.RefreshDate)
		assert.Equal(t, 55, result.TotalRecords)

		// Seed statuses cycle unchanged/updated/deleted over 55 records
		assert.Equal(t, 18, result.UpdatedRecords)
		assert.Equal(t, 18, result.DeletedRecords)

		// The new refresh date shows on subsequent listings
		list, err := flow.ListRecords(context.Background(), userID, &dto.ListRecordsRequest{})
		require.NoError(t, err)
		assert.Equal(t, result.RefreshDate, list.RefreshDate)
	})

	t.Run("SubmitWritesAuditLog", func(t *testing.T) {
		logs, err := env.AuditRepo.ByUserID(context.Background(), userID)
		require.NoError(t, err)

		found := false
		for _, l := range logs {
			if l.Action == models.AuditActionPlanSubmitted {
				found = true
			}
		}
		assert.True(t, found)
	})
}
