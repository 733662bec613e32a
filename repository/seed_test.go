package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/digitally-distinct/call-plan-system/models"
)

func TestSeedCustomerRecords(t *testing.T) {
	records := SeedCustomerRecords()
	require.Len(t, records, 55)

	t.Run("deterministic across invocations", func(t *testing.T) {
		again := SeedCustomerRecords()
		require.Len(t, again, 55)
		for i := range records {
			assert.Equal(t, records[i], again[i])
		}
	})

	t.Run("attributes cycle by index", func(t *testing.T) {
		assert.Equal(t, "Customer ID1", records[0].ID)
		assert.Equal(t, "Customer ID55", records[54].ID)
		assert.Equal(t, "Territory 1", records[9].Territory)
		assert.Equal(t, "Territory 2", records[10].Territory)
		assert.Equal(t, "Product 1", records[0].Product)
		assert.Equal(t, "Product 2", records[1].Product)
		assert.Equal(t, "Rep ID1", records[10].RepID)
		assert.Equal(t, records[0].Name, records[20].Name)
	})

	t.Run("call counts stay in the planning range", func(t *testing.T) {
		for _, r := range records {
			assert.GreaterOrEqual(t, r.Calls, 8)
			assert.LessOrEqual(t, r.Calls, 12)
			assert.GreaterOrEqual(t, r.RefinedCalls, 8)
			assert.LessOrEqual(t, r.RefinedCalls, 12)
		}
	})

	t.Run("every status occurs", func(t *testing.T) {
		seen := map[string]int{}
		for _, r := range records {
			seen[r.Status]++
		}
		assert.Positive(t, seen[models.RecordStatusUnchanged])
		assert.Positive(t, seen[models.RecordStatusUpdated])
		assert.Positive(t, seen[models.RecordStatusDeleted])
	})
}

func TestSeedReferenceRecords(t *testing.T) {
	records := SeedReferenceRecords()
	require.Len(t, records, 95)

	assert.Equal(t, "ID1001", records[0].CustomerID)
	assert.Equal(t, "ID1095", records[94].CustomerID)
	assert.Equal(t, "Product 1", records[9].Product)
	assert.Equal(t, "Product 2", records[10].Product)
	assert.Equal(t, "Territory 1", records[19].Territory)
	assert.Equal(t, "Territory 2", records[20].Territory)
}

func TestSeedUsers(t *testing.T) {
	users := SeedUsers()
	require.Len(t, users, 4)

	byName := map[string]*models.User{}
	for _, u := range users {
		byName[u.Username] = u
	}

	require.Contains(t, byName, "rep")
	require.Contains(t, byName, "dm")
	require.Contains(t, byName, "pending")
	require.Contains(t, byName, "denied")

	assert.Equal(t, models.UserStatusApproved, byName["rep"].Status)
	assert.Equal(t, models.RoleDistrictManager, byName["dm"].Role)
	assert.Equal(t, models.UserStatusPending, byName["pending"].Status)
	assert.Equal(t, models.UserStatusDenied, byName["denied"].Status)

	err := bcrypt.CompareHashAndPassword([]byte(byName["rep"].PasswordHash), []byte("password"))
	assert.NoError(t, err)
}
