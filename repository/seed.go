package repository

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// Mock dataset dimensions
const (
	seedCustomerCount  = 55
	seedReferenceCount = 95
	seedRandSource     = 1
)

// SeedRefreshDate is the report refresh date stamped on every fresh workspace.
var SeedRefreshDate = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

const (
	SeedSalesForce = "Team 1"
	SeedCycle      = "Q1 2024"
)

var seedCustomerNames = []string{
	"Steven Fleming",
	"Glenn Phillips",
	"Andrew Jackson",
	"Garry Ferguson",
	"John Hopkins",
	"Matthew Harold",
	"P. Langford",
	"Nathan Lyonn",
	"Ross Taylor",
	"Ricky Martin",
	"Sarah Connor",
	"John Doe",
	"Jane Smith",
	"Peter Jones",
	"Mary Williams",
	"David Brown",
	"Susan Miller",
	"Michael Davis",
	"Linda Wilson",
	"James Johnson",
}

var seedRepNames = []string{
	"Steven Fleming",
	"Glenn Phillips",
	"Andrew Jackson",
	"Garry Ferguson",
	"John Hopkins",
	"Matthew Harold",
	"P. Langford",
	"Nathan Lyonn",
	"Ross Taylor",
	"Ricky Martin",
}

var seedReferenceNames = []string{
	"Barry John",
	"Glenn Phillips",
	"Andrew Jackson",
	"John Hopkins",
	"Matthew Harold",
	"P. Langford",
	"Nathan Lyonn",
	"Ricky Martin",
}

var seedReasons = []string{
	models.ReasonLimitedAccess,
	models.ReasonHighPotential,
	models.ReasonNewPractice,
	models.ReasonCompetitorBlock,
}

var seedStatuses = []string{
	models.RecordStatusUnchanged,
	models.RecordStatusUpdated,
	models.RecordStatusDeleted,
}

var seedRefinedSegments = []string{"A", "B", "C", "D", ""}

// SeedCustomerRecords generates the mock call plan every fresh workspace
// starts from. The generator is deterministic: record attributes cycle by
// index and call counts come from a fixed-seed source, so two workspaces
// seeded at different times hold identical data.
func SeedCustomerRecords() []*models.CustomerRecord {
	rng := rand.New(rand.NewSource(seedRandSource))

	records := make([]*models.CustomerRecord, 0, seedCustomerCount)
	for i := 0; i < seedCustomerCount; i++ {
		records = append(records, &models.CustomerRecord{
			ID:              fmt.Sprintf("Customer ID%d", i+1),
			Name:            seedCustomerNames[i%len(seedCustomerNames)],
			Territory:       fmt.Sprintf("Territory %d", i/10+1),
			Product:         fmt.Sprintf("Product %d", i%2+1),
			Segment:         models.Segments[i%len(models.Segments)],
			RefinedSegment:  seedRefinedSegments[i%len(seedRefinedSegments)],
			Calls:           rng.Intn(5) + 8,
			RefinedCalls:    rng.Intn(5) + 8,
			ReasonForChange: seedReasons[i%len(seedReasons)],
			Comments:        "",
			Status:          seedStatuses[i%len(seedStatuses)],
			Team:            fmt.Sprintf("Team %d", i%2+1),
			RepID:           fmt.Sprintf("Rep ID%d", i%10+1),
			RepName:         seedRepNames[i%len(seedRepNames)],
		})
	}
	return records
}

// SeedReferenceRecords generates the master reference list of customer and
// product combinations available for adding to a plan.
func SeedReferenceRecords() []*models.ReferenceRecord {
	records := make([]*models.ReferenceRecord, 0, seedReferenceCount)
	for i := 0; i < seedReferenceCount; i++ {
		records = append(records, &models.ReferenceRecord{
			CustomerID:   fmt.Sprintf("ID%d", 1001+i),
			CustomerName: seedReferenceNames[i%len(seedReferenceNames)],
			Segment:      models.Segments[i%len(models.Segments)],
			Product:      fmt.Sprintf("Product %d", i/10+1),
			Territory:    fmt.Sprintf("Territory %d", i/20+1),
		})
	}
	return records
}

// SeedUsers generates the built-in demo accounts. All of them authenticate
// with the password "password".
func SeedUsers() []*models.User {
	now := utils.UTCNow()
	hash := mustHashPassword("password")

	accounts := []struct {
		username string
		role     string
		status   string
	}{
		{"rep", models.RoleSalesRep, models.UserStatusApproved},
		{"dm", models.RoleDistrictManager, models.UserStatusApproved},
		{"pending", models.RoleSalesRep, models.UserStatusPending},
		{"denied", models.RoleSalesRep, models.UserStatusDenied},
	}

	users := make([]*models.User, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, &models.User{
			Username:     a.username,
			PasswordHash: hash,
			Role:         a.role,
			Status:       a.status,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return users
}

func mustHashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hash seed password: %v", err))
	}
	return string(hash)
}
