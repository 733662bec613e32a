// Package testing provides test utilities and fixtures for exercising the
// call plan system end to end against its in-memory stores.
package testing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/digitally-distinct/call-plan-system/app/services"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// TestPassword is the password every fixture account authenticates with.
const TestPassword = "TestPass123!"

const testJWTSecret = "test-secret-key-that-is-long-enough-for-hs256"

// TestEnv wires the full repository and service stack against fresh
// in-memory state for one test.
type TestEnv struct {
	UserRepo      repository.UserRepository
	SessionRepo   repository.UserSessionRepository
	AuditRepo     repository.AuditLogRepository
	ReferenceRepo repository.ReferenceRepository
	WorkspaceRepo repository.WorkspaceRepository
	TokenService  services.TokenService
}

// NewTestEnv creates a fully wired test environment seeded with the built-in
// demo dataset.
func NewTestEnv() (*TestEnv, error) {
	tokenService, err := services.NewTokenService(
		1*time.Hour,
		24*time.Hour,
		"test-issuer",
		"test-audience",
		false,
		"",
		"",
		testJWTSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &TestEnv{
		UserRepo:      repository.NewUserRepository(repository.SeedUsers()),
		SessionRepo:   repository.NewUserSessionRepository(),
		AuditRepo:     repository.NewAuditLogRepository(),
		ReferenceRepo: repository.NewReferenceRepository(repository.SeedReferenceRecords()),
		WorkspaceRepo: repository.NewWorkspaceRepository(repository.SeedCustomerRecords),
		TokenService:  tokenService,
	}, nil
}

// CreateTestUser creates a user account with the given role and status.
// Usernames are randomized so fixtures never collide with the seed accounts.
func (te *TestEnv) CreateTestUser(role, status string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     fmt.Sprintf("user%08d", rand.Intn(100000000)),
		PasswordHash: string(hashed),
		Role:         role,
		Status:       status,
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}

	if err := te.UserRepo.Save(context.Background(), user); err != nil {
		return nil, fmt.Errorf("failed to create test user: %w", err)
	}

	return user, nil
}

// CreateApprovedRep creates an approved sales rep account ready to log in.
func (te *TestEnv) CreateApprovedRep() (*models.User, error) {
	return te.CreateTestUser(models.RoleSalesRep, models.UserStatusApproved)
}

// SeedWorkspace resets the user's plan workspace to the seed dataset, the
// same thing a successful login does.
func (te *TestEnv) SeedWorkspace(userID uint) (*models.PlanWorkspace, error) {
	ws, err := te.WorkspaceRepo.Reset(context.Background(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed workspace: %w", err)
	}
	return ws, nil
}
