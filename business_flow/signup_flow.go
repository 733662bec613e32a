package businessflow

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// SignupFlow handles account registration
type SignupFlow interface {
	Signup(ctx context.Context, request *dto.SignupRequest, metadata *ClientMetadata) (*dto.SignupResponse, error)
}

// SignupFlowImpl implements the signup business flow
type SignupFlowImpl struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
}

// NewSignupFlow creates a new signup flow instance
func NewSignupFlow(
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
) SignupFlow {
	return &SignupFlowImpl{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// Signup registers a new account. Every new account starts in pending status
// and stays there until an administrator approves it.
func (sf *SignupFlowImpl) Signup(ctx context.Context, request *dto.SignupRequest, metadata *ClientMetadata) (*dto.SignupResponse, error) {
	user, err := sf.register(ctx, request)
	if err != nil {
		errMsg := fmt.Sprintf("Signup failed: %s", err.Error())
		sf.logSignupAttempt(ctx, nil, models.AuditActionSignupFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("SIGNUP_FAILED", "Signup failed", err)
	}

	msg := fmt.Sprintf("Account registered, pending approval: %s", user.Username)
	sf.logSignupAttempt(ctx, &user.ID, models.AuditActionSignupCompleted, msg, true, nil, metadata)

	return &dto.SignupResponse{
		User: ToUserDTO(*user),
		View: dto.ViewPending,
	}, nil
}

func (sf *SignupFlowImpl) register(ctx context.Context, request *dto.SignupRequest) (*models.User, error) {
	if err := validateSignup(request); err != nil {
		return nil, err
	}

	existing, err := sf.userRepo.ByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := utils.UTCNow()
	user := &models.User{
		Username:     request.Username,
		PasswordHash: string(hash),
		Role:         request.Role,
		Status:       models.UserStatusPending,
		District:     request.District,
		Region:       request.Region,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := sf.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// validateSignup re-checks required fields at the flow boundary
func validateSignup(request *dto.SignupRequest) error {
	if request.Username == "" {
		return ErrUsernameRequired
	}
	if request.Password == "" {
		return ErrPasswordRequired
	}
	switch request.Role {
	case models.RoleSalesRep, models.RoleDistrictManager, models.RoleRegionalManager:
	default:
		return ErrInvalidRole
	}
	return nil
}

func (sf *SignupFlowImpl) logSignupAttempt(ctx context.Context, userID *uint, action, description string, success bool, errorMessage *string, metadata *ClientMetadata) {
	_ = sf.auditRepo.Save(ctx, auditEntry(userID, action, description, success, errorMessage, metadata))
}
