package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/digitally-distinct/call-plan-system/app/dto"
	"github.com/digitally-distinct/call-plan-system/app/services"
	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/repository"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// LoginFlow handles user authentication and session lifecycle
type LoginFlow interface {
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionToken string, metadata *ClientMetadata) (*dto.LogoutResponse, error)
}

// LoginFlowImpl implements the login business flow
type LoginFlowImpl struct {
	userRepo      repository.UserRepository
	sessionRepo   repository.UserSessionRepository
	auditRepo     repository.AuditLogRepository
	workspaceRepo repository.WorkspaceRepository
	tokenService  services.TokenService
}

// NewLoginFlow creates a new login flow instance
func NewLoginFlow(
	userRepo repository.UserRepository,
	sessionRepo repository.UserSessionRepository,
	auditRepo repository.AuditLogRepository,
	workspaceRepo repository.WorkspaceRepository,
	tokenService services.TokenService,
) LoginFlow {
	return &LoginFlowImpl{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		auditRepo:     auditRepo,
		workspaceRepo: workspaceRepo,
		tokenService:  tokenService,
	}
}

// Login authenticates a user with username and password. Credential failures
// come back as one generic error so the response never reveals which part was
// wrong. Pending and denied accounts authenticate but get no session, only
// the view that tells them where they stand.
func (lf *LoginFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	user, err := lf.userRepo.ByUsername(ctx, request.Username)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	if user == nil {
		lf.logLoginAttempt(ctx, nil, models.AuditActionLoginFailed, "Login failed: unknown username", false, metadata)
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password.", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		lf.logLoginAttempt(ctx, &user.ID, models.AuditActionLoginFailed, "Login failed: wrong password", false, metadata)
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password.", ErrInvalidCredentials)
	}

	switch user.Status {
	case models.UserStatusPending:
		lf.logLoginAttempt(ctx, &user.ID, models.AuditActionLoginFailed, "Login refused: account pending approval", false, metadata)
		return &dto.LoginResponse{View: dto.ViewPending}, nil
	case models.UserStatusDenied:
		lf.logLoginAttempt(ctx, &user.ID, models.AuditActionLoginFailed, "Login refused: account denied", false, metadata)
		return &dto.LoginResponse{View: dto.ViewDenied}, nil
	}

	// One active session per user
	if err := lf.sessionRepo.InvalidateActiveSessions(ctx, user.ID); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	session, err := lf.createSession(ctx, user.ID, metadata)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	now := utils.UTCNow()
	if err := lf.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	// Every login starts a review session from a fresh report
	if _, err := lf.workspaceRepo.Reset(ctx, user.ID); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	msg := fmt.Sprintf("User logged in successfully: %d", user.ID)
	lf.logLoginAttempt(ctx, &user.ID, models.AuditActionLoginSuccess, msg, true, metadata)

	userDTO := ToUserDTO(*user)
	sessionDTO := ToSessionDTO(*session)
	return &dto.LoginResponse{
		User:    &userDTO,
		Session: &sessionDTO,
		View:    ViewForUser(user),
	}, nil
}

// Logout ends the session behind the given token
func (lf *LoginFlowImpl) Logout(ctx context.Context, sessionToken string, metadata *ClientMetadata) (*dto.LogoutResponse, error) {
	session, err := lf.sessionRepo.BySessionToken(ctx, sessionToken)
	if err != nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", err)
	}
	if session == nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", ErrSessionNotFound)
	}

	if err := lf.sessionRepo.InvalidateActiveSessions(ctx, session.UserID); err != nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", err)
	}

	if err := lf.tokenService.RevokeToken(sessionToken); err != nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", err)
	}

	now := utils.UTCNow()
	msg := fmt.Sprintf("User logged out: %d", session.UserID)
	lf.logLoginAttempt(ctx, &session.UserID, models.AuditActionLogoutSuccess, msg, true, metadata)

	return &dto.LogoutResponse{LoggedOutAt: now}, nil
}

func (lf *LoginFlowImpl) createSession(ctx context.Context, userID uint, metadata *ClientMetadata) (*models.UserSession, error) {
	accessToken, refreshToken, err := lf.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, err
	}

	expiresAt := utils.UTCNowAdd(utils.SessionTimeout)

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	session := &models.UserSession{
		UserID:        userID,
		CorrelationID: uuid.New(),
		SessionToken:  accessToken,
		RefreshToken:  &refreshToken,
		ExpiresAt:     expiresAt,
		IsActive:      utils.ToPtr(true),
		IPAddress:     &ipAddress,
		UserAgent:     &userAgent,
		CreatedAt:     utils.UTCNow(),
	}

	if err := lf.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (lf *LoginFlowImpl) logLoginAttempt(ctx context.Context, userID *uint, action, description string, success bool, metadata *ClientMetadata) {
	var errMsg *string
	if !success {
		errMsg = &description
	}
	_ = lf.auditRepo.Save(ctx, auditEntry(userID, action, description, success, errMsg, metadata))
}
