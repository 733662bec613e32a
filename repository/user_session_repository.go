package repository

import (
	"context"

	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// UserSessionRepositoryImpl implements UserSessionRepository interface
type UserSessionRepositoryImpl struct {
	*BaseRepository[models.UserSession, models.UserSessionFilter]
}

// NewUserSessionRepository creates a new user session repository
func NewUserSessionRepository() UserSessionRepository {
	return &UserSessionRepositoryImpl{
		BaseRepository: NewBaseRepository(
			func(s *models.UserSession) uint { return s.ID },
			func(s *models.UserSession, id uint) { s.ID = id },
			sessionMatches,
		),
	}
}

func sessionMatches(s *models.UserSession, f models.UserSessionFilter) bool {
	if f.ID != nil && s.ID != *f.ID {
		return false
	}
	if f.UserID != nil && s.UserID != *f.UserID {
		return false
	}
	if f.CorrelationID != nil && s.CorrelationID != *f.CorrelationID {
		return false
	}
	if f.SessionToken != nil && s.SessionToken != *f.SessionToken {
		return false
	}
	if f.IsActive != nil && utils.IsTrue(s.IsActive) != *f.IsActive {
		return false
	}
	return true
}

// BySessionToken retrieves an active, unexpired session by its token, or nil
func (r *UserSessionRepositoryImpl) BySessionToken(ctx context.Context, token string) (*models.UserSession, error) {
	sessions, err := r.ByFilter(ctx, models.UserSessionFilter{
		SessionToken: utils.ToPtr(token),
		IsActive:     utils.ToPtr(true),
	}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 || sessions[0].IsExpired(utils.UTCNow()) {
		return nil, nil
	}
	return sessions[0], nil
}

// InvalidateActiveSessions deactivates every active session of the user
func (r *UserSessionRepositoryImpl) InvalidateActiveSessions(ctx context.Context, userID uint) error {
	r.updateEach(
		func(s *models.UserSession) bool { return s.UserID == userID && utils.IsTrue(s.IsActive) },
		func(s *models.UserSession) { s.IsActive = utils.ToPtr(false) },
	)
	return nil
}
