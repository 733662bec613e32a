package repository

import (
	"context"
	"time"

	"github.com/digitally-distinct/call-plan-system/models"
	"github.com/digitally-distinct/call-plan-system/utils"
)

// UserRepositoryImpl implements UserRepository interface
type UserRepositoryImpl struct {
	*BaseRepository[models.User, models.UserFilter]
}

// NewUserRepository creates a user repository seeded with the given accounts
func NewUserRepository(seed []*models.User) UserRepository {
	repo := &UserRepositoryImpl{
		BaseRepository: NewBaseRepository(
			func(u *models.User) uint { return u.ID },
			func(u *models.User, id uint) { u.ID = id },
			userMatches,
		),
	}
	for _, u := range seed {
		_ = repo.Save(context.Background(), u)
	}
	return repo
}

func userMatches(u *models.User, f models.UserFilter) bool {
	if f.ID != nil && u.ID != *f.ID {
		return false
	}
	if f.Username != nil && u.Username != *f.Username {
		return false
	}
	if f.Role != nil && u.Role != *f.Role {
		return false
	}
	if f.Status != nil && u.Status != *f.Status {
		return false
	}
	return true
}

// ByUsername retrieves a user by username, or nil when unknown
func (r *UserRepositoryImpl) ByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.ByFilter(ctx, models.UserFilter{Username: utils.ToPtr(username)}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error {
	r.updateEach(
		func(u *models.User) bool { return u.ID == userID },
		func(u *models.User) {
			u.LastLoginAt = utils.ToPtr(at)
			u.UpdatedAt = at
		},
	)
	return nil
}
