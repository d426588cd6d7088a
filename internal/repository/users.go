package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/gen/ent"
	"github.com/nutriscan/nutrition-scanner/gen/ent/user"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
)

// UpdateProfileRequest wraps the mutable user attributes. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	UserID             uuid.UUID
	Age                *int
	HealthConditions   *string
	DietaryPreferences *string
	Allergies          *string
	Nickname           *string
	AvatarURL          *string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByOpenID(ctx context.Context, openid string) (*entity.User, error)
	Create(ctx context.Context, openid string, nickname, avatarURL *string) (*entity.User, error)
	UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*entity.User, error)
	TouchLogin(ctx context.Context, id uuid.UUID) error
	RecordScan(ctx context.Context, id uuid.UUID, at time.Time) error
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	rec, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get user", "user_id", id, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToUser(rec), nil
}

func (r *userRepository) GetByOpenID(ctx context.Context, openid string) (*entity.User, error) {
	rec, err := r.client.User.Query().
		Where(user.Openid(openid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get user by openid", "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToUser(rec), nil
}

func (r *userRepository) Create(ctx context.Context, openid string, nickname, avatarURL *string) (*entity.User, error) {
	rec, err := r.client.User.Create().
		SetOpenid(openid).
		SetNillableNickname(nickname).
		SetNillableAvatarURL(avatarURL).
		SetLastLoginAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToUser(rec), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*entity.User, error) {
	rec, err := r.client.User.UpdateOneID(req.UserID).
		SetNillableAge(req.Age).
		SetNillableHealthConditions(req.HealthConditions).
		SetNillableDietaryPreferences(req.DietaryPreferences).
		SetNillableAllergies(req.Allergies).
		SetNillableNickname(req.Nickname).
		SetNillableAvatarURL(req.AvatarURL).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update profile", "user_id", req.UserID, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	return utils.ToUser(rec), nil
}

func (r *userRepository) TouchLogin(ctx context.Context, id uuid.UUID) error {
	err := r.client.User.UpdateOneID(id).
		SetLastLoginAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to touch login", "user_id", id, "error", err)
		return common.WrapError(err, common.ErrDatabase)
	}
	return nil
}

func (r *userRepository) RecordScan(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.client.User.UpdateOneID(id).
		AddScanCount(1).
		SetLastScanAt(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to record scan", "user_id", id, "error", err)
		return common.WrapError(err, common.ErrDatabase)
	}
	return nil
}
