package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
	"github.com/nutriscan/nutrition-scanner/internal/wechat"
)

// UserServer handles mini-program login and health profiles.
type UserServer struct {
	nutritionpb.UnimplementedUserServiceServer
	wechat *wechat.Client
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserServer(wx *wechat.Client, users repository.UserRepository, logger *slog.Logger) *UserServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServer{wechat: wx, users: users, logger: logger}
}

func (s *UserServer) Login(ctx context.Context, req *nutritionpb.LoginRequest) (*nutritionpb.LoginResponse, error) {
	code := strings.TrimSpace(req.GetCode())
	if code == "" {
		return nil, common.InvalidArgumentError("code is required")
	}

	session, err := s.wechat.CodeToSession(ctx, code)
	if err != nil {
		s.logger.Warn("users.login.failed", "error", err)
		return nil, statusFromError(err)
	}

	var nickname, avatarURL *string
	if v := strings.TrimSpace(req.GetNickname()); v != "" {
		nickname = &v
	}
	if v := strings.TrimSpace(req.GetAvatarUrl()); v != "" {
		avatarURL = &v
	}

	u, err := s.users.GetByOpenID(ctx, session.OpenID)
	switch {
	case err == nil:
		if err := s.users.TouchLogin(ctx, u.ID); err != nil {
			s.logger.Warn("users.login.touch_failed", "user_id", u.ID, "error", err)
		}
		s.logger.Info("users.login.ok", "user_id", u.ID)
		return &nutritionpb.LoginResponse{User: utils.ToPBUser(u)}, nil
	case errors.Is(err, common.ErrNotFound):
		created, err := s.users.Create(ctx, session.OpenID, nickname, avatarURL)
		if err != nil {
			return nil, statusFromError(err)
		}
		s.logger.Info("users.login.registered", "user_id", created.ID)
		return &nutritionpb.LoginResponse{User: utils.ToPBUser(created), IsNew: true}, nil
	default:
		return nil, statusFromError(err)
	}
}

func (s *UserServer) GetProfile(ctx context.Context, req *nutritionpb.GetProfileRequest) (*nutritionpb.UserResponse, error) {
	id, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("user not found")
		}
		return nil, statusFromError(err)
	}
	return &nutritionpb.UserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UserServer) UpdateProfile(ctx context.Context, req *nutritionpb.UpdateProfileRequest) (*nutritionpb.UserResponse, error) {
	id, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	update := &repository.UpdateProfileRequest{
		UserID:             id,
		HealthConditions:   req.HealthConditions,
		DietaryPreferences: req.DietaryPreferences,
		Allergies:          req.Allergies,
		Nickname:           req.Nickname,
		AvatarURL:          req.AvatarUrl,
	}
	if req.Age != nil {
		age := int(req.GetAge())
		if age < 0 || age > 150 {
			return nil, common.InvalidArgumentError("age must be between 0 and 150")
		}
		update.Age = &age
	}

	u, err := s.users.UpdateProfile(ctx, update)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("user not found")
		}
		return nil, statusFromError(err)
	}
	return &nutritionpb.UserResponse{User: utils.ToPBUser(u)}, nil
}
