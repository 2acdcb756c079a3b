package service

import (
	"context"
	"crypto/subtle"
	"errors"
	adminserrors "staybook/internal/admins/errors"
	"staybook/internal/admins/repository"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
)

type AdminService interface {
	Register(ctx context.Context, callerID string, req *model.AdminRegistration) (*model.Admin, error)
	ValidateSecret(ctx context.Context, secretCode string) error
}

type adminService struct {
	repo repository.AdminRepository
	cfg  *config.Config
}

func NewAdminService(repo repository.AdminRepository, cfg *config.Config) AdminService {
	return &adminService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *adminService) Register(ctx context.Context, callerID string, req *model.AdminRegistration) (*model.Admin, error) {
	userID := sanitizer.NormalizeIdentifier(req.UserID)
	if userID == "" {
		userID = callerID
	}
	if userID != callerID {
		return nil, apperrors.Forbidden("You can only register yourself as an admin")
	}

	if err := s.ValidateSecret(ctx, req.SecretCode); err != nil {
		s.cfg.Log.Ctx(ctx).Warn("Admin registration rejected", "user_id", callerID)
		return nil, err
	}

	admin := &model.Admin{UserID: userID}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, adminserrors.ErrAlreadyAdmin) {
			return nil, apperrors.InvalidInput("User is already an admin")
		}
		return nil, apperrors.Internal("Failed to register admin", err)
	}

	s.cfg.Log.Ctx(ctx).Info("Admin registered", "user_id", userID)
	return admin, nil
}

func (s *adminService) ValidateSecret(ctx context.Context, secretCode string) error {
	if s.cfg.AdminSecretCode == "" {
		return apperrors.Unavailable("Admin secret code not configured")
	}
	if secretCode == "" {
		return apperrors.InvalidInput("Secret code is required")
	}
	if subtle.ConstantTimeCompare([]byte(secretCode), []byte(s.cfg.AdminSecretCode)) != 1 {
		return apperrors.Unauthorized("Invalid secret code")
	}
	return nil
}
