package service

import (
	"context"
	"staybook/internal/admins/repository"
	"staybook/pkg/auth"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
)

// Authorizer answers whether a user is an admin from the ADMIN_USER_IDS
// allow-list, the Admins collection, or either, depending on the source.
type Authorizer struct {
	source  string
	allowed map[string]struct{}
	repo    repository.AdminRepository
	log     *logger.Logger
}

func NewAuthorizer(source string, allowList []string, repo repository.AdminRepository, log *logger.Logger) *Authorizer {
	allowed := make(map[string]struct{}, len(allowList))
	for _, id := range allowList {
		allowed[id] = struct{}{}
	}
	return &Authorizer{
		source:  source,
		allowed: allowed,
		repo:    repo,
		log:     log,
	}
}

func (a *Authorizer) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	if a.source != config.AdminSourceDB {
		if _, ok := a.allowed[userID]; ok {
			return true, nil
		}
		if a.source == config.AdminSourceEnv {
			return false, nil
		}
	}

	if a.repo == nil {
		return false, nil
	}
	return a.repo.ExistsByUserID(ctx, userID)
}

func (a *Authorizer) RequireAdmin(ctx context.Context) (string, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return "", err
	}

	ok, err := a.IsAdmin(ctx, userID)
	if err != nil {
		a.log.Ctx(ctx).Error("Failed to resolve admin status", "user_id", userID, "error", err)
		return "", apperrors.Internal("Failed to check admin status", err)
	}
	if !ok {
		a.log.Ctx(ctx).Warn("Admin route denied", "user_id", userID)
		return "", apperrors.Forbidden("Forbidden")
	}
	return userID, nil
}
