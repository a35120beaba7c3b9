package utils

import (
	"context"

	"gearguard/pkg/constants"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (constants.UserRole, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(constants.UserRole)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return role, nil
}

// WithUser stores the authenticated identity on ctx.
func WithUser(ctx context.Context, id uint64, email, name string, role constants.UserRole, teamID *uint64) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, id)
	ctx = context.WithValue(ctx, contextkeys.UserEmailKey, email)
	ctx = context.WithValue(ctx, contextkeys.UserNameKey, name)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role)
	if teamID != nil {
		ctx = context.WithValue(ctx, contextkeys.UserTeamIDKey, *teamID)
	}
	return ctx
}
