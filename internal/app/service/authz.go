package service

import (
	"fmt"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

// requireRole is the single authorization gate applied before every catalog
// mutation.
func requireRole(user *model.User, roles ...string) error {
	if user == nil {
		return common.ErrUnauthorized
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return fmt.Errorf("role %q lacks permission: %w", user.Role, common.ErrForbidden)
}
