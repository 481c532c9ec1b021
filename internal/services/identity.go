package services

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
	pgrepo "github.com/yoockh/jobboard/internal/repositories/relational"
	"github.com/yoockh/jobboard/internal/utils"
)

const detailNotAuthorized = "Not authorized"

// requireRole resolves the bearer identity (an email) to a user holding
// role. Unknown identities and wrong roles both come back as Forbidden.
func requireRole(ctx context.Context, users pgrepo.UserRepository, op, identity string, role models.UserRole) (*models.User, error) {
	if identity == "" {
		return nil, utils.E(utils.CodeForbidden, op, detailNotAuthorized, nil)
	}

	u, err := users.GetByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeForbidden, op, detailNotAuthorized, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve user", err)
	}
	if u.Role != role {
		return nil, utils.E(utils.CodeForbidden, op, detailNotAuthorized, nil)
	}
	return u, nil
}
