package services

import (
	"context"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// UserSvcFacade manages login accounts for the identity layer.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves the local account for an externally
	// authenticated identity, creating one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, email, name string) (*domain.User, error)
}
