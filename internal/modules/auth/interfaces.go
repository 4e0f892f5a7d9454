package auth

import (
	"context"

	"eventnomous/internal/domain"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	CreateWithVendorProfile(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
