package auth

import (
	"context"
	"errors"
	"strings"

	"eventnomous/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication
type Service struct {
	users UserRepositoryInterface
	jwt   TokenIssuer
}

func NewService(users UserRepositoryInterface, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates an account and returns the user plus a signed access
// token. Registering with the VENDOR role also creates an empty vendor
// profile for the storefront.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	role, ok := domain.ParseUserRole(req.Role)
	if !ok {
		return nil, "", ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
	}

	if role == domain.RoleVendor {
		err = s.users.CreateWithVendorProfile(ctx, user)
	} else {
		err = s.users.Create(ctx, user)
	}
	if err != nil {
		// Unique index on email closes the check-then-create race under
		// Postgres.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
