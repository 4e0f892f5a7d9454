package repository

import (
	"context"
	"strings"
	"time"

	"eventnomous/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type vendorProfileModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;index"`
	Category    string    `gorm:"column:category"`
	Description string    `gorm:"column:description"`
	Location    string    `gorm:"column:location"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (vendorProfileModel) TableName() string { return "vendor_profiles" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Email:        strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

// CreateWithVendorProfile creates the user and an empty vendor profile in one
// transaction. Used when someone registers with the VENDOR role.
func (r *UserRepository) CreateWithVendorProfile(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toUserModel(u)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		profile := vendorProfileModel{UserID: m.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		*u = *toDomainUser(m)
		return nil
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// Migrate creates the user tables. Called from cmd/seed and test setup.
func (r *UserRepository) Migrate() error {
	return r.db.AutoMigrate(&userModel{}, &vendorProfileModel{})
}
