package repository

import (
	"context"
	"strings"

	"eventnomous/internal/domain"

	"gorm.io/gorm"
)

// VendorFilters narrows a catalog listing. Search matches name, description
// and location case-insensitively; Category must be an exact enum value.
type VendorFilters struct {
	Search    string
	Category  string
	MinRating float64
}

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// GetAll returns vendors in seed insertion order with services preloaded and
// MinPrice derived.
func (r *VendorRepository) GetAll(ctx context.Context, f VendorFilters) ([]domain.Vendor, error) {
	q := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("position ASC")

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			like, like, like,
		)
	}

	var vendors []domain.Vendor
	if err := q.Find(&vendors).Error; err != nil {
		return nil, err
	}
	for i := range vendors {
		vendors[i].DeriveMinPrice()
	}
	return vendors, nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	tx := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&vendor, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	vendor.DeriveMinPrice()
	return &vendor, nil
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Migrate creates the catalog tables. Called from cmd/seed and test setup.
func (r *VendorRepository) Migrate() error {
	return r.db.AutoMigrate(&domain.Vendor{}, &domain.VendorService{})
}
