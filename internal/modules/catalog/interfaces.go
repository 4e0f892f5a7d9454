package catalog

import (
	"context"

	"eventnomous/internal/domain"
	"eventnomous/internal/repository"
)

type VendorRepositoryInterface interface {
	GetAll(ctx context.Context, f repository.VendorFilters) ([]domain.Vendor, error)
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}
