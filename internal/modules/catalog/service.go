package catalog

import (
	"context"
	"errors"

	"eventnomous/internal/domain"
	"eventnomous/internal/repository"

	"gorm.io/gorm"
)

// Service reads the vendor catalog. The catalog is seeded once and read-only
// within a session, so every method is a plain lookup.
type Service struct {
	vendors VendorRepositoryInterface
}

func NewService(vendors VendorRepositoryInterface) *Service {
	return &Service{vendors: vendors}
}

func (s *Service) ListVendors(ctx context.Context, f repository.VendorFilters) ([]domain.Vendor, error) {
	return s.vendors.GetAll(ctx, f)
}

func (s *Service) FindVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return vendor, nil
}

// FindService resolves a (vendor, service) pair. A missing vendor and a
// missing service are both reported as ErrServiceNotFound wrapped over the
// vendor error where relevant.
func (s *Service) FindService(ctx context.Context, vendorID, serviceID string) (*domain.VendorService, error) {
	vendor, err := s.FindVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	svc := vendor.FindService(serviceID)
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *Service) Categories() []domain.VendorCategory {
	return domain.ValidVendorCategories()
}
