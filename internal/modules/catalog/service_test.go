package catalog

import (
	"context"
	"testing"

	"eventnomous/internal/domain"
	"eventnomous/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) GetAll(ctx context.Context, f repository.VendorFilters) ([]domain.Vendor, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func sampleVendor() *domain.Vendor {
	v := &domain.Vendor{
		ID:       "v3",
		Name:     "Delight Catering",
		Category: domain.CategoryCatering,
		Location: "Bangalore, Karnataka",
		Services: []domain.VendorService{
			{ID: "s3", VendorID: "v3", Name: "Gold Buffet", Price: 1200, Unit: domain.UnitPerPlate},
			{ID: "s11", VendorID: "v3", Name: "Silver Buffet", Price: 800, Unit: domain.UnitPerPlate},
		},
	}
	v.DeriveMinPrice()
	return v
}

func TestService_FindVendor_Found(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("GetByID", mock.Anything, "v3").Return(sampleVendor(), nil)

	svc := NewService(repo)
	vendor, err := svc.FindVendor(context.Background(), "v3")

	require.NoError(t, err)
	assert.Equal(t, "Delight Catering", vendor.Name)
	assert.Equal(t, 800.0, vendor.MinPrice, "min price derives from cheapest service")
}

func TestService_FindVendor_NotFound(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	vendor, err := svc.FindVendor(context.Background(), "nope")

	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestService_FindService_Found(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("GetByID", mock.Anything, "v3").Return(sampleVendor(), nil)

	svc := NewService(repo)
	service, err := svc.FindService(context.Background(), "v3", "s3")

	require.NoError(t, err)
	assert.Equal(t, 1200.0, service.Price)
	assert.Equal(t, domain.UnitPerPlate, service.Unit)
}

func TestService_FindService_MissingService(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("GetByID", mock.Anything, "v3").Return(sampleVendor(), nil)

	svc := NewService(repo)
	service, err := svc.FindService(context.Background(), "v3", "s999")

	assert.Nil(t, service)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_FindService_MissingVendor(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.FindService(context.Background(), "ghost", "s3")

	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestService_ListVendors_PassesFilters(t *testing.T) {
	repo := new(MockVendorRepository)
	f := repository.VendorFilters{Search: "palace", Category: "VENUE"}
	repo.On("GetAll", mock.Anything, f).Return([]domain.Vendor{*sampleVendor()}, nil)

	svc := NewService(repo)
	vendors, err := svc.ListVendors(context.Background(), f)

	require.NoError(t, err)
	assert.Len(t, vendors, 1)
	repo.AssertExpectations(t)
}

func TestService_Categories(t *testing.T) {
	svc := NewService(new(MockVendorRepository))

	cats := svc.Categories()

	assert.Len(t, cats, 7)
	assert.Equal(t, domain.CategoryVenue, cats[0])
	assert.Contains(t, cats, domain.CategoryTransport)
}
