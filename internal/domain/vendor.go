package domain

import "time"

type VendorCategory string

const (
	CategoryVenue         VendorCategory = "VENUE"
	CategoryCatering      VendorCategory = "CATERING"
	CategoryPhotography   VendorCategory = "PHOTOGRAPHY"
	CategoryDecor         VendorCategory = "DECOR"
	CategoryEntertainment VendorCategory = "ENTERTAINMENT"
	CategoryMakeup        VendorCategory = "MAKEUP"
	CategoryTransport     VendorCategory = "TRANSPORT"
)

func ValidVendorCategories() []VendorCategory {
	return []VendorCategory{
		CategoryVenue,
		CategoryCatering,
		CategoryPhotography,
		CategoryDecor,
		CategoryEntertainment,
		CategoryMakeup,
		CategoryTransport,
	}
}

func ParseVendorCategory(s string) (VendorCategory, bool) {
	for _, c := range ValidVendorCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type PriceUnit string

const (
	UnitPerHour  PriceUnit = "per_hour"
	UnitPerDay   PriceUnit = "per_day"
	UnitPerPlate PriceUnit = "per_plate"
	UnitFlat     PriceUnit = "flat"
)

// Vendor is one marketplace listing. MinPrice is never stored: it is derived
// from Services on load so it cannot drift from the service list.
type Vendor struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" validate:"required"`
	Category    VendorCategory `json:"category" validate:"required"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location"`
	Rating      float64        `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int            `json:"review_count" validate:"gte=0"`
	ImageURL    string         `json:"image_url,omitempty"`
	MinPrice    float64        `json:"min_price" gorm:"-"`
	Position    int            `json:"-"`
	CreatedAt   time.Time      `json:"created_at"`

	Services []VendorService `json:"services,omitempty" gorm:"foreignKey:VendorID"`
}

// DeriveMinPrice recomputes MinPrice from the service list. A vendor with no
// services has a MinPrice of 0.
func (v *Vendor) DeriveMinPrice() {
	v.MinPrice = 0
	for i, s := range v.Services {
		if i == 0 || s.Price < v.MinPrice {
			v.MinPrice = s.Price
		}
	}
}

// FindService scans the vendor's service list. A miss returns nil, never an
// error.
func (v *Vendor) FindService(serviceID string) *VendorService {
	for i := range v.Services {
		if v.Services[i].ID == serviceID {
			return &v.Services[i]
		}
	}
	return nil
}

type VendorService struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"gte=0"`
	Unit        PriceUnit `json:"unit"`
	Position    int       `json:"-"`
}
