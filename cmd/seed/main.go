package main

import (
	"context"
	"log"

	"eventnomous/internal/config"
	"eventnomous/internal/database"
	"eventnomous/internal/domain"
	"eventnomous/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	log.Println("Running AutoMigrate...")
	if err := userRepo.Migrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := vendorRepo.Migrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM vendor_services")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM vendor_profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	// ================== USERS ==================
	log.Println("Creating users...")

	seedUsers := []struct {
		email    string
		password string
		name     string
		role     domain.UserRole
	}{
		{"admin@eventnomous.io", "admin123", "Platform Admin", domain.RoleAdmin},
		{"priya@gmail.com", "customer123", "Priya Sharma", domain.RoleCustomer},
		{"rahul@gmail.com", "customer123", "Rahul Mehta", domain.RoleCustomer},
		{"manager@eventnomous.io", "manager123", "Event Manager", domain.RoleManager},
		{"vendor@delightcatering.in", "vendor123", "Delight Catering", domain.RoleVendor},
	}

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("bcrypt failed:", err)
		}
		user := domain.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
		}
		if u.role == domain.RoleVendor {
			err = userRepo.CreateWithVendorProfile(ctx, &user)
		} else {
			err = userRepo.Create(ctx, &user)
		}
		if err != nil {
			log.Fatal("user seed failed:", err)
		}
		log.Printf("User created: %s / %s (%s)", u.email, u.password, u.role)
	}

	// ================== VENDOR CATALOG ==================
	log.Println("Creating vendor catalog...")

	vendors := []domain.Vendor{
		{
			ID:          "v1",
			Name:        "Grand Royal Palace",
			Category:    domain.CategoryVenue,
			Description: "A luxurious heritage venue perfect for royal weddings.",
			Location:    "Udaipur, Rajasthan",
			Rating:      4.9,
			ReviewCount: 128,
			Position:    1,
			Services: []domain.VendorService{
				{ID: "s1", Name: "Grand Hall Rental", Description: "Full day access to main hall", Price: 500000, Unit: domain.UnitPerDay, Position: 1},
			},
		},
		{
			ID:          "v2",
			Name:        "Lens & Light Studios",
			Category:    domain.CategoryPhotography,
			Description: "Cinematic wedding photography and videography.",
			Location:    "Mumbai, Maharashtra",
			Rating:      4.7,
			ReviewCount: 85,
			Position:    2,
			Services: []domain.VendorService{
				{ID: "s2", Name: "Wedding Package", Description: "Photo + Video coverage", Price: 75000, Unit: domain.UnitPerDay, Position: 1},
			},
		},
		{
			ID:          "v3",
			Name:        "Delight Catering",
			Category:    domain.CategoryCatering,
			Description: "Exquisite multi-cuisine catering services.",
			Location:    "Bangalore, Karnataka",
			Rating:      4.5,
			ReviewCount: 200,
			Position:    3,
			Services: []domain.VendorService{
				{ID: "s3", Name: "Gold Buffet", Description: "Premium spread with live counters", Price: 1200, Unit: domain.UnitPerPlate, Position: 1},
			},
		},
		{
			ID:          "v4",
			Name:        "Floral Dreams Decor",
			Category:    domain.CategoryDecor,
			Description: "Stage, mandap and venue decoration with fresh flowers.",
			Location:    "Jaipur, Rajasthan",
			Rating:      4.6,
			ReviewCount: 64,
			Position:    4,
			Services: []domain.VendorService{
				{ID: "s4", Name: "Mandap Decoration", Description: "Traditional mandap with floral arch", Price: 150000, Unit: domain.UnitFlat, Position: 1},
				{ID: "s5", Name: "Reception Stage", Description: "Backdrop, lighting and seating decor", Price: 90000, Unit: domain.UnitFlat, Position: 2},
			},
		},
		{
			ID:          "v5",
			Name:        "Rhythm Nation Live",
			Category:    domain.CategoryEntertainment,
			Description: "Live band, DJ and sangeet choreography.",
			Location:    "Delhi NCR",
			Rating:      4.4,
			ReviewCount: 93,
			Position:    5,
			Services: []domain.VendorService{
				{ID: "s6", Name: "DJ Night", Description: "DJ with sound and lighting rig", Price: 25000, Unit: domain.UnitPerHour, Position: 1},
				{ID: "s7", Name: "Live Band", Description: "Five-piece band, two sets", Price: 120000, Unit: domain.UnitFlat, Position: 2},
			},
		},
		{
			ID:          "v6",
			Name:        "Glow Up Artistry",
			Category:    domain.CategoryMakeup,
			Description: "Bridal makeup and styling by award-winning artists.",
			Location:    "Mumbai, Maharashtra",
			Rating:      4.8,
			ReviewCount: 151,
			Position:    6,
			Services: []domain.VendorService{
				{ID: "s8", Name: "Bridal Package", Description: "Bridal makeup, hair and draping", Price: 45000, Unit: domain.UnitFlat, Position: 1},
			},
		},
		{
			ID:          "v7",
			Name:        "Royal Rides",
			Category:    domain.CategoryTransport,
			Description: "Vintage cars and decorated baraat transport.",
			Location:    "Udaipur, Rajasthan",
			Rating:      4.3,
			ReviewCount: 47,
			Position:    7,
			Services: []domain.VendorService{
				{ID: "s9", Name: "Vintage Car", Description: "Chauffeur-driven vintage convertible", Price: 15000, Unit: domain.UnitPerHour, Position: 1},
				{ID: "s10", Name: "Guest Shuttle", Description: "Air-conditioned coach, 40 seats", Price: 30000, Unit: domain.UnitPerDay, Position: 2},
			},
		},
	}

	for i := range vendors {
		if err := vendorRepo.Create(ctx, &vendors[i]); err != nil {
			log.Fatal("vendor seed failed:", err)
		}
		log.Printf("Vendor created: %s (%s, %d services)", vendors[i].Name, vendors[i].Category, len(vendors[i].Services))
	}

	log.Println("Seed complete.")
}
