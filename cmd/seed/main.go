package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymhub/internal/auth"
	"gymhub/internal/config"
	"gymhub/internal/db"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// offeringFixtures is the built-in services catalog.
var offeringFixtures = []model.ServiceOffering{
	{Name: "Cardio Area Access", Description: "Treadmills, rowers, and bikes during opening hours.", MonthlyPrice: decimal.RequireFromString("19.90"), Active: true},
	{Name: "Strength Training Zone", Description: "Free weights and resistance machines.", MonthlyPrice: decimal.RequireFromString("24.90"), Active: true},
	{Name: "Group Fitness Classes", Description: "Scheduled group classes led by trainers.", MonthlyPrice: decimal.RequireFromString("34.90"), Active: true},
	{Name: "Personal Training Sessions", Description: "Bookable one-on-one sessions.", MonthlyPrice: decimal.RequireFromString("59.90"), Active: true},
	{Name: "Locker Room Access", Description: "Lockers, showers, and towel service.", MonthlyPrice: decimal.RequireFromString("9.90"), Active: true},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.GymClass{},
		&model.Booking{},
		&model.ServiceOffering{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	offeringRepo := repository.NewOfferingRepository(gormDB)

	created, updated, err := seedOfferings(ctx, offeringRepo, offeringFixtures)
	if err != nil {
		log.Fatalf("Failed to seed offerings: %v", err)
	}
	log.Printf("Offerings seeded: %d created, %d updated", created, updated)

	admin, err := seedAdmin(ctx, userRepo, cfg)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Admin user ready: %s", admin.Email)

	classCount, err := seedDemoClasses(ctx, classRepo, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed demo classes: %v", err)
	}
	if classCount > 0 {
		log.Printf("Demo classes created: %d", classCount)
	}

	log.Println("Seed completed successfully!")
}

// seedOfferings upserts the services catalog by offering name.
func seedOfferings(ctx context.Context, repo repository.OfferingRepository, offerings []model.ServiceOffering) (created int, updated int, err error) {
	for _, offering := range offerings {
		existing, err := repo.FindByName(ctx, offering.Name)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, err
		}

		if existing != nil {
			existing.Description = offering.Description
			existing.MonthlyPrice = offering.MonthlyPrice
			existing.Active = offering.Active
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, err
			}
			updated++
			continue
		}

		offering := offering
		if err := repo.Create(ctx, &offering); err != nil {
			return created, updated, err
		}
		created++
	}

	return created, updated, nil
}

// seedAdmin creates the bootstrap admin from configuration if it does not
// exist yet.
func seedAdmin(ctx context.Context, repo repository.UserRepository, cfg *config.Config) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := auth.NewPasswordHasher().Hash(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// seedDemoClasses creates a small starter schedule when no classes exist.
func seedDemoClasses(ctx context.Context, repo repository.ClassRepository, trainerID uint) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	nextMonday := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour).Add(18 * time.Hour)
	classes := []model.GymClass{
		{Title: "Morning Spin", Description: "45 minute indoor cycling.", TrainerID: trainerID, MaxCapacity: 20, StartsAt: nextMonday},
		{Title: "Full Body Strength", Description: "Barbell fundamentals for all levels.", TrainerID: trainerID, MaxCapacity: 12, StartsAt: nextMonday.Add(90 * time.Minute)},
	}

	for i := range classes {
		if err := repo.Create(ctx, &classes[i]); err != nil {
			return i, err
		}
	}
	return len(classes), nil
}
