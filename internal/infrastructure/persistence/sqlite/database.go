// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/pantrysage/v2/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.InventoryItemModel{},
		&gormModels.ShoppingListModel{},
		&gormModels.PriceEntryModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a small demo pantry
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var itemCount int64
	db.Model(&gormModels.InventoryItemModel{}).Count(&itemCount)
	if itemCount > 0 {
		return nil // Already seeded
	}

	demoUserID := uuid.New()
	now := time.Now()

	pantry := []gormModels.InventoryItemModel{
		{
			UserID:   demoUserID,
			Name:     "Milk",
			Category: "Dairy",
			Quantity: 1,
			Unit:     "gallon",
		},
		{
			UserID:   demoUserID,
			Name:     "Eggs",
			Category: "Dairy",
			Quantity: 12,
			Unit:     "piece",
		},
		{
			UserID:   demoUserID,
			Name:     "All-Purpose Flour",
			Category: "Baking",
			Quantity: 5,
			Unit:     "lb",
		},
		{
			UserID:   demoUserID,
			Name:     "Ground Beef",
			Category: "Meat",
			Quantity: 2,
			Unit:     "lb",
		},
		{
			UserID:   demoUserID,
			Name:     "Yellow Onion",
			Category: "Produce",
			Quantity: 3,
			Unit:     "piece",
		},
	}

	for _, item := range pantry {
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create demo pantry item: %w", err)
		}
	}

	// A little price history so lookups have something to chew on
	prices := []gormModels.PriceEntryModel{
		{UserID: demoUserID, ItemName: "Milk", Store: "Hy-Vee", Price: 3.79, Source: "user_inventory", ObservedAt: now.AddDate(0, 0, -21)},
		{UserID: demoUserID, ItemName: "Milk", Store: "Aldi", Price: 3.29, Source: "user_inventory", ObservedAt: now.AddDate(0, 0, -14)},
		{UserID: demoUserID, ItemName: "Milk", Store: "Costco", Price: 3.49, Source: "user_inventory", ObservedAt: now.AddDate(0, 0, -7)},
		{UserID: demoUserID, ItemName: "Ground Beef", Store: "Hy-Vee", Price: 5.99, Source: "user_inventory", ObservedAt: now.AddDate(0, 0, -10)},
		{UserID: demoUserID, ItemName: "Ground Beef", Store: "Aldi", Price: 4.89, Source: "user_inventory", ObservedAt: now.AddDate(0, 0, -3)},
		{UserID: demoUserID, ItemName: "Eggs", Store: "Aldi", Price: 2.19, Source: "user_inventory", ObservedAt: now.AddDate(0, 0, -5)},
	}

	for _, price := range prices {
		if err := db.Create(&price).Error; err != nil {
			return fmt.Errorf("failed to create demo price entry: %w", err)
		}
	}

	return nil
}
