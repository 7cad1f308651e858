package database

import (
	"fmt"
	"log"

	"github.com/cancha-central/pos-api/internal/config"
	"github.com/cancha-central/pos-api/internal/domain/entity"
	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff
		&entity.User{},

		// Catalog and inventory
		&entity.Category{},
		&entity.Product{},
		&entity.KitComponent{},

		// Customers
		&entity.Customer{},

		// Sales
		&entity.PaidOrder{},
		&entity.OrderLine{},

		// Cash ledger
		&entity.LedgerEntry{},

		// System entities
		&entity.AuditEvent{},
		&entity.Counter{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the counters and the initial admin account
func SeedDefaultData(db *gorm.DB, cfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	// Counters back the sequential display codes
	counterNames := []string{
		entity.CounterProducts,
		entity.CounterCustomers,
		entity.CounterReceipts,
	}
	for _, name := range counterNames {
		var existing entity.Counter
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Counter{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create counter %s: %v", name, err)
			}
		}
	}

	// Create the initial admin user if configured
	if cfg.Email != "" && cfg.Password != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", cfg.Email).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := utils.HashPassword(cfg.Password)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					FirstName: "Admin",
					Email:     cfg.Email,
					Password:  hashedPassword,
					Role:      enum.UserRoleAdmin,
					Active:    true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", cfg.Email)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", cfg.Email)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
