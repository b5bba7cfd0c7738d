package storage

import (
	"fmt"
	"log"
	"time"

	"cutlist-optimizer/config"
	"cutlist-optimizer/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var gormDB *gorm.DB

// InitGormDB opens the GORM connection used for schema migration and the
// project/piece/result CRUD paths, and auto-migrates the domain models.
func InitGormDB(cfg config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	var err error
	gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
		DryRun:                                   false,
		DisableAutomaticPing:                     false,
	})
	if err != nil {
		log.Fatal("Failed to connect to database with GORM:", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := autoMigrateModels(); err != nil {
		log.Fatal("Failed to auto-migrate models:", err)
	}

	return gormDB
}

func autoMigrateModels() error {
	return gormDB.AutoMigrate(
		&models.Project{},
		&models.ProjectPiece{},
		&models.OptimizationResult{},
		&models.StockSheet{},
	)
}

// GetGormDB returns the GORM database instance.
func GetGormDB() *gorm.DB {
	return gormDB
}
