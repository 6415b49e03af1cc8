package postgres

import (
	"log"

	"github.com/shopstream/billing-service/internal/config"
	"github.com/shopstream/billing-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BillingConfig) *gorm.DB {
	dsn := cfg.BillingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TransactionModel{})

	return db
}
