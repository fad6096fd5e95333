package configs

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		log.Fatalf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	if err := db.AutoMigrate(
		&entity.User{}, &entity.EmailOTP{},
		&entity.Address{},
		&entity.Restaurant{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
