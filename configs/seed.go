package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

// SeedAdmin creates the back-office account once, from env.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:   "admin",
		Email:      cfg.AdminEmail,
		Password:   string(hash),
		Name:       "Admin",
		Role:       "admin",
		IsVerified: true,
	}
	return db.Create(&admin).Error
}
