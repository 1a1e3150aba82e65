package database

import (
	"errors"
	"fmt"

	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a Postgres connection and optionally runs auto-migration
// plus first-run seeding.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		if err := seed(db, cfg); err != nil {
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.PostModel{},
		&models.SubscriberModel{},
		&models.CampaignModel{},
		&models.MediaModel{},
	)
}

// editorialCategories is the fixed category set. The importer's fuzzy
// matcher resolves against these and never creates new ones.
var editorialCategories = []models.CategoryModel{
	{Name: "메종 이야기", NameEN: "Maison Stories", Slug: "maison"},
	{Name: "뀌베", NameEN: "Cuvées", Slug: "cuvee"},
	{Name: "테루아", NameEN: "Terroir", Slug: "terroir"},
	{Name: "페어링", NameEN: "Pairing", Slug: "pairing"},
	{Name: "저널", NameEN: "Journal", Slug: "journal"},
}

func seed(db *gorm.DB, cfg *config.AppConfig) error {
	for _, cat := range editorialCategories {
		var existing models.CategoryModel
		err := db.Where("slug = ?", cat.Slug).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&cat).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return seedAdmin(db, cfg)
}

func seedAdmin(db *gorm.DB, cfg *config.AppConfig) error {
	email := cfg.Admin.Email
	if email == "" {
		return nil
	}

	var existing models.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.UserModel{
		Email:        email,
		Name:         cfg.Admin.Name,
		PasswordHash: string(hash),
	}).Error
}
