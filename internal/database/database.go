package database

import (
	"fmt"
	"time"

	"field-dispatch-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipAutoMigrate bool
	SeedTaxonomies  bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{SeedTaxonomies: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Required for BaseModel's default gen_random_uuid()
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.Address{},
			&models.User{},
			&models.Role{},
			&models.UserRole{},
			&models.Client{},
			&models.OrderType{},
			&models.OrderStatus{},
			&models.Order{},
			&models.MissionType{},
			&models.MissionStatus{},
			&models.CustomForm{},
			&models.Mission{},
			&models.CustomFormResponse{},
			&models.Assignment{},
			&models.Setting{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	if opts.SeedTaxonomies {
		if err := seedDefaults(db); err != nil {
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
	}

	return db, nil
}

// seedDefaults inserts the rows the engine relies on: the team leader role,
// the finished mission status and the show_weekends setting. Idempotent.
func seedDefaults(db *gorm.DB) error {
	role := models.Role{Name: models.RoleTeamLeader}
	if err := db.Where("name = ?", role.Name).FirstOrCreate(&role).Error; err != nil {
		return err
	}

	for _, name := range []string{"planned", "in_progress", models.MissionStatusFinished, "cancelled"} {
		status := models.MissionStatus{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&status).Error; err != nil {
			return err
		}
	}

	setting := models.Setting{Key: models.SettingShowWeekends, Value: "false"}
	return db.Where("key = ?", setting.Key).FirstOrCreate(&setting).Error
}
