// Package repo implements the data persistence layer for the médicos
// directory, backed by GORM. This file contains database bootstrapping
// helpers for MySQL and schema migration.
package repo

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/vitaclinic/go-medicos-web/internal/config"
	"github.com/vitaclinic/go-medicos-web/internal/domain"
)

// OpenMySQL opens a MySQL database using the connection parameters from cfg
// and configures the underlying connection pool. When trace is true, the GORM
// OpenTelemetry plugin is registered so every statement is traced.
func OpenMySQL(cfg config.DBConfig, trace bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=true&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.Charset)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if trace {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// AutoMigrate creates or updates the medicos table, including the unique
// index on correo_interno that backs duplicate-email detection.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Medico{})
}
