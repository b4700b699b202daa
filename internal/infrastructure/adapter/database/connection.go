package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openConnection establishes a single database connection attempt with the
// configured pool settings and verifies it with a ping
func openConnection(config *Config, coreLogger coreport.Logger, timeProvider coreport.TimeProvider) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(coreLogger, config.LogLevel),
		NowFunc: func() time.Time {
			return timeProvider.Now()
		},
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
