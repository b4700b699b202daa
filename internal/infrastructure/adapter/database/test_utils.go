package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter uint64

// NewTestDB opens a private in-memory sqlite database with the schema
// migrated, for exercising the real GORM unit of work in tests. cache=shared
// keeps the database alive across the pool's connections so separate
// transactions observe each other's committed writes.
func NewTestDB(t *testing.T, logger coreport.Logger) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:uow_test_%d?mode=memory&cache=shared", atomic.AddUint64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	// A single open connection avoids sqlite write-lock contention between
	// pooled connections.
	sqlDB.SetMaxOpenConns(1)

	if err := migration.NewMigrationManager(db, logger).MigrateAll(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	return db
}
