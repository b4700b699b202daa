package migration

import (
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager creates and upgrades the database schema
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{db: db, logger: logger}
}

// MigrateAll creates the users, invoices and audit_entries tables and
// installs the invoices -> users foreign key
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Invoice{},
		&model.AuditEntry{},
	); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createForeignKeys(); err != nil {
		m.logger.Error("Failed to create foreign keys", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// createForeignKeys installs referential constraints. Only postgres gets
// the ALTER TABLE; sqlite (used by the test harness) cannot add constraints
// to existing tables and relies on the service-level existence check.
func (m *MigrationManager) createForeignKeys() error {
	if m.db.Dialector.Name() != "postgres" {
		return nil
	}

	return m.db.Exec(`
		DO $$ BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'fk_invoices_user'
			) THEN
				ALTER TABLE invoices
					ADD CONSTRAINT fk_invoices_user
					FOREIGN KEY (user_id) REFERENCES users (id);
			END IF;
		END $$;
	`).Error
}
