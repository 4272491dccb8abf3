package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and applies the
// idempotent SQL patches that the migration set cannot express through
// AutoMigrate (functional unique indexes on lower(email)/lower(alias),
// the partial index used by the availability anti-join).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that GORM cannot model on its own.
// Each statement is guarded with IF NOT EXISTS semantics so re-running on an
// already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Case-insensitive uniqueness for alias and email. The application
		// also pre-checks before registering, but the index is the backstop
		// against concurrent registrations.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'usuarios')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_usuarios_lower_email') THEN
		    CREATE UNIQUE INDEX uni_usuarios_lower_email ON usuarios (LOWER(email));
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'usuarios')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_usuarios_lower_alias') THEN
		    CREATE UNIQUE INDEX uni_usuarios_lower_alias ON usuarios (LOWER(alias));
		  END IF;
		END $$`,
		// Partial index backing the "animal disponible" anti-join: only
		// adoption rows in a blocking state participate.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'adopciones')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_adopciones_animal_bloqueante') THEN
		    CREATE INDEX idx_adopciones_animal_bloqueante
		        ON adopciones (animal_id)
		        WHERE estado IN ('Aprobada', 'Completada');
		  END IF;
		END $$`,
		// Donation history is filtered by category name; the join goes
		// through detalle_donaciones.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'detalle_donaciones')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_detalle_donaciones_donacion') THEN
		    CREATE INDEX idx_detalle_donaciones_donacion ON detalle_donaciones (donacion_id);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
