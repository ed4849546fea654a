package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_kv_store",
		SQL: `CREATE TABLE IF NOT EXISTS kv_store (
  key        TEXT        PRIMARY KEY,
  value      JSONB       NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_kv_store_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_kv_store_updated_at ON kv_store (updated_at);`,
	},
}

// EnsureMigrated checks if the 'kv_store' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	query := "SELECT to_regclass('public.kv_store') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
