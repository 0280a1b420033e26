// Package migration creates the schema on first start.
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

// sentinelTable is created by the last step; its presence means the schema is complete.
const sentinelTable = "public.events"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_rendered_documents",
		SQL: `CREATE TABLE IF NOT EXISTS rendered_documents (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  kind           TEXT        NOT NULL CHECK (kind IN ('certificate', 'id_card', 'invitation')),
  recipient_name TEXT        NOT NULL,
  event_name     TEXT        NOT NULL,
  display_date   TEXT        NOT NULL DEFAULT '',
  rank           SMALLINT    CHECK (rank BETWEEN 0 AND 3),
  file_path      TEXT        NOT NULL UNIQUE,
  fields         JSONB       NOT NULL DEFAULT '{}'::jsonb,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_rendered_documents_kind_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rendered_documents_kind_created_at ON rendered_documents (kind, created_at DESC);`,
	},
	{
		Name: "create_index_rendered_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rendered_documents_created_at ON rendered_documents (created_at);`,
	},
	{
		Name: "create_table_events",
		SQL: `CREATE TABLE IF NOT EXISTS events (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL,
  venue       TEXT        NOT NULL DEFAULT '',
  starts_at   TIMESTAMPTZ NOT NULL,
  notified_at TIMESTAMPTZ,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_events_pending",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_events_pending ON events (starts_at) WHERE notified_at IS NULL;`,
	},
}

// EnsureMigrated checks the sentinel table and runs every step if it is missing.
// Steps are idempotent, so a run interrupted halfway is completed by the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("status", "starting").Msg("db_migration_check")

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.Error().
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("db_migration_failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("db_migration_skip")
		return nil
	}

	log.Info().Str("status", "in_progress").Int("steps", len(steps)).Msg("db_migration_start")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Err(err).
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("db_migration_failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("db_migration_step")
	}

	log.Info().
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("db_migration_success")

	return nil
}
