package postgres

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/pkg/database"
)

// schema is the full DDL for the lighting graph. Locations are stored
// as nullable column pairs with a check keeping them atomic.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS basestations (
		id BIGSERIAL PRIMARY KEY,
		uuid BIGINT NOT NULL UNIQUE,
		status INTEGER NOT NULL DEFAULT 2,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		version INTEGER NOT NULL DEFAULT 3,
		CHECK ((latitude IS NULL) = (longitude IS NULL))
	)`,
	`CREATE TABLE IF NOT EXISTS telecells (
		id BIGSERIAL PRIMARY KEY,
		uuid BIGINT NOT NULL UNIQUE,
		relay BOOLEAN NOT NULL DEFAULT false,
		status INTEGER NOT NULL DEFAULT 2,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		basestation_id BIGINT REFERENCES basestations(id),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK ((latitude IS NULL) = (longitude IS NULL))
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id BIGSERIAL PRIMARY KEY,
		status INTEGER NOT NULL DEFAULT 2,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		CHECK ((latitude IS NULL) = (longitude IS NULL))
	)`,
	`CREATE TABLE IF NOT EXISTS elements (
		id BIGSERIAL PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		status INTEGER NOT NULL DEFAULT 2,
		asset_id BIGINT REFERENCES assets(id),
		telecell_id BIGINT REFERENCES telecells(id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		hashed_pass TEXT NOT NULL,
		role INTEGER NOT NULL DEFAULT 2,
		created TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_elements_asset_id ON elements(asset_id)`,
	`CREATE INDEX IF NOT EXISTS idx_elements_telecell_id ON elements(telecell_id)`,
	`CREATE INDEX IF NOT EXISTS idx_telecells_basestation_id ON telecells(basestation_id)`,
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *database.PostgreSQL) error {
	for _, stmt := range schema {
		if _, err := db.Pool().Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

// Reset drops every table. Used by the seeder to rebuild fixtures.
func Reset(ctx context.Context, db *database.PostgreSQL) error {
	drops := []string{
		`DROP TABLE IF EXISTS elements`,
		`DROP TABLE IF EXISTS telecells`,
		`DROP TABLE IF EXISTS assets`,
		`DROP TABLE IF EXISTS basestations`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range drops {
		if _, err := db.Pool().Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return nil
}
