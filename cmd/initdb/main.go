// Package main initializes the rooftop subsidy engine database schema.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"rooftop-subsidy-engine/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS households (
	id BIGSERIAL PRIMARY KEY,
	household_id VARCHAR(50) UNIQUE NOT NULL,
	state VARCHAR(80) NOT NULL,
	consumer_segment VARCHAR(40) NOT NULL,
	owns_property BOOLEAN NOT NULL DEFAULT false,
	is_grid_connected BOOLEAN NOT NULL DEFAULT false,
	roof_area_sqm DOUBLE PRECISION,
	annual_consumption_kwh DOUBLE PRECISION,
	monthly_bill_inr DOUBLE PRECISION,
	provider_id VARCHAR(80) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS estimate_snapshots (
	household_id VARCHAR(50) PRIMARY KEY,
	system_size_kw DOUBLE PRECISION NOT NULL,
	net_cost_inr DOUBLE PRECISION NOT NULL,
	estimated_savings_inr DOUBLE PRECISION NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reminders (
	id BIGSERIAL PRIMARY KEY,
	household_id VARCHAR(50) NOT NULL,
	name VARCHAR(140) NOT NULL,
	category VARCHAR(80) NOT NULL,
	detail TEXT NOT NULL DEFAULT '',
	due_date DATE NOT NULL,
	due_time VARCHAR(5) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_reminders_household ON reminders (household_id, due_date, due_time);

CREATE TABLE IF NOT EXISTS energy_logs (
	id BIGSERIAL PRIMARY KEY,
	household_id VARCHAR(50) NOT NULL,
	entry_type VARCHAR(40) NOT NULL,
	kwh NUMERIC(10, 2) NOT NULL,
	revenue_inr NUMERIC(12, 2),
	panel_id VARCHAR(120) NOT NULL DEFAULT '',
	entry_date DATE NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_energy_logs_household ON energy_logs (household_id, entry_date DESC);

CREATE TABLE IF NOT EXISTS health_stats (
	id BIGSERIAL PRIMARY KEY,
	household_id VARCHAR(50) NOT NULL,
	label VARCHAR(120) NOT NULL,
	value VARCHAR(120) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS health_logs (
	id BIGSERIAL PRIMARY KEY,
	household_id VARCHAR(50) NOT NULL,
	note TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS projects (
	id BIGSERIAL PRIMARY KEY,
	household_id VARCHAR(50) NOT NULL,
	name VARCHAR(160) NOT NULL,
	installer VARCHAR(160) NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	system_type VARCHAR(80) NOT NULL DEFAULT '',
	installation_date DATE,
	photo_key VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_projects_household ON projects (household_id, created_at DESC);
`

func main() {
	fmt.Println("=== Database Initialization ===")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Could not load .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("Connecting to PostgreSQL...")
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	fmt.Println("Executing schema...")
	if _, err := conn.Exec(ctx, schema); err != nil {
		fmt.Printf("Failed to execute schema: %v\n", err)
		os.Exit(1)
	}

	var tableCount int
	err = conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = 'public'`).Scan(&tableCount)
	if err != nil {
		fmt.Printf("Warning: Could not verify tables: %v\n", err)
	} else {
		fmt.Printf("Tables in database: %d\n", tableCount)
	}

	fmt.Println("Database initialization completed")
}
