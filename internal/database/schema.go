package database

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    user_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Passages a user has read, keyed by the canonical reference string
CREATE TABLE IF NOT EXISTS read_passages (
    user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    reference TEXT NOT NULL,
    read_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    notes TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (user_id, reference)
);

CREATE INDEX IF NOT EXISTS idx_read_passages_read_at ON read_passages(user_id, read_at);

-- Singleton progress/stats document per user
CREATE TABLE IF NOT EXISTS user_progress (
    user_id INT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
    total_passages_read INT NOT NULL DEFAULT 0,
    current_streak INT NOT NULL DEFAULT 0,
    last_read_date DATE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
