package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: chamas must be created BEFORE the tables that reference it.
// Timestamps are Unix seconds, UTC.
const schema = `
CREATE TABLE IF NOT EXISTS chamas (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    chama_id TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    joined_at INTEGER NOT NULL,
    avatar_seed INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (chama_id) REFERENCES chamas(id)
);

CREATE TABLE IF NOT EXISTS contributions (
    id TEXT PRIMARY KEY,
    member_id TEXT NOT NULL,
    chama_id TEXT NOT NULL,
    amount REAL NOT NULL CHECK (amount > 0),
    contributed_at INTEGER NOT NULL,
    FOREIGN KEY (member_id) REFERENCES members(id),
    FOREIGN KEY (chama_id) REFERENCES chamas(id)
);

CREATE TABLE IF NOT EXISTS loans (
    id TEXT PRIMARY KEY,
    member_id TEXT NOT NULL,
    chama_id TEXT NOT NULL,
    amount REAL NOT NULL CHECK (amount > 0),
    requested_at INTEGER NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('Pending', 'Approved', 'Rejected', 'Repaid')),
    repaid_at INTEGER,
    FOREIGN KEY (member_id) REFERENCES members(id),
    FOREIGN KEY (chama_id) REFERENCES chamas(id)
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE COLLATE NOCASE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'Member',
    avatar_seed INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_members_chama_id ON members(chama_id);
CREATE INDEX IF NOT EXISTS idx_contributions_chama_id ON contributions(chama_id);
CREATE INDEX IF NOT EXISTS idx_loans_chama_id ON loans(chama_id);
CREATE INDEX IF NOT EXISTS idx_loans_status ON loans(status);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
