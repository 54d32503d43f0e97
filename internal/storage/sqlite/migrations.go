package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// NOTE: wishlist_items deliberately has no ON DELETE CASCADE — deleting a
// person with remaining items must fail, the cascade is the caller's job.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS persons (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age_group TEXT NOT NULL,
    gender TEXT NOT NULL,
    interests TEXT NOT NULL DEFAULT '[]',
    share_code TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL,
    owner_id TEXT NOT NULL,
    photo_ref TEXT NOT NULL DEFAULT '',
    budget REAL,
    pin TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS collaborators (
    person_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    PRIMARY KEY (person_id, user_id),
    FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS wishlist_items (
    id TEXT PRIMARY KEY,
    person_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price REAL,
    url TEXT NOT NULL DEFAULT '',
    image_ref TEXT NOT NULL DEFAULT '',
    note TEXT NOT NULL DEFAULT '',
    purchased INTEGER NOT NULL DEFAULT 0,
    item_order INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (person_id) REFERENCES persons(id)
);

CREATE INDEX IF NOT EXISTS idx_persons_owner_id ON persons(owner_id);
CREATE INDEX IF NOT EXISTS idx_persons_share_code ON persons(share_code);
CREATE INDEX IF NOT EXISTS idx_collaborators_user_id ON collaborators(user_id);
CREATE INDEX IF NOT EXISTS idx_items_person_id ON wishlist_items(person_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
