package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: weddings must be created before its child tables; every child
// table cascades on wedding deletion so removing a wedding removes all of
// its planning data.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS weddings (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    partner_email TEXT NOT NULL DEFAULT '',
    wedding_date TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    theme TEXT NOT NULL DEFAULT '',
    total_budget TEXT NOT NULL DEFAULT '0',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS budget_categories (
    id TEXT PRIMARY KEY,
    wedding_id TEXT NOT NULL,
    name TEXT NOT NULL,
    icon TEXT NOT NULL DEFAULT 'other',
    budgeted TEXT NOT NULL DEFAULT '0',
    spent TEXT NOT NULL DEFAULT '0',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (wedding_id) REFERENCES weddings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS guests (
    id TEXT PRIMARY KEY,
    wedding_id TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    rsvp_status TEXT NOT NULL DEFAULT 'invited'
        CHECK (rsvp_status IN ('invited', 'confirmed', 'declined')),
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (wedding_id) REFERENCES weddings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    wedding_id TEXT NOT NULL,
    title TEXT NOT NULL,
    due_date TEXT NOT NULL DEFAULT '',
    assigned_to TEXT NOT NULL DEFAULT '',
    completed INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (wedding_id) REFERENCES weddings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS milestones (
    id TEXT PRIMARY KEY,
    wedding_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    timeframe TEXT NOT NULL DEFAULT '',
    progress INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (wedding_id) REFERENCES weddings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS appointments (
    id TEXT PRIMARY KEY,
    wedding_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    time TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (wedding_id) REFERENCES weddings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS inspiration_items (
    id TEXT PRIMARY KEY,
    wedding_id TEXT NOT NULL,
    media_url TEXT NOT NULL,
    media_key TEXT NOT NULL DEFAULT '',
    media_type TEXT NOT NULL CHECK (media_type IN ('image', 'video')),
    title TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    shared_with_vendors INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (wedding_id) REFERENCES weddings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS vendors (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    rating REAL NOT NULL DEFAULT 0,
    reviews_count INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_weddings_user_id ON weddings(user_id);
CREATE INDEX IF NOT EXISTS idx_budget_categories_wedding_id ON budget_categories(wedding_id);
CREATE INDEX IF NOT EXISTS idx_guests_wedding_id ON guests(wedding_id);
CREATE INDEX IF NOT EXISTS idx_tasks_wedding_id ON tasks(wedding_id);
CREATE INDEX IF NOT EXISTS idx_milestones_wedding_id ON milestones(wedding_id);
CREATE INDEX IF NOT EXISTS idx_appointments_wedding_id ON appointments(wedding_id);
CREATE INDEX IF NOT EXISTS idx_inspiration_items_wedding_id ON inspiration_items(wedding_id);
CREATE INDEX IF NOT EXISTS idx_vendors_category ON vendors(category);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// catalogVendor is one seed entry for the global vendor directory.
type catalogVendor struct {
	name         string
	category     string
	description  string
	rating       float64
	reviewsCount int
}

var vendorCatalog = []catalogVendor{
	{"Grand Oak Manor", "Venue", "Historic estate with ceremony gardens and a glasshouse reception hall.", 4.9, 214},
	{"The Harbor Loft", "Venue", "Industrial waterfront loft for up to 180 guests.", 4.6, 98},
	{"Sage & Ember Catering", "Catering", "Seasonal farm-to-table menus with full-service staff.", 4.8, 167},
	{"Tavola Rustica", "Catering", "Family-style Italian dining and late-night stations.", 4.5, 75},
	{"Golden Hour Photography", "Photography", "Documentary-style coverage from prep to last dance.", 4.9, 203},
	{"Stillwater Studio", "Photography", "Fine-art portraits and medium-format film.", 4.7, 88},
	{"Petal & Stem", "Flowers", "Seasonal floral design, installations and bouquets.", 4.8, 142},
	{"Wildfern Florals", "Flowers", "Loose, garden-inspired arrangements.", 4.4, 51},
	{"The Midnight Keys", "Music", "Seven-piece band covering soul, funk and pop.", 4.7, 119},
	{"Aria Strings", "Music", "Ceremony quartet and cocktail-hour trio.", 4.6, 64},
	{"Velvet & Vine Events", "Decoration", "Full event styling, rentals and tablescapes.", 4.5, 83},
	{"Lumen Decor", "Decoration", "Lighting design and drapery.", 4.3, 40},
	{"Sugar & Crumb", "Cake", "Custom tiered cakes and dessert tables.", 4.8, 156},
	{"Flour Atelier", "Cake", "Small-batch patisserie, tastings by appointment.", 4.6, 72},
}

// seedVendors populates the global vendor catalog on first run. The catalog
// is read-only through the API, so an already-populated table is left alone.
func seedVendors(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vendors").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, v := range vendorCatalog {
		_, err := tx.Exec(
			"INSERT INTO vendors (id, name, category, description, rating, reviews_count, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			uuid.New().String(), v.name, v.category, v.description, v.rating, v.reviewsCount, now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
