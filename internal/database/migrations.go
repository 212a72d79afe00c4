package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log logrus.FieldLogger) error {
	migrations := []string{
		createUsersTable,
		createAdminProfilesTable,
		createRestaurantsTable,
		addStorageKeysToRestaurants,
		createDescriptionTable,
		seedDescriptionRow,
	}

	for i, migration := range migrations {
		log.Debugf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMP WITH TIME ZONE
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

const createAdminProfilesTable = `
CREATE TABLE IF NOT EXISTS admin_profiles (
  user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  full_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  job_title TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  about TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createRestaurantsTable = `
CREATE TABLE IF NOT EXISTS restaurants (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  desc_ar TEXT NOT NULL DEFAULT '',
  desc_en TEXT NOT NULL DEFAULT '',
  logo TEXT NOT NULL DEFAULT '',
  images TEXT[] NOT NULL DEFAULT '{}',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_restaurants_created_at ON restaurants(created_at DESC);
`

const addStorageKeysToRestaurants = `
ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS logo_key TEXT NOT NULL DEFAULT '';
ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS image_keys TEXT[] NOT NULL DEFAULT '{}';
`

const createDescriptionTable = `
CREATE TABLE IF NOT EXISTS description (
  id BIGSERIAL PRIMARY KEY,
  header_one_ar TEXT NOT NULL DEFAULT '',
  header_one_en TEXT NOT NULL DEFAULT '',
  header_two_ar TEXT NOT NULL DEFAULT '',
  header_two_en TEXT NOT NULL DEFAULT '',
  paragraph_ar TEXT NOT NULL DEFAULT '',
  paragraph_en TEXT NOT NULL DEFAULT ''
);
`

const seedDescriptionRow = `
INSERT INTO description (id)
SELECT 1 WHERE NOT EXISTS (SELECT 1 FROM description);
`
