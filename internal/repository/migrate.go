package repository

import "gorm.io/gorm"

// Migrate creates the schema. On Postgres it also installs the exclusion
// constraint that rejects two active bookings overlapping on the same vehicle,
// so a conflict slipping past the in-service check still cannot commit.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&vehicleModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$ BEGIN
  ALTER TABLE bookings
    ADD CONSTRAINT bookings_no_overlap
    EXCLUDE USING gist (
      vehicle_id WITH =,
      daterange(start_date, end_date, '[]') WITH &&
    )
    WHERE (status IN ('pending', 'approved'));
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`).Error
}
