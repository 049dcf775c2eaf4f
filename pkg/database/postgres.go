package database

import (
	"log"

	"github.com/hotelhub/reservation-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}, &models.Payment{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	InstallBookingConstraints(db)

	return db
}

// InstallBookingConstraints adds the exclusion constraint that makes the
// database the final arbiter against double-booking: no two active bookings
// for the same room may cover overlapping day ranges. The range runs to
// check_out_date + 1 so that a shared boundary day counts as overlap,
// matching the availability query.
func InstallBookingConstraints(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
			) THEN
				ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
					EXCLUDE USING gist (
						room_id WITH =,
						daterange(check_in_date, check_out_date + 1, '[)') WITH &&
					) WHERE (status = 'active');
			END IF;
		END $$;
	`)
}
