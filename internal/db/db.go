package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/config"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Chamber{},
		&models.DoctorChamber{},
		&models.ChamberOperator{},
		&models.Schedule{},
		&models.Visit{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Database-level backstop for the booking race: two visits may never hold
	// the same (chamber, doctor, timestamp) while both count as slot-blocking.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_visits_active_slot
        ON visits (chamber_id, doctor_id, appointment_time)
        WHERE visit_status IN ('scheduled', 'confirmed')
    `)

	return db
}
