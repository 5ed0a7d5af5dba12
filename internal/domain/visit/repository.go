package visit

import (
	"context"
	"time"

	"github.com/shasthoseba/chamber-booking/internal/models"
)

type ListFilter struct {
	// UserID matches visits where the user is either the booker or the patient.
	UserID   *uint
	DoctorID *uint
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
}

type Repository interface {
	// -------- Lookups --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetChamberByID(
		ctx context.Context,
		id uint,
	) (*models.Chamber, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetVisitByID(
		ctx context.Context,
		id uint,
	) (*models.Visit, error)

	// -------- Booking (create / conflict) --------

	// SlotTaken reports whether a slot-blocking visit already occupies the
	// exact (chamber, doctor, timestamp) tuple. Equality is exact; no
	// duration window is modelled.
	SlotTaken(
		ctx context.Context,
		chamberID uint,
		doctorID uint,
		at time.Time,
	) (bool, error)

	// CreateVisitIfSlotFree re-checks the slot and inserts atomically.
	// A lost race surfaces as the slot_taken business error.
	CreateVisitIfSlotFree(
		ctx context.Context,
		v *models.Visit,
	) error

	// -------- State changes --------
	UpdateVisit(
		ctx context.Context,
		v *models.Visit,
	) error

	// -------- Listing / availability --------
	ListVisits(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Visit, error)

	ListActiveTimesForDay(
		ctx context.Context,
		chamberID uint,
		doctorID *uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)
}
