package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

type VisitGormRepository struct {
	db *gorm.DB
}

func NewVisitGormRepository(db *gorm.DB) *VisitGormRepository {
	return &VisitGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *VisitGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *VisitGormRepository) GetChamberByID(
	ctx context.Context,
	id uint,
) (*models.Chamber, error) {

	var chamber models.Chamber
	if err := r.db.WithContext(ctx).First(&chamber, id).Error; err != nil {
		return nil, err
	}
	return &chamber, nil
}

func (r *VisitGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *VisitGormRepository) GetVisitByID(
	ctx context.Context,
	id uint,
) (*models.Visit, error) {

	var v models.Visit
	if err := r.db.WithContext(ctx).
		Preload("Chamber").
		Preload("Doctor").
		First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *VisitGormRepository) SlotTaken(
	ctx context.Context,
	chamberID uint,
	doctorID uint,
	at time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where(
			"chamber_id = ? AND doctor_id = ? AND appointment_time = ? AND visit_status IN ?",
			chamberID, doctorID, at, domain.SlotBlockingStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *VisitGormRepository) CreateVisitIfSlotFree(
	ctx context.Context,
	v *models.Visit,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Visit
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"chamber_id = ? AND doctor_id = ? AND appointment_time = ? AND visit_status IN ?",
				v.ChamberID, v.DoctorID, v.AppointmentTime, domain.SlotBlockingStatuses(),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(v).Error
	})

	// The partial unique index catches writers that raced past the locked
	// read in a parallel transaction.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// State changes
// --------------------------------------------------

func (r *VisitGormRepository) UpdateVisit(
	ctx context.Context,
	v *models.Visit,
) error {

	err := r.db.WithContext(ctx).Save(v).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

// --------------------------------------------------
// Listing / availability
// --------------------------------------------------

func (r *VisitGormRepository) ListVisits(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Visit, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Preload("Chamber").
		Preload("Doctor")

	if filter.UserID != nil {
		q = q.Where(
			"booking_user_id = ? OR patient_user_id = ?",
			*filter.UserID, *filter.UserID,
		)
	}

	if filter.DoctorID != nil {
		q = q.Where("doctor_id = ?", *filter.DoctorID)
	}

	if filter.Status != "" {
		q = q.Where("visit_status = ?", filter.Status)
	}

	if filter.FromDate != nil {
		q = q.Where("appointment_time >= ?", *filter.FromDate)
	}

	if filter.ToDate != nil {
		q = q.Where("appointment_time <= ?", *filter.ToDate)
	}

	var visits []models.Visit
	if err := q.
		Order("appointment_time DESC").
		Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *VisitGormRepository) ListActiveTimesForDay(
	ctx context.Context,
	chamberID uint,
	doctorID *uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where(
			"chamber_id = ? AND visit_status IN ? AND appointment_time >= ? AND appointment_time < ?",
			chamberID, domain.SlotBlockingStatuses(), dayStart, dayEnd,
		)

	if doctorID != nil {
		q = q.Where("doctor_id = ?", *doctorID)
	}

	var times []time.Time
	if err := q.
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*VisitGormRepository)(nil)
