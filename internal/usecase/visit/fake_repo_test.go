package visit

import (
	"context"
	"time"

	"github.com/shasthoseba/chamber-booking/internal/audit"
	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

// In-memory repository with the same conflict semantics as the gorm one:
// exact-timestamp equality filtered to slot-blocking statuses.
type fakeRepo struct {
	doctors  map[uint]*models.Doctor
	chambers map[uint]*models.Chamber
	users    map[uint]*models.User
	visits   map[uint]*models.Visit
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		doctors:  map[uint]*models.Doctor{},
		chambers: map[uint]*models.Chamber{},
		users:    map[uint]*models.User{},
		visits:   map[uint]*models.Visit{},
	}
}

func (r *fakeRepo) addDoctor(id uint) {
	r.doctors[id] = &models.Doctor{ID: id, Name: "A. Rahman"}
}

func (r *fakeRepo) addChamber(id uint) {
	r.chambers[id] = &models.Chamber{ID: id, Location: "Dhanmondi"}
}

func (r *fakeRepo) addUser(u models.User) {
	r.users[u.ID] = &u
}

func (r *fakeRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	return d, nil
}

func (r *fakeRepo) GetChamberByID(_ context.Context, id uint) (*models.Chamber, error) {
	ch, ok := r.chambers[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	return ch, nil
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	return u, nil
}

func (r *fakeRepo) GetVisitByID(_ context.Context, id uint) (*models.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	cp := *v
	return &cp, nil
}

func (r *fakeRepo) slotTaken(chamberID, doctorID uint, at time.Time) bool {
	for _, v := range r.visits {
		if v.ChamberID != chamberID || v.DoctorID != doctorID {
			continue
		}
		if !v.AppointmentTime.Equal(at) {
			continue
		}
		for _, s := range domain.SlotBlockingStatuses() {
			if v.VisitStatus == s {
				return true
			}
		}
	}
	return false
}

func (r *fakeRepo) SlotTaken(
	_ context.Context,
	chamberID uint,
	doctorID uint,
	at time.Time,
) (bool, error) {
	return r.slotTaken(chamberID, doctorID, at), nil
}

func (r *fakeRepo) CreateVisitIfSlotFree(_ context.Context, v *models.Visit) error {
	if r.slotTaken(v.ChamberID, v.DoctorID, v.AppointmentTime) {
		return httperr.ErrBusiness("slot_taken")
	}
	r.nextID++
	v.ID = r.nextID
	cp := *v
	r.visits[v.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateVisit(_ context.Context, v *models.Visit) error {
	cp := *v
	r.visits[v.ID] = &cp
	return nil
}

func (r *fakeRepo) ListVisits(
	_ context.Context,
	filter domain.ListFilter,
) ([]models.Visit, error) {

	var out []models.Visit
	for _, v := range r.visits {
		if filter.UserID != nil &&
			v.BookingUserID != *filter.UserID && v.PatientUserID != *filter.UserID {
			continue
		}
		if filter.DoctorID != nil && v.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.Status != "" && v.VisitStatus != filter.Status {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeRepo) ListActiveTimesForDay(
	_ context.Context,
	chamberID uint,
	doctorID *uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	var out []time.Time
	for _, v := range r.visits {
		if v.ChamberID != chamberID {
			continue
		}
		if doctorID != nil && v.DoctorID != *doctorID {
			continue
		}
		if v.AppointmentTime.Before(dayStart) || !v.AppointmentTime.Before(dayEnd) {
			continue
		}
		blocking := false
		for _, s := range domain.SlotBlockingStatuses() {
			if v.VisitStatus == s {
				blocking = true
				break
			}
		}
		if blocking {
			out = append(out, v.AppointmentTime)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type nopRecorder struct{}

func (nopRecorder) Dispatch(audit.Event) {}
