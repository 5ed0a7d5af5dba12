package visit

import "github.com/shasthoseba/chamber-booking/internal/models"

// CanBookFor decides whether requester may create a visit with patient as
// the one being seen: either the requester themselves, or one of their own
// dependents. Delegation never chains through a dependent.
func CanBookFor(requesterID uint, patient *models.User) bool {
	if patient.ID == requesterID {
		return true
	}
	return patient.PrimaryUserID != nil && *patient.PrimaryUserID == requesterID
}

// CanModify restricts visit updates and cancellation to the original booker.
func CanModify(requesterID uint, v *models.Visit) bool {
	return v.BookingUserID == requesterID
}
