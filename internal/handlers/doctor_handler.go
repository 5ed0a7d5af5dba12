package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/httpresp"
	"github.com/shasthoseba/chamber-booking/internal/images"
	"github.com/shasthoseba/chamber-booking/internal/models"
	"github.com/shasthoseba/chamber-booking/internal/storage"
)

const maxPhotoUpload = 5 << 20

type DoctorHandler struct {
	db    *gorm.DB
	store storage.DocumentStore
}

func NewDoctorHandler(db *gorm.DB, store storage.DocumentStore) *DoctorHandler {
	return &DoctorHandler{db: db, store: store}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDoctorRequest struct {
	Name                 string   `json:"name" binding:"required"`
	ContactNumber        string   `json:"contact_number" binding:"required"`
	Specializations      []string `json:"specializations"`
	HospitalAffiliations []string `json:"hospital_affiliations"`
	Degrees              []string `json:"degrees"`
}

type UpdateDoctorRequest struct {
	Name                 *string   `json:"name"`
	ContactNumber        *string   `json:"contact_number"`
	Specializations      *[]string `json:"specializations"`
	HospitalAffiliations *[]string `json:"hospital_affiliations"`
	Degrees              *[]string `json:"degrees"`
}

// ======================================================
// LIST (public, filtered)
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Doctor{})

	// The list columns hold JSON arrays of strings; a quoted-substring match
	// is the membership test.
	if spec := c.Query("specialization"); spec != "" {
		q = q.Where("specializations LIKE ?", fmt.Sprintf(`%%"%s"%%`, spec))
	}

	if hospital := c.Query("hospital"); hospital != "" {
		q = q.Where("hospital_affiliations LIKE ?", fmt.Sprintf(`%%"%s"%%`, hospital))
	}

	if name := c.Query("name"); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	if location := c.Query("location"); location != "" {
		q = q.
			Joins("JOIN doctor_chambers ON doctor_chambers.doctor_id = doctors.id").
			Joins("JOIN chambers ON chambers.id = doctor_chambers.chamber_id").
			Where("chambers.location ILIKE ?", "%"+location+"%").
			Distinct("doctors.*")
	}

	var doctors []models.Doctor
	if err := q.Order("doctors.id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "Failed to list doctors")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	doctorID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.NotFound(c, "Doctor not found")
		return
	}

	httpresp.OK(c, doctor)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	doctor := models.Doctor{
		Name:                 req.Name,
		ContactNumber:        req.ContactNumber,
		Specializations:      req.Specializations,
		HospitalAffiliations: req.HospitalAffiliations,
		Degrees:              req.Degrees,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "Failed to create doctor")
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	doctorID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.NotFound(c, "Doctor not found")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.ContactNumber != nil {
		doctor.ContactNumber = *req.ContactNumber
	}
	if req.Specializations != nil {
		doctor.Specializations = *req.Specializations
	}
	if req.HospitalAffiliations != nil {
		doctor.HospitalAffiliations = *req.HospitalAffiliations
	}
	if req.Degrees != nil {
		doctor.Degrees = *req.Degrees
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "Failed to update doctor")
		return
	}

	httpresp.OK(c, doctor)
}

// ======================================================
// PROFILE PHOTO
// ======================================================

func (h *DoctorHandler) UploadPhoto(c *gin.Context) {
	doctorID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.NotFound(c, "Doctor not found")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPhotoUpload+1))
	if err != nil || len(body) == 0 {
		httperr.BadRequest(c, "Missing image body")
		return
	}
	if len(body) > maxPhotoUpload {
		httperr.BadRequest(c, "Image too large")
		return
	}

	encoded, err := images.EncodeProfilePhoto(body)
	if err != nil {
		httperr.BadRequest(c, "Unsupported image format")
		return
	}

	key := fmt.Sprintf("doctors/%d/%s.webp", doctor.ID, uuid.NewString())
	url, err := h.store.Put(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "Failed to store photo")
		return
	}

	doctor.PhotoURL = url
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "Failed to update doctor")
		return
	}

	httpresp.OK(c, doctor)
}
