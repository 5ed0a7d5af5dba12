package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/httpresp"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

type ChamberHandler struct {
	db *gorm.DB
}

func NewChamberHandler(db *gorm.DB) *ChamberHandler {
	return &ChamberHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateChamberRequest struct {
	Location    string          `json:"location" binding:"required"`
	Schedule    json.RawMessage `json:"schedule"`
	DoctorIDs   []uint          `json:"doctor_ids"`
	OperatorIDs []uint          `json:"operator_ids"`
}

type UpdateChamberRequest struct {
	Location    *string         `json:"location"`
	Schedule    json.RawMessage `json:"schedule"`
	DoctorIDs   *[]uint         `json:"doctor_ids"`
	OperatorIDs *[]uint         `json:"operator_ids"`
}

// ======================================================
// LIST / GET (public)
// ======================================================

func (h *ChamberHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Chamber{})

	if location := c.Query("location"); location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}

	doctorID, ok := uintQuery(c, "doctor_id")
	if !ok {
		return
	}
	if doctorID != nil {
		q = q.
			Joins("JOIN doctor_chambers ON doctor_chambers.chamber_id = chambers.id").
			Where("doctor_chambers.doctor_id = ?", *doctorID)
	}

	var chambers []models.Chamber
	if err := q.Order("chambers.id ASC").Find(&chambers).Error; err != nil {
		httperr.Internal(c, "Failed to list chambers")
		return
	}

	httpresp.List(c, chambers)
}

func (h *ChamberHandler) Get(c *gin.Context) {
	chamberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var chamber models.Chamber
	if err := h.db.First(&chamber, chamberID).Error; err != nil {
		httperr.NotFound(c, "Chamber not found")
		return
	}

	var doctorIDs []uint
	h.db.Model(&models.DoctorChamber{}).
		Where("chamber_id = ?", chamber.ID).
		Pluck("doctor_id", &doctorIDs)

	var operatorIDs []uint
	h.db.Model(&models.ChamberOperator{}).
		Where("chamber_id = ?", chamber.ID).
		Pluck("operator_id", &operatorIDs)

	httpresp.OK(c, gin.H{
		"chamber":      chamber,
		"doctor_ids":   doctorIDs,
		"operator_ids": operatorIDs,
	})
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ChamberHandler) Create(c *gin.Context) {
	var req CreateChamberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	var created models.Chamber

	err := h.db.Transaction(func(tx *gorm.DB) error {
		chamber := models.Chamber{Location: req.Location}

		if len(req.Schedule) > 0 {
			schedule := models.Schedule{
				TimeSlots: models.JSONValue{Raw: req.Schedule},
			}
			if err := tx.Create(&schedule).Error; err != nil {
				return err
			}
			chamber.ScheduleID = &schedule.ID
		}

		if err := tx.Create(&chamber).Error; err != nil {
			return err
		}

		if chamber.ScheduleID != nil {
			if err := tx.Model(&models.Schedule{}).
				Where("id = ?", *chamber.ScheduleID).
				Update("chamber_id", chamber.ID).Error; err != nil {
				return err
			}
		}

		for _, doctorID := range req.DoctorIDs {
			link := models.DoctorChamber{DoctorID: doctorID, ChamberID: chamber.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		for _, operatorID := range req.OperatorIDs {
			link := models.ChamberOperator{ChamberID: chamber.ID, OperatorID: operatorID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		created = chamber
		return nil
	})

	if err != nil {
		httperr.Internal(c, "Failed to create chamber")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ChamberHandler) Update(c *gin.Context) {
	chamberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var chamber models.Chamber
	if err := h.db.First(&chamber, chamberID).Error; err != nil {
		httperr.NotFound(c, "Chamber not found")
		return
	}

	var req UpdateChamberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.Location != nil {
			chamber.Location = *req.Location
		}

		if len(req.Schedule) > 0 && chamber.ScheduleID != nil {
			if err := tx.Model(&models.Schedule{}).
				Where("id = ?", *chamber.ScheduleID).
				Update("time_slots", string(req.Schedule)).Error; err != nil {
				return err
			}
		}

		// Association updates replace the full set.
		if req.DoctorIDs != nil {
			if err := tx.
				Where("chamber_id = ?", chamber.ID).
				Delete(&models.DoctorChamber{}).Error; err != nil {
				return err
			}
			for _, doctorID := range *req.DoctorIDs {
				link := models.DoctorChamber{DoctorID: doctorID, ChamberID: chamber.ID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		if req.OperatorIDs != nil {
			if err := tx.
				Where("chamber_id = ?", chamber.ID).
				Delete(&models.ChamberOperator{}).Error; err != nil {
				return err
			}
			for _, operatorID := range *req.OperatorIDs {
				link := models.ChamberOperator{ChamberID: chamber.ID, OperatorID: operatorID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&chamber).Error
	})

	if err != nil {
		httperr.Internal(c, "Failed to update chamber")
		return
	}

	httpresp.OK(c, chamber)
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *ChamberHandler) GetSchedule(c *gin.Context) {
	chamberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var chamber models.Chamber
	if err := h.db.First(&chamber, chamberID).Error; err != nil {
		httperr.NotFound(c, "Chamber not found")
		return
	}

	if chamber.ScheduleID == nil {
		httperr.NotFound(c, "No schedule found")
		return
	}

	var schedule models.Schedule
	if err := h.db.First(&schedule, *chamber.ScheduleID).Error; err != nil {
		httperr.NotFound(c, "No schedule found")
		return
	}

	httpresp.OK(c, schedule)
}
