package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/cache"
	scheduling "github.com/shasthoseba/chamber-booking/internal/domain/schedule"
	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

type ScheduleHandler struct {
	db        *gorm.DB
	repo      domain.Repository
	slotCache *cache.SlotCache
}

func NewScheduleHandler(
	db *gorm.DB,
	repo domain.Repository,
	slotCache *cache.SlotCache,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:        db,
		repo:      repo,
		slotCache: slotCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotsRequest struct {
	WeekdaySlots []string `json:"weekday_slots" binding:"required"`
	WeekendSlots []string `json:"weekend_slots" binding:"required"`
	Exceptions   []string `json:"exceptions"`
}

// ======================================================
// CREATE SLOTS
// ======================================================

func (h *ScheduleHandler) CreateSlots(c *gin.Context) {
	chamberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var chamber models.Chamber
	if err := h.db.First(&chamber, chamberID).Error; err != nil {
		httperr.NotFound(c, "Chamber not found")
		return
	}

	var req CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	raw, err := json.Marshal(scheduling.Template{
		Weekday:    req.WeekdaySlots,
		Weekend:    req.WeekendSlots,
		Exceptions: req.Exceptions,
	})
	if err != nil {
		httperr.Internal(c, "Failed to encode schedule")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		schedule := models.Schedule{
			ChamberID: chamber.ID,
			TimeSlots: models.JSONValue{Raw: raw},
		}
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}

		// A new schedule supersedes any previous one for this chamber.
		chamber.ScheduleID = &schedule.ID
		return tx.Save(&chamber).Error
	})

	if err != nil {
		httperr.Internal(c, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule created successfully"})
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *ScheduleHandler) AvailableSlots(c *gin.Context) {
	chamberID, ok := idParam(c, "id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "Missing date")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "Invalid date")
		return
	}

	doctorID, ok := uintQuery(c, "doctor_id")
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

	ctx := c.Request.Context()

	if slots, hit := h.slotCache.Get(ctx, chamber.ID, dateStr, doctorID); hit {
		c.JSON(http.StatusOK, gin.H{
			"date":            dateStr,
			"available_slots": slots,
		})
		return
	}

	var schedule models.Schedule
	if err := h.db.First(&schedule, *chamber.ScheduleID).Error; err != nil {
		httperr.NotFound(c, "No schedule found")
		return
	}

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	taken, err := h.repo.ListActiveTimesForDay(ctx, chamber.ID, doctorID, dayStart, dayEnd)
	if err != nil {
		httperr.Internal(c, "Failed to calculate slots")
		return
	}

	template := scheduling.DecodeTemplate(schedule.TimeSlots)
	slots := scheduling.AvailableSlots(template, date, taken)

	h.slotCache.Set(ctx, chamber.ID, dateStr, doctorID, slots)

	c.JSON(http.StatusOK, gin.H{
		"date":            dateStr,
		"available_slots": slots,
	})
}
