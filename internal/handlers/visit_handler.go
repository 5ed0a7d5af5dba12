package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/cache"
	domain "github.com/shasthoseba/chamber-booking/internal/domain/visit"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/httpresp"
	"github.com/shasthoseba/chamber-booking/internal/middleware"
	"github.com/shasthoseba/chamber-booking/internal/models"
	"github.com/shasthoseba/chamber-booking/internal/storage"
	ucVisit "github.com/shasthoseba/chamber-booking/internal/usecase/visit"
)

// ======================================================
// HANDLER
// ======================================================

type VisitHandler struct {
	db   *gorm.DB
	repo domain.Repository

	createUC *ucVisit.CreateVisit
	updateUC *ucVisit.UpdateVisit
	cancelUC *ucVisit.CancelVisit

	store     storage.DocumentStore
	slotCache *cache.SlotCache
}

func NewVisitHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucVisit.CreateVisit,
	updateUC *ucVisit.UpdateVisit,
	cancelUC *ucVisit.CancelVisit,
	store storage.DocumentStore,
	slotCache *cache.SlotCache,
) *VisitHandler {
	return &VisitHandler{
		db:        db,
		repo:      repo,
		createUC:  createUC,
		updateUC:  updateUC,
		cancelUC:  cancelUC,
		store:     store,
		slotCache: slotCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateVisitRequest struct {
	ChamberID       uint    `json:"chamber_id" binding:"required"`
	DoctorID        uint    `json:"doctor_id" binding:"required"`
	PatientUserID   *uint   `json:"patient_user_id"`
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	BookingRemarks  string  `json:"booking_remarks"`
	VisitCost       float64 `json:"visit_cost"`
}

type UpdateVisitRequest struct {
	AppointmentTime *string  `json:"appointment_time"`
	BookingRemarks  *string  `json:"booking_remarks"`
	VisitStatus     *string  `json:"visit_status"`
	VisitCost       *float64 `json:"visit_cost"`
	CancelReason    *string  `json:"cancel_reason"`
}

type CancelVisitRequest struct {
	CancelReason string `json:"cancel_reason"`
}

type UploadDocumentRequest struct {
	DocumentID   string `json:"document_id"`
	DocumentType string `json:"document_type" binding:"required"`
	ContentType  string `json:"content_type"`
	// Optional base64 payload handed to the document store.
	Content string `json:"content"`
}

// ======================================================
// HELPERS
// ======================================================

// slotDatesTouched returns the distinct appointment dates whose cached
// availability a booking mutation staled. A cross-day reschedule frees a
// slot on the old date too.
func slotDatesTouched(prev *time.Time, next time.Time) []string {
	dates := []string{next.Format("2006-01-02")}
	if prev != nil {
		if d := prev.Format("2006-01-02"); d != dates[0] {
			dates = append(dates, d)
		}
	}
	return dates
}

func (h *VisitHandler) invalidateSlotDates(c *gin.Context, chamberID uint, dates []string) {
	for _, d := range dates {
		h.slotCache.Invalidate(c.Request.Context(), chamberID, d)
	}
}

// storeVisitDocument materializes an upload request into document metadata,
// pushing the payload to the document store when one is attached.
func storeVisitDocument(
	ctx context.Context,
	store storage.DocumentStore,
	visitID uint,
	req UploadDocumentRequest,
) (models.VisitDocument, error) {

	doc := models.VisitDocument{
		ID:         req.DocumentID,
		Type:       req.DocumentType,
		UploadTime: time.Now().UTC(),
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	if req.Content != "" {
		body, err := base64.StdEncoding.DecodeString(req.Content)
		if err != nil {
			return models.VisitDocument{}, httperr.ErrBusiness("invalid_document_content")
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("visits/%d/%s", visitID, doc.ID)
		url, err := store.Put(ctx, key, contentType, body)
		if err != nil {
			return models.VisitDocument{}, err
		}
		doc.URL = url
	}

	return doc, nil
}

// ======================================================
// LIST / GET
// ======================================================

func (h *VisitHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	userID, ok := uintQuery(c, "user_id")
	if !ok {
		return
	}
	filter.UserID = userID

	doctorID, ok := uintQuery(c, "doctor_id")
	if !ok {
		return
	}
	filter.DoctorID = doctorID

	filter.Status = c.Query("status")

	if from := c.Query("from_date"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			httperr.BadRequest(c, "Invalid from_date")
			return
		}
		filter.FromDate = &t
	}

	if to := c.Query("to_date"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			httperr.BadRequest(c, "Invalid to_date")
			return
		}
		filter.ToDate = &t
	}

	visits, err := h.repo.ListVisits(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "Failed to list visits")
		return
	}

	httpresp.List(c, visits)
}

func (h *VisitHandler) Get(c *gin.Context) {
	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	v, err := h.repo.GetVisitByID(c.Request.Context(), visitID)
	if err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	httpresp.OK(c, v)
}

// ======================================================
// CREATE
// ======================================================

func (h *VisitHandler) Create(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	v, err := h.createUC.Execute(c.Request.Context(), ucVisit.CreateVisitInput{
		BookingUserID:   requesterID,
		ChamberID:       req.ChamberID,
		DoctorID:        req.DoctorID,
		PatientUserID:   req.PatientUserID,
		AppointmentTime: req.AppointmentTime,
		BookingRemarks:  req.BookingRemarks,
		VisitCost:       req.VisitCost,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "doctor_not_found"):
			httperr.NotFound(c, "Doctor not found")
		case httperr.IsBusiness(err, "chamber_not_found"):
			httperr.NotFound(c, "Chamber not found")
		case httperr.IsBusiness(err, "patient_not_found"):
			httperr.NotFound(c, "Patient not found")
		case httperr.IsBusiness(err, "patient_forbidden"):
			httperr.Forbidden(c, "Unauthorized to book for this patient")
		case httperr.IsBusiness(err, "invalid_appointment_time"):
			httperr.BadRequest(c, "Invalid appointment time")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.BadRequest(c, "Time slot not available")
		default:
			httperr.Internal(c, "Failed to create visit")
		}
		return
	}

	h.invalidateSlotDates(c, v.ChamberID, slotDatesTouched(nil, v.AppointmentTime))

	c.JSON(http.StatusCreated, v)
}

// ======================================================
// UPDATE / RESCHEDULE
// ======================================================

func (h *VisitHandler) Update(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	// Rescheduling frees the old slot, so remember which day it was on.
	var prevTime *time.Time
	if req.AppointmentTime != nil {
		if prev, err := h.repo.GetVisitByID(c.Request.Context(), visitID); err == nil {
			t := prev.AppointmentTime
			prevTime = &t
		}
	}

	v, err := h.updateUC.Execute(c.Request.Context(), ucVisit.UpdateVisitInput{
		RequesterID:     requesterID,
		VisitID:         visitID,
		AppointmentTime: req.AppointmentTime,
		BookingRemarks:  req.BookingRemarks,
		VisitStatus:     req.VisitStatus,
		VisitCost:       req.VisitCost,
		CancelReason:    req.CancelReason,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "visit_not_found"):
			httperr.NotFound(c, "Visit not found")
		case httperr.IsBusiness(err, "not_booking_owner"):
			httperr.Forbidden(c, "Unauthorized")
		case httperr.IsBusiness(err, "invalid_appointment_time"):
			httperr.BadRequest(c, "Invalid appointment time")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.BadRequest(c, "New time slot not available")
		default:
			httperr.Internal(c, "Failed to update visit")
		}
		return
	}

	h.invalidateSlotDates(c, v.ChamberID, slotDatesTouched(prevTime, v.AppointmentTime))

	httpresp.OK(c, v)
}

// ======================================================
// CANCEL
// ======================================================

func (h *VisitHandler) Cancel(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CancelVisitRequest
	_ = c.ShouldBindJSON(&req)

	v, err := h.cancelUC.Execute(c.Request.Context(), requesterID, visitID, req.CancelReason)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "visit_not_found"):
			httperr.NotFound(c, "Visit not found")
		case httperr.IsBusiness(err, "not_booking_owner"):
			httperr.Forbidden(c, "Unauthorized")
		default:
			httperr.Internal(c, "Failed to cancel visit")
		}
		return
	}

	// Cancelling releases the slot, so the day's cache is stale.
	h.invalidateSlotDates(c, v.ChamberID, slotDatesTouched(nil, v.AppointmentTime))

	c.JSON(http.StatusOK, gin.H{"message": "Visit cancelled successfully"})
}

// ======================================================
// DOCUMENTS (metadata; bytes go to the document store)
// ======================================================

func (h *VisitHandler) UploadDocument(c *gin.Context) {
	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var v models.Visit
	if err := h.db.First(&v, visitID).Error; err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	doc, err := storeVisitDocument(c.Request.Context(), h.store, v.ID, req)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_document_content") {
			httperr.BadRequest(c, "Invalid document content")
			return
		}
		httperr.Internal(c, "Failed to store document")
		return
	}

	v.VisitDocumentIDs = append(v.VisitDocumentIDs, doc)

	if err := h.db.Save(&v).Error; err != nil {
		httperr.Internal(c, "Failed to update visit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document uploaded successfully"})
}

func (h *VisitHandler) ListDocuments(c *gin.Context) {
	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var v models.Visit
	if err := h.db.First(&v, visitID).Error; err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	docs := v.VisitDocumentIDs
	if docs == nil {
		docs = models.DocumentList{}
	}

	httpresp.OK(c, docs)
}

// ======================================================
// PRESCRIPTION
// ======================================================

func (h *VisitHandler) CreatePrescription(c *gin.Context) {
	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var v models.Visit
	if err := h.db.First(&v, visitID).Error; err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	var body json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || len(body) == 0 {
		httperr.BadRequest(c, "Invalid prescription payload")
		return
	}

	domain.Complete(&v, models.JSONValue{Raw: body})

	if err := h.db.Save(&v).Error; err != nil {
		httperr.Internal(c, "Failed to update visit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prescription created successfully"})
}

func (h *VisitHandler) GetPrescription(c *gin.Context) {
	visitID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var v models.Visit
	if err := h.db.First(&v, visitID).Error; err != nil {
		httperr.NotFound(c, "Visit not found")
		return
	}

	if v.VisitPrescription.IsZero() {
		httperr.NotFound(c, "No prescription found")
		return
	}

	httpresp.OK(c, v.VisitPrescription)
}
