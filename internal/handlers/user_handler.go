package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/httpresp"
	"github.com/shasthoseba/chamber-booking/internal/middleware"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateUserRequest struct {
	Name                  *string   `json:"name"`
	ContactNumber         *string   `json:"contact_number"`
	Email                 *string   `json:"email"`
	Address               *string   `json:"address"`
	BkashNumber           *string   `json:"bkash_number"`
	IdentifyingDocumentID *string   `json:"identifying_document_id"`
	PreconditionKeywords  *[]string `json:"precondition_keywords"`
}

type AddDependentRequest struct {
	Name                 string   `json:"name" binding:"required"`
	ContactNumber        string   `json:"contact_number"`
	Email                string   `json:"email"`
	PreconditionKeywords []string `json:"precondition_keywords"`
}

// ======================================================
// PROFILE
// ======================================================

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if requesterID != userID {
		httperr.Forbidden(c, "Unauthorized")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ContactNumber != nil {
		user.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.BkashNumber != nil {
		user.BkashNumber = *req.BkashNumber
	}
	if req.IdentifyingDocumentID != nil {
		user.IdentifyingDocumentID = *req.IdentifyingDocumentID
	}
	if req.PreconditionKeywords != nil {
		user.PreconditionKeywords = *req.PreconditionKeywords
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "Failed to update user")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// DEPENDENTS
// ======================================================

func (h *UserHandler) ListDependents(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	var dependents []models.User
	if err := h.db.
		Where("primary_user_id = ?", user.ID).
		Order("id ASC").
		Find(&dependents).Error; err != nil {
		httperr.Internal(c, "Failed to list dependents")
		return
	}

	httpresp.List(c, dependents)
}

func (h *UserHandler) AddDependent(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if requesterID != userID {
		httperr.Forbidden(c, "Unauthorized")
		return
	}

	var req AddDependentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid payload")
		return
	}

	primaryID := userID
	dependent := models.User{
		Name:                 req.Name,
		ContactNumber:        req.ContactNumber,
		Email:                req.Email,
		PreconditionKeywords: req.PreconditionKeywords,
		IsPrimaryUser:        false,
		PrimaryUserID:        &primaryID,
	}

	if err := h.db.Create(&dependent).Error; err != nil {
		httperr.Internal(c, "Failed to create dependent")
		return
	}

	c.JSON(http.StatusCreated, dependent)
}
