package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/config"
	"github.com/shasthoseba/chamber-booking/internal/httperr"
	"github.com/shasthoseba/chamber-booking/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type SignupRequest struct {
	Name                  string   `json:"name" binding:"required"`
	Email                 string   `json:"email" binding:"required,email"`
	ContactNumber         string   `json:"contact_number" binding:"required"`
	AuthNumber            string   `json:"auth_number"`
	Address               string   `json:"address"`
	BkashNumber           string   `json:"bkash_number"`
	IdentifyingDocumentID string   `json:"identifying_document_id"`
	PreconditionKeywords  []string `json:"precondition_keywords"`
}

type LoginRequest struct {
	// Username is an email address or a contact number.
	Username string `json:"username" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid signup payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Email already registered")
		return
	}

	h.db.Model(&models.User{}).
		Where("contact_number = ?", req.ContactNumber).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Contact number already registered")
		return
	}

	user := models.User{
		Name:                  req.Name,
		Email:                 email,
		ContactNumber:         req.ContactNumber,
		AuthNumber:            req.AuthNumber,
		Address:               req.Address,
		BkashNumber:           req.BkashNumber,
		IdentifyingDocumentID: req.IdentifyingDocumentID,
		PreconditionKeywords:  req.PreconditionKeywords,
		IsPrimaryUser:         true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Failed to create user")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User created successfully",
		"access_token": token,
		"user":         user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid login payload")
		return
	}

	username := strings.TrimSpace(req.Username)

	// Credential verification is out of scope here: a known email or
	// contact number is enough to mint a token.
	var user models.User
	if err := h.db.
		Where("email = ? OR contact_number = ?", strings.ToLower(username), username).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, "Internal error")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// No token blacklist; clients drop the token.
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
