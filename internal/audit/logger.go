package audit

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

// PurgeOlderThan deletes audit entries past the retention window.
func (l *Logger) PurgeOlderThan(retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	return l.db.
		Where("created_at < ?", cutoff).
		Delete(&models.AuditLog{}).Error
}
