package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shasthoseba/chamber-booking/internal/audit"
)

const auditRetention = 90 * 24 * time.Hour

// Start schedules the background maintenance jobs.
func Start(auditLogger *audit.Logger) *cron.Cron {
	c := cron.New()

	// Nightly audit-log retention sweep.
	_, err := c.AddFunc("0 3 * * *", func() {
		if err := auditLogger.PurgeOlderThan(auditRetention); err != nil {
			log.Println("audit purge error:", err)
		}
	})
	if err != nil {
		log.Println("failed to register audit purge job:", err)
	}

	c.Start()
	return c
}
