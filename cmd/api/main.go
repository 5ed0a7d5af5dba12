package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shasthoseba/chamber-booking/internal/audit"
	"github.com/shasthoseba/chamber-booking/internal/config"
	dbpkg "github.com/shasthoseba/chamber-booking/internal/db"
	"github.com/shasthoseba/chamber-booking/internal/jobs"
	"github.com/shasthoseba/chamber-booking/internal/middleware"
	"github.com/shasthoseba/chamber-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	jobs.Start(audit.New(db))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
