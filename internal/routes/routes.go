package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/shasthoseba/chamber-booking/internal/audit"
	"github.com/shasthoseba/chamber-booking/internal/cache"
	"github.com/shasthoseba/chamber-booking/internal/config"
	"github.com/shasthoseba/chamber-booking/internal/handlers"
	infraRepo "github.com/shasthoseba/chamber-booking/internal/infra/repository"
	"github.com/shasthoseba/chamber-booking/internal/middleware"
	"github.com/shasthoseba/chamber-booking/internal/payments"
	"github.com/shasthoseba/chamber-booking/internal/storage"
	ucVisit "github.com/shasthoseba/chamber-booking/internal/usecase/visit"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	visitRepo := infraRepo.NewVisitGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	slotCache := cache.NewSlotCache(rdb)

	documentStore := storage.NewS3DocumentStore(cfg)

	var gateway payments.Gateway
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatalf("failed to init payment gateway: %v", err)
		}
		gateway = mp
	} else {
		gateway = payments.NewOfflineGateway()
	}

	// ======================================================
	// USE CASES — VISITS
	// ======================================================
	createVisitUC := ucVisit.NewCreateVisit(visitRepo, auditDispatcher)
	updateVisitUC := ucVisit.NewUpdateVisit(visitRepo, auditDispatcher)
	cancelVisitUC := ucVisit.NewCancelVisit(visitRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db, documentStore)
	chamberHandler := handlers.NewChamberHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, visitRepo, slotCache)
	visitHandler := handlers.NewVisitHandler(
		db,
		visitRepo,
		createVisitUC,
		updateVisitUC,
		cancelVisitUC,
		documentStore,
		slotCache,
	)
	paymentHandler := handlers.NewPaymentHandler(db, gateway, auditDispatcher)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/doctors", doctorHandler.List)
	r.GET("/doctors/:id", doctorHandler.Get)

	r.GET("/chambers", chamberHandler.List)
	r.GET("/chambers/:id", chamberHandler.Get)
	r.GET("/chambers/:id/schedule", chamberHandler.GetSchedule)

	r.GET("/schedules/chamber/:id/available-slots", scheduleHandler.AvailableSlots)

	// ======================================================
	// SECURED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/auth/logout", authHandler.Logout)

		secured.GET("/users/:id", userHandler.Get)
		secured.PUT("/users/:id", userHandler.Update)
		secured.GET("/users/:id/dependents", userHandler.ListDependents)
		secured.POST("/users/:id/dependents", userHandler.AddDependent)

		secured.POST("/doctors", doctorHandler.Create)
		secured.PUT("/doctors/:id", doctorHandler.Update)
		secured.PUT("/doctors/:id/photo", doctorHandler.UploadPhoto)

		secured.POST("/chambers", chamberHandler.Create)
		secured.PUT("/chambers/:id", chamberHandler.Update)

		secured.POST("/schedules/chamber/:id/slots", scheduleHandler.CreateSlots)

		// ------------------------------
		// VISITS
		// ------------------------------
		secured.GET("/visits", visitHandler.List)
		secured.GET("/visits/:id", visitHandler.Get)
		secured.POST("/visits", visitHandler.Create)
		secured.PUT("/visits/:id", visitHandler.Update)
		secured.DELETE("/visits/:id", visitHandler.Cancel)

		secured.POST("/visits/:id/documents", visitHandler.UploadDocument)
		secured.GET("/visits/:id/documents", visitHandler.ListDocuments)
		secured.POST("/visits/:id/prescription", visitHandler.CreatePrescription)
		secured.GET("/visits/:id/prescription", visitHandler.GetPrescription)

		secured.POST("/payments/deposit", paymentHandler.Deposit)
		secured.POST("/payments/refund", paymentHandler.Refund)
	}
}
