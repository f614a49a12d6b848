package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/campusbook/appointment-scheduler/internal/audit"
	"github.com/campusbook/appointment-scheduler/internal/config"
	"github.com/campusbook/appointment-scheduler/internal/handlers"
	infraRepo "github.com/campusbook/appointment-scheduler/internal/infra/repository"
	"github.com/campusbook/appointment-scheduler/internal/limiter"
	"github.com/campusbook/appointment-scheduler/internal/middleware"
	"github.com/campusbook/appointment-scheduler/internal/models"
	ucBooking "github.com/campusbook/appointment-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	loginLimiter := limiter.NewLoginLimiter(
		rdb,
		cfg.LoginMaxAttempts,
		cfg.LoginAttemptWindow,
	)

	// ======================================================
	// USE CASES — BOOKING ENGINE
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateAppointmentStatus(bookingRepo, auditDispatcher)
	listUC := ucBooking.NewListAppointments(bookingRepo)
	getUC := ucBooking.NewGetAppointment(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, loginLimiter)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		updateStatusUC,
		listUC,
		getUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware())
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(db, cfg))
		{
			secured.GET("/auth/profile", authHandler.Profile)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			professorOnly := middleware.RequireRole(models.RoleProfessor)

			secured.POST("/availability", professorOnly, availabilityHandler.Create)
			secured.GET("/availability/my", professorOnly, availabilityHandler.ListMine)
			secured.GET("/availability/professor/:professorId", availabilityHandler.ListByProfessor)
			secured.GET("/availability/professor/:professorId/available", availabilityHandler.ListAvailable)
			secured.DELETE("/availability/:availabilityId", professorOnly, availabilityHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", middleware.RequireRole(models.RoleStudent), appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:appointmentId", appointmentHandler.Get)
			secured.PUT("/appointments/:appointmentId/cancel", appointmentHandler.Cancel)
			secured.PUT("/appointments/:appointmentId/status", middleware.RequireRole(models.RoleProfessor), appointmentHandler.UpdateStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
