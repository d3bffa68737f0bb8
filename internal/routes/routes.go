package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EnamulBokshi/skillbridge-server/internal/audit"
	"github.com/EnamulBokshi/skillbridge-server/internal/cache"
	"github.com/EnamulBokshi/skillbridge-server/internal/config"
	"github.com/EnamulBokshi/skillbridge-server/internal/handlers"
	"github.com/EnamulBokshi/skillbridge-server/internal/idgen"
	infraRepo "github.com/EnamulBokshi/skillbridge-server/internal/infra/repository"
	"github.com/EnamulBokshi/skillbridge-server/internal/middleware"
	"github.com/EnamulBokshi/skillbridge-server/internal/payments"
	"github.com/EnamulBokshi/skillbridge-server/internal/storage"
	ucBooking "github.com/EnamulBokshi/skillbridge-server/internal/usecase/booking"
	ucReview "github.com/EnamulBokshi/skillbridge-server/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotRepo := infraRepo.NewSlotGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	idGenerator := idgen.New(db)

	var slotCache ucBooking.Cache
	if cfg.RedisAddr != "" {
		slotCache = cache.NewSlotLock(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	var checkout ucBooking.Payments
	if cfg.MPAccessToken != "" {
		client, err := payments.New(cfg.MPAccessToken)
		if err != nil {
			log.Printf("payments disabled: %v", err)
		} else {
			checkout = client
		}
	}

	var uploader *storage.Uploader
	if cfg.S3Bucket != "" {
		uploader = storage.NewUploader(cfg)
	}

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		slotCache,
		auditDispatcher,
		cfg.SlotHoldTTL,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		checkout,
		auditDispatcher,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	expireBookingsUC := ucBooking.NewExpirePastBookings(bookingRepo)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	bookingStatsUC := ucBooking.NewBookingStats(bookingRepo)
	bookingViews := ucBooking.NewBookingViews(bookingRepo)

	// ======================================================
	// USE CASES: REVIEWS
	// ======================================================
	createReviewUC := ucReview.NewCreateReview(reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		rejectBookingUC,
		cancelBookingUC,
		completeBookingUC,
		expireBookingsUC,
		listBookingsUC,
		bookingStatsUC,
		bookingRepo,
	)

	slotHandler := handlers.NewSlotHandler(slotRepo)
	reviewHandler := handlers.NewReviewHandler(createReviewUC, reviewRepo)
	tutorHandler := handlers.NewTutorHandler(db, idGenerator, uploader, bookingViews)
	studentHandler := handlers.NewStudentHandler(db, idGenerator, bookingViews)
	catalogHandler := handlers.NewCatalogHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/subjects", catalogHandler.ListSubjects)
		api.GET("/slots", slotHandler.List)
		api.GET("/slots/:id", slotHandler.GetByID)
		api.GET("/tutors/:id", tutorHandler.GetByID)
		api.GET("/tutors/:id/reviews", reviewHandler.ListByTutor)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/students", studentHandler.Create)
			secured.GET("/students/:id", studentHandler.GetByID)
			secured.GET("/students/:id/bookings/upcoming", studentHandler.UpcomingBookings)
			secured.GET("/students/:id/bookings/completed", studentHandler.CompletedBookings)

			secured.POST("/tutors", tutorHandler.Create)
			secured.PATCH("/tutors/:id", tutorHandler.Update)
			secured.DELETE("/tutors/:id", tutorHandler.Delete)
			secured.GET("/tutors/:id/dashboard", tutorHandler.Dashboard)
			secured.GET("/tutors/:id/bookings/upcoming", tutorHandler.UpcomingBookings)
			secured.GET("/tutors/:id/bookings/completed", tutorHandler.CompletedBookings)
			secured.POST("/tutors/:id/avatar", tutorHandler.UploadAvatar)

			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// BOOKING LIFECYCLE (ROLE-GATED)
		// ------------------------------
		students := api.Group("/")
		students.Use(middleware.AuthMiddleware(cfg, middleware.RoleStudent))
		{
			students.POST("/bookings", bookingHandler.Create)
			students.POST("/reviews", reviewHandler.Create)
		}

		tutors := api.Group("/")
		tutors.Use(middleware.AuthMiddleware(cfg, middleware.RoleTutor))
		{
			tutors.POST("/slots", slotHandler.Create)
			tutors.PATCH("/slots/:id", slotHandler.Update)
			tutors.DELETE("/slots/:id", slotHandler.Delete)

			tutors.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			tutors.PATCH("/bookings/:id/reject", bookingHandler.Reject)
			tutors.PATCH("/bookings/:id/complete", bookingHandler.Complete)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg, middleware.RoleAdmin))
		{
			admin.POST("/categories", catalogHandler.CreateCategory)
			admin.POST("/subjects", catalogHandler.CreateSubject)
			admin.GET("/bookings/stats", bookingHandler.Stats)
			admin.POST("/bookings/expire", bookingHandler.ExpirePast)
		}
	}
}
