package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenespa/booking-api/internal/audit"
	"github.com/serenespa/booking-api/internal/config"
	"github.com/serenespa/booking-api/internal/handlers"
	infraRepo "github.com/serenespa/booking-api/internal/infra/repository"
	"github.com/serenespa/booking-api/internal/middleware"
	"github.com/serenespa/booking-api/internal/session"
	ucBooking "github.com/serenespa/booking-api/internal/usecase/booking"
	ucCustomer "github.com/serenespa/booking-api/internal/usecase/customer"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucCustomer.NewRegister(customerRepo, auditDispatcher)
	authenticateUC := ucCustomer.NewAuthenticate(customerRepo)
	updateProfileUC := ucCustomer.NewUpdateProfile(customerRepo, auditDispatcher)
	deleteProfileUC := ucCustomer.NewDeleteProfile(customerRepo, auditDispatcher)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	occupiedSlotsUC := ucBooking.NewOccupiedSlots(bookingRepo)
	listBookingsUC := ucBooking.NewListCustomerBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	homeHandler := handlers.NewHomeHandler(customerRepo, sessions)
	authHandler := handlers.NewAuthHandler(registerUC, authenticateUC, sessions, cfg)
	profileHandler := handlers.NewProfileHandler(
		customerRepo,
		updateProfileUC,
		deleteProfileUC,
		listBookingsUC,
		sessions,
	)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		deleteBookingUC,
		occupiedSlotsUC,
	)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.GET("/", homeHandler.Index)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/get_booked_slots", bookingHandler.BookedSlots)

	// ======================================================
	// PROTECTED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.RequireSession(sessions))
	{
		secured.GET("/profile", profileHandler.Get)
		secured.POST("/profile", profileHandler.Update)
		secured.POST("/delete_profile", profileHandler.Delete)

		secured.GET("/booking", bookingHandler.Availability)
		secured.POST("/booking", bookingHandler.Create)
		secured.POST("/delete_booking/:id", bookingHandler.Delete)
	}
}
