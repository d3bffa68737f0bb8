package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/httpresp"
	"github.com/EnamulBokshi/skillbridge-server/internal/pagination"
	ucBooking "github.com/EnamulBokshi/skillbridge-server/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	confirmUC  *ucBooking.ConfirmBooking
	rejectUC   *ucBooking.RejectBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	expireUC   *ucBooking.ExpirePastBookings
	listUC     *ucBooking.ListBookings
	statsUC    *ucBooking.BookingStats
	repo       domain.Repository
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	rejectUC *ucBooking.RejectBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	expireUC *ucBooking.ExpirePastBookings,
	listUC *ucBooking.ListBookings,
	statsUC *ucBooking.BookingStats,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		confirmUC:  confirmUC,
		rejectUC:   rejectUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		expireUC:   expireUC,
		listUC:     listUC,
		statsUC:    statsUC,
		repo:       repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SlotID    string `json:"slotId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "slotId and studentId are required")
		return
	}

	booking, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SlotID:    req.SlotID,
		StudentID: req.StudentID,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_booking", "Couldn't create booking!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, booking, "Booking created successfully!!")
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	booking, err := h.confirmUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_confirm_booking", "Couldn't confirm booking!!")
		return
	}
	httpresp.OK(c, http.StatusOK, booking, "Booking confirmed successfully!!")
}

func (h *BookingHandler) Reject(c *gin.Context) {
	booking, err := h.rejectUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_reject_booking", "Couldn't reject booking!!")
		return
	}
	httpresp.OK(c, http.StatusOK, booking, "Booking rejected successfully!!")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_cancel_booking", "Couldn't cancel booking!!")
		return
	}
	httpresp.OK(c, http.StatusOK, booking, "Booking cancelled successfully!!")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	booking, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_complete_booking", "Couldn't complete booking!!")
		return
	}
	httpresp.OK(c, http.StatusOK, booking, "Booking completed successfully!!")
}

// ======================================================
// READS
// ======================================================

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.repo.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_booking", "Couldn't fetch booking!!")
		return
	}
	httpresp.OK(c, http.StatusOK, booking, "Booking fetched successfully!!")
}

func (h *BookingHandler) List(c *gin.Context) {
	f := domain.Filter{
		StudentID: c.Query("studentId"),
		TutorID:   c.Query("tutorId"),
		SlotID:    c.Query("slotId"),
		Status:    c.Query("status"),
		Date:      c.Query("date"),
		Page: pagination.Normalize(
			c.Query("page"),
			c.Query("limit"),
			c.Query("sortBy"),
			c.Query("orderBy"),
		),
	}

	if f.Status != "" && !domain.IsValid(domain.Status(f.Status)) {
		httperr.BadRequest(c, "invalid_status", "Unknown booking status")
		return
	}

	page, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_bookings", "Couldn't fetch bookings!!")
		return
	}

	httpresp.OK(c, http.StatusOK, page, "Bookings fetched successfully!!")
}

func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_stats", "Couldn't fetch booking stats!!")
		return
	}
	httpresp.OK(c, http.StatusOK, stats, "Booking stats fetched successfully!!")
}

// ======================================================
// MAINTENANCE
// ======================================================

func (h *BookingHandler) ExpirePast(c *gin.Context) {
	removed, err := h.expireUC.Execute(c.Request.Context())
	if err != nil {
		respondBusiness(c, err, "failed_to_expire_bookings", "Couldn't expire bookings!!")
		return
	}
	httpresp.OK(c, http.StatusOK, gin.H{"removed": removed}, "Expired bookings cleaned up successfully!!")
}
