package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/httpresp"
	"github.com/EnamulBokshi/skillbridge-server/internal/idgen"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
	ucBooking "github.com/EnamulBokshi/skillbridge-server/internal/usecase/booking"
)

type StudentHandler struct {
	db    *gorm.DB
	idgen *idgen.Generator
	views *ucBooking.BookingViews
}

func NewStudentHandler(db *gorm.DB, gen *idgen.Generator, views *ucBooking.BookingViews) *StudentHandler {
	return &StudentHandler{db: db, idgen: gen, views: views}
}

type CreateStudentRequest struct {
	UserID    string `json:"userId" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Zip       string `json:"zip"`
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "userId is required")
		return
	}

	sid, err := h.idgen.NextStudentID(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_id", "Couldn't create student profile!!")
		return
	}

	student := models.Student{
		ID:        uuid.NewString(),
		SID:       sid,
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Zip:       req.Zip,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&student).Error; err != nil {
		respondBusiness(c, err, "failed_to_create_student", "Couldn't create student profile!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, student, "Student profile created successfully!!")
}

func (h *StudentHandler) GetByID(c *gin.Context) {
	var student models.Student
	if err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		First(&student, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeStudentNotFound, "Student not found")
			return
		}
		httperr.Internal(c, "failed_to_fetch_student", "Couldn't fetch student profile!!")
		return
	}
	httpresp.OK(c, http.StatusOK, student, "Student profile fetched successfully!!")
}

func (h *StudentHandler) UpcomingBookings(c *gin.Context) {
	bookings, err := h.views.Upcoming(c.Request.Context(), ucBooking.PartyStudent, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_bookings", "Couldn't fetch upcoming bookings!!")
		return
	}
	httpresp.OK(c, http.StatusOK, bookings, "Upcoming bookings fetched successfully!!")
}

func (h *StudentHandler) CompletedBookings(c *gin.Context) {
	bookings, err := h.views.Completed(c.Request.Context(), ucBooking.PartyStudent, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_bookings", "Couldn't fetch completed bookings!!")
		return
	}
	httpresp.OK(c, http.StatusOK, bookings, "Completed bookings fetched successfully!!")
}
