package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/httpresp"
	"github.com/EnamulBokshi/skillbridge-server/internal/idgen"
	"github.com/EnamulBokshi/skillbridge-server/internal/middleware"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
	"github.com/EnamulBokshi/skillbridge-server/internal/storage"
	ucBooking "github.com/EnamulBokshi/skillbridge-server/internal/usecase/booking"
)

type TutorHandler struct {
	db       *gorm.DB
	idgen    *idgen.Generator
	uploader *storage.Uploader
	views    *ucBooking.BookingViews
}

func NewTutorHandler(
	db *gorm.DB,
	gen *idgen.Generator,
	uploader *storage.Uploader,
	views *ucBooking.BookingViews,
) *TutorHandler {
	return &TutorHandler{
		db:       db,
		idgen:    gen,
		uploader: uploader,
		views:    views,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTutorRequest struct {
	UserID          string `json:"userId" binding:"required"`
	CategoryID      string `json:"categoryId" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Bio             string `json:"bio"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Zip             string `json:"zip"`
	ExperienceYears int    `json:"experienceYears"`
	ExpertiseAreas  string `json:"expertiseAreas"`
}

type UpdateTutorRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Bio             *string `json:"bio"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Zip             *string `json:"zip"`
	ExperienceYears *int    `json:"experienceYears"`
	ExpertiseAreas  *string `json:"expertiseAreas"`
	CategoryID      *string `json:"categoryId"`
}

// ======================================================
// CREATE (profile + user role flip, one transaction)
// ======================================================

func (h *TutorHandler) Create(c *gin.Context) {
	var req CreateTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required tutor fields")
		return
	}

	tid, err := h.idgen.NextTutorID(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_id", "Couldn't create tutor profile!!")
		return
	}

	tutor := models.TutorProfile{
		ID:              uuid.NewString(),
		TID:             tid,
		UserID:          req.UserID,
		CategoryID:      req.CategoryID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Bio:             req.Bio,
		Phone:           req.Phone,
		Address:         req.Address,
		Zip:             req.Zip,
		ExperienceYears: req.ExperienceYears,
		ExpertiseAreas:  req.ExpertiseAreas,
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tutor).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", req.UserID).
			Updates(map[string]any{
				"is_associate": true,
				"role":         middleware.RoleTutor,
			}).Error
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_tutor", "Couldn't create tutor profile!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, tutor, "Tutor profile created successfully!!")
}

// ======================================================
// READS
// ======================================================

func (h *TutorHandler) GetByID(c *gin.Context) {
	var tutor models.TutorProfile
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Category").
		Preload("User").
		First(&tutor, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeTutorNotFound, "Tutor profile not found")
			return
		}
		httperr.Internal(c, "failed_to_fetch_tutor", "Couldn't fetch tutor profile!!")
		return
	}
	httpresp.OK(c, http.StatusOK, tutor, "Tutor profile fetched successfully!!")
}

// Dashboard reads the running ledgers off the profile row; nothing here
// recomputes earnings from booking history.
func (h *TutorHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	tutorID := c.Param("id")

	var tutor models.TutorProfile
	if err := h.db.WithContext(ctx).
		First(&tutor, "id = ?", tutorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeTutorNotFound, "Tutor profile not found")
			return
		}
		httperr.Internal(c, "failed_to_fetch_tutor", "Couldn't fetch dashboard!!")
		return
	}

	var totalBookings, completedBookings int64
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("slots.tutor_id = ?", tutorID).
		Count(&totalBookings).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_stats", "Couldn't fetch dashboard!!")
		return
	}
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("slots.tutor_id = ? AND bookings.status = ?", tutorID, string(domain.StatusCompleted)).
		Count(&completedBookings).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_stats", "Couldn't fetch dashboard!!")
		return
	}

	httpresp.OK(c, http.StatusOK, gin.H{
		"totalEarnings":     tutor.TotalEarned,
		"totalBookings":     totalBookings,
		"completedBookings": completedBookings,
		"averageRating":     tutor.AvgRating,
		"totalReviews":      tutor.TotalReviews,
	}, "Dashboard stats fetched successfully!!")
}

func (h *TutorHandler) UpcomingBookings(c *gin.Context) {
	bookings, err := h.views.Upcoming(c.Request.Context(), ucBooking.PartyTutor, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_bookings", "Couldn't fetch upcoming bookings!!")
		return
	}
	httpresp.OK(c, http.StatusOK, bookings, "Upcoming bookings fetched successfully!!")
}

func (h *TutorHandler) CompletedBookings(c *gin.Context) {
	bookings, err := h.views.Completed(c.Request.Context(), ucBooking.PartyTutor, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_bookings", "Couldn't fetch completed bookings!!")
		return
	}
	httpresp.OK(c, http.StatusOK, bookings, "Completed bookings fetched successfully!!")
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *TutorHandler) Update(c *gin.Context) {
	var req UpdateTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid tutor payload")
		return
	}

	updates := map[string]any{}
	setIf(updates, "first_name", req.FirstName)
	setIf(updates, "last_name", req.LastName)
	setIf(updates, "bio", req.Bio)
	setIf(updates, "phone", req.Phone)
	setIf(updates, "address", req.Address)
	setIf(updates, "zip", req.Zip)
	setIf(updates, "expertise_areas", req.ExpertiseAreas)
	setIf(updates, "category_id", req.CategoryID)
	if req.ExperienceYears != nil {
		updates["experience_years"] = *req.ExperienceYears
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.TutorProfile{}).
		Where("id = ?", c.Param("id")).
		Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_tutor", "Couldn't update tutor profile!!")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeTutorNotFound, "Tutor profile not found")
		return
	}

	var tutor models.TutorProfile
	h.db.WithContext(c.Request.Context()).First(&tutor, "id = ?", c.Param("id"))
	httpresp.OK(c, http.StatusOK, tutor, "Tutor profile updated successfully!!")
}

func (h *TutorHandler) Delete(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Delete(&models.TutorProfile{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_tutor", "Couldn't delete tutor profile!!")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeTutorNotFound, "Tutor profile not found")
		return
	}
	httpresp.OK(c, http.StatusOK, nil, "Tutor profile deleted successfully!!")
}

// ======================================================
// AVATAR
// ======================================================

func (h *TutorHandler) UploadAvatar(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_not_configured", "Image storage is not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Couldn't read uploaded image!!")
		return
	}
	defer src.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), "tutors/"+c.Param("id"), src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Couldn't upload image!!")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.TutorProfile{}).
		Where("id = ?", c.Param("id")).
		Update("profile_picture", url)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_tutor", "Couldn't save profile picture!!")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeTutorNotFound, "Tutor profile not found")
		return
	}

	httpresp.OK(c, http.StatusOK, gin.H{"profilePicture": url}, "Profile picture uploaded successfully!!")
}

// ======================================================
// HELPERS
// ======================================================

func setIf(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}
