package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/httpresp"
	infraRepo "github.com/EnamulBokshi/skillbridge-server/internal/infra/repository"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
	"github.com/EnamulBokshi/skillbridge-server/internal/pagination"
)

type SlotHandler struct {
	repo *infraRepo.SlotGormRepository
}

func NewSlotHandler(repo *infraRepo.SlotGormRepository) *SlotHandler {
	return &SlotHandler{repo: repo}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	TutorID    string  `json:"tutorId" binding:"required"`
	SubjectID  string  `json:"subjectId" binding:"required"`
	Date       string  `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime  string  `json:"startTime" binding:"required"` // RFC 3339
	EndTime    string  `json:"endTime" binding:"required"`   // RFC 3339
	SlotPrice  float64 `json:"slotPrice"`
	IsFeatured bool    `json:"isFeatured"`
	IsFree     bool    `json:"isFree"`
}

type UpdateSlotRequest struct {
	Date       *string  `json:"date"`
	StartTime  *string  `json:"startTime"`
	EndTime    *string  `json:"endTime"`
	SlotPrice  *float64 `json:"slotPrice"`
	IsFeatured *bool    `json:"isFeatured"`
	IsFree     *bool    `json:"isFree"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required slot fields")
		return
	}

	date, err1 := time.Parse("2006-01-02", req.Date)
	start, err2 := time.Parse(time.RFC3339, req.StartTime)
	end, err3 := time.Parse(time.RFC3339, req.EndTime)
	if err1 != nil || err2 != nil || err3 != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Date or time is not valid")
		return
	}
	if !end.After(start) {
		httperr.BadRequest(c, "invalid_time_window", "End time must be after start time")
		return
	}

	slot := &models.Slot{
		ID:         uuid.NewString(),
		TutorID:    req.TutorID,
		SubjectID:  req.SubjectID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		SlotPrice:  req.SlotPrice,
		IsBooked:   false,
		IsFeatured: req.IsFeatured,
		IsFree:     req.IsFree,
	}

	if err := h.repo.Create(c.Request.Context(), slot); err != nil {
		respondBusiness(c, err, "failed_to_create_slot", "Couldn't create slot!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, slot, "Slot created successfully!!")
}

// ======================================================
// READS
// ======================================================

func (h *SlotHandler) GetByID(c *gin.Context) {
	slot, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_slot", "Couldn't fetch slot!!")
		return
	}
	httpresp.OK(c, http.StatusOK, slot, "Slot fetched successfully!!")
}

func (h *SlotHandler) List(c *gin.Context) {
	f := infraRepo.SlotFilter{
		TutorID:    c.Query("tutorId"),
		SubjectID:  c.Query("subjectId"),
		Date:       c.Query("date"),
		IsFree:     boolQuery(c, "isFree"),
		IsFeatured: boolQuery(c, "isFeatured"),
		IsBooked:   boolQuery(c, "isBooked"),
		Page: pagination.Normalize(
			c.Query("page"),
			c.Query("limit"),
			c.Query("sortBy"),
			c.Query("orderBy"),
		),
	}

	slots, total, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_slots", "Couldn't fetch slots!!")
		return
	}

	httpresp.List(c, http.StatusOK, slots, pagination.NewMeta(f.Page, total), "Slots fetched successfully!!")
}

// ======================================================
// UPDATE / DELETE (unclaimed slots only)
// ======================================================

func (h *SlotHandler) Update(c *gin.Context) {
	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot payload")
		return
	}

	in := infraRepo.SlotUpdate{
		SlotPrice:  req.SlotPrice,
		IsFeatured: req.IsFeatured,
		IsFree:     req.IsFree,
	}

	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date is not valid")
			return
		}
		in.Date = &d
	}
	if req.StartTime != nil {
		t, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Start time is not valid")
			return
		}
		in.StartTime = &t
	}
	if req.EndTime != nil {
		t, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "End time is not valid")
			return
		}
		in.EndTime = &t
	}

	slot, err := h.repo.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondBusiness(c, err, "failed_to_update_slot", "Couldn't update slot!!")
		return
	}

	httpresp.OK(c, http.StatusOK, slot, "Slot updated successfully!!")
}

func (h *SlotHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBusiness(c, err, "failed_to_delete_slot", "Couldn't delete slot!!")
		return
	}
	httpresp.OK(c, http.StatusOK, nil, "Slot deleted successfully!!")
}

// ======================================================
// HELPERS
// ======================================================

func boolQuery(c *gin.Context, key string) *bool {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
