package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/httpresp"
	ucReview "github.com/EnamulBokshi/skillbridge-server/internal/usecase/review"
)

type ReviewHandler struct {
	createUC *ucReview.CreateReview
	repo     ucReview.Repository
}

func NewReviewHandler(createUC *ucReview.CreateReview, repo ucReview.Repository) *ReviewHandler {
	return &ReviewHandler{createUC: createUC, repo: repo}
}

type CreateReviewRequest struct {
	TutorID   string `json:"tutorId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "tutorId, studentId and rating are required")
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		TutorID:   req.TutorID,
		StudentID: req.StudentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_review", "Couldn't create review!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, review, "Review created successfully!!")
}

func (h *ReviewHandler) ListByTutor(c *gin.Context) {
	reviews, err := h.repo.ListByTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_fetch_reviews", "Couldn't fetch reviews!!")
		return
	}
	httpresp.OK(c, http.StatusOK, reviews, "Reviews fetched successfully!!")
}
