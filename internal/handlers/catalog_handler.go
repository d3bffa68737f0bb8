package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/httpresp"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// CatalogHandler serves the category/subject reference data slots hang off.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type CreateSubjectRequest struct {
	CategoryID  string `json:"categoryId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	CreditHours int    `json:"creditHours"`
	Description string `json:"description"`
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name and slug are required")
		return
	}

	category := models.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&category).Error; err != nil {
		respondBusiness(c, err, "failed_to_create_category", "Couldn't create category!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, category, "Category created successfully!!")
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_categories", "Couldn't fetch categories!!")
		return
	}
	httpresp.OK(c, http.StatusOK, categories, "Categories fetched successfully!!")
}

func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "categoryId, name and slug are required")
		return
	}

	subject := models.Subject{
		ID:          uuid.NewString(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		CreditHours: req.CreditHours,
		Description: req.Description,
		IsActive:    true,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&subject).Error; err != nil {
		respondBusiness(c, err, "failed_to_create_subject", "Couldn't create subject!!")
		return
	}

	httpresp.OK(c, http.StatusCreated, subject, "Subject created successfully!!")
}

func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("Category").
		Where("is_active = ?", true)
	if categoryID := c.Query("categoryId"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var subjects []models.Subject
	if err := q.Order("name ASC").Find(&subjects).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_subjects", "Couldn't fetch subjects!!")
		return
	}
	httpresp.OK(c, http.StatusOK, subjects, "Subjects fetched successfully!!")
}
