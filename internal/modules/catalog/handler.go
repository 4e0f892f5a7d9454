package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"eventnomous/internal/pkg/response"
	"eventnomous/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetVendors handles GET /api/v1/vendors with optional filters
func (h *Handler) GetVendors(c *gin.Context) {
	var f repository.VendorFilters

	f.Search = c.Query("search")
	f.Category = c.Query("category")

	if minRating := c.Query("min_rating"); minRating != "" {
		if val, err := strconv.ParseFloat(minRating, 64); err == nil && val >= 0 && val <= 5 {
			f.MinRating = val
		}
	}

	vendors, err := h.service.ListVendors(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vendors")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendorByID handles GET /api/v1/vendors/:id
func (h *Handler) GetVendorByID(c *gin.Context) {
	vendor, err := h.service.FindVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vendor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vendor": vendor})
}

// GetVendorService handles GET /api/v1/vendors/:id/services/:serviceID
func (h *Handler) GetVendorService(c *gin.Context) {
	svc, err := h.service.FindService(c.Request.Context(), c.Param("id"), c.Param("serviceID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrVendorNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load service")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

// GetCategories handles GET /api/v1/vendor-categories
func (h *Handler) GetCategories(c *gin.Context) {
	categories := h.service.Categories()

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = string(cat)
	}

	response.Success(c, http.StatusOK, gin.H{"categories": names})
}

// RegisterRoutes registers all catalog routes (public)
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	vendors := r.Group("/vendors")
	{
		vendors.GET("", h.GetVendors)
		vendors.GET("/:id", h.GetVendorByID)
		vendors.GET("/:id/services/:serviceID", h.GetVendorService)
	}

	r.GET("/vendor-categories", h.GetCategories)
}
