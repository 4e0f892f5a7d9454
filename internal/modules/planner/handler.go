package planner

import (
	"errors"
	"net/http"

	"eventnomous/internal/pkg/response"
	"eventnomous/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all planner routes (all protected)
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.POST("/draft", h.StartDraft)
		events.GET("/draft", h.GetDraft)
		events.PATCH("/draft", h.UpdateDraft)
		events.DELETE("/draft", h.DeleteDraft)
		events.POST("/draft/services", h.AddService)
		events.GET("/draft/budget", h.GetBudget)
	}
}

// StartDraft handles POST /api/v1/events/draft
func (h *Handler) StartDraft(c *gin.Context) {
	var req StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	draft, replaced, err := h.service.StartDraft(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start draft event")
		return
	}

	message := "Draft event created"
	if replaced {
		message = "Previous draft discarded, new draft event created"
	}

	response.SuccessWithMessage(c, http.StatusCreated, gin.H{
		"draft":    draft,
		"replaced": replaced,
	}, message)
}

// GetDraft handles GET /api/v1/events/draft
func (h *Handler) GetDraft(c *gin.Context) {
	draft, err := h.service.GetDraft(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNoActiveDraft) {
			response.Error(c, http.StatusNotFound, "NO_ACTIVE_DRAFT", "No active events")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load draft event")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraft handles PATCH /api/v1/events/draft
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.UpdateDraft(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrNoActiveDraft) {
			response.Error(c, http.StatusConflict, "NO_ACTIVE_DRAFT", "Start a draft event first")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update draft event")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// DeleteDraft handles DELETE /api/v1/events/draft
func (h *Handler) DeleteDraft(c *gin.Context) {
	if err := h.service.DeleteDraft(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete draft event")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil, "Draft event deleted")
}

// AddService handles POST /api/v1/events/draft/services
func (h *Handler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	draft, err := h.service.AddService(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrNoActiveDraft) {
			response.Error(c, http.StatusConflict, "NO_ACTIVE_DRAFT", "Start a draft event first")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// GetBudget handles GET /api/v1/events/draft/budget
func (h *Handler) GetBudget(c *gin.Context) {
	summary, err := h.service.BudgetSummary(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNoActiveDraft) {
			response.Error(c, http.StatusNotFound, "NO_ACTIVE_DRAFT", "No active events")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute budget")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"budget": summary})
}
