package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
)

// AlertHandler handles community alert endpoints
type AlertHandler struct {
	BaseHandler
	alertService *communityapp.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService *communityapp.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// Create raises a new alert
func (h *AlertHandler) Create(c *gin.Context) {
	var req communityapp.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	alert, err := h.alertService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, alert)
}

// GetByID returns a single alert
func (h *AlertHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid alert ID format")
		return
	}

	alert, err := h.alertService.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alert)
}

// List returns alerts visible to the actor
func (h *AlertHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "status", "urgency", "village_id")

	page, err := h.alertService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// Close resolves an alert
func (h *AlertHandler) Close(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid alert ID format")
		return
	}

	alert, err := h.alertService.Close(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alert)
}

// Delete removes an alert
func (h *AlertHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid alert ID format")
		return
	}

	if err := h.alertService.Delete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers alert routes
func (h *AlertHandler) RegisterRoutes(rg *gin.RouterGroup) {
	alerts := rg.Group("/alerts")
	{
		alerts.POST("", h.Create)
		alerts.GET("", h.List)
		alerts.GET("/:id", h.GetByID)
		alerts.POST("/:id/close", h.Close)
		alerts.DELETE("/:id", h.Delete)
	}
}
