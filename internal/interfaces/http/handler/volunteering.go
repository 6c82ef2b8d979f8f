package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
)

// VolunteeringHandler handles volunteering event endpoints
type VolunteeringHandler struct {
	BaseHandler
	volunteeringService *communityapp.VolunteeringService
}

// NewVolunteeringHandler creates a new VolunteeringHandler
func NewVolunteeringHandler(volunteeringService *communityapp.VolunteeringService) *VolunteeringHandler {
	return &VolunteeringHandler{volunteeringService: volunteeringService}
}

// Create announces a volunteering event
func (h *VolunteeringHandler) Create(c *gin.Context) {
	var req communityapp.CreateVolunteeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.volunteeringService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, event)
}

// GetByID returns a single volunteering event with its participant count
func (h *VolunteeringHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid volunteering event ID format")
		return
	}

	event, err := h.volunteeringService.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, event)
}

// List returns volunteering events visible to the actor
func (h *VolunteeringHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "village_id")

	page, err := h.volunteeringService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// Participate signs the actor up for a volunteering event
func (h *VolunteeringHandler) Participate(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid volunteering event ID format")
		return
	}

	if err := h.volunteeringService.Participate(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"participating": true})
}

// Delete removes a volunteering event
func (h *VolunteeringHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid volunteering event ID format")
		return
	}

	if err := h.volunteeringService.Delete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers volunteering routes
func (h *VolunteeringHandler) RegisterRoutes(rg *gin.RouterGroup) {
	volunteering := rg.Group("/volunteering")
	{
		volunteering.POST("", h.Create)
		volunteering.GET("", h.List)
		volunteering.GET("/:id", h.GetByID)
		volunteering.POST("/:id/participate", h.Participate)
		volunteering.DELETE("/:id", h.Delete)
	}
}
