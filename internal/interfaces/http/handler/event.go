package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
)

// EventHandler handles community event endpoints
type EventHandler struct {
	BaseHandler
	eventService *communityapp.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService *communityapp.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create announces a new event
func (h *EventHandler) Create(c *gin.Context) {
	var req communityapp.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, event)
}

// GetByID returns a single event with its attendance count
func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, event)
}

// List returns events visible to the actor
func (h *EventHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "status", "village_id")

	page, err := h.eventService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateStatus moderates an event
func (h *EventHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	var req communityapp.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.UpdateStatus(c.Request.Context(), getActor(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, event)
}

// Cancel cancels an event
func (h *EventHandler) Cancel(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	event, err := h.eventService.Cancel(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, event)
}

// Attend records the actor's attendance
func (h *EventHandler) Attend(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	if err := h.eventService.Attend(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"attending": true})
}

// Delete removes an event
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers event routes
func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.GetByID)
		events.PATCH("/:id/status", h.UpdateStatus)
		events.POST("/:id/cancel", h.Cancel)
		events.POST("/:id/attend", h.Attend)
		events.DELETE("/:id", h.Delete)
	}
}
