package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
)

// ContactHandler handles emergency contact endpoints
type ContactHandler struct {
	BaseHandler
	contactService *communityapp.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *communityapp.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create adds an emergency contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req communityapp.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contact)
}

// GetByID returns a single emergency contact
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := h.contactService.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contact)
}

// List returns emergency contacts visible to the actor
func (h *ContactHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "service_type", "village_id")

	page, err := h.contactService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// Delete removes an emergency contact
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers emergency contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.Create)
		contacts.GET("", h.List)
		contacts.GET("/:id", h.GetByID)
		contacts.DELETE("/:id", h.Delete)
	}
}
