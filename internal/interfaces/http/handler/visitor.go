package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
)

// VisitorHandler handles visitor check-in and check-out endpoints
type VisitorHandler struct {
	BaseHandler
	visitorService *communityapp.VisitorService
}

// NewVisitorHandler creates a new VisitorHandler
func NewVisitorHandler(visitorService *communityapp.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

// Register checks a visitor in with a resident host
func (h *VisitorHandler) Register(c *gin.Context) {
	var req communityapp.RegisterVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	visitor, err := h.visitorService.Register(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, visitor)
}

// GetByID returns a single visitor record
func (h *VisitorHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid visitor ID format")
		return
	}

	visitor, err := h.visitorService.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visitor)
}

// RegisterRoutes registers visitor routes
func (h *VisitorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	visitors := rg.Group("/visitors")
	{
		visitors.POST("", h.Register)
		visitors.GET("", h.List)
		visitors.GET("/:id", h.GetByID)
		visitors.POST("/:id/checkout", h.CheckOut)
	}
}

// List returns visitor records visible to the actor. The staying filter
// narrows to visitors who have not checked out yet.
func (h *VisitorHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "village_id", "staying")

	page, err := h.visitorService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// CheckOut records a visitor's departure
func (h *VisitorHandler) CheckOut(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid visitor ID format")
		return
	}

	visitor, err := h.visitorService.CheckOut(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visitor)
}
