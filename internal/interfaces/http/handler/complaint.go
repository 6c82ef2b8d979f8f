package handler

import (
	"github.com/gin-gonic/gin"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	BaseHandler
	complaintService *communityapp.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler
func NewComplaintHandler(complaintService *communityapp.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// Create files a new complaint
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req communityapp.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	complaint, err := h.complaintService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, complaint)
}

// GetByID returns a single complaint
func (h *ComplaintHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid complaint ID format")
		return
	}

	complaint, err := h.complaintService.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, complaint)
}

// List returns complaints visible to the actor
func (h *ComplaintHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "status", "village_id")

	page, err := h.complaintService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// Resolve closes a complaint with a resolution note
func (h *ComplaintHandler) Resolve(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid complaint ID format")
		return
	}

	var req communityapp.ResolveComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	complaint, err := h.complaintService.Resolve(c.Request.Context(), getActor(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, complaint)
}

// Delete removes a complaint
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid complaint ID format")
		return
	}

	if err := h.complaintService.Delete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers complaint routes
func (h *ComplaintHandler) RegisterRoutes(rg *gin.RouterGroup) {
	complaints := rg.Group("/complaints")
	{
		complaints.POST("", h.Create)
		complaints.GET("", h.List)
		complaints.GET("/:id", h.GetByID)
		complaints.POST("/:id/resolve", h.Resolve)
		complaints.DELETE("/:id", h.Delete)
	}
}
