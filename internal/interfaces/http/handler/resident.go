package handler

import (
	"github.com/gin-gonic/gin"

	residencyapp "github.com/Manzp111/smartville/internal/application/residency"
)

// ResidentHandler handles the residency lifecycle endpoints
type ResidentHandler struct {
	BaseHandler
	ledger    *residencyapp.LedgerService
	migration *residencyapp.MigrationService
}

// NewResidentHandler creates a new ResidentHandler
func NewResidentHandler(ledger *residencyapp.LedgerService, migration *residencyapp.MigrationService) *ResidentHandler {
	return &ResidentHandler{ledger: ledger, migration: migration}
}

// Join requests membership of a village for a person
func (h *ResidentHandler) Join(c *gin.Context) {
	var req residencyapp.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.ledger.RequestJoin(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// UpdateStatus approves or rejects a batch of residencies
func (h *ResidentHandler) UpdateStatus(c *gin.Context) {
	var req residencyapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	records, err := h.ledger.UpdateStatus(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// Approve approves a single pending residency
func (h *ResidentHandler) Approve(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid residency ID format")
		return
	}

	record, err := h.ledger.Approve(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Reject rejects a single pending residency
func (h *ResidentHandler) Reject(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid residency ID format")
		return
	}

	record, err := h.ledger.Reject(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Migrate moves a person to a new village in one transaction
func (h *ResidentHandler) Migrate(c *gin.Context) {
	var req residencyapp.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.migration.Migrate(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// Delete tombstones a residency
func (h *ResidentHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid residency ID format")
		return
	}

	if err := h.ledger.SoftDelete(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Restore brings a tombstoned residency back, subject to the
// one-active-residency rule
func (h *ResidentHandler) Restore(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid residency ID format")
		return
	}

	record, err := h.ledger.Restore(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// List returns residencies visible to the actor
func (h *ResidentHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	bindFilterValues(c, &filter, "status", "village_id", "person_id")

	page, err := h.ledger.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// GetByID returns a single residency
func (h *ResidentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid residency ID format")
		return
	}

	record, err := h.ledger.GetByID(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// RegisterRoutes registers residency lifecycle routes
func (h *ResidentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	residents := rg.Group("/residents")
	{
		residents.POST("/join", h.Join)
		residents.PATCH("/status", h.UpdateStatus)
		residents.POST("/migrate", h.Migrate)
		residents.GET("", h.List)
		residents.GET("/by-user/:user_id", h.GetByUser)
		residents.GET("/:id", h.GetByID)
		residents.DELETE("/:id", h.Delete)
		residents.POST("/:id/approve", h.Approve)
		residents.POST("/:id/reject", h.Reject)
		residents.POST("/:id/restore", h.Restore)
	}
}

// GetByUser returns the active residency of a user's person record
func (h *ResidentHandler) GetByUser(c *gin.Context) {
	userID, err := parseID(c, "user_id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	record, err := h.ledger.GetByUser(c.Request.Context(), getActor(c), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}
