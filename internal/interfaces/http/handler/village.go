package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/Manzp111/smartville/internal/application/directory"
	"github.com/Manzp111/smartville/internal/domain/directory"
)

// VillageHandler handles village browsing, dashboards and leader management
type VillageHandler struct {
	BaseHandler
	villageService *directoryapp.VillageService
	leaderService  *directoryapp.LeaderService
}

// NewVillageHandler creates a new VillageHandler
func NewVillageHandler(villageService *directoryapp.VillageService, leaderService *directoryapp.LeaderService) *VillageHandler {
	return &VillageHandler{villageService: villageService, leaderService: leaderService}
}

// Hierarchical walks the administrative hierarchy one level at a time.
// With no parameters it lists provinces; each additional parameter
// narrows to the next level, down to the villages of a cell.
func (h *VillageHandler) Hierarchical(c *gin.Context) {
	province := c.Query("province")
	district := c.Query("district")
	sector := c.Query("sector")
	cell := c.Query("cell")

	ctx := c.Request.Context()

	switch {
	case province == "":
		names, err := h.villageService.Provinces(ctx)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"level": "province", "items": names})
	case district == "":
		names, err := h.villageService.Districts(ctx, province)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"level": "district", "items": names})
	case sector == "":
		names, err := h.villageService.Sectors(ctx, province, district)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"level": "sector", "items": names})
	case cell == "":
		names, err := h.villageService.Cells(ctx, province, district, sector)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"level": "cell", "items": names})
	default:
		villages, err := h.villageService.Villages(ctx, province, district, sector, cell)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"level": "village", "items": villages})
	}
}

// Lookup resolves an exact administrative tuple to a village
func (h *VillageHandler) Lookup(c *gin.Context) {
	attrs := directory.VillageAttrs{
		Province: c.Query("province"),
		District: c.Query("district"),
		Sector:   c.Query("sector"),
		Cell:     c.Query("cell"),
		Village:  c.Query("village"),
	}

	village, err := h.villageService.Lookup(c.Request.Context(), attrs)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, village)
}

// GetByID returns a village dashboard with headline counts
func (h *VillageHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid village ID format")
		return
	}

	dashboard, err := h.villageService.Dashboard(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// Locate resolves coordinates to the village containing them
func (h *VillageHandler) Locate(c *gin.Context) {
	var req directoryapp.LocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	village, err := h.villageService.Locate(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, village)
}

// ListLeaders returns all leader accounts
func (h *VillageHandler) ListLeaders(c *gin.Context) {
	leaders, err := h.leaderService.ListLeaders(c.Request.Context(), getActor(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, leaders)
}

// PromoteLeader makes a user the leader of a village
func (h *VillageHandler) PromoteLeader(c *gin.Context) {
	var req directoryapp.PromoteLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	village, err := h.leaderService.Promote(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, village)
}

// RegisterRoutes registers village browsing and leader management routes.
// The mutating leader endpoints are wrapped in adminOnly so a non-admin
// never reaches the service layer.
func (h *VillageHandler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	villages := rg.Group("/villages")
	{
		villages.GET("/hierarchical", h.Hierarchical)
		villages.GET("/lookup", h.Lookup)
		villages.POST("/locate", h.Locate)
		villages.GET("/leaders", adminOnly, h.ListLeaders)
		villages.POST("/leaders", adminOnly, h.PromoteLeader)
		villages.DELETE("/leaders/:village_id", adminOnly, h.DemoteLeader)
		villages.GET("/:id", h.GetByID)
	}
}

// DemoteLeader removes a village's leader
func (h *VillageHandler) DemoteLeader(c *gin.Context) {
	villageID, err := parseID(c, "village_id")
	if err != nil {
		h.BadRequest(c, "Invalid village ID format")
		return
	}

	village, err := h.leaderService.Demote(c.Request.Context(), getActor(c), villageID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, village)
}
