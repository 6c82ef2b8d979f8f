package directory

import (
	"strings"
	"time"

	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
)

// VillageAttrs is the administrative tuple identifying a village exactly.
// Villages are looked up by exact attribute match and are never created
// implicitly during join or migration.
type VillageAttrs struct {
	Province string `json:"province"`
	District string `json:"district"`
	Sector   string `json:"sector"`
	Cell     string `json:"cell"`
	Village  string `json:"village"`
}

// Normalize trims whitespace on every attribute
func (a VillageAttrs) Normalize() VillageAttrs {
	return VillageAttrs{
		Province: strings.TrimSpace(a.Province),
		District: strings.TrimSpace(a.District),
		Sector:   strings.TrimSpace(a.Sector),
		Cell:     strings.TrimSpace(a.Cell),
		Village:  strings.TrimSpace(a.Village),
	}
}

// Complete reports whether every attribute of the tuple is present
func (a VillageAttrs) Complete() bool {
	return a.Province != "" && a.District != "" && a.Sector != "" && a.Cell != "" && a.Village != ""
}

// Village is an administrative village with an optional leader
type Village struct {
	shared.BaseEntity
	VillageAttrs
	LeaderID *uuid.UUID
}

// NewVillage creates a village from a complete attribute tuple
func NewVillage(attrs VillageAttrs) (*Village, error) {
	attrs = attrs.Normalize()
	if !attrs.Complete() {
		return nil, shared.NewDomainError("INVALID_VILLAGE", "Province, district, sector, cell and village are all required")
	}
	return &Village{
		BaseEntity:   shared.NewBaseEntity(),
		VillageAttrs: attrs,
	}, nil
}

// AssignLeader sets the village leader
func (v *Village) AssignLeader(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_LEADER", "Leader user ID cannot be empty")
	}
	v.LeaderID = &userID
	v.UpdatedAt = time.Now()
	return nil
}

// RemoveLeader clears the village leader
func (v *Village) RemoveLeader() {
	v.LeaderID = nil
	v.UpdatedAt = time.Now()
}

// HasLeader reports whether the village currently has a leader
func (v *Village) HasLeader() bool {
	return v.LeaderID != nil
}

// FullAddress renders the tuple as a single line, most specific first
func (v *Village) FullAddress() string {
	return strings.Join([]string{v.Village, v.Cell, v.Sector, v.District, v.Province}, ", ")
}
