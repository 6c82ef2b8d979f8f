// Package policy is the single role-scoped authorization engine every
// resource in the system delegates to. It exposes two pure operations:
// Authorize gates writes, Scope narrows reads to the rows the actor may
// see. Both take an explicit Actor; neither caches anything.
package policy

import "github.com/google/uuid"

// Action is what the actor wants to do to a resource
type Action string

const (
	ActionRead         Action = "read"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionChangeStatus Action = "change_status"
	ActionDelete       Action = "delete"
)

// Resource describes the record an action targets. VillageID is the
// village the record belongs to, OwnerID the user who authored it,
// PersonID the person the record is about (used for self-removal of a
// residency). Zero UUIDs mean "not applicable".
type Resource struct {
	Type      string
	VillageID uuid.UUID
	OwnerID   uuid.UUID
	PersonID  uuid.UUID
}

// DenyReason distinguishes the two failure modes a denial can have
type DenyReason string

const (
	// DenyNoCapability means the actor's role can never perform the action
	DenyNoCapability DenyReason = "no_capability"
	// DenyWrongScope means the role could, but not on this record
	// (wrong village, or not the owner)
	DenyWrongScope DenyReason = "wrong_scope"
)

// PermissionDenied is the typed error returned for denials
type PermissionDenied struct {
	Reason DenyReason
	Detail string
}

// Error implements the error interface
func (e *PermissionDenied) Error() string {
	return e.Detail
}

func denyCapability(detail string) error {
	return &PermissionDenied{Reason: DenyNoCapability, Detail: detail}
}

func denyScope(detail string) error {
	return &PermissionDenied{Reason: DenyWrongScope, Detail: detail}
}

// Authorize decides whether the actor may perform action on the resource.
// It returns nil to allow, or a *PermissionDenied. It must be evaluated
// before any write; validation of the payload itself is not its job.
func Authorize(actor Actor, action Action, res Resource) error {
	if !actor.Authenticated() {
		return denyCapability("authentication required")
	}

	switch actor.Role {
	case RoleAdmin:
		return nil

	case RoleLeader:
		switch action {
		case ActionRead, ActionUpdate, ActionChangeStatus, ActionDelete:
			if res.VillageID != actor.VillageID {
				return denyScope("record belongs to another village")
			}
			return nil
		case ActionCreate:
			if res.VillageID != uuid.Nil && res.VillageID != actor.VillageID {
				return denyScope("leaders can only create records in their own village")
			}
			return nil
		}
		return denyCapability("unknown action")

	case RoleResident:
		switch action {
		case ActionRead, ActionUpdate:
			if !ownedBy(actor, res) {
				return denyScope("record belongs to another resident")
			}
			return nil
		case ActionCreate:
			if !actor.InVillage() {
				return denyScope("an active residency is required to create content")
			}
			if res.VillageID != uuid.Nil && res.VillageID != actor.VillageID {
				return denyScope("residents can only create records in their own village")
			}
			return nil
		case ActionChangeStatus:
			return denyCapability("only leaders and admins can change status")
		case ActionDelete:
			if !ownedBy(actor, res) {
				return denyScope("record belongs to another resident")
			}
			return nil
		}
		return denyCapability("unknown action")
	}

	return denyCapability("unknown role")
}

// ownedBy reports whether the resource is the resident's own: either
// authored by them or about their person (their own residency record).
func ownedBy(actor Actor, res Resource) bool {
	if res.OwnerID != uuid.Nil && res.OwnerID == actor.UserID {
		return true
	}
	if res.PersonID != uuid.Nil && res.PersonID == actor.PersonID {
		return true
	}
	return false
}

// PredicateKind tags the shape of a read scope
type PredicateKind string

const (
	// ScopeAll matches every row
	ScopeAll PredicateKind = "all"
	// ScopeVillage matches rows whose village equals VillageID
	ScopeVillage PredicateKind = "village"
	// ScopeOwner matches rows authored by UserID or about PersonID
	ScopeOwner PredicateKind = "owner"
	// ScopeNone matches nothing
	ScopeNone PredicateKind = "none"
)

// Predicate is the storage-agnostic description of which rows an actor
// may read. The persistence layer translates it into a query restriction
// before any rows are fetched; results are never filtered after the fact.
type Predicate struct {
	Kind      PredicateKind
	VillageID uuid.UUID
	UserID    uuid.UUID
	PersonID  uuid.UUID
}

// Scope returns the read predicate for the actor over a resource type.
// Admin sees everything, a leader their village, a resident their own
// records (and their own residency), anonymous nothing.
func Scope(actor Actor, resourceType string) Predicate {
	switch actor.Role {
	case RoleAdmin:
		return Predicate{Kind: ScopeAll}
	case RoleLeader:
		if !actor.InVillage() {
			return Predicate{Kind: ScopeNone}
		}
		return Predicate{Kind: ScopeVillage, VillageID: actor.VillageID}
	case RoleResident:
		return Predicate{Kind: ScopeOwner, UserID: actor.UserID, PersonID: actor.PersonID}
	}
	return Predicate{Kind: ScopeNone}
}
