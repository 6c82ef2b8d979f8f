package policy

import "github.com/google/uuid"

// RoleKind tags the actor variant
type RoleKind string

const (
	RoleAnonymous RoleKind = "anonymous"
	RoleResident  RoleKind = "resident"
	RoleLeader    RoleKind = "leader"
	RoleAdmin     RoleKind = "admin"
)

// Actor is the authenticated principal a request acts as. It is built
// fresh per request from the token claims plus the actor's current
// residency and led village, and threaded explicitly through every
// service call; nothing reads it from ambient state.
type Actor struct {
	Role   RoleKind
	UserID uuid.UUID

	// PersonID is set for residents and leaders with a person record
	PersonID uuid.UUID

	// VillageID is the village the actor belongs to: the led village
	// for leaders, the active residency's village for residents.
	// uuid.Nil when the actor has neither.
	VillageID uuid.UUID
}

// Anonymous returns the unauthenticated actor
func Anonymous() Actor {
	return Actor{Role: RoleAnonymous}
}

// Admin returns an admin actor
func Admin(userID uuid.UUID) Actor {
	return Actor{Role: RoleAdmin, UserID: userID}
}

// Leader returns a leader actor for the village they lead
func Leader(userID, villageID uuid.UUID) Actor {
	return Actor{Role: RoleLeader, UserID: userID, VillageID: villageID}
}

// Resident returns a resident actor with their active residency's village
// (uuid.Nil when the person has no active residency)
func Resident(userID, personID, villageID uuid.UUID) Actor {
	return Actor{Role: RoleResident, UserID: userID, PersonID: personID, VillageID: villageID}
}

// Authenticated reports whether the actor carries an identity
func (a Actor) Authenticated() bool {
	return a.Role != RoleAnonymous && a.UserID != uuid.Nil
}

// InVillage reports whether the actor is attached to a village
func (a Actor) InVillage() bool {
	return a.VillageID != uuid.Nil
}
