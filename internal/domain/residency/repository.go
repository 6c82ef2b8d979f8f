package residency

import (
	"context"

	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository provides access to residency records.
//
// Reads exclude soft-deleted rows unless stated otherwise; the deleted
// filter is applied here, centrally, never at call sites. Save must
// surface shared.ErrDuplicateResidency when the storage layer's partial
// unique index over (person_id, is_deleted=false) rejects the write.
type Repository interface {
	// FindByID returns a residency regardless of its deleted flag,
	// so soft-deleted rows can be restored.
	FindByID(ctx context.Context, id uuid.UUID) (*Residency, error)

	// FindActiveByPerson returns the person's single non-deleted
	// residency, or shared.ErrNotFound.
	FindActiveByPerson(ctx context.Context, personID uuid.UUID) (*Residency, error)

	// List returns non-deleted residencies visible under the given scope
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]Residency, int64, error)

	// CountActiveByVillage counts approved, non-deleted residencies in a village
	CountActiveByVillage(ctx context.Context, villageID uuid.UUID) (int64, error)

	Save(ctx context.Context, r *Residency) error
}

// TxRunner executes fn inside a single storage transaction. The
// repository passed to fn writes through that transaction; any error
// rolls the whole unit back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
