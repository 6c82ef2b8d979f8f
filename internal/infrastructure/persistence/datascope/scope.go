// Package datascope translates policy read predicates into GORM query
// restrictions.
//
// Repositories never interpret actor roles themselves. The application
// layer computes a policy.Predicate and the repository applies it here,
// so the same scoping rules hold for every listed resource:
//   - all: no restriction
//   - village: rows whose village column matches
//   - owner: rows authored by the user, or about the user's person
//   - none: no rows
//
// Usage:
//
//	db = datascope.Apply(db, pred, datascope.DefaultColumns())
//	db.Find(&rows)
package datascope

import (
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Columns names the table columns predicate filtering maps onto.
// Person is optional; tables without a person column leave it empty.
type Columns struct {
	Village string
	Owner   string
	Person  string
}

// DefaultColumns covers the common village-scoped tables
func DefaultColumns() Columns {
	return Columns{Village: "village_id", Owner: "added_by"}
}

// WithPerson returns a copy of the columns with a person column set
func (c Columns) WithPerson(person string) Columns {
	c.Person = person
	return c
}

// Apply adds the predicate's restriction to the query
func Apply(db *gorm.DB, pred policy.Predicate, cols Columns) *gorm.DB {
	switch pred.Kind {
	case policy.ScopeAll:
		return db

	case policy.ScopeVillage:
		if pred.VillageID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where(cols.Village+" = ?", pred.VillageID)

	case policy.ScopeOwner:
		if pred.UserID == uuid.Nil {
			return db.Where("1 = 0")
		}
		if cols.Person != "" && pred.PersonID != uuid.Nil {
			return db.Where(cols.Owner+" = ? OR "+cols.Person+" = ?", pred.UserID, pred.PersonID)
		}
		return db.Where(cols.Owner+" = ?", pred.UserID)

	default:
		// ScopeNone and anything unrecognized match nothing
		return db.Where("1 = 0")
	}
}

// Scope returns a GORM scope function applying the predicate
func Scope(pred policy.Predicate, cols Columns) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return Apply(db, pred, cols)
	}
}
