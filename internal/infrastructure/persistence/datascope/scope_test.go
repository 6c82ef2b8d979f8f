package datascope

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// scopedRow is a minimal village-scoped model for exercising predicates
type scopedRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VillageID uuid.UUID `gorm:"type:uuid;not null"`
	AddedBy   uuid.UUID `gorm:"type:uuid;not null"`
	PersonID  uuid.UUID `gorm:"type:uuid"`
}

func (scopedRow) TableName() string {
	return "scoped_rows"
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func emptyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "village_id", "added_by", "person_id"})
}

func TestApply_ScopeAll(t *testing.T) {
	db, mock, mockDB := setupMockDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "scoped_rows"$`).
		WillReturnRows(emptyRows())

	var rows []scopedRow
	err := Apply(db, policy.Predicate{Kind: policy.ScopeAll}, DefaultColumns()).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_ScopeVillage(t *testing.T) {
	db, mock, mockDB := setupMockDB(t)
	defer mockDB.Close()

	villageID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE village_id = \$1`).
		WithArgs(villageID).
		WillReturnRows(emptyRows())

	var rows []scopedRow
	pred := policy.Predicate{Kind: policy.ScopeVillage, VillageID: villageID}
	err := Apply(db, pred, DefaultColumns()).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_ScopeVillageWithoutVillage(t *testing.T) {
	db, mock, mockDB := setupMockDB(t)
	defer mockDB.Close()

	// A village predicate without a village matches nothing
	mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE 1 = 0`).
		WillReturnRows(emptyRows())

	var rows []scopedRow
	pred := policy.Predicate{Kind: policy.ScopeVillage}
	err := Apply(db, pred, DefaultColumns()).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_ScopeOwner(t *testing.T) {
	t.Run("owner column only", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE added_by = \$1`).
			WithArgs(userID).
			WillReturnRows(emptyRows())

		var rows []scopedRow
		pred := policy.Predicate{Kind: policy.ScopeOwner, UserID: userID}
		err := Apply(db, pred, DefaultColumns()).Find(&rows).Error

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with person column", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		userID := uuid.New()
		personID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE added_by = \$1 OR person_id = \$2`).
			WithArgs(userID, personID).
			WillReturnRows(emptyRows())

		var rows []scopedRow
		pred := policy.Predicate{Kind: policy.ScopeOwner, UserID: userID, PersonID: personID}
		cols := DefaultColumns().WithPerson("person_id")
		err := Apply(db, pred, cols).Find(&rows).Error

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without user matches nothing", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE 1 = 0`).
			WillReturnRows(emptyRows())

		var rows []scopedRow
		pred := policy.Predicate{Kind: policy.ScopeOwner}
		err := Apply(db, pred, DefaultColumns()).Find(&rows).Error

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApply_ScopeNone(t *testing.T) {
	db, mock, mockDB := setupMockDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE 1 = 0`).
		WillReturnRows(emptyRows())

	var rows []scopedRow
	err := Apply(db, policy.Predicate{Kind: policy.ScopeNone}, DefaultColumns()).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScope_AsGormScope(t *testing.T) {
	db, mock, mockDB := setupMockDB(t)
	defer mockDB.Close()

	villageID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "scoped_rows" WHERE village_id = \$1`).
		WithArgs(villageID).
		WillReturnRows(emptyRows())

	var rows []scopedRow
	pred := policy.Predicate{Kind: policy.ScopeVillage, VillageID: villageID}
	err := db.Scopes(Scope(pred, DefaultColumns())).Find(&rows).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
