package migration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadVillageSeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "villages.json")
	data := `[
		{"province": "Northern", "district": "Burera", "sector": "Butaro", "cell": "Kirwa", "village": "Kabuye"},
		{"province": "Northern", "district": "Burera", "sector": "Butaro", "cell": "Bungwe", "village": "Ruhanga"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	seeds, err := LoadVillageSeeds(path)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, "Kirwa", seeds[0].Cell)
	assert.Equal(t, "Ruhanga", seeds[1].Village)
}

func TestLoadVillageSeeds_MissingFile(t *testing.T) {
	_, err := LoadVillageSeeds(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadVillageSeeds_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadVillageSeeds(path)
	assert.Error(t, err)
}

func TestSeedVillages_SkipsDuplicates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seeds := []VillageSeed{
		{Province: "Northern", District: "Burera", Sector: "Butaro", Cell: "Kirwa", Village: "Kabuye"},
		{Province: "Northern", District: "Burera", Sector: "Butaro", Cell: "Kirwa", Village: "Kabuye"},
	}

	// First insert lands, second hits the unique index and affects no rows
	mock.ExpectExec(`INSERT INTO villages`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO villages`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = SeedVillages(context.Background(), db, seeds, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
