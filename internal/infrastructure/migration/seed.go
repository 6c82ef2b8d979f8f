package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VillageSeed is one administrative village row in the seed dataset
type VillageSeed struct {
	Province string `json:"province"`
	District string `json:"district"`
	Sector   string `json:"sector"`
	Cell     string `json:"cell"`
	Village  string `json:"village"`
}

// LoadVillageSeeds reads a JSON array of village tuples
func LoadVillageSeeds(path string) ([]VillageSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []VillageSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seeds, nil
}

// SeedVillages inserts the administrative hierarchy. Re-running is
// harmless: the composite unique index turns duplicates into no-ops.
func SeedVillages(ctx context.Context, db *sql.DB, seeds []VillageSeed, logger *zap.Logger) error {
	const stmt = `
		INSERT INTO villages (id, province, district, sector, cell, village, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (province, district, sector, cell, village) DO NOTHING`

	inserted := int64(0)
	for _, s := range seeds {
		res, err := db.ExecContext(ctx, stmt,
			uuid.New(), s.Province, s.District, s.Sector, s.Cell, s.Village)
		if err != nil {
			return fmt.Errorf("failed to seed village %s/%s: %w", s.Cell, s.Village, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}

	logger.Info("Village seeding completed",
		zap.Int("total", len(seeds)),
		zap.Int64("inserted", inserted),
	)
	return nil
}
