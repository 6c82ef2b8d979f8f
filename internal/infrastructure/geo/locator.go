// Package geo resolves geographic coordinates to the administrative
// village covering them. The production deployment points this at a
// boundary dataset; the implementation here evaluates point-in-polygon
// against loaded village outlines.
package geo

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// Region is one village outline. Ring is a closed polygon of
// [latitude, longitude] vertices; the last vertex may repeat the first.
type Region struct {
	Attrs directory.VillageAttrs `json:"attrs"`
	Ring  [][2]float64           `json:"ring"`
}

// DatasetLocator resolves coordinates against an in-memory set of
// village outlines.
type DatasetLocator struct {
	regions []Region
}

// NewDatasetLocator creates a locator over the given regions
func NewDatasetLocator(regions []Region) *DatasetLocator {
	return &DatasetLocator{regions: regions}
}

// LoadDataset reads a JSON array of regions from a file
func LoadDataset(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var regions []Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// Locate returns the attributes of the village whose outline contains
// the point, or shared.ErrNotFound when no outline covers it.
func (l *DatasetLocator) Locate(ctx context.Context, lat, lon float64) (directory.VillageAttrs, error) {
	if err := ctx.Err(); err != nil {
		return directory.VillageAttrs{}, err
	}
	for _, region := range l.regions {
		if contains(region.Ring, lat, lon) {
			return region.Attrs, nil
		}
	}
	return directory.VillageAttrs{}, shared.ErrNotFound
}

// contains implements the even-odd ray casting rule over a polygon of
// [lat, lon] vertices.
func contains(ring [][2]float64, lat, lon float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		yi, xi := ring[i][0], ring[i][1]
		yj, xj := ring[j][0], ring[j][1]

		if (yi > lat) != (yj > lat) {
			cross := (xj-xi)*(lat-yi)/(yj-yi) + xi
			if lon < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
