package domain

import "fmt"

// Model year bounds enforced on every catalog row.
const (
	MinModelYear = 2000
	MaxModelYear = 2025
)

// Car body types known to the catalog.
const (
	CarTypeSedan = "SEDAN"
	CarTypeSUV   = "SUV"
	CarTypeWagon = "WAGON"
)

// CarMake is a catalog manufacturer row.
type CarMake struct {
	ID          int
	Name        string
	Description string
}

// CarModel is a catalog row referencing its make (many models per make).
type CarModel struct {
	ID     int
	MakeID int
	Name   string
	Type   string
	Year   int
}

// Validate checks the model-year invariant.
func (m CarModel) Validate() error {
	if m.Year < MinModelYear || m.Year > MaxModelYear {
		return fmt.Errorf("car model %q: year %d out of range [%d, %d]",
			m.Name, m.Year, MinModelYear, MaxModelYear)
	}
	return nil
}

// CatalogEntry is the joined model/make view served to callers.
type CatalogEntry struct {
	ModelName string
	MakeName  string
}
