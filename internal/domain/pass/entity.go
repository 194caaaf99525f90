package pass

import (
	"time"
)

// Category is the closed vocabulary of access event categories emitted by
// the badge system. TRIP and MEDICAL only appear in the external attendance
// feed; local badge streams carry IN/OUT/TRIP_IN/LUNCH.
type Category int

const (
	CategoryIn      Category = 1
	CategoryOut     Category = 2
	CategoryTripIn  Category = 3
	CategoryTrip    Category = 4
	CategoryMedical Category = 5
	CategoryLunch   Category = 7
)

// IsArrival reports whether the category opens a presence segment.
// A trip departure badge counts as an arrival for segmenting purposes.
func (c Category) IsArrival() bool {
	return c == CategoryIn || c == CategoryTripIn
}

// Pass is a single timestamped access event. Records are owned by the
// access-log store and are read-only for this service.
type Pass struct {
	ID           int64
	Category     Category
	CategoryName string
	Chip         string
	Time         time.Time

	// Denormalized person info from the access-log view
	PersonCode int
	PersonName string
	Department string
	Username   string
}
