package entity

import "math"

// Progress is the verification completeness of a location or a single menu item.
type Progress struct {
	Total      int `json:"total"`
	Approved   int `json:"approved"`
	Percentage int `json:"percentage"`
}

// NewProgress builds a Progress, rounding the percentage to the nearest integer.
// A zero total yields all zeros.
func NewProgress(approved, total int) Progress {
	if total <= 0 {
		return Progress{}
	}

	return Progress{
		Total:      total,
		Approved:   approved,
		Percentage: int(math.Round(float64(approved) / float64(total) * 100)),
	}
}

// ProgressKey builds the "partnerId_locationId" key used in progress maps.
func ProgressKey(partnerID, locationID string) string {
	return partnerID + "_" + locationID
}

// ItemProgress is the per-item breakdown of a location's progress for one brand.
type ItemProgress struct {
	Overall Progress            `json:"overall"`
	Items   map[string]Progress `json:"items"`
}
