package listing

import (
	"strconv"
	"strings"

	"bostonhouse/internal/models"
)

// Filter holds the raw search inputs from the properties view. The numeric
// fields keep their text form; anything that does not parse as a number
// imposes no constraint instead of being an error.
type Filter struct {
	Query        string
	Neighborhood string
	MinPrice     string
	MaxPrice     string
	Bedrooms     string
	PropertyType string
}

// IsZero reports whether no constraint is set at all.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether the property passes every provided constraint.
// The result is a pure conjunction: clearing any one field can only grow
// the matching set.
func (f Filter) Matches(p models.Property) bool {
	if q := strings.ToLower(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(p.Address), q) &&
			!strings.Contains(strings.ToLower(p.Neighborhood), q) {
			return false
		}
	}
	if f.Neighborhood != "" && p.Neighborhood != f.Neighborhood {
		return false
	}
	if min, ok := parseAmount(f.MinPrice); ok && p.Price < min {
		return false
	}
	if max, ok := parseAmount(f.MaxPrice); ok && p.Price > max {
		return false
	}
	if beds, ok := parseAmount(f.Bedrooms); ok && p.Bedrooms != beds {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	return true
}

// Apply returns the properties matching the filter, preserving order.
func (f Filter) Apply(properties []models.Property) []models.Property {
	matched := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// parseAmount interprets a raw numeric input. Empty or non-numeric text
// means "no constraint".
func parseAmount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
