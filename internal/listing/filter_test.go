package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bostonhouse/internal/models"
)

func sampleProperties() []models.Property {
	return []models.Property{
		{
			ID: 1, Address: "123 Commonwealth Ave, Back Bay", Neighborhood: "Back Bay",
			Price: 850000, Bedrooms: 3, PropertyType: "Condo",
		},
		{
			ID: 2, Address: "456 Beacon St, Beacon Hill", Neighborhood: "Beacon Hill",
			Price: 1200000, Bedrooms: 4, PropertyType: "Townhouse",
		},
		{
			ID: 3, Address: "9 Day Blvd, South Boston", Neighborhood: "South Boston",
			Price: 640000, Bedrooms: 2, PropertyType: "Condo",
		},
	}
}

func matchedIDs(f Filter, props []models.Property) []int {
	ids := make([]int, 0)
	for _, p := range f.Apply(props) {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterMatches(t *testing.T) {
	props := sampleProperties()

	tests := []struct {
		name     string
		filter   Filter
		expected []int
	}{
		{"Empty filter matches everything", Filter{}, []int{1, 2, 3}},
		{"Query matches address case-insensitively", Filter{Query: "commonwealth"}, []int{1}},
		{"Query matches neighborhood", Filter{Query: "beacon hill"}, []int{2}},
		{"Query substring hits both fields", Filter{Query: "beacon"}, []int{2}},
		{"Query with no hits", Filter{Query: "cambridge"}, []int{}},
		{"Neighborhood equality", Filter{Neighborhood: "Back Bay"}, []int{1}},
		{"Min price bound", Filter{MinPrice: "900000"}, []int{2}},
		{"Max price bound", Filter{MaxPrice: "900000"}, []int{1, 3}},
		{"Price bounds are inclusive", Filter{MinPrice: "850000", MaxPrice: "850000"}, []int{1}},
		{"Bedrooms is equality, not a bound", Filter{Bedrooms: "3"}, []int{1}},
		{"Property type equality", Filter{PropertyType: "Condo"}, []int{1, 3}},
		{"Conjunction of fields", Filter{PropertyType: "Condo", MaxPrice: "700000"}, []int{3}},
		{"Non-numeric min price is a wildcard", Filter{MinPrice: "abc"}, []int{1, 2, 3}},
		{"Non-numeric bedrooms is a wildcard", Filter{Bedrooms: "many"}, []int{1, 2, 3}},
		{"Whitespace numeric input is a wildcard", Filter{MaxPrice: "   "}, []int{1, 2, 3}},
		{"Zero min price still applies", Filter{MinPrice: "0"}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchedIDs(tt.filter, props))
		})
	}
}

// Removing any one constraint from a filter never shrinks the result set.
func TestFilterMonotonicRelaxation(t *testing.T) {
	props := sampleProperties()
	full := Filter{
		Query:        "b",
		Neighborhood: "Back Bay",
		MinPrice:     "100000",
		MaxPrice:     "2000000",
		Bedrooms:     "3",
		PropertyType: "Condo",
	}

	baseline := len(full.Apply(props))
	relaxations := []Filter{
		{Neighborhood: full.Neighborhood, MinPrice: full.MinPrice, MaxPrice: full.MaxPrice, Bedrooms: full.Bedrooms, PropertyType: full.PropertyType},
		{Query: full.Query, MinPrice: full.MinPrice, MaxPrice: full.MaxPrice, Bedrooms: full.Bedrooms, PropertyType: full.PropertyType},
		{Query: full.Query, Neighborhood: full.Neighborhood, MaxPrice: full.MaxPrice, Bedrooms: full.Bedrooms, PropertyType: full.PropertyType},
		{Query: full.Query, Neighborhood: full.Neighborhood, MinPrice: full.MinPrice, Bedrooms: full.Bedrooms, PropertyType: full.PropertyType},
		{Query: full.Query, Neighborhood: full.Neighborhood, MinPrice: full.MinPrice, MaxPrice: full.MaxPrice, PropertyType: full.PropertyType},
		{Query: full.Query, Neighborhood: full.Neighborhood, MinPrice: full.MinPrice, MaxPrice: full.MaxPrice, Bedrooms: full.Bedrooms},
	}

	for i, relaxed := range relaxations {
		assert.GreaterOrEqual(t, len(relaxed.Apply(props)), baseline,
			"relaxation %d shrank the result set", i)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Query: "x"}.IsZero())
	assert.False(t, Filter{MaxPrice: "1"}.IsZero())
}
