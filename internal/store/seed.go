package store

import "bostonhouse/internal/models"

// Demo accounts. Credentials are shown on the login view; this is
// throwaway in-memory data, not a credential store.
func seedUsers() []models.User {
	return []models.User{
		{
			ID:       1,
			Email:    "dealer@example.com",
			Password: "password123",
			Role:     models.RoleDealer,
			Name:     "John Dealer",
			Phone:    "+1-555-0123",
		},
		{
			ID:       2,
			Email:    "customer@example.com",
			Password: "password123",
			Role:     models.RoleCustomer,
			Name:     "Jane Customer",
			Phone:    "+1-555-0124",
		},
	}
}

func seedProperties() []models.Property {
	return []models.Property{
		{
			ID:           1,
			Address:      "123 Commonwealth Ave, Back Bay",
			Neighborhood: "Back Bay",
			Price:        850000,
			Bedrooms:     3,
			Bathrooms:    2,
			Sqft:         1500,
			PropertyType: "Condo",
			ListingType:  "sale",
			DealerID:     1,
			Status:       models.StatusAvailable,
			Features: models.Features{
				CRIM: 0.02731, ZN: 0.0, INDUS: 7.07, CHAS: 0, NOX: 0.469,
				RM: 6.421, AGE: 78.9, DIS: 4.9671, RAD: 2, TAX: 242,
				PTRATIO: 17.8, B: 396.9, LSTAT: 9.14,
			},
		},
		{
			ID:           2,
			Address:      "456 Beacon St, Beacon Hill",
			Neighborhood: "Beacon Hill",
			Price:        1200000,
			Bedrooms:     4,
			Bathrooms:    3,
			Sqft:         2200,
			PropertyType: "Townhouse",
			ListingType:  "sale",
			DealerID:     1,
			Status:       models.StatusAvailable,
			Features: models.Features{
				CRIM: 0.02729, ZN: 0.0, INDUS: 7.07, CHAS: 0, NOX: 0.469,
				RM: 7.185, AGE: 61.1, DIS: 4.9671, RAD: 2, TAX: 242,
				PTRATIO: 17.8, B: 392.83, LSTAT: 4.03,
			},
		},
	}
}

func seedNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{Name: "Allston", Lat: 42.3584, Lng: -71.137, Properties: 45},
		{Name: "Back Bay", Lat: 42.3505, Lng: -71.0763, Properties: 78},
		{Name: "Beacon Hill", Lat: 42.3588, Lng: -71.0707, Properties: 23},
		{Name: "Brighton", Lat: 42.348, Lng: -71.1656, Properties: 67},
		{Name: "Charlestown", Lat: 42.3779, Lng: -71.061, Properties: 34},
		{Name: "Chinatown", Lat: 42.3511, Lng: -71.0624, Properties: 12},
		{Name: "Dorchester", Lat: 42.3025, Lng: -71.0736, Properties: 156},
		{Name: "Downtown", Lat: 42.3589, Lng: -71.0571, Properties: 89},
		{Name: "East Boston", Lat: 42.3706, Lng: -71.037, Properties: 78},
		{Name: "Fenway", Lat: 42.3467, Lng: -71.0972, Properties: 45},
		{Name: "Hyde Park", Lat: 42.2553, Lng: -71.1256, Properties: 67},
		{Name: "Jamaica Plain", Lat: 42.3097, Lng: -71.1061, Properties: 89},
		{Name: "North End", Lat: 42.3647, Lng: -71.0542, Properties: 34},
		{Name: "Roxbury", Lat: 42.3143, Lng: -71.094, Properties: 123},
		{Name: "South Boston", Lat: 42.3341, Lng: -71.0486, Properties: 98},
		{Name: "South End", Lat: 42.3396, Lng: -71.0703, Properties: 87},
		{Name: "West End", Lat: 42.3648, Lng: -71.0674, Properties: 23},
		{Name: "West Roxbury", Lat: 42.2795, Lng: -71.1597, Properties: 56},
	}
}
