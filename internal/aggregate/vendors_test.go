package aggregate

import (
	"testing"

	"github.com/everafterhq/everafter/internal/models"
)

func vendorFixtures() []models.Vendor {
	// Ordered by rating descending, as the store returns them.
	return []models.Vendor{
		{ID: "v1", Name: "Grand Oak Manor", Category: "Venue", Description: "Historic estate with gardens", Rating: 4.9},
		{ID: "v2", Name: "Petal & Stem", Category: "Flowers", Description: "Seasonal floral design", Rating: 4.8},
		{ID: "v3", Name: "Golden Hour Photos", Category: "Photography", Description: "Candid wedding photography", Rating: 4.7},
		{ID: "v4", Name: "Oak Barrel Catering", Category: "Catering", Description: "Farm-to-table menus", Rating: 4.5},
	}
}

func vendorIDs(vendors []models.Vendor) []string {
	ids := make([]string, len(vendors))
	for i, v := range vendors {
		ids[i] = v.ID
	}
	return ids
}

func TestFilterVendors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{
			name:     "no filters returns all in store order",
			category: "All",
			wantIDs:  []string{"v1", "v2", "v3", "v4"},
		},
		{
			name:     "category filter",
			category: "Flowers",
			wantIDs:  []string{"v2"},
		},
		{
			name:    "query matches name case-insensitively",
			query:   "OAK",
			wantIDs: []string{"v1", "v4"},
		},
		{
			name:    "query matches description",
			query:   "candid",
			wantIDs: []string{"v3"},
		},
		{
			name:     "query and category combine",
			query:    "oak",
			category: "Catering",
			wantIDs:  []string{"v4"},
		},
		{
			name:     "no matches",
			query:    "yacht",
			category: "All",
			wantIDs:  []string{},
		},
		{
			name:    "empty category behaves like All",
			query:   "",
			wantIDs: []string{"v1", "v2", "v3", "v4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVendors(vendorFixtures(), tt.query, tt.category)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d vendors %v, want %d", len(got), vendorIDs(got), len(tt.wantIDs))
			}
			for i, v := range got {
				if v.ID != tt.wantIDs[i] {
					t.Errorf("vendor[%d] = %s, want %s", i, v.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

// Filtering by category then text must equal text then category, and
// re-applying the same filter must not change the result.
func TestFilterVendorsCommutesAndIsIdempotent(t *testing.T) {
	vendors := vendorFixtures()
	query, category := "oak", "Catering"

	categoryFirst := FilterVendors(FilterVendors(vendors, "", category), query, "All")
	textFirst := FilterVendors(FilterVendors(vendors, query, "All"), "", category)
	combined := FilterVendors(vendors, query, category)

	for _, got := range [][]models.Vendor{categoryFirst, textFirst} {
		if len(got) != len(combined) {
			t.Fatalf("predicate order changed result: %v vs %v", vendorIDs(got), vendorIDs(combined))
		}
		for i := range got {
			if got[i].ID != combined[i].ID {
				t.Fatalf("predicate order changed result: %v vs %v", vendorIDs(got), vendorIDs(combined))
			}
		}
	}

	again := FilterVendors(combined, query, category)
	if len(again) != len(combined) {
		t.Fatalf("filter not idempotent: %v vs %v", vendorIDs(again), vendorIDs(combined))
	}
}
