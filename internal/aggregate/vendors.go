package aggregate

import (
	"strings"

	"github.com/everafterhq/everafter/internal/models"
)

// VendorCategoryAll is the category filter value that matches every vendor.
const VendorCategoryAll = "All"

// FilterVendors returns the vendors matching both predicates: category is
// "All" or an exact category match, and query is empty or a case-insensitive
// substring of the vendor's name or description. The two predicates commute
// and the filter is idempotent. Input order (the store's rating-descending
// ordering) is preserved; no re-ranking happens here.
func FilterVendors(vendors []models.Vendor, query, category string) []models.Vendor {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if !matchesCategory(v, category) || !matchesQuery(v, query) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

func matchesCategory(v models.Vendor, category string) bool {
	return category == "" || category == VendorCategoryAll || v.Category == category
}

func matchesQuery(v models.Vendor, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Description), query)
}
