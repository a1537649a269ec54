package property

import (
	"sort"
	"strconv"
	"strings"
)

// All is the sentinel value meaning a select-style predicate is inactive.
const All = "all"

const (
	MinPriceDefault = 0
	MaxPriceDefault = 300000000
)

const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortAreaDesc  = "area-desc"
)

// Filters holds the search state of the listings page. Every active
// predicate must hold for a property to be included (logical AND).
type Filters struct {
	Keyword  string
	Type     string
	Status   string
	City     string
	MinPrice float64
	MaxPrice float64
	Bedrooms string
}

func DefaultFilters() Filters {
	return Filters{
		Keyword:  "",
		Type:     All,
		Status:   All,
		City:     All,
		MinPrice: MinPriceDefault,
		MaxPrice: MaxPriceDefault,
		Bedrooms: All,
	}
}

// Apply re-scans the whole listing slice and keeps the properties that
// satisfy every active predicate. It is a pure function of its inputs;
// the input slice is never mutated.
func Apply(properties []Property, filters Filters) []Property {
	results := make([]Property, 0, len(properties))
	for _, property := range properties {
		if matches(&property, &filters) {
			results = append(results, property)
		}
	}
	return results
}

func matches(property *Property, filters *Filters) bool {
	if filters.Keyword != "" {
		keyword := strings.ToLower(filters.Keyword)
		if !strings.Contains(strings.ToLower(property.Title), keyword) &&
			!strings.Contains(strings.ToLower(property.Location), keyword) &&
			!strings.Contains(strings.ToLower(property.City), keyword) {
			return false
		}
	}
	if filters.Type != All && property.PropertyType != filters.Type {
		return false
	}
	if filters.Status != All && property.Status != filters.Status {
		return false
	}
	if filters.City != All && !strings.EqualFold(property.City, filters.City) {
		return false
	}
	if property.Price < filters.MinPrice || property.Price > filters.MaxPrice {
		return false
	}
	if filters.Bedrooms != All {
		threshold, err := strconv.ParseInt(filters.Bedrooms, 10, 32)
		if err != nil {
			return false
		}
		// Properties with unset bedrooms are excluded when a threshold is set.
		if property.Bedrooms == nil || int64(*property.Bedrooms) < threshold {
			return false
		}
	}
	return true
}

// SortResults orders a copy of the result set by the given order key.
// Unknown keys fall back to newest-first.
func SortResults(properties []Property, order string) []Property {
	results := make([]Property, len(properties))
	copy(results, properties)
	switch order {
	case SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price < results[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price > results[j].Price
		})
	case SortAreaDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Area > results[j].Area
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	}
	return results
}
