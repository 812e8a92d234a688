package state

import (
	"sort"
	"strings"

	"github.com/shophub/shopfront/internal/shop"
)

// AllCategories is the sentinel category meaning no category filter.
const AllCategories = "All"

// SortKey selects the catalog ordering. Keys are mutually exclusive;
// the default is name ascending.
type SortKey int

const (
	SortName SortKey = iota
	SortPriceAsc
	SortPriceDesc
	SortRatingDesc
)

// Label returns the display label for a sort key.
func (k SortKey) Label() string {
	switch k {
	case SortPriceAsc:
		return "Price ↑"
	case SortPriceDesc:
		return "Price ↓"
	case SortRatingDesc:
		return "Rating"
	default:
		return "Name"
	}
}

// Next returns the following sort key in the cycle.
func (k SortKey) Next() SortKey {
	switch k {
	case SortName:
		return SortPriceAsc
	case SortPriceAsc:
		return SortPriceDesc
	case SortPriceDesc:
		return SortRatingDesc
	default:
		return SortName
	}
}

// FilterItems returns the items whose category matches exactly (or
// category is the "All" sentinel) and whose name or description
// contains query case-insensitively. Both conditions must hold.
func FilterItems(items []shop.Item, query, category string) []shop.Item {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]shop.Item, 0, len(items))
	for _, item := range items {
		if category != "" && category != AllCategories && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SortItems returns a new slice ordered by the given key. The sort is
// stable, so sorting an already-sorted list yields the same list.
func SortItems(items []shop.Item, key SortKey) []shop.Item {
	out := make([]shop.Item, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortPriceAsc:
			return out[i].Price < out[j].Price
		case SortPriceDesc:
			return out[i].Price > out[j].Price
		case SortRatingDesc:
			return out[i].Rating > out[j].Rating
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out
}

// Categories returns the "All" sentinel followed by the distinct item
// categories in sorted order.
func Categories(items []shop.Item) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		if strings.TrimSpace(item.Category) == "" {
			continue
		}
		seen[item.Category] = struct{}{}
	}

	names := make([]string, 0, len(seen)+1)
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{AllCategories}, names...)
}
