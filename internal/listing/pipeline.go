// Package listing is the filter -> sort -> paginate pipeline shared by the
// browse, "my tools" and "my reservations" views. The pipeline is pure:
// every stage takes a slice and returns a new one.
package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction orders a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Fields is the normalized projection of one item used by the text and
// equality filters. Producers fill what they have; missing values stay "".
type Fields struct {
	Name         string
	CategoryName string
	CategoryCode string
	StatusName   string
	StatusCode   string
}

// Filter is the active filter set. Empty members match everything.
type Filter struct {
	Text           string
	CategoryEquals string
	StatusEquals   string
}

// Normalize trims and lowercases a display value for haystack building.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FilterItems keeps the items matching the filter. The text filter is a
// case-insensitive substring match against a haystack built from name,
// category display and status display; the equality filters compare codes.
func FilterItems[T any](items []T, f Filter, project func(T) Fields) []T {
	query := Normalize(f.Text)
	out := make([]T, 0, len(items))
	for _, item := range items {
		fields := project(item)
		if f.CategoryEquals != "" && fields.CategoryCode != f.CategoryEquals {
			continue
		}
		if f.StatusEquals != "" && fields.StatusCode != f.StatusEquals {
			continue
		}
		if query != "" {
			haystack := Normalize(fields.Name) + " " +
				Normalize(fields.CategoryName) + " " +
				Normalize(fields.StatusName)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// SortItems returns a sorted copy. compare returns <0, 0 or >0 for the
// ascending order; Descending inverts it. The sort is stable.
func SortItems[T any](items []T, compare func(a, b T) int, dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Page is one page of the pipeline's output.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
}

// Paginate slices items into 1-indexed pages. An out-of-range page clamps
// to the nearest valid one; an empty input still has one (empty) page.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{Items: items[start:end], Number: page, TotalPages: totalPages}
}

// nameCollator compares names the way the views display them. The backend
// serves Hungarian users, so the Hungarian collation order applies.
var nameCollator = collate.New(language.Hungarian, collate.IgnoreCase)

// CompareNames is a locale-aware compare for text sort keys.
func CompareNames(a, b string) int {
	return nameCollator.CompareString(a, b)
}

// CompareNumbers is an ascending numeric compare for price-like keys.
func CompareNumbers(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
