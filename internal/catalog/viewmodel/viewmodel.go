// Package viewmodel derives the render-ready product list from raw catalog
// state plus the active search and sort criteria. Everything here is a pure
// function of its inputs: no I/O, no stored state, identical inputs always
// produce an identical ordered output.
package viewmodel

import (
	"sort"
	"strings"

	"github.com/attidev/storefront/internal/catalog"
)

// Field names a sortable product column.
type Field string

const (
	FieldNone    Field = ""
	FieldName    Field = "name"
	FieldVendor  Field = "vendor"
	FieldArticle Field = "article"
	FieldRating  Field = "rating"
	FieldPrice   Field = "price"
	FieldStock   Field = "stock"
)

// Direction orders a sorted column ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort is the active sort criterion. The zero value means insertion order.
type Sort struct {
	Field     Field
	Direction Direction
}

// Active reports whether a sort criterion is in effect.
func (s Sort) Active() bool {
	return s.Field != FieldNone
}

// Compose builds the single list the table renders from the latest remote
// page, the local products, the exclusion set, and the search string.
//
// Remote products in the exclusion set are dropped, then both groups are
// filtered by case-insensitive substring match on the title (local products
// are never subject to exclusion). Matching local products come first,
// followed by matching remote products, each group keeping its own order as
// the stable base ordering. An active sort reorders the combined list; ties
// keep their pre-sort relative order.
func Compose(remote []catalog.Product, local []catalog.Product, excluded map[int]struct{}, query string, criterion Sort) []catalog.Product {
	combined := make([]catalog.Product, 0, len(local)+len(remote))
	for _, p := range local {
		if matches(p, query) {
			combined = append(combined, p)
		}
	}
	for _, p := range remote {
		if _, hidden := excluded[p.ID]; hidden {
			continue
		}
		if matches(p, query) {
			combined = append(combined, p)
		}
	}

	if criterion.Active() {
		sort.SliceStable(combined, func(i, j int) bool {
			return less(combined[i], combined[j], criterion)
		})
	}
	return combined
}

func matches(p catalog.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(query))
}

func less(a, b catalog.Product, criterion Sort) bool {
	var result bool
	switch criterion.Field {
	case FieldName:
		result = strings.ToLower(a.Title) < strings.ToLower(b.Title)
		if criterion.Direction == Descending {
			result = strings.ToLower(a.Title) > strings.ToLower(b.Title)
		}
	case FieldVendor:
		result = strings.ToLower(a.Brand) < strings.ToLower(b.Brand)
		if criterion.Direction == Descending {
			result = strings.ToLower(a.Brand) > strings.ToLower(b.Brand)
		}
	case FieldArticle:
		result = a.ID < b.ID
		if criterion.Direction == Descending {
			result = a.ID > b.ID
		}
	case FieldRating:
		result = compareFloat(a.Rating, b.Rating, criterion.Direction)
	case FieldPrice:
		result = compareFloat(a.Price, b.Price, criterion.Direction)
	case FieldStock:
		result = compareFloat(float64(a.Stock), float64(b.Stock), criterion.Direction)
	default:
		return false
	}
	return result
}

func compareFloat(a, b float64, dir Direction) bool {
	if dir == Descending {
		return a > b
	}
	return a < b
}

// Pagination describes the page boundaries derived from the remote total
// count. Locally created products are rendered but never counted toward
// Total; the counters track what the server reports.
type Pagination struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	// From and To are the 1-based bounds for "showing X-Y of Z".
	From int
	To   int
}

// Paginate derives page boundaries for a 1-based page number over the remote
// total. TotalPages is never below 1, so an empty result still has a page.
func Paginate(total, pageSize, page int) Pagination {
	if pageSize <= 0 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	from := (page-1)*pageSize + 1
	to := page * pageSize
	if to > total {
		to = total
	}
	if total == 0 {
		from = 0
		to = 0
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		From:       from,
		To:         to,
	}
}

// HasPrev reports whether an earlier page exists.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a later page exists.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}
