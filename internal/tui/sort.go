package tui

import "github.com/attidev/storefront/internal/catalog/viewmodel"

var sortCycle = []viewmodel.Field{
	viewmodel.FieldNone,
	viewmodel.FieldName,
	viewmodel.FieldVendor,
	viewmodel.FieldArticle,
	viewmodel.FieldRating,
	viewmodel.FieldPrice,
	viewmodel.FieldStock,
}

// nextSortField steps through the sortable columns, resetting the direction
// to ascending on every change, the way clicking a new column header does.
func nextSortField(s viewmodel.Sort) viewmodel.Sort {
	for i, field := range sortCycle {
		if field == s.Field {
			return viewmodel.Sort{Field: sortCycle[(i+1)%len(sortCycle)]}
		}
	}
	return viewmodel.Sort{Field: viewmodel.FieldName}
}

func toggleDirection(s viewmodel.Sort) viewmodel.Sort {
	if !s.Active() {
		return s
	}
	if s.Direction == viewmodel.Ascending {
		s.Direction = viewmodel.Descending
	} else {
		s.Direction = viewmodel.Ascending
	}
	return s
}

func sortLabel(s viewmodel.Sort) string {
	if !s.Active() {
		return "none"
	}
	arrow := "↑"
	if s.Direction == viewmodel.Descending {
		arrow = "↓"
	}
	return string(s.Field) + arrow
}
