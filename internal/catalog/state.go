package catalog

// State is the catalog composition state: products created locally and not
// yet known to any fetched page, remote product IDs the user has hidden, and
// the current bulk-selection set. Every mutation is synchronous and total:
// operations on absent identifiers are no-ops, never errors.
//
// State is owned by a single caller (one per session) and passed by
// reference to whatever needs it; it is not safe for concurrent use.
type State struct {
	local    []Product
	excluded map[int]struct{}
	selected []int
}

// NewState returns an empty composition state.
func NewState() *State {
	return &State{
		excluded: make(map[int]struct{}),
	}
}

// AddLocal prepends a locally created product, so the newest local item is
// always first.
func (s *State) AddLocal(p Product) {
	s.local = append([]Product{p}, s.local...)
}

// RemoveLocal deletes a local product by ID and drops the ID from the
// selection set: a selection may never reference a no-longer-visible item.
func (s *State) RemoveLocal(id int) {
	kept := s.local[:0]
	for _, p := range s.local {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.local = kept
	s.deselect(id)
}

// Exclude hides a remotely sourced product. The remote service is not
// guaranteed to honor deletion, so visibility is enforced client-side. Also
// drops the ID from the selection set.
func (s *State) Exclude(id int) {
	s.excluded[id] = struct{}{}
	s.deselect(id)
}

// ClearExclusions forgets every hidden remote product.
func (s *State) ClearExclusions() {
	s.excluded = make(map[int]struct{})
}

// ClearLocal drops every locally created product.
func (s *State) ClearLocal() {
	s.local = nil
}

// Reset clears local products and exclusions together. This is the refresh
// semantic: a full catalog refresh starts from remote truth alone.
func (s *State) Reset() {
	s.ClearLocal()
	s.ClearExclusions()
}

// ToggleSelection flips an ID in or out of the selection set.
func (s *State) ToggleSelection(id int) {
	for i, sel := range s.selected {
		if sel == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, id)
}

// SelectAll replaces the selection with the given identifier list, which is
// expected to be the currently rendered rows.
func (s *State) SelectAll(ids []int) {
	s.selected = append([]int(nil), ids...)
}

// DeselectAll empties the selection set.
func (s *State) DeselectAll() {
	s.selected = nil
}

// Local returns a copy of the local products, newest first.
func (s *State) Local() []Product {
	return append([]Product(nil), s.local...)
}

// IsLocal reports whether the ID belongs to a locally created product.
func (s *State) IsLocal(id int) bool {
	for _, p := range s.local {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsExcluded reports whether a remote product is hidden.
func (s *State) IsExcluded(id int) bool {
	_, ok := s.excluded[id]
	return ok
}

// Excluded returns the hidden remote IDs as a set.
func (s *State) Excluded() map[int]struct{} {
	out := make(map[int]struct{}, len(s.excluded))
	for id := range s.excluded {
		out[id] = struct{}{}
	}
	return out
}

// IsSelected reports whether the ID is in the selection set.
func (s *State) IsSelected(id int) bool {
	for _, sel := range s.selected {
		if sel == id {
			return true
		}
	}
	return false
}

// Selected returns a copy of the selected IDs in toggle order.
func (s *State) Selected() []int {
	return append([]int(nil), s.selected...)
}

// SelectedCount returns the number of selected rows.
func (s *State) SelectedCount() int {
	return len(s.selected)
}

func (s *State) deselect(id int) {
	for i, sel := range s.selected {
		if sel == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}
