// Package catalogd implements a self-contained demo catalog server speaking
// the same wire contract as the public service the client targets. It exists
// so the client can be developed and exercised end to end without the
// network.
package catalogd

import (
	"strings"
	"sync"

	"github.com/attidev/storefront/internal/catalog"
)

// Store is an in-memory product store. HTTP handlers hit it concurrently,
// so it guards itself with an RWMutex.
type Store struct {
	mu       sync.RWMutex
	products []catalog.Product
	nextID   int
}

// NewStore creates a store holding the given seed products. IDs for created
// products continue after the highest seeded ID.
func NewStore(seed []catalog.Product) *Store {
	nextID := 1
	for _, p := range seed {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	return &Store{
		products: append([]catalog.Product(nil), seed...),
		nextID:   nextID,
	}
}

// List returns one page of products in insertion order plus the total count.
func (s *Store) List(limit, skip int) catalog.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pageOf(s.products, limit, skip)
}

// Search returns one page of products whose title contains q
// case-insensitively. Total counts every match, not just this page.
func (s *Store) Search(q string, limit, skip int) catalog.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]catalog.Product, 0, len(s.products))
	needle := strings.ToLower(q)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			matched = append(matched, p)
		}
	}
	return pageOf(matched, limit, skip)
}

// Create assigns the next ID and appends the product built from the draft.
func (s *Store) Create(draft catalog.Draft) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := catalog.Product{
		ID:       s.nextID,
		Title:    draft.Title,
		Price:    draft.Price,
		Brand:    draft.Brand,
		Category: draft.Category,
		Rating:   draft.Rating,
		Stock:    draft.Stock,
	}
	s.nextID++
	s.products = append(s.products, product)
	return product
}

// Delete acknowledges a deletion without removing the product. The public
// service this mimics does not persist deletions either; clients are
// expected to enforce them by hiding. Returns false when the ID is unknown.
func (s *Store) Delete(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func pageOf(all []catalog.Product, limit, skip int) catalog.Page {
	total := len(all)
	if skip > total {
		skip = total
	}
	end := skip + limit
	if limit <= 0 || end > total {
		end = total
	}
	return catalog.Page{
		Products: append([]catalog.Product(nil), all[skip:end]...),
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	}
}
