// internal/catalog/store.go
package catalog

import (
	"errors"
	"sync"

	"github.com/shopease/shopease-backend/internal/models"
)

var ErrNotFound = errors.New("product not found")

// Store holds the in-memory product catalog and its derived facets. A RWMutex
// guards every access since the HTTP surface reads concurrently. Admin
// mutations touch memory only and are lost on restart.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []string
	brands     []string
}

// NewStore builds a store over the given products and derives the facets
// once, preserving first-seen catalog order.
func NewStore(products []models.Product) *Store {
	s := &Store{
		products: make([]models.Product, len(products)),
	}
	copy(s.products, products)
	s.rebuildFacets()
	return s
}

func (s *Store) rebuildFacets() {
	categories := []string{models.CategoryAll}
	seenCategories := map[string]bool{}
	var brands []string
	seenBrands := map[string]bool{}

	for _, p := range s.products {
		if !seenCategories[p.Category] {
			seenCategories[p.Category] = true
			categories = append(categories, p.Category)
		}
		if !seenBrands[p.Brand] {
			seenBrands[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}

	s.categories = categories
	s.brands = brands
}

// List returns a copy of the catalog in insertion order.
func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) GetByID(id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Add inserts a new product, assigning id = max(existing ids) + 1, and
// appends any new category or brand to the facets.
func (s *Store) Add(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for i := range s.products {
		if s.products[i].ID > maxID {
			maxID = s.products[i].ID
		}
	}
	product.ID = maxID + 1
	s.products = append(s.products, product)
	s.rebuildFacets()

	return product
}

// Update replaces the product with the same id. Facets are re-derived so an
// update that introduces a new category or brand is reflected immediately.
func (s *Store) Update(product models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			s.rebuildFacets()
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.rebuildFacets()
			return nil
		}
	}
	return ErrNotFound
}

// Categories returns the distinct category facet, prefixed with "All".
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Brands returns the distinct brand facet in first-seen order.
func (s *Store) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.brands))
	copy(out, s.brands)
	return out
}

// Featured returns the products flagged as featured, in catalog order.
func (s *Store) Featured() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var featured []models.Product
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}
