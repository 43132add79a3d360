package store

import (
	"strings"
	"sync"
)

// InMemory implements ProductStore over a mutex-guarded slice. The slice
// keeps insertion order; nextID grows monotonically and deleted IDs are
// never reused. The duplicate-name check runs inside the write lock so the
// check-then-mutate sequence is atomic under concurrent requests.
type InMemory struct {
	mu       sync.RWMutex
	products []Product
	nextID   int
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{nextID: 1}
}

// NewSeeded creates an in-memory store pre-populated with the given catalog.
// Seed items get IDs assigned the same way Create does.
func NewSeeded(seed []Product) *InMemory {
	s := NewInMemory()
	for _, p := range seed {
		p.ID = s.nextID
		s.nextID++
		s.products = append(s.products, p)
	}
	return s
}

// DefaultCatalog returns the starter products installed at boot.
func DefaultCatalog() []Product {
	return []Product{
		{Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 1200, Category: "Electronics", InStock: true},
		{Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 800, Category: "Electronics", InStock: true},
		{Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 50, Category: "Kitchen", InStock: false},
	}
}

func (s *InMemory) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *InMemory) FindByID(id int) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	p := s.products[i]
	return &p, nil
}

func (s *InMemory) IndexByID(id int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return 0, ErrNotFound
	}
	return i, nil
}

func (s *InMemory) Create(p Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTakenLocked(p.Name, 0) {
		return nil, ErrDuplicateName
	}

	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)

	created := p
	return &created, nil
}

func (s *InMemory) Update(id int, upd Update) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	if upd.Name != nil && s.nameTakenLocked(*upd.Name, id) {
		return nil, ErrDuplicateName
	}

	p := &s.products[i]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.InStock != nil {
		p.InStock = *upd.InStock
	}

	updated := *p
	return &updated, nil
}

func (s *InMemory) DeleteByID(id int) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	removed := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	return &removed, nil
}

// indexLocked returns the position of id, or -1. Callers hold the lock.
func (s *InMemory) indexLocked(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// nameTakenLocked reports whether another live product (excluding excludeID)
// carries name after trimming and case folding. No Unicode normalization
// beyond case folding is applied.
func (s *InMemory) nameTakenLocked(name string, excludeID int) bool {
	name = strings.TrimSpace(name)
	for i := range s.products {
		if s.products[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(s.products[i].Name), name) {
			return true
		}
	}
	return false
}
