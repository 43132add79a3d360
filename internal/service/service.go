// Package service implements the product catalog business logic: the listing
// pipeline (search, filters, sort, pagination), aggregate statistics and CRUD
// over the product store.
package service

import (
	"github.com/pkorchagin/gocatalog/internal/query"
	"github.com/pkorchagin/gocatalog/internal/store"
	"github.com/pkorchagin/gocatalog/pkg/apperr"
)

// ProductService defines the methods for managing products.
type ProductService interface {
	// List runs the listing pipeline: search, filters, sort, count,
	// paginate. The metadata's TotalItems reflects the post-filter,
	// pre-pagination size.
	List(p ListParams) ([]store.Product, query.PageMeta)

	// Search finds products whose name or description contains q,
	// case-insensitively. Returns a BadRequest error when q is empty.
	Search(q string, page query.Pagination) ([]store.Product, query.PageMeta, error)

	// Stats computes aggregate statistics, optionally narrowed to a category.
	Stats(category string) Statistics

	// Get retrieves a product by ID. Returns a NotFound error naming the ID.
	Get(id int) (*store.Product, error)

	// Create validates business rules and adds a new product.
	// Returns a Conflict error when the name duplicates a live product.
	Create(in ProductCreate) (*store.Product, error)

	// Update applies a partial mutation; an empty payload is a no-op.
	Update(id int, in ProductUpdate) (*store.Product, error)

	// Delete removes a product and returns the removed record.
	Delete(id int) (*store.Product, error)
}

// Service implements ProductService over a ProductStore.
type Service struct {
	store store.ProductStore
}

// NewService creates a new Service with the provided store.
func NewService(s store.ProductStore) *Service {
	return &Service{store: s}
}

// ProductCreate is the payload for creating a product. All fields must be
// present; price and inStock use pointers so zero values still satisfy the
// presence check.
type ProductCreate struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Price       *float64 `json:"price"       validate:"required,gt=0"`
	Category    string   `json:"category"    validate:"required,max=50"`
	InStock     *bool    `json:"inStock"     validate:"required"`
}

// ProductUpdate is the payload for a partial update. Each field is validated
// only when present; an empty payload is accepted as a no-op.
type ProductUpdate struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Category    *string  `json:"category"    validate:"omitempty,min=1,max=50"`
	InStock     *bool    `json:"inStock"`
}

// ListParams is the filter/sort/pagination descriptor derived once per
// request from query parameters. Nil pointer fields mean "filter absent".
type ListParams struct {
	Search   string
	Category string
	InStock  *bool
	MinPrice *float64
	MaxPrice *float64
	Sort     *query.Sort
	Page     query.Pagination
}

func (s *Service) List(p ListParams) ([]store.Product, query.PageMeta) {
	items := s.store.List()

	items = searchProducts(items, p.Search)
	items = filterByCategory(items, p.Category)
	items = filterByStock(items, p.InStock)
	items = filterByPriceRange(items, p.MinPrice, p.MaxPrice)
	if p.Sort != nil {
		items = sortProducts(items, *p.Sort)
	}

	meta := query.NewPageMeta(len(items), p.Page.Page, p.Page.Limit)
	return paginate(items, p.Page.Skip, p.Page.Limit), meta
}

func (s *Service) Search(q string, page query.Pagination) ([]store.Product, query.PageMeta, error) {
	if isBlank(q) {
		return nil, query.PageMeta{}, apperr.New(apperr.BadRequest, "Search query parameter 'q' is required")
	}

	items := searchProducts(s.store.List(), q)
	meta := query.NewPageMeta(len(items), page.Page, page.Limit)
	return paginate(items, page.Skip, page.Limit), meta, nil
}

func (s *Service) Get(id int) (*store.Product, error) {
	p, err := s.store.FindByID(id)
	if err != nil {
		return nil, apperr.Newf(apperr.NotFound, "Product with ID %d not found", id)
	}
	return p, nil
}

func (s *Service) Create(in ProductCreate) (*store.Product, error) {
	created, err := s.store.Create(store.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		InStock:     *in.InStock,
	})
	if err != nil {
		return nil, apperr.Newf(apperr.Conflict, "Product with name '%s' already exists", in.Name)
	}
	return created, nil
}

func (s *Service) Update(id int, in ProductUpdate) (*store.Product, error) {
	updated, err := s.store.Update(id, store.Update{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		InStock:     in.InStock,
	})
	switch err {
	case nil:
		return updated, nil
	case store.ErrDuplicateName:
		return nil, apperr.Newf(apperr.Conflict, "Product with name '%s' already exists", *in.Name)
	default:
		return nil, apperr.Newf(apperr.NotFound, "Product with ID %d not found", id)
	}
}

func (s *Service) Delete(id int) (*store.Product, error) {
	removed, err := s.store.DeleteByID(id)
	if err != nil {
		return nil, apperr.Newf(apperr.NotFound, "Product with ID %d not found", id)
	}
	return removed, nil
}
