// Package rest provides the HTTP transport for the product catalog.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pkorchagin/gocatalog/internal/query"
	"github.com/pkorchagin/gocatalog/internal/service"
	"github.com/pkorchagin/gocatalog/internal/store"
	"github.com/pkorchagin/gocatalog/pkg/apperr"
	"github.com/pkorchagin/gocatalog/pkg/web"
)

// Config carries the handler settings taken from service configuration.
type Config struct {
	APIKeys     []string
	Environment string
	MaxPageSize int
}

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
	cfg      Config
}

// NewHandler creates a new Handler with the provided service.
func NewHandler(svc service.ProductService, logger *slog.Logger, cfg Config) *Handler {
	return &Handler{
		service:  svc,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
		cfg:      cfg,
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service. The
// API-key gate wraps the /api/products subtree only; the system endpoints
// stay open.
func (h *Handler) RegisterRoutes(mux *chi.Mux) {
	mux.Get("/", h.Root)
	mux.Get("/health", h.Health)
	mux.Get("/api", h.APIIndex)

	mux.Route("/api/products", func(r chi.Router) {
		r.Use(web.APIKeyAuth(h.logger, h.cfg.APIKeys))

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/search", h.SearchProducts)
		r.Get("/stats", h.Statistics)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		web.RespondError(w, h.logger, http.StatusNotFound, "Route not found: "+r.URL.Path)
	})
}

type listResponse struct {
	Success    bool            `json:"success"`
	Count      int             `json:"count"`
	Pagination query.PageMeta  `json:"pagination"`
	Data       []store.Product `json:"data"`
}

type productResponse struct {
	Success bool          `json:"success"`
	Data    store.Product `json:"data"`
}

type deleteResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    store.Product `json:"data"`
}

type statsResponse struct {
	Success bool               `json:"success"`
	Stats   service.Statistics `json:"stats"`
}

// List handles the filter/search/sort/paginate listing.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := service.ListParams{
		Search:   values.Get("q"),
		Category: values.Get("category"),
		Page:     query.ParsePagination(values, h.cfg.MaxPageSize),
	}
	if v, ok := query.Bool(values, "inStock"); ok {
		params.InStock = &v
	}
	if v, ok := query.Float(values, "minPrice"); ok {
		params.MinPrice = &v
	}
	if v, ok := query.Float(values, "maxPrice"); ok {
		params.MaxPrice = &v
	}
	if s, ok := query.ParseSort(values); ok {
		params.Sort = &s
	}

	items, meta := h.service.List(params)
	web.RespondJSON(w, h.logger, http.StatusOK, listResponse{
		Success:    true,
		Count:      len(items),
		Pagination: meta,
		Data:       items,
	})
}

// SearchProducts handles the dedicated search endpoint; q is required.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	items, meta, err := h.service.Search(values.Get("q"), query.ParsePagination(values, h.cfg.MaxPageSize))
	if err != nil {
		web.RespondAppError(w, h.logger, err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, listResponse{
		Success:    true,
		Count:      len(items),
		Pagination: meta,
		Data:       items,
	})
}

// Statistics handles the aggregate statistics endpoint.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.URL.Query().Get("category"))
	web.RespondJSON(w, h.logger, http.StatusOK, statsResponse{Success: true, Stats: stats})
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	found, err := h.service.Get(id)
	if err != nil {
		web.RespondAppError(w, h.logger, err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, productResponse{Success: true, Data: *found})
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(in); err != nil {
		h.respondValidation(w, err)
		return
	}

	created, err := h.service.Create(in)
	if err != nil {
		web.RespondAppError(w, h.logger, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created", "id", created.ID, "name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, productResponse{Success: true, Data: *created})
}

// Update handles a partial product update. An empty payload is a no-op.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	var in service.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(in); err != nil {
		h.respondValidation(w, err)
		return
	}

	updated, err := h.service.Update(id, in)
	if err != nil {
		web.RespondAppError(w, h.logger, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated", "id", updated.ID)
	web.RespondJSON(w, h.logger, http.StatusOK, productResponse{Success: true, Data: *updated})
}

// DeleteByID removes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	removed, err := h.service.Delete(id)
	if err != nil {
		web.RespondAppError(w, h.logger, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted", "id", id)
	web.RespondJSON(w, h.logger, http.StatusOK, deleteResponse{
		Success: true,
		Message: "Product deleted successfully",
		Data:    *removed,
	})
}

// respondValidation turns validator errors into a 422 envelope carrying the
// full per-field message list.
func (h *Handler) respondValidation(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	web.RespondAppError(w, h.logger, apperr.Validation(validationMessages(validationErrors)))
}
