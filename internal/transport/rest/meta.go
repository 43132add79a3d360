package rest

import (
	"net/http"
	"time"

	"github.com/pkorchagin/gocatalog/pkg/web"
)

// Root is the liveness endpoint; it answers with plain text.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Product Catalog API is running"))
}

type healthResponse struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Health reports service status, current time and the configured environment.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	web.RespondJSON(w, h.logger, http.StatusOK, healthResponse{
		Success:     true,
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.cfg.Environment,
	})
}

type apiIndexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// APIIndex returns the machine-readable endpoint catalog.
func (h *Handler) APIIndex(w http.ResponseWriter, _ *http.Request) {
	web.RespondJSON(w, h.logger, http.StatusOK, apiIndexResponse{
		Success: true,
		Message: "Product Catalog API",
		Endpoints: map[string]string{
			"GET /api/products":         "List products with filtering, search, sorting and pagination",
			"GET /api/products/search":  "Search products by name or description, 'q' required",
			"GET /api/products/stats":   "Aggregate product statistics, optional 'category' filter",
			"GET /api/products/{id}":    "Get a product by ID",
			"POST /api/products":        "Create a product",
			"PUT /api/products/{id}":    "Partially update a product",
			"DELETE /api/products/{id}": "Delete a product",
			"GET /health":               "Service health",
		},
	})
}
