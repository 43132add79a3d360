// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/pkorchagin/gocatalog/internal/config"
	"github.com/pkorchagin/gocatalog/internal/service"
	"github.com/pkorchagin/gocatalog/internal/store"
	"github.com/pkorchagin/gocatalog/internal/transport/rest"
	"github.com/pkorchagin/gocatalog/pkg/server"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies wires the store and service. The starter catalog is
// installed when cfg.API.Seed is set.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	var productStore store.ProductStore
	if cfg.API.Seed {
		productStore = store.NewSeeded(store.DefaultCatalog())
	} else {
		productStore = store.NewInMemory()
	}

	return &Dependencies{
		ProductService: service.NewService(productStore),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router and routes for the catalog service.
// Used by tests to exercise the full middleware and routing stack.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	handler := rest.NewHandler(deps.ProductService, deps.Logger, rest.Config{
		APIKeys:     cfg.Auth.Keys,
		Environment: cfg.API.Environment,
		MaxPageSize: cfg.API.MaxPageSize,
	})
	handler.RegisterRoutes(mux)
	return mux
}

// SetupHttpServer creates and configures the HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
