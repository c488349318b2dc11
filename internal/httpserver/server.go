// Package httpserver exposes the terminal over REST for the showroom
// front-end: catalog browsing, the cart, checkout, settings and the
// printer controls.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"emrys-pos/internal/metrics"
	"emrys-pos/internal/order"
	"emrys-pos/internal/printer"
	"emrys-pos/internal/product"
	"emrys-pos/internal/settings"
)

// Deps carries everything the handlers need. The printer link is an
// injected resource, not ambient state, so tests swap in a fake
// transport.
type Deps struct {
	Products product.Service
	Orders   order.Service
	Settings settings.Service
	Printer  *printer.Link
	Stats    *metrics.Registry

	JWTSecret    string
	AdminPinHash string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
}

// New builds a Server listening on addr.
func New(addr string, deps Deps) *Server {
	router := buildRouter(deps)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
