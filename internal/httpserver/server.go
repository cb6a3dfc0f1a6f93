package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trendify-storefront/internal/cart"
	"trendify-storefront/internal/domain"
	"trendify-storefront/internal/gateway"
)

// Catalog is the slice of the gateway client the storefront consumes. No
// handler reaches the backend except through it.
type Catalog interface {
	ListProducts(ctx context.Context, opts ...gateway.CallOption) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string, opts ...gateway.CallOption) (*domain.Product, error)
	ListCategories(ctx context.Context, opts ...gateway.CallOption) ([]domain.Category, error)
	CreateProduct(ctx context.Context, in gateway.ProductInput, opts ...gateway.CallOption) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in gateway.ProductInput, opts ...gateway.CallOption) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string, opts ...gateway.CallOption) error
}

// Pinger is implemented by cart stores that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries the collaborators the handlers render from.
type Deps struct {
	Catalog  Catalog
	Cart     *cart.Manager
	Checkout *cart.Checkout
	Metrics  http.Handler
	Store    Pinger
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the storefront routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router, err := buildRouter(logger, deps)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "cart store not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
