package gateway

import (
	"context"
	"net/http"
	"net/url"
	"path"

	"trendify-storefront/internal/domain"
)

// ProductInput is the payload for create and update calls. The backend
// assigns the ID, so it is absent here.
type ProductInput struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
}

// ListProducts fetches the full catalog. Read path: on any failure the call
// degrades to an empty slice after logging, unless WithoutDegrade is passed.
func (c *Client) ListProducts(ctx context.Context, opts ...CallOption) ([]domain.Product, error) {
	cfg := c.callConfig(opts...)
	products, err := Call[[]domain.Product](ctx, c, http.MethodGet, "/products", nil, opts...)
	if err != nil {
		if cfg.degrade {
			c.logger.Printf("api: list products degraded to empty: %v", err)
			return []domain.Product{}, nil
		}
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// GetProductByID fetches one product. Read path: any failure, a genuine 404
// included, yields (nil, nil) unless WithoutDegrade is passed.
func (c *Client) GetProductByID(ctx context.Context, id string, opts ...CallOption) (*domain.Product, error) {
	cfg := c.callConfig(opts...)
	product, err := Call[domain.Product](ctx, c, http.MethodGet, productEndpoint(id), nil, opts...)
	if err != nil {
		if cfg.degrade {
			c.logger.Printf("api: get product %s degraded to absent: %v", id, err)
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches the category list with the same degrade-to-empty
// policy as ListProducts.
func (c *Client) ListCategories(ctx context.Context, opts ...CallOption) ([]domain.Category, error) {
	cfg := c.callConfig(opts...)
	categories, err := Call[[]domain.Category](ctx, c, http.MethodGet, "/categories", nil, opts...)
	if err != nil {
		if cfg.degrade {
			c.logger.Printf("api: list categories degraded to empty: %v", err)
			return []domain.Category{}, nil
		}
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// CreateProduct creates a product. Write path: failures propagate classified.
// The call retries transient failures like the read path even though POST is
// not idempotent, so a create that timed out after reaching the server can
// duplicate a record.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput, opts ...CallOption) (*domain.Product, error) {
	product, err := Call[domain.Product](ctx, c, http.MethodPost, "/products", in, opts...)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a product. Write path: failures propagate classified.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput, opts ...CallOption) (*domain.Product, error) {
	product, err := Call[domain.Product](ctx, c, http.MethodPut, productEndpoint(id), in, opts...)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product. Write path: failures propagate classified.
func (c *Client) DeleteProduct(ctx context.Context, id string, opts ...CallOption) error {
	_, err := c.Do(ctx, http.MethodDelete, productEndpoint(id), nil, opts...)
	return err
}

func productEndpoint(id string) string {
	return path.Join("/products", url.PathEscape(id))
}
