package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"trendify-storefront/internal/domain"
)

// Read handlers render whatever the gateway returns; its degrade-to-empty
// policy means a backend outage shows an empty shelf, not an error page.

func listProductsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProductByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listCategoriesHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context())
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

type homeResponse struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
}

// homeHandler fetches products and categories concurrently; both calls
// degrade independently, so a half-broken backend still fills half the page.
func homeHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp homeResponse
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error {
			products, err := catalog.ListProducts(ctx)
			resp.Products = products
			return err
		})
		g.Go(func() error {
			categories, err := catalog.ListCategories(ctx)
			resp.Categories = categories
			return err
		})
		if err := g.Wait(); err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
