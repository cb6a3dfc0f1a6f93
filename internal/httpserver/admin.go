package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trendify-storefront/internal/domain"
	"trendify-storefront/internal/gateway"
)

// Admin handlers front the write path: failures are never swallowed, and the
// message tells the operator whether retrying can help or the input is wrong.

type adminProductResponse struct {
	Product  *domain.Product  `json:"product,omitempty"`
	Products []domain.Product `json:"products,omitempty"`
}

func createProductHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindProductInput(c)
		if !ok {
			return
		}
		product, err := catalog.CreateProduct(c.Request.Context(), in)
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusCreated, adminProductResponse{
			Product:  product,
			Products: refetch(c, catalog),
		})
	}
}

func updateProductHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindProductInput(c)
		if !ok {
			return
		}
		product, err := catalog.UpdateProduct(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, adminProductResponse{
			Product:  product,
			Products: refetch(c, catalog),
		})
	}
}

func deleteProductHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, adminProductResponse{
			Products: refetch(c, catalog),
		})
	}
}

func bindProductInput(c *gin.Context) (gateway.ProductInput, bool) {
	var in gateway.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": string(gateway.KindClient), "message": "invalid product payload"})
		return in, false
	}
	if strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"kind": string(gateway.KindClient), "message": "name required"})
		return in, false
	}
	if in.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"kind": string(gateway.KindClient), "message": "price must not be negative"})
		return in, false
	}
	return in, true
}

// refetch mirrors the storefront's write-then-refresh flow; a failed refresh
// only costs the refreshed listing, not the write's result.
func refetch(c *gin.Context, catalog Catalog) []domain.Product {
	products, err := catalog.ListProducts(c.Request.Context(), gateway.WithoutDegrade())
	if err != nil {
		return nil
	}
	return products
}

// writeGatewayError maps a classified error to a status and a message whose
// guidance matches the kind: transient kinds say "try again", client kinds
// say "check your input".
func writeGatewayError(c *gin.Context, err error) {
	kind := gateway.KindOf(err)
	status := http.StatusInternalServerError
	message := "unexpected error"

	switch kind {
	case gateway.KindTimeout:
		status = http.StatusGatewayTimeout
		message = "the catalog service did not respond; try again"
	case gateway.KindNetwork:
		status = http.StatusBadGateway
		message = "could not reach the catalog service; try again"
	case gateway.KindServer:
		status = http.StatusBadGateway
		message = "the catalog service failed; try again later"
	case gateway.KindClient:
		status = http.StatusBadRequest
		message = "the catalog service rejected the request; check your input"
		var ge *gateway.Error
		if errors.As(err, &ge) {
			if ge.StatusCode > 0 {
				status = ge.StatusCode
			}
			if ge.Message != "" {
				message = "check your input: " + ge.Message
			}
		}
	}

	c.JSON(status, gin.H{"kind": string(kind), "message": message})
}
