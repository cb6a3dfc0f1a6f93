package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trendify-storefront/internal/cart"
	"trendify-storefront/internal/domain"
)

type cartResponse struct {
	Items     []domain.CartLine `json:"items"`
	Total     float64           `json:"total"`
	LineCount int               `json:"lineCount"`
}

func cartStateOf(m *cart.Manager) cartResponse {
	return cartResponse{
		Items:     m.Lines(),
		Total:     m.Total(),
		LineCount: m.LineCount(),
	}
}

func getCartHandler(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartStateOf(m))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
}

// addCartItemHandler resolves the product through the gateway so the cart
// line carries the price and name it will render with.
func addCartItemHandler(m *cart.Manager, catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		product, err := catalog.GetProductByID(c.Request.Context(), req.ProductID)
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		m.AddItem(*product, req.Size)
		c.JSON(http.StatusOK, cartStateOf(m))
	}
}

type setQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func setCartQuantityHandler(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		m.SetQuantity(req.ProductID, req.Size, req.Quantity)
		c.JSON(http.StatusOK, cartStateOf(m))
	}
}

type removeItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
}

func removeCartItemHandler(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		m.RemoveItem(req.ProductID, req.Size)
		c.JSON(http.StatusOK, cartStateOf(m))
	}
}

func checkoutStatusHandler(co *cart.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"checkingOut": co.Active()})
	}
}

func checkoutHandler(m *cart.Manager, co *cart.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.LineCount() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
			return
		}
		if !co.Begin() {
			c.JSON(http.StatusConflict, gin.H{"message": "checkout already in progress"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"checkingOut": true})
	}
}
