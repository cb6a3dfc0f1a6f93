package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the storefront.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:id", getProductHandler(deps.Catalog))
		api.GET("/categories", listCategoriesHandler(deps.Catalog))
		api.GET("/home", homeHandler(deps.Catalog))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
		api.PUT("/cart/items", setCartQuantityHandler(deps.Cart))
		api.DELETE("/cart/items", removeCartItemHandler(deps.Cart))

		api.GET("/checkout", checkoutStatusHandler(deps.Checkout))
		api.POST("/checkout", checkoutHandler(deps.Cart, deps.Checkout))

		admin := api.Group("/admin")
		{
			admin.POST("/products", createProductHandler(deps.Catalog))
			admin.PUT("/products/:id", updateProductHandler(deps.Catalog))
			admin.DELETE("/products/:id", deleteProductHandler(deps.Catalog))
		}
	}

	return router, nil
}
