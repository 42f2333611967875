package rest

import (
	"net/http"

	"github.com/Gunvolt24/zomato/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — gin с общим набором middleware и всеми маршрутами API.
// serviceName == "" отключает otelgin.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.CacheBypassMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "route not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	restaurants := r.Group("/restaurants")
	restaurants.POST("", h.createRestaurant)
	restaurants.GET("", h.listRestaurants)
	restaurants.GET("/:id", h.getRestaurant)
	restaurants.PUT("/:id", h.updateRestaurant)
	restaurants.DELETE("/:id", h.deleteRestaurant)
	restaurants.GET("/:id/menu", h.listMenu)
	restaurants.POST("/:id/menu-items", h.createMenuItem)
	restaurants.GET("/:id/orders", h.listRestaurantOrders)
	restaurants.GET("/:id/reviews", h.listRestaurantReviews)
	restaurants.GET("/:id/analytics", h.restaurantAnalytics)

	menuItems := r.Group("/menu-items")
	menuItems.GET("/:id", h.getMenuItem)
	menuItems.PUT("/:id", h.updateMenuItem)
	menuItems.DELETE("/:id", h.deleteMenuItem)

	customers := r.Group("/customers")
	customers.POST("", h.createCustomer)
	customers.GET("", h.listCustomers)
	customers.GET("/:id", h.getCustomer)
	customers.PUT("/:id", h.updateCustomer)
	customers.DELETE("/:id", h.deleteCustomer)
	customers.GET("/:id/orders", h.listCustomerOrders)
	customers.GET("/:id/reviews", h.listCustomerReviews)
	customers.GET("/:id/analytics", h.customerAnalytics)

	orders := r.Group("/orders")
	orders.POST("", h.createOrder)
	orders.GET("/:id", h.getOrder)
	orders.PATCH("/:id/status", h.updateOrderStatus)
	orders.POST("/:id/review", h.createReview)

	r.GET("/analytics/popular-items", h.popularItems)
	r.DELETE("/cache/:namespace", h.clearCache)

	return r
}
