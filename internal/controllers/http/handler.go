// Package http maps the REST surface onto the resource services and shapes
// every response as the uniform {success, data|message, error?, count?}
// envelope.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-api/internal/domain"
	"store-api/internal/services"
)

type Handler struct {
	users    *services.UserService
	products *services.ProductService
	orders   *services.OrderService
	devMode  bool
}

// NewHandler builds the handler. devMode exposes internal error detail in
// 500 envelopes.
func NewHandler(users *services.UserService, products *services.ProductService, orders *services.OrderService, devMode bool) *Handler {
	return &Handler{users: users, products: products, orders: orders, devMode: devMode}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)

	users := r.Group("/api/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/orders", h.GetUserOrders)
	}

	products := r.Group("/api/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.GET("/category/:category", h.GetProductsByCategory)
		products.GET("/categories/list", h.ListCategories)
	}

	orders := r.Group("/api/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
		orders.GET("/status/:status", h.GetOrdersByStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})
}

// Root describes the API surface.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Store API Server",
		"version": "1.0.0",
		"endpoints": gin.H{
			"users":    "/api/users",
			"products": "/api/products",
			"orders":   "/api/orders",
		},
		"documentation": gin.H{
			"users": gin.H{
				"GET /api/users":            "Get all users",
				"GET /api/users/:id":        "Get user by ID",
				"POST /api/users":           "Create new user",
				"PUT /api/users/:id":        "Update user",
				"DELETE /api/users/:id":     "Delete user",
				"GET /api/users/:id/orders": "Get user orders",
			},
			"products": gin.H{
				"GET /api/products":                    "Get all products (with optional filters: category, minPrice, maxPrice, search)",
				"GET /api/products/:id":                "Get product by ID",
				"POST /api/products":                   "Create new product",
				"PUT /api/products/:id":                "Update product",
				"DELETE /api/products/:id":             "Delete product",
				"GET /api/products/category/:category": "Get products by category",
				"GET /api/products/categories/list":    "Get all categories",
			},
			"orders": gin.H{
				"GET /api/orders":               "Get all orders (with optional filters: status, userId)",
				"GET /api/orders/:id":           "Get order by ID",
				"POST /api/orders":              "Create new order",
				"PUT /api/orders/:id":           "Update order",
				"DELETE /api/orders/:id":        "Delete order",
				"PUT /api/orders/:id/status":    "Update order status",
				"GET /api/orders/status/:status": "Get orders by status",
			},
		},
	})
}

func listResponse(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count})
}

// respondError translates the error taxonomy into status codes:
// ValidationError/ConflictError 400, not-found sentinels 404, anything
// else 500 with failMsg and detail gated behind dev mode.
func (h *Handler) respondError(c *gin.Context, err error, failMsg string) {
	var ve *domain.ValidationError
	var ce *domain.ConflictError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Reason})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ce.Reason})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
	default:
		detail := "Internal server error"
		if h.devMode {
			detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": failMsg, "error": detail})
	}
}
