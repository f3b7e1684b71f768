package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

// productFilter builds the listing filter from query parameters. Absent or
// unparsable numeric parameters contribute no predicate.
func productFilter(c *gin.Context) repository.ProductFilter {
	var f repository.ProductFilter
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if v := c.Query("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &price
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &price
		}
	}
	if v := c.Query("search"); v != "" {
		f.Search = &v
	}
	return f
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), productFilter(c))
	if err != nil {
		h.respondError(c, err, "Error fetching products")
		return
	}
	listResponse(c, products, len(products))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrProductNotFound, "")
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error fetching product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	product, err := h.products.Create(c.Request.Context(), req.Name, req.Description, req.Price, req.Category, req.StockQuantity)
	if err != nil {
		h.respondError(c, err, "Error creating product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrProductNotFound, "")
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	product, err := h.products.Update(c.Request.Context(), id, domain.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		h.respondError(c, err, "Error updating product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrProductNotFound, "")
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Error deleting product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

func (h *Handler) GetProductsByCategory(c *gin.Context) {
	products, err := h.products.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.respondError(c, err, "Error fetching products by category")
		return
	}
	listResponse(c, products, len(products))
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Error fetching categories")
		return
	}
	listResponse(c, categories, len(categories))
}
