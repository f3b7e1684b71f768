package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store-api/internal/domain"
	"store-api/internal/repository"
)

func orderFilter(c *gin.Context) repository.OrderFilter {
	var f repository.OrderFilter
	if v := c.Query("status"); v != "" {
		status := domain.OrderStatus(v)
		f.Status = &status
	}
	if v := c.Query("userId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.UserID = &id
		}
	}
	return f
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), orderFilter(c))
	if err != nil {
		h.respondError(c, err, "Error fetching orders")
		return
	}
	listResponse(c, orders, len(orders))
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrOrderNotFound, "")
		return
	}
	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error fetching order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	order, err := h.orders.Create(c.Request.Context(), req.UserID, req.TotalAmount, req.Status)
	if err != nil {
		h.respondError(c, err, "Error creating order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrOrderNotFound, "")
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	order, err := h.orders.Update(c.Request.Context(), id, domain.OrderPatch{
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(c, err, "Error updating order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order updated successfully", "data": order})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrOrderNotFound, "")
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Error deleting order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrOrderNotFound, "")
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondError(c, err, "Error updating order status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully", "data": order})
}

func (h *Handler) GetOrdersByStatus(c *gin.Context) {
	orders, err := h.orders.ByStatus(c.Request.Context(), domain.OrderStatus(c.Param("status")))
	if err != nil {
		h.respondError(c, err, "Error fetching orders by status")
		return
	}
	listResponse(c, orders, len(orders))
}
