package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store-api/internal/domain"
)

// parseID parses the :id path parameter. A non-numeric id can never match a
// row, so callers answer with their not-found envelope.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Error fetching users")
		return
	}
	listResponse(c, users, len(users))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrUserNotFound, "")
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error fetching user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Age)
	if err != nil {
		h.respondError(c, err, "Error creating user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User created successfully", "data": user})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrUserNotFound, "")
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, &domain.ValidationError{Reason: "Invalid request body"}, "")
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, domain.UserPatch{Name: req.Name, Email: req.Email, Age: req.Age})
	if err != nil {
		h.respondError(c, err, "Error updating user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully", "data": user})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrUserNotFound, "")
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Error deleting user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

func (h *Handler) GetUserOrders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, domain.ErrUserNotFound, "")
		return
	}
	orders, err := h.users.Orders(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error fetching user orders")
		return
	}
	listResponse(c, orders, len(orders))
}
