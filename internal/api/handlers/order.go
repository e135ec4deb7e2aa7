package handlers

import (
	"net/http"
	"strconv"

	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderService service.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /orders
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body service.OrderRequest true "Order data"
// @Success 201 {object} models.Order "Successfully created order"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.Order "Successfully retrieved order"
// @Failure 404 {object} map[string]interface{} "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /orders
// @Summary List orders
// @Description Lists non-archived orders, optionally restricted to one client
// @Tags orders
// @Produce json
// @Param clientId query string false "Client ID (UUID)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.OrderListResponse "Successfully retrieved orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var clientID *uuid.UUID
	if raw := c.Query("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clientId"})
			return
		}
		clientID = &id
	}

	resp, err := h.orderService.List(clientID, limit, offset)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateOrder handles PUT /orders/:id
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param order body service.OrderRequest true "Order data"
// @Success 200 {object} models.Order "Successfully updated order"
// @Failure 404 {object} map[string]interface{} "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	order, err := h.orderService.Update(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id
// @Summary Archive an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived order"
// @Failure 404 {object} map[string]interface{} "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order archived successfully"})
}
