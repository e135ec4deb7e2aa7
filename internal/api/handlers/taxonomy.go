package handlers

import (
	"net/http"

	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaxonomyHandler handles HTTP requests for the classification vocabularies.
// The four vocabularies share one handler shape, so the endpoints are thin.
type TaxonomyHandler struct {
	taxonomyService service.TaxonomyServiceInterface
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(taxonomyService service.TaxonomyServiceInterface) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateMissionType handles POST /mission-types
// @Summary Create a mission type
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param type body service.MissionTypeRequest true "Mission type data"
// @Success 201 {object} models.MissionType "Successfully created mission type"
// @Security BearerAuth
// @Router /mission-types [post]
func (h *TaxonomyHandler) CreateMissionType(c *gin.Context) {
	var req service.MissionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	t, err := h.taxonomyService.CreateMissionType(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListMissionTypes handles GET /mission-types
// @Summary List mission types
// @Tags taxonomies
// @Produce json
// @Success 200 {array} models.MissionType "Successfully retrieved mission types"
// @Security BearerAuth
// @Router /mission-types [get]
func (h *TaxonomyHandler) ListMissionTypes(c *gin.Context) {
	ts, err := h.taxonomyService.ListMissionTypes()
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// UpdateMissionType handles PUT /mission-types/:id
// @Summary Update a mission type
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param id path string true "Mission type ID (UUID)"
// @Param type body service.MissionTypeRequest true "Mission type data"
// @Success 200 {object} models.MissionType "Successfully updated mission type"
// @Security BearerAuth
// @Router /mission-types/{id} [put]
func (h *TaxonomyHandler) UpdateMissionType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.MissionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	t, err := h.taxonomyService.UpdateMissionType(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteMissionType handles DELETE /mission-types/:id
// @Summary Archive a mission type
// @Tags taxonomies
// @Produce json
// @Param id path string true "Mission type ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived mission type"
// @Security BearerAuth
// @Router /mission-types/{id} [delete]
func (h *TaxonomyHandler) DeleteMissionType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteMissionType(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission type archived successfully"})
}

// CreateMissionStatus handles POST /mission-statuses
// @Summary Create a mission status
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param status body service.NameRequest true "Mission status data"
// @Success 201 {object} models.MissionStatus "Successfully created mission status"
// @Security BearerAuth
// @Router /mission-statuses [post]
func (h *TaxonomyHandler) CreateMissionStatus(c *gin.Context) {
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	st, err := h.taxonomyService.CreateMissionStatus(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListMissionStatuses handles GET /mission-statuses
// @Summary List mission statuses
// @Tags taxonomies
// @Produce json
// @Success 200 {array} models.MissionStatus "Successfully retrieved mission statuses"
// @Security BearerAuth
// @Router /mission-statuses [get]
func (h *TaxonomyHandler) ListMissionStatuses(c *gin.Context) {
	sts, err := h.taxonomyService.ListMissionStatuses()
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sts)
}

// UpdateMissionStatus handles PUT /mission-statuses/:id
// @Summary Update a mission status
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param id path string true "Mission status ID (UUID)"
// @Param status body service.NameRequest true "Mission status data"
// @Success 200 {object} models.MissionStatus "Successfully updated mission status"
// @Security BearerAuth
// @Router /mission-statuses/{id} [put]
func (h *TaxonomyHandler) UpdateMissionStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	st, err := h.taxonomyService.UpdateMissionStatus(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteMissionStatus handles DELETE /mission-statuses/:id
// @Summary Archive a mission status
// @Tags taxonomies
// @Produce json
// @Param id path string true "Mission status ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived mission status"
// @Security BearerAuth
// @Router /mission-statuses/{id} [delete]
func (h *TaxonomyHandler) DeleteMissionStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteMissionStatus(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission status archived successfully"})
}

// CreateOrderType handles POST /order-types
// @Summary Create an order type
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param type body service.NameRequest true "Order type data"
// @Success 201 {object} models.OrderType "Successfully created order type"
// @Security BearerAuth
// @Router /order-types [post]
func (h *TaxonomyHandler) CreateOrderType(c *gin.Context) {
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	t, err := h.taxonomyService.CreateOrderType(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListOrderTypes handles GET /order-types
// @Summary List order types
// @Tags taxonomies
// @Produce json
// @Success 200 {array} models.OrderType "Successfully retrieved order types"
// @Security BearerAuth
// @Router /order-types [get]
func (h *TaxonomyHandler) ListOrderTypes(c *gin.Context) {
	ts, err := h.taxonomyService.ListOrderTypes()
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// UpdateOrderType handles PUT /order-types/:id
// @Summary Update an order type
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param id path string true "Order type ID (UUID)"
// @Param type body service.NameRequest true "Order type data"
// @Success 200 {object} models.OrderType "Successfully updated order type"
// @Security BearerAuth
// @Router /order-types/{id} [put]
func (h *TaxonomyHandler) UpdateOrderType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	t, err := h.taxonomyService.UpdateOrderType(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteOrderType handles DELETE /order-types/:id
// @Summary Archive an order type
// @Tags taxonomies
// @Produce json
// @Param id path string true "Order type ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived order type"
// @Security BearerAuth
// @Router /order-types/{id} [delete]
func (h *TaxonomyHandler) DeleteOrderType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteOrderType(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order type archived successfully"})
}

// CreateOrderStatus handles POST /order-statuses
// @Summary Create an order status
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param status body service.NameRequest true "Order status data"
// @Success 201 {object} models.OrderStatus "Successfully created order status"
// @Security BearerAuth
// @Router /order-statuses [post]
func (h *TaxonomyHandler) CreateOrderStatus(c *gin.Context) {
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	st, err := h.taxonomyService.CreateOrderStatus(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListOrderStatuses handles GET /order-statuses
// @Summary List order statuses
// @Tags taxonomies
// @Produce json
// @Success 200 {array} models.OrderStatus "Successfully retrieved order statuses"
// @Security BearerAuth
// @Router /order-statuses [get]
func (h *TaxonomyHandler) ListOrderStatuses(c *gin.Context) {
	sts, err := h.taxonomyService.ListOrderStatuses()
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sts)
}

// UpdateOrderStatus handles PUT /order-statuses/:id
// @Summary Update an order status
// @Tags taxonomies
// @Accept json
// @Produce json
// @Param id path string true "Order status ID (UUID)"
// @Param status body service.NameRequest true "Order status data"
// @Success 200 {object} models.OrderStatus "Successfully updated order status"
// @Security BearerAuth
// @Router /order-statuses/{id} [put]
func (h *TaxonomyHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	st, err := h.taxonomyService.UpdateOrderStatus(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteOrderStatus handles DELETE /order-statuses/:id
// @Summary Archive an order status
// @Tags taxonomies
// @Produce json
// @Param id path string true "Order status ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived order status"
// @Security BearerAuth
// @Router /order-statuses/{id} [delete]
func (h *TaxonomyHandler) DeleteOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteOrderStatus(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status archived successfully"})
}
