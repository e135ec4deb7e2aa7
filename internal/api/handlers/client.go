package handlers

import (
	"net/http"
	"strconv"

	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler handles HTTP requests for client operations
type ClientHandler struct {
	clientService service.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService service.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient handles POST /clients
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.ClientRequest true "Client data"
// @Success 201 {object} models.Client "Successfully created client"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req service.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClient handles GET /clients/:id
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} models.Client "Successfully retrieved client"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	client, err := h.clientService.GetByID(id)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListClients handles GET /clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ClientListResponse "Successfully retrieved clients"
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.clientService.List(limit, offset)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateClient handles PUT /clients/:id
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param client body service.ClientRequest true "Client data"
// @Success 200 {object} models.Client "Successfully updated client"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	var req service.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	client, err := h.clientService.Update(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/:id
// @Summary Archive a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived client"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	if err := h.clientService.Delete(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client archived successfully"})
}
