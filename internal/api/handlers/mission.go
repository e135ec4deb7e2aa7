package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MissionHandler handles HTTP requests for missions: CRUD, the dispatch
// operations and the board queries.
type MissionHandler struct {
	missionService  service.MissionServiceInterface
	dispatchService service.DispatchServiceInterface
	boardService    service.BoardServiceInterface
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(
	missionService service.MissionServiceInterface,
	dispatchService service.DispatchServiceInterface,
	boardService service.BoardServiceInterface,
) *MissionHandler {
	return &MissionHandler{
		missionService:  missionService,
		dispatchService: dispatchService,
		boardService:    boardService,
	}
}

// parseDay accepts a calendar day as 2006-01-02 or a full RFC3339 instant.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateMission handles POST /missions
// @Summary Create a mission
// @Description Creates a mission and seeds one assignment per calendar day of its range, starting at today
// @Tags missions
// @Accept json
// @Produce json
// @Param mission body service.CreateMissionRequest true "Mission data"
// @Success 201 {object} service.MissionResponse "Successfully created mission"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Referenced type, status or order not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions [post]
func (h *MissionHandler) CreateMission(c *gin.Context) {
	var req service.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	mission, err := h.missionService.Create(&req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mission)
}

// UpdateMission handles PUT /missions/:id
// @Summary Update a mission
// @Description Replaces a mission's fields and reconciles its assignments with the new date range
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID (UUID)"
// @Param mission body service.UpdateMissionRequest true "Mission data"
// @Success 200 {object} service.MissionResponse "Successfully updated mission"
// @Failure 400 {object} map[string]interface{} "Invalid request data or range moved into the past"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions/{id} [put]
func (h *MissionHandler) UpdateMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission id"})
		return
	}

	var req service.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	mission, err := h.missionService.Update(id, &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, mission)
}

// GetMission handles GET /missions/:id
// @Summary Get a mission
// @Description Gets a mission with its taxonomy, order chain and active assignments
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID (UUID)"
// @Success 200 {object} service.MissionResponse "Successfully retrieved mission"
// @Failure 400 {object} map[string]interface{} "Invalid mission id"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Security BearerAuth
// @Router /missions/{id} [get]
func (h *MissionHandler) GetMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission id"})
		return
	}

	mission, err := h.missionService.GetByID(id)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, mission)
}

// DeleteMission handles DELETE /missions/:id
// @Summary Archive a mission
// @Description Archives a mission together with all of its assignments
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived mission"
// @Failure 400 {object} map[string]interface{} "Invalid mission id"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Security BearerAuth
// @Router /missions/{id} [delete]
func (h *MissionHandler) DeleteMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission id"})
		return
	}

	if err := h.missionService.Delete(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission archived successfully"})
}

// UnarchiveMission handles POST /missions/:id/unarchive
// @Summary Restore an archived mission
// @Description Restores a mission; its archived assignments stay archived
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully restored mission"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Security BearerAuth
// @Router /missions/{id}/unarchive [post]
func (h *MissionHandler) UnarchiveMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission id"})
		return
	}

	if err := h.missionService.Unarchive(id); err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission restored successfully"})
}

// DuplicateMission handles GET /missions/:id/duplicate
// @Summary Duplicate a mission
// @Description Creates an unassigned copy of a mission with a fresh display id
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID (UUID)"
// @Success 201 {object} service.MissionResponse "Successfully duplicated mission"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Security BearerAuth
// @Router /missions/{id}/duplicate [get]
func (h *MissionHandler) DuplicateMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission id"})
		return
	}

	mission, err := h.missionService.Duplicate(id)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mission)
}

// AssignDay handles PUT /missions/assign
// @Summary Assign a mission day to a team leader
// @Description Assigns one calendar day of a mission to a team leader at the requested queue position, expanding the mission range when the day lies outside it
// @Tags missions
// @Produce json
// @Param missionId query string true "Mission ID (UUID)"
// @Param teamleaderId query string true "Team leader ID (UUID)"
// @Param dateFrom query string true "Day (2006-01-02 or RFC3339)"
// @Param orderIndex query int false "Target position in the leader's day queue" default(0)
// @Success 200 {object} service.AssignResponse "Successfully assigned day"
// @Failure 400 {object} map[string]interface{} "Invalid parameters, past day or wrongly-roled leader"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions/assign [put]
func (h *MissionHandler) AssignDay(c *gin.Context) {
	missionID, err := uuid.Parse(c.Query("missionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid missionId"})
		return
	}
	teamLeaderID, err := uuid.Parse(c.Query("teamleaderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teamleaderId"})
		return
	}
	day, err := parseDay(c.Query("dateFrom"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateFrom"})
		return
	}
	orderIndex, _ := strconv.Atoi(c.DefaultQuery("orderIndex", "0"))

	resp, err := h.dispatchService.AssignDay(missionID, teamLeaderID, day, orderIndex)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reorder handles PUT /missions/re-arrang
// @Summary Reorder an assignment within its day queue
// @Description Moves an assignment to a new position and renumbers the whole queue densely
// @Tags missions
// @Produce json
// @Param affectationId query string true "Assignment ID (UUID)"
// @Param orderIndex query int true "Target position"
// @Success 200 {object} map[string]interface{} "Successfully reordered"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions/re-arrang [put]
func (h *MissionHandler) Reorder(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Query("affectationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid affectationId"})
		return
	}
	orderIndex, err := strconv.Atoi(c.Query("orderIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid orderIndex"})
		return
	}

	id, err := h.dispatchService.Reorder(assignmentID, orderIndex)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Unassign handles PUT /missions/unassign
// @Summary Unassign a mission day
// @Description Archives an assignment; past days are immutable
// @Tags missions
// @Produce json
// @Param affectationMissionXTeamleaderId query string true "Assignment ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully unassigned"
// @Failure 400 {object} map[string]interface{} "Invalid parameters or past day"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions/unassign [put]
func (h *MissionHandler) Unassign(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Query("affectationMissionXTeamleaderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid affectationMissionXTeamleaderId"})
		return
	}

	id, err := h.dispatchService.Unassign(assignmentID)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// visibilityRequest flips a hidden flag on a mission or an assignment
type visibilityRequest struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	IsHidden bool      `json:"is_hidden"`
}

// UpdateMissionVisibility handles PUT /missions/update-mission-visibility
// @Summary Update mission visibility
// @Description Flips the board-level hidden flag of a mission
// @Tags missions
// @Accept json
// @Produce json
// @Param body body handlers.visibilityRequest true "Mission id and flag"
// @Success 200 {object} map[string]interface{} "New flag value"
// @Failure 404 {object} map[string]interface{} "Mission not found"
// @Security BearerAuth
// @Router /missions/update-mission-visibility [put]
func (h *MissionHandler) UpdateMissionVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	hidden, err := h.dispatchService.SetMissionVisibility(req.ID, req.IsHidden)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "is_hidden": hidden})
}

// UpdateAssignmentVisibility handles PUT /missions/update-mission-affectation-visibility
// @Summary Update assignment visibility
// @Description Flips the hidden flag of a single assignment day, independent of the mission-level flag
// @Tags missions
// @Accept json
// @Produce json
// @Param body body handlers.visibilityRequest true "Assignment id and flag"
// @Success 200 {object} map[string]interface{} "New flag value"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /missions/update-mission-affectation-visibility [put]
func (h *MissionHandler) UpdateAssignmentVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	hidden, err := h.dispatchService.SetAssignmentVisibility(req.ID, req.IsHidden)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "is_hidden": hidden})
}

// Unaffected handles GET /missions/unaffected
// @Summary List missions needing dispatch
// @Description Lists missions intersecting the window that carry no leader-assigned day on any working day of it; with dateTo omitted the window is the single day dateFrom
// @Tags missions
// @Produce json
// @Param dateFrom query string true "Window start (2006-01-02 or RFC3339)"
// @Param dateTo query string false "Window end"
// @Success 200 {array} service.MissionResponse "Unassigned missions"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions/unaffected [get]
func (h *MissionHandler) Unaffected(c *gin.Context) {
	dateFrom, err := parseDay(c.Query("dateFrom"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateFrom"})
		return
	}

	var dateTo *time.Time
	if raw := c.Query("dateTo"); raw != "" {
		t, err := parseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateTo"})
			return
		}
		dateTo = &t
	}

	missions, err := h.boardService.UnassignedInWindow(dateFrom, dateTo)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, missions)
}

// Detailed handles GET /missions/missions-detailed
// @Summary Board view of missions in a window
// @Description Lists missions intersecting the window with their windowed assignments, finished missions excluded unless includeFinished is set
// @Tags missions
// @Produce json
// @Param dateFrom query string true "Window start (2006-01-02 or RFC3339)"
// @Param dateTo query string true "Window end"
// @Param includeFinished query bool false "Include finished missions" default(false)
// @Success 200 {array} service.DetailedMissionResponse "Missions with windowed assignments"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /missions/missions-detailed [get]
func (h *MissionHandler) Detailed(c *gin.Context) {
	dateFrom, err := parseDay(c.Query("dateFrom"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateFrom"})
		return
	}
	dateTo, err := parseDay(c.Query("dateTo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateTo"})
		return
	}
	includeFinished, _ := strconv.ParseBool(c.DefaultQuery("includeFinished", "false"))

	missions, err := h.boardService.DetailedInWindow(dateFrom, dateTo, includeFinished)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, missions)
}

// respondMissionError maps domain errors onto HTTP status codes. An unknown
// or wrongly-roled team leader is a caller mistake, not a missing resource.
func respondMissionError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.Is(err, apperrors.ErrTeamLeaderNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsPastDate(err),
		apperrors.IsValidation(err),
		errors.As(err, &fieldErrs),
		errors.Is(err, apperrors.ErrNotATeamLeader),
		errors.Is(err, apperrors.ErrMissionArchived),
		errors.Is(err, apperrors.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed", "details": err.Error()})
	}
}
