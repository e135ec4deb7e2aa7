package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"field-dispatch-backend/internal/api/handlers"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/mocks"
	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MissionHandlerTestSuite defines the test suite for MissionHandler
type MissionHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockMissions *mocks.MockMissionServiceInterface
	mockDispatch *mocks.MockDispatchServiceInterface
	mockBoard    *mocks.MockBoardServiceInterface
	handler      *handlers.MissionHandler
	router       *gin.Engine
}

func (suite *MissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMissions = mocks.NewMockMissionServiceInterface(suite.ctrl)
	suite.mockDispatch = mocks.NewMockDispatchServiceInterface(suite.ctrl)
	suite.mockBoard = mocks.NewMockBoardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMissionHandler(suite.mockMissions, suite.mockDispatch, suite.mockBoard)

	suite.router = gin.New()
	missions := suite.router.Group("/missions")
	{
		missions.PUT("/assign", suite.handler.AssignDay)
		missions.PUT("/re-arrang", suite.handler.Reorder)
		missions.PUT("/unassign", suite.handler.Unassign)
		missions.PUT("/update-mission-visibility", suite.handler.UpdateMissionVisibility)
		missions.PUT("/update-mission-affectation-visibility", suite.handler.UpdateAssignmentVisibility)
		missions.GET("/unaffected", suite.handler.Unaffected)
		missions.GET("/missions-detailed", suite.handler.Detailed)
		missions.POST("", suite.handler.CreateMission)
		missions.GET("/:id", suite.handler.GetMission)
		missions.PUT("/:id", suite.handler.UpdateMission)
		missions.DELETE("/:id", suite.handler.DeleteMission)
		missions.POST("/:id/unarchive", suite.handler.UnarchiveMission)
		missions.GET("/:id/duplicate", suite.handler.DuplicateMission)
	}
}

func (suite *MissionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MissionHandlerTestSuite) serve(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MissionHandlerTestSuite) TestGetMission_Success() {
	id := uuid.New()
	resp := &service.MissionResponse{
		ID:        id,
		DisplayID: "MIS-000042",
		Name:      "Roof inspection",
		DateFrom:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateTo:    time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC),
	}
	suite.mockMissions.EXPECT().GetByID(id).Return(resp, nil)

	w := suite.serve(http.MethodGet, "/missions/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, got.ID)
	assert.Equal(suite.T(), "MIS-000042", got.DisplayID)
	assert.Equal(suite.T(), "Roof inspection", got.Name)
}

func (suite *MissionHandlerTestSuite) TestGetMission_NotFound() {
	id := uuid.New()
	suite.mockMissions.EXPECT().GetByID(id).Return(nil, apperrors.ErrMissionNotFound)

	w := suite.serve(http.MethodGet, "/missions/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MissionHandlerTestSuite) TestGetMission_InvalidID() {
	w := suite.serve(http.MethodGet, "/missions/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestCreateMission_Success() {
	suite.mockMissions.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreateMissionRequest) (*service.MissionResponse, error) {
			assert.Equal(suite.T(), "Roof inspection", req.Name)
			return &service.MissionResponse{ID: uuid.New(), Name: req.Name}, nil
		})

	body := map[string]interface{}{
		"name":      "Roof inspection",
		"type_id":   uuid.New().String(),
		"status_id": uuid.New().String(),
		"date_from": "2025-03-10T00:00:00Z",
		"date_to":   "2025-03-12T00:00:00Z",
	}
	w := suite.serve(http.MethodPost, "/missions", body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *MissionHandlerTestSuite) TestCreateMission_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/missions", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestDeleteMission_Success() {
	id := uuid.New()
	suite.mockMissions.EXPECT().Delete(id).Return(nil)

	w := suite.serve(http.MethodDelete, "/missions/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MissionHandlerTestSuite) TestUnarchiveMission_Success() {
	id := uuid.New()
	suite.mockMissions.EXPECT().Unarchive(id).Return(nil)

	w := suite.serve(http.MethodPost, "/missions/"+id.String()+"/unarchive", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MissionHandlerTestSuite) TestDuplicateMission_Success() {
	id := uuid.New()
	dupID := uuid.New()
	suite.mockMissions.EXPECT().Duplicate(id).Return(&service.MissionResponse{ID: dupID, DisplayID: "MIS-000043"}, nil)

	w := suite.serve(http.MethodGet, "/missions/"+id.String()+"/duplicate", nil)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), dupID, got.ID)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_Success() {
	missionID := uuid.New()
	leaderID := uuid.New()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	suite.mockDispatch.EXPECT().
		AssignDay(missionID, leaderID, day, 2).
		Return(&service.AssignResponse{
			Mission:    service.MissionResponse{ID: missionID},
			Assignment: service.AssignmentResponse{ID: uuid.New(), MissionID: missionID, TeamLeaderID: &leaderID, OrderIndex: 2},
		}, nil)

	url := "/missions/assign?missionId=" + missionID.String() +
		"&teamleaderId=" + leaderID.String() +
		"&dateFrom=2025-03-12&orderIndex=2"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AssignResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), missionID, got.Mission.ID)
	assert.Equal(suite.T(), int16(2), got.Assignment.OrderIndex)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_RFC3339Day() {
	missionID := uuid.New()
	leaderID := uuid.New()
	day := time.Date(2025, 3, 12, 8, 30, 0, 0, time.UTC)

	suite.mockDispatch.EXPECT().
		AssignDay(missionID, leaderID, day, 0).
		Return(&service.AssignResponse{}, nil)

	url := "/missions/assign?missionId=" + missionID.String() +
		"&teamleaderId=" + leaderID.String() +
		"&dateFrom=2025-03-12T08%3A30%3A00Z"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_PastDay() {
	missionID := uuid.New()
	leaderID := uuid.New()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockDispatch.EXPECT().
		AssignDay(missionID, leaderID, day, 0).
		Return(nil, apperrors.ErrPastDay)

	url := "/missions/assign?missionId=" + missionID.String() +
		"&teamleaderId=" + leaderID.String() +
		"&dateFrom=2025-03-01"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_UnknownLeaderIsBadRequest() {
	missionID := uuid.New()
	leaderID := uuid.New()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	suite.mockDispatch.EXPECT().
		AssignDay(missionID, leaderID, day, 0).
		Return(nil, apperrors.ErrTeamLeaderNotFound)

	url := "/missions/assign?missionId=" + missionID.String() +
		"&teamleaderId=" + leaderID.String() +
		"&dateFrom=2025-03-12"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_MissionNotFound() {
	missionID := uuid.New()
	leaderID := uuid.New()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	suite.mockDispatch.EXPECT().
		AssignDay(missionID, leaderID, day, 0).
		Return(nil, apperrors.ErrMissionNotFound)

	url := "/missions/assign?missionId=" + missionID.String() +
		"&teamleaderId=" + leaderID.String() +
		"&dateFrom=2025-03-12"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_InvalidMissionID() {
	url := "/missions/assign?missionId=nope&teamleaderId=" + uuid.NewString() + "&dateFrom=2025-03-12"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestAssignDay_InvalidDay() {
	url := "/missions/assign?missionId=" + uuid.NewString() +
		"&teamleaderId=" + uuid.NewString() + "&dateFrom=12-03-2025"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestReorder_Success() {
	assignmentID := uuid.New()
	suite.mockDispatch.EXPECT().Reorder(assignmentID, 3).Return(assignmentID, nil)

	url := "/missions/re-arrang?affectationId=" + assignmentID.String() + "&orderIndex=3"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), assignmentID.String(), got["id"])
}

func (suite *MissionHandlerTestSuite) TestReorder_MissingIndex() {
	url := "/missions/re-arrang?affectationId=" + uuid.NewString()
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestReorder_NotFound() {
	assignmentID := uuid.New()
	suite.mockDispatch.EXPECT().Reorder(assignmentID, 0).Return(uuid.Nil, apperrors.ErrAssignmentNotFound)

	url := "/missions/re-arrang?affectationId=" + assignmentID.String() + "&orderIndex=0"
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MissionHandlerTestSuite) TestUnassign_Success() {
	assignmentID := uuid.New()
	suite.mockDispatch.EXPECT().Unassign(assignmentID).Return(assignmentID, nil)

	url := "/missions/unassign?affectationMissionXTeamleaderId=" + assignmentID.String()
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MissionHandlerTestSuite) TestUnassign_PastDay() {
	assignmentID := uuid.New()
	suite.mockDispatch.EXPECT().Unassign(assignmentID).Return(uuid.Nil, apperrors.ErrPastDay)

	url := "/missions/unassign?affectationMissionXTeamleaderId=" + assignmentID.String()
	w := suite.serve(http.MethodPut, url, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestUpdateMissionVisibility_Success() {
	id := uuid.New()
	suite.mockDispatch.EXPECT().SetMissionVisibility(id, true).Return(true, nil)

	w := suite.serve(http.MethodPut, "/missions/update-mission-visibility",
		map[string]interface{}{"id": id.String(), "is_hidden": true})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, got["is_hidden"])
}

func (suite *MissionHandlerTestSuite) TestUpdateAssignmentVisibility_NotFound() {
	id := uuid.New()
	suite.mockDispatch.EXPECT().SetAssignmentVisibility(id, false).Return(false, apperrors.ErrAssignmentNotFound)

	w := suite.serve(http.MethodPut, "/missions/update-mission-affectation-visibility",
		map[string]interface{}{"id": id.String(), "is_hidden": false})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MissionHandlerTestSuite) TestUnaffected_SingleDay() {
	from := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	suite.mockBoard.EXPECT().
		UnassignedInWindow(from, nil).
		Return([]service.MissionResponse{{ID: uuid.New(), Name: "Unstaffed"}}, nil)

	w := suite.serve(http.MethodGet, "/missions/unaffected?dateFrom=2025-03-12", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Unstaffed", got[0].Name)
}

func (suite *MissionHandlerTestSuite) TestUnaffected_Window() {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	suite.mockBoard.EXPECT().
		UnassignedInWindow(from, gomock.Cond(func(x any) bool {
			p, ok := x.(*time.Time)
			return ok && p != nil && p.Equal(to)
		})).
		Return([]service.MissionResponse{}, nil)

	w := suite.serve(http.MethodGet, "/missions/unaffected?dateFrom=2025-03-10&dateTo=2025-03-14", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MissionHandlerTestSuite) TestUnaffected_MissingDateFrom() {
	w := suite.serve(http.MethodGet, "/missions/unaffected", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MissionHandlerTestSuite) TestDetailed_Success() {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	suite.mockBoard.EXPECT().
		DetailedInWindow(from, to, false).
		Return([]service.DetailedMissionResponse{
			{
				MissionResponse: service.MissionResponse{ID: uuid.New(), Name: "Site survey"},
				MultiTeamLeader: true,
				HasHoles:        false,
			},
		}, nil)

	w := suite.serve(http.MethodGet, "/missions/missions-detailed?dateFrom=2025-03-10&dateTo=2025-03-14", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.DetailedMissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.True(suite.T(), got[0].MultiTeamLeader)
	assert.False(suite.T(), got[0].HasHoles)
}

func (suite *MissionHandlerTestSuite) TestDetailed_IncludeFinished() {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	suite.mockBoard.EXPECT().
		DetailedInWindow(from, to, true).
		Return([]service.DetailedMissionResponse{}, nil)

	w := suite.serve(http.MethodGet,
		"/missions/missions-detailed?dateFrom=2025-03-10&dateTo=2025-03-14&includeFinished=true", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MissionHandlerTestSuite) TestDetailed_InvertedRange() {
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.mockBoard.EXPECT().
		DetailedInWindow(from, to, false).
		Return(nil, apperrors.ErrInvalidDateRange)

	w := suite.serve(http.MethodGet, "/missions/missions-detailed?dateFrom=2025-03-14&dateTo=2025-03-10", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestMissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MissionHandlerTestSuite))
}
