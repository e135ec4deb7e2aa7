package handlers_test

import (
	"net/http"
	"testing"

	"field-dispatch-backend/internal/api/handlers"
	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/mocks"
	"field-dispatch-backend/internal/service"
	"field-dispatch-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SettingHandlerTestSuite defines the test suite for SettingHandler
type SettingHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSettings *mocks.MockSettingServiceInterface
	handler      *handlers.SettingHandler
	httpSuite    *testutils.HTTPTestSuite
}

func (suite *SettingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSettings = mocks.NewMockSettingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSettingHandler(suite.mockSettings)

	suite.httpSuite = testutils.SetupHTTPTest()
	settings := suite.httpSuite.Router.Group("/settings")
	{
		settings.GET("", suite.handler.ListSettings)
		settings.GET("/:key", suite.handler.GetSetting)
		settings.PUT("/:key", suite.handler.SetSetting)
	}
}

func (suite *SettingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SettingHandlerTestSuite) TestListSettings_Success() {
	suite.mockSettings.EXPECT().List().Return([]models.Setting{
		{Key: models.SettingShowWeekends, Value: "false"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/settings", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var got []models.Setting
	testutils.DecodeJSON(suite.T(), recorder, &got)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), models.SettingShowWeekends, got[0].Key)
}

func (suite *SettingHandlerTestSuite) TestGetSetting_Success() {
	suite.mockSettings.EXPECT().GetByKey(models.SettingShowWeekends).
		Return(&models.Setting{Key: models.SettingShowWeekends, Value: "true"}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/settings/"+models.SettingShowWeekends, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var got models.Setting
	testutils.DecodeJSON(suite.T(), recorder, &got)
	assert.Equal(suite.T(), "true", got.Value)
}

func (suite *SettingHandlerTestSuite) TestGetSetting_NotFound() {
	suite.mockSettings.EXPECT().GetByKey("nope").Return(nil, apperrors.ErrSettingNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/settings/nope", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *SettingHandlerTestSuite) TestSetSetting_Success() {
	suite.mockSettings.EXPECT().Set(models.SettingShowWeekends, gomock.Any()).DoAndReturn(
		func(key string, req *service.SettingRequest) (*models.Setting, error) {
			assert.Equal(suite.T(), "true", req.Value)
			return &models.Setting{Key: key, Value: req.Value}, nil
		})

	recorder := suite.httpSuite.MakeRequest("PUT", "/settings/"+models.SettingShowWeekends,
		map[string]string{"value": "true"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var got models.Setting
	testutils.DecodeJSON(suite.T(), recorder, &got)
	assert.Equal(suite.T(), "true", got.Value)
}

func TestSettingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettingHandlerTestSuite))
}
