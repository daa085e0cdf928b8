package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"maritime-maintenance/internal/api/handlers"
	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/mocks"
	"maritime-maintenance/internal/service"
	"maritime-maintenance/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ComponentHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl           *gomock.Controller
	mockComponents *mocks.MockComponentServiceInterface
}

func (suite *ComponentHandlerTestSuite) SetupTest() {
	suite.HTTPTestSuite = testutils.SetupHTTPTest(suite.T())
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComponents = mocks.NewMockComponentServiceInterface(suite.ctrl)

	handler := handlers.NewComponentHandler(suite.mockComponents)
	api := suite.Router.Group("/api", auth.NewAuthMiddleware(suite.Auth).RequireAuth())
	api.POST("/ships/:id/components", handler.CreateComponent)
	api.GET("/ships/:id/components", handler.ListShipComponents)
	api.GET("/components/:id", handler.GetComponent)
	api.DELETE("/components/:id", handler.DeleteComponent)
	api.GET("/components/:id/updates", handler.ListUpdates)
	api.POST("/components/:id/update_status", handler.UpdateStatus)
	api.GET("/expiring_components", handler.ListExpiring)
}

func (suite *ComponentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent_Success() {
	suite.mockComponents.EXPECT().
		CreateComponent(uint(2), gomock.Any()).
		DoAndReturn(func(_ uint, req *service.CreateComponentRequest) (*service.ComponentSummary, error) {
			assert.Equal(suite.T(), "Главный двигатель", req.Name)
			require.NotNil(suite.T(), req.ServiceLifeMonths)
			assert.Equal(suite.T(), 24, *req.ServiceLifeMonths)
			assert.Nil(suite.T(), req.Status)
			return &service.ComponentSummary{ID: 10, Name: req.Name, ComponentTypeID: 1, Status: models.StatusOperational}, nil
		})

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodPost, "/api/ships/2/components", map[string]interface{}{
		"name":                 "Главный двигатель",
		"component_type_id":    1,
		"service_life_months":  24,
		"last_inspection_date": "2024-01-15",
	}, 7, models.RoleUser)

	var body struct {
		Success   bool                     `json:"success"`
		Component service.ComponentSummary `json:"component"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &body)
	assert.Equal(suite.T(), uint(10), body.Component.ID)
	assert.Equal(suite.T(), models.StatusOperational, body.Component.Status)
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent_ShipNotFound() {
	suite.mockComponents.EXPECT().CreateComponent(uint(99), gomock.Any()).Return(nil, apperrors.ErrShipNotFound)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodPost, "/api/ships/99/components", map[string]interface{}{
		"name": "Насос",
	}, 7, models.RoleUser)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "ship not found")
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent_ValidationNamesField() {
	suite.mockComponents.EXPECT().CreateComponent(uint(2), gomock.Any()).
		Return(nil, apperrors.NewValidationError("last_inspection_date", "must be a date in YYYY-MM-DD format"))

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodPost, "/api/ships/2/components", map[string]interface{}{
		"name":                 "Насос",
		"last_inspection_date": "15.01.2024",
	}, 7, models.RoleUser)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "last_inspection_date")
}

func (suite *ComponentHandlerTestSuite) TestGetComponent() {
	suite.mockComponents.EXPECT().GetComponent(uint(10)).Return(&service.ComponentDetailResponse{
		ID:                 10,
		Name:               "Насос",
		Ship:               &service.Ref{ID: 2, Name: "Бета"},
		ComponentType:      &service.Ref{ID: 1, Name: "Насосы"},
		ServiceLifeMonths:  12,
		LastInspectionDate: "2023-04-15",
		Status:             models.StatusOperational,
		ExpirationDate:     "2024-04-15",
		DaysRemaining:      5,
	}, nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodGet, "/api/components/10", nil, 7, models.RoleUser)

	var body struct {
		Component service.ComponentDetailResponse `json:"component"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "2024-04-15", body.Component.ExpirationDate)
	assert.Equal(suite.T(), 5, body.Component.DaysRemaining)
	require.NotNil(suite.T(), body.Component.Ship)
	assert.Equal(suite.T(), "Бета", body.Component.Ship.Name)
}

func (suite *ComponentHandlerTestSuite) TestDeleteComponent_NotRetired() {
	suite.mockComponents.EXPECT().DeleteComponent(uint(10)).Return(apperrors.ErrComponentNotRetired)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodDelete, "/api/components/10", nil, 7, models.RoleUser)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "retired")
}

func (suite *ComponentHandlerTestSuite) TestDeleteComponent_Success() {
	suite.mockComponents.EXPECT().DeleteComponent(uint(10)).Return(nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodDelete, "/api/components/10", nil, 7, models.RoleUser)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), true, body["success"])
}

func (suite *ComponentHandlerTestSuite) TestUpdateStatus_PassesActor() {
	months := 12
	suite.mockComponents.EXPECT().
		UpdateStatus(gomock.Any(), uint(10), uint(7), &service.UpdateStatusRequest{
			UpdateName:        "Ремонт",
			NewStatus:         models.StatusOperational,
			Notes:             "Замена уплотнений",
			ServiceLifeMonths: &months,
		}).
		Return(nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodPost, "/api/components/10/update_status", map[string]interface{}{
		"update_name":         "Ремонт",
		"new_status":          models.StatusOperational,
		"notes":               "Замена уплотнений",
		"service_life_months": 12,
	}, 7, models.RoleUser)

	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
}

func (suite *ComponentHandlerTestSuite) TestListUpdates() {
	suite.mockComponents.EXPECT().ListUpdates(uint(10), 2, 5).Return(&service.ComponentUpdateListResponse{
		Updates: []service.ComponentUpdateResponse{{
			ID:         3,
			UpdateName: "Осмотр",
			UpdateDate: "2024-04-10",
			NewStatus:  models.StatusOperational,
			User:       &service.UserRef{ID: 7, Username: "bob"},
		}},
		Pagination: service.Pagination{Total: 6, Pages: 2, CurrentPage: 2},
	}, nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodGet, "/api/components/10/updates?page=2&per_page=5", nil, 7, models.RoleUser)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	updates, ok := body["updates"].([]interface{})
	require.True(suite.T(), ok)
	require.Len(suite.T(), updates, 1)
	user := updates[0].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(suite.T(), "bob", user["username"])
	assert.Equal(suite.T(), float64(2), body["current_page"])
}

func (suite *ComponentHandlerTestSuite) TestListExpiring_WithoutStatus() {
	suite.mockComponents.EXPECT().ListExpiring(gomock.Nil(), 1, 0).Return(&service.ExpiringListResponse{
		Components: []service.ExpiringComponentResponse{},
		Pagination: service.Pagination{Total: 0, Pages: 0, CurrentPage: 1},
	}, nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodGet, "/api/expiring_components", nil, 7, models.RoleUser)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), []interface{}{}, body["expiring_components"])
}

func (suite *ComponentHandlerTestSuite) TestListExpiring_StatusFilter() {
	status := models.StatusOperational
	suite.mockComponents.EXPECT().ListExpiring(&status, 1, 10).Return(&service.ExpiringListResponse{
		Components: []service.ExpiringComponentResponse{{
			ID:             4,
			Name:           "Насос",
			ShipID:         2,
			Status:         status,
			ExpirationDate: "2024-04-12",
			DaysRemaining:  2,
		}},
		Pagination: service.Pagination{Total: 1, Pages: 1, CurrentPage: 1},
	}, nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodGet,
		"/api/expiring_components?per_page=10&status="+url.QueryEscape(status), nil, 7, models.RoleUser)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Len(suite.T(), body["expiring_components"], 1)
}

func (suite *ComponentHandlerTestSuite) TestRequiresAuthentication() {
	w := suite.MakeRequest(http.MethodGet, "/api/components/10", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "")
}

func TestComponentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentHandlerTestSuite))
}
