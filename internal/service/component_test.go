package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/expiry"
	"maritime-maintenance/internal/mocks"
	"maritime-maintenance/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int { return &v }

func civil(year int, month time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

// ComponentServiceTestSuite defines the test suite for ComponentService
type ComponentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockComponentRepositoryInterface
	mockShipRepo     *mocks.MockShipRepositoryInterface
	mockTypeRepo     *mocks.MockComponentTypeRepositoryInterface
	mockUpdateRepo   *mocks.MockComponentUpdateRepositoryInterface
	componentService *service.ComponentService
	today            time.Time
}

// SetupTest sets up the test suite
func (suite *ComponentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.mockShipRepo = mocks.NewMockShipRepositoryInterface(suite.ctrl)
	suite.mockTypeRepo = mocks.NewMockComponentTypeRepositoryInterface(suite.ctrl)
	suite.mockUpdateRepo = mocks.NewMockComponentUpdateRepositoryInterface(suite.ctrl)
	suite.today = time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	suite.componentService = service.NewComponentService(
		suite.mockRepo,
		suite.mockShipRepo,
		suite.mockTypeRepo,
		suite.mockUpdateRepo,
		validator.New(),
		clock.NewFake(suite.today.Add(15*time.Hour)),
	)
}

// TearDownTest cleans up after each test
func (suite *ComponentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentServiceTestSuite) validRequest() *service.CreateComponentRequest {
	return &service.CreateComponentRequest{
		Name:               "Главный двигатель",
		ComponentTypeID:    uintPtr(2),
		SerialNumber:       strPtr("SN-001"),
		ServiceLifeMonths:  intPtr(6),
		LastInspectionDate: "2023-10-15",
	}
}

func (suite *ComponentServiceTestSuite) TestCreateComponent() {
	suite.mockShipRepo.EXPECT().GetByID(uint(1)).Return(&models.Ship{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.mockTypeRepo.EXPECT().GetByID(uint(2)).Return(&models.ComponentType{ID: 2, Name: "Двигатель"}, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.Component) error {
			assert.Equal(suite.T(), uint(1), c.ShipID)
			assert.Equal(suite.T(), 6, c.ServiceLifeMonths)
			assert.Equal(suite.T(), "2023-10-15", expiry.Format(c.InspectedOn()))
			c.ID = 10
			return nil
		})

	resp, err := suite.componentService.CreateComponent(1, suite.validRequest())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(10), resp.ID)
	assert.Equal(suite.T(), uint(2), resp.ComponentTypeID)
	assert.Equal(suite.T(), models.StatusOperational, resp.Status, "status defaults to operational")
}

func (suite *ComponentServiceTestSuite) TestCreateComponentKeepsExplicitStatus() {
	req := suite.validRequest()
	req.Status = strPtr("На ремонте")

	suite.mockShipRepo.EXPECT().GetByID(uint(1)).Return(&models.Ship{}, nil)
	suite.mockTypeRepo.EXPECT().GetByID(uint(2)).Return(&models.ComponentType{ID: 2}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.componentService.CreateComponent(1, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "На ремонте", resp.Status)
}

func (suite *ComponentServiceTestSuite) TestCreateComponentMissingShipWinsOverValidation() {
	suite.mockShipRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.componentService.CreateComponent(99, &service.CreateComponentRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrShipNotFound)
}

func (suite *ComponentServiceTestSuite) TestCreateComponentValidation() {
	tests := []struct {
		name   string
		mutate func(*service.CreateComponentRequest)
		field  string
	}{
		{name: "missing name", mutate: func(r *service.CreateComponentRequest) { r.Name = "" }, field: "name"},
		{name: "missing type", mutate: func(r *service.CreateComponentRequest) { r.ComponentTypeID = nil }, field: "component_type_id"},
		{name: "missing service life", mutate: func(r *service.CreateComponentRequest) { r.ServiceLifeMonths = nil }, field: "service_life_months"},
		{name: "zero service life", mutate: func(r *service.CreateComponentRequest) { r.ServiceLifeMonths = intPtr(0) }, field: "service_life_months"},
		{name: "bad date", mutate: func(r *service.CreateComponentRequest) { r.LastInspectionDate = "15.10.2023" }, field: "last_inspection_date"},
		{name: "impossible date", mutate: func(r *service.CreateComponentRequest) { r.LastInspectionDate = "2023-02-30" }, field: "last_inspection_date"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockShipRepo.EXPECT().GetByID(uint(1)).Return(&models.Ship{}, nil)
			req := suite.validRequest()
			tt.mutate(req)

			_, err := suite.componentService.CreateComponent(1, req)

			var verr *apperrors.ValidationError
			require.True(suite.T(), errors.As(err, &verr), "got %v", err)
			assert.Equal(suite.T(), tt.field, verr.Field)
		})
	}
}

func (suite *ComponentServiceTestSuite) TestCreateComponentUnknownType() {
	suite.mockShipRepo.EXPECT().GetByID(uint(1)).Return(&models.Ship{}, nil)
	suite.mockTypeRepo.EXPECT().GetByID(uint(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.componentService.CreateComponent(1, suite.validRequest())

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ComponentServiceTestSuite) TestGetComponentComputesExpiry() {
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(&models.Component{
		BaseModel:          models.BaseModel{ID: 10},
		Name:               "Главный двигатель",
		ShipID:             1,
		Ship:               &models.Ship{BaseModel: models.BaseModel{ID: 1}, Name: "Заря"},
		ComponentTypeID:    2,
		ComponentType:      &models.ComponentType{ID: 2, Name: "Двигатель"},
		ServiceLifeMonths:  6,
		LastInspectionDate: civil(2023, time.October, 15),
		Status:             models.StatusOperational,
	}, nil)

	resp, err := suite.componentService.GetComponent(10)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2023-10-15", resp.LastInspectionDate)
	assert.Equal(suite.T(), "2024-04-15", resp.ExpirationDate)
	assert.Equal(suite.T(), 5, resp.DaysRemaining)
	assert.Equal(suite.T(), &service.Ref{ID: 1, Name: "Заря"}, resp.Ship)
	assert.Equal(suite.T(), &service.Ref{ID: 2, Name: "Двигатель"}, resp.ComponentType)
}

func (suite *ComponentServiceTestSuite) TestDeleteComponentRequiresRetiredStatus() {
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(&models.Component{Status: models.StatusOperational}, nil)

	err := suite.componentService.DeleteComponent(10)

	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentNotRetired)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ComponentServiceTestSuite) TestDeleteRetiredComponent() {
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(&models.Component{Status: models.StatusRetired}, nil)
	suite.mockRepo.EXPECT().Delete(uint(10)).Return(nil)

	assert.NoError(suite.T(), suite.componentService.DeleteComponent(10))
}

func (suite *ComponentServiceTestSuite) TestDeleteMissingComponent() {
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(suite.T(), suite.componentService.DeleteComponent(10), apperrors.ErrComponentNotFound)
}

func (suite *ComponentServiceTestSuite) TestUpdateStatusChangesServiceLife() {
	component := &models.Component{
		BaseModel:          models.BaseModel{ID: 10},
		ServiceLifeMonths:  6,
		LastInspectionDate: civil(2023, time.October, 15),
		Status:             models.StatusOperational,
	}
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(component, nil)
	suite.mockRepo.EXPECT().
		ApplyStatusUpdate(gomock.Any(), component, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Component, u *models.ComponentUpdate) error {
			assert.Equal(suite.T(), "На ремонте", c.Status)
			assert.Equal(suite.T(), 12, c.ServiceLifeMonths)
			assert.Equal(suite.T(), "2024-04-10", expiry.Format(c.InspectedOn()))

			assert.Equal(suite.T(), uint(3), u.UserID)
			assert.Equal(suite.T(), "Осмотр", u.UpdateName)
			assert.Equal(suite.T(), "На ремонте", u.NewStatus)
			assert.Equal(suite.T(), "Замена уплотнений\n(Срок службы обновлен с 6 до 12 мес.)", u.Notes)
			assert.Equal(suite.T(), "2024-04-10", expiry.Format(u.UpdatedOn()))
			return nil
		})

	err := suite.componentService.UpdateStatus(context.Background(), 10, 3, &service.UpdateStatusRequest{
		UpdateName:        "Осмотр",
		NewStatus:         "На ремонте",
		Notes:             "Замена уплотнений",
		ServiceLifeMonths: intPtr(12),
	})

	assert.NoError(suite.T(), err)
}

func (suite *ComponentServiceTestSuite) TestUpdateStatusSameServiceLifeAddsNoNote() {
	component := &models.Component{ServiceLifeMonths: 6, Status: models.StatusOperational}
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(component, nil)
	suite.mockRepo.EXPECT().
		ApplyStatusUpdate(gomock.Any(), component, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Component, u *models.ComponentUpdate) error {
			assert.Equal(suite.T(), "", u.Notes)
			return nil
		})

	err := suite.componentService.UpdateStatus(context.Background(), 10, 3, &service.UpdateStatusRequest{
		UpdateName:        "Осмотр",
		NewStatus:         models.StatusOperational,
		ServiceLifeMonths: intPtr(6),
	})

	assert.NoError(suite.T(), err)
}

func (suite *ComponentServiceTestSuite) TestUpdateStatusValidation() {
	err := suite.componentService.UpdateStatus(context.Background(), 10, 3, &service.UpdateStatusRequest{UpdateName: "Осмотр"})

	var verr *apperrors.ValidationError
	require.True(suite.T(), errors.As(err, &verr))
	assert.Equal(suite.T(), "new_status", verr.Field)
}

func (suite *ComponentServiceTestSuite) TestUpdateStatusMissingComponent() {
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.componentService.UpdateStatus(context.Background(), 10, 3, &service.UpdateStatusRequest{UpdateName: "x", NewStatus: "y"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentNotFound)
}

func (suite *ComponentServiceTestSuite) TestListUpdates() {
	suite.mockUpdateRepo.EXPECT().
		ListByComponent(uint(10), 5, 0).
		Return([]models.ComponentUpdate{
			{
				BaseModel:  models.BaseModel{ID: 2},
				UpdateName: "Осмотр",
				UpdateDate: civil(2024, time.April, 1),
				NewStatus:  models.StatusOperational,
				User:       &models.User{BaseModel: models.BaseModel{ID: 3}, Username: "mate"},
			},
		}, int64(6), nil)

	resp, err := suite.componentService.ListUpdates(10, 1, 0)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Updates, 1)
	assert.Equal(suite.T(), "2024-04-01", resp.Updates[0].UpdateDate)
	assert.Equal(suite.T(), &service.UserRef{ID: 3, Username: "mate"}, resp.Updates[0].User)
	assert.Equal(suite.T(), 2, resp.Pages)
}

func (suite *ComponentServiceTestSuite) TestListExpiring() {
	cutoff := expiry.LatestInspection(suite.today, expiry.DefaultWindowDays)
	suite.mockRepo.EXPECT().
		ListInspectedOnOrBefore(cutoff, (*string)(nil)).
		Return([]models.Component{
			// expires 2024-04-15, five days out
			{BaseModel: models.BaseModel{ID: 1}, ServiceLifeMonths: 6, LastInspectionDate: civil(2023, time.October, 15), Status: models.StatusOperational},
			// expires 2025-01-01, outside the window
			{BaseModel: models.BaseModel{ID: 2}, ServiceLifeMonths: 12, LastInspectionDate: civil(2024, time.January, 1), Status: models.StatusOperational},
			// expired 2024-04-01, already past
			{BaseModel: models.BaseModel{ID: 3}, ServiceLifeMonths: 24, LastInspectionDate: civil(2022, time.April, 1), Status: models.StatusOperational},
			// expires today
			{BaseModel: models.BaseModel{ID: 4}, ServiceLifeMonths: 1, LastInspectionDate: civil(2024, time.March, 10), Status: models.StatusRetired},
			// expires on the last day of the window
			{BaseModel: models.BaseModel{ID: 5}, ServiceLifeMonths: 3, LastInspectionDate: civil(2024, time.April, 9), Status: models.StatusOperational},
		}, nil)

	resp, err := suite.componentService.ListExpiring(nil, 1, 10)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Components, 3)
	assert.Equal(suite.T(), uint(4), resp.Components[0].ID)
	assert.Equal(suite.T(), 0, resp.Components[0].DaysRemaining)
	assert.Equal(suite.T(), uint(1), resp.Components[1].ID)
	assert.Equal(suite.T(), "2024-04-15", resp.Components[1].ExpirationDate)
	assert.Equal(suite.T(), uint(5), resp.Components[2].ID)
	assert.Equal(suite.T(), "2024-07-09", resp.Components[2].ExpirationDate)
	assert.Equal(suite.T(), 90, resp.Components[2].DaysRemaining)
	assert.Equal(suite.T(), int64(3), resp.Total)
}

func (suite *ComponentServiceTestSuite) TestListExpiringPagesInMemory() {
	var candidates []models.Component
	for i := 1; i <= 7; i++ {
		candidates = append(candidates, models.Component{
			BaseModel:          models.BaseModel{ID: uint(i)},
			ServiceLifeMonths:  1,
			LastInspectionDate: civil(2024, time.March, 10+i),
			Status:             models.StatusOperational,
		})
	}
	status := models.StatusOperational
	suite.mockRepo.EXPECT().ListInspectedOnOrBefore(gomock.Any(), &status).Return(candidates, nil)

	resp, err := suite.componentService.ListExpiring(&status, 3, 3)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Components, 1)
	assert.Equal(suite.T(), uint(7), resp.Components[0].ID)
	assert.Equal(suite.T(), int64(7), resp.Total)
	assert.Equal(suite.T(), 3, resp.Pages)
	assert.Equal(suite.T(), 3, resp.CurrentPage)
}

func (suite *ComponentServiceTestSuite) TestListExpiringPastLastPage() {
	suite.mockRepo.EXPECT().ListInspectedOnOrBefore(gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := suite.componentService.ListExpiring(nil, 4, 10)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Components)
	assert.Empty(suite.T(), resp.Components)
}

func (suite *ComponentServiceTestSuite) TestListExpiringHugePage() {
	suite.mockRepo.EXPECT().ListInspectedOnOrBefore(gomock.Any(), gomock.Any()).
		Return([]models.Component{
			{BaseModel: models.BaseModel{ID: 1}, ServiceLifeMonths: 6, LastInspectionDate: civil(2023, time.October, 15), Status: models.StatusOperational},
		}, nil)

	var resp *service.ExpiringListResponse
	var err error
	suite.NotPanics(func() {
		resp, err = suite.componentService.ListExpiring(nil, math.MaxInt64/100+2, 100)
	})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.Components)
	assert.Equal(suite.T(), int64(1), resp.Total)
}

func (suite *ComponentServiceTestSuite) TestListExpiringUsesConfiguredZone() {
	// 22:00 UTC on the 10th is already the 11th at UTC+3
	svc := service.NewComponentService(
		suite.mockRepo,
		suite.mockShipRepo,
		suite.mockTypeRepo,
		suite.mockUpdateRepo,
		validator.New(),
		clock.NewFake(suite.today.Add(22*time.Hour)),
	)
	svc.SetLocation(time.FixedZone("UTC+3", 3*3600))

	suite.mockRepo.EXPECT().ListInspectedOnOrBefore(gomock.Any(), gomock.Any()).
		Return([]models.Component{
			{BaseModel: models.BaseModel{ID: 1}, ServiceLifeMonths: 6, LastInspectionDate: civil(2023, time.October, 15), Status: models.StatusOperational},
		}, nil)

	resp, err := svc.ListExpiring(nil, 1, 10)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Components, 1)
	assert.Equal(suite.T(), "2024-04-15", resp.Components[0].ExpirationDate)
	assert.Equal(suite.T(), 4, resp.Components[0].DaysRemaining)
}

func TestComponentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentServiceTestSuite))
}
