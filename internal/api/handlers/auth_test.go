package handlers_test

import (
	"net/http"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserServiceInterface
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.HTTPTestSuite = testutils.SetupHTTPTest(suite.T())
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserServiceInterface(suite.ctrl)

	handler := handlers.NewAuthHandler(suite.mockUsers, suite.Auth)
	mw := auth.NewAuthMiddleware(suite.Auth)

	api := suite.Router.Group("/api")
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.POST("/refresh", mw.RequireRefresh(), handler.Refresh)
	api.POST("/logout", mw.RequireAuth(), handler.Logout)
	api.GET("/me", mw.RequireAuth(), handler.Me)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestRegister_SetsCookies() {
	user := &models.User{Username: "alice", RoleID: models.RoleUser}
	user.ID = 3
	suite.mockUsers.EXPECT().
		Register(&service.RegisterRequest{Username: "alice", Password: "s3cret"}).
		Return(user, nil)

	w := suite.MakeRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &body)
	assert.Equal(suite.T(), true, body["success"])
	assert.Equal(suite.T(), float64(3), body["user_id"])
	assert.Equal(suite.T(), float64(models.RoleUser), body["role_id"])

	for _, name := range []string{
		auth.AccessCookieName, auth.AccessCSRFCookieName,
		auth.RefreshCookieName, auth.RefreshCSRFCookieName,
	} {
		cookie := testutils.CookieByName(w, name)
		require.NotNil(suite.T(), cookie, name)
		assert.NotEmpty(suite.T(), cookie.Value, name)
	}
}

func (suite *AuthHandlerTestSuite) TestRegister_Duplicate() {
	suite.mockUsers.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	w := suite.MakeRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already exists")
	assert.Nil(suite.T(), testutils.CookieByName(w, auth.AccessCookieName))
}

func (suite *AuthHandlerTestSuite) TestRegister_MissingFields() {
	suite.mockUsers.EXPECT().Register(gomock.Any()).
		Return(nil, apperrors.NewValidationError("password", "is required"))

	w := suite.MakeRequest(http.MethodPost, "/api/register", map[string]string{"username": "alice"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "password")
}

func (suite *AuthHandlerTestSuite) TestRegister_MalformedBody() {
	w := suite.MakeRequest(http.MethodPost, "/api/register", "{not json")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid request body")
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUsers.EXPECT().Authenticate(gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	w := suite.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "invalid username or password")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &models.User{Username: "admin", RoleID: models.RoleAdmin}
	user.ID = 1
	suite.mockUsers.EXPECT().Authenticate(gomock.Any()).Return(user, nil)

	w := suite.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "admin",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), "admin", body["username"])

	access := testutils.CookieByName(w, auth.AccessCookieName)
	require.NotNil(suite.T(), access)
	claims, err := suite.Auth.ValidateJWT(access.Value, auth.TokenTypeAccess)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(1), claims.UserID)
	assert.Equal(suite.T(), models.RoleAdmin, claims.RoleID)
}

func (suite *AuthHandlerTestSuite) TestRefresh_IssuesAccessCookie() {
	pair, err := suite.Auth.IssueTokens(5, models.RoleUser)
	require.NoError(suite.T(), err)
	suite.mockUsers.EXPECT().GetByID(uint(5)).Return(&service.UserResponse{ID: 5, RoleID: models.RoleUser}, nil)

	w := suite.MakeRequestWithCookies(http.MethodPost, "/api/refresh", nil,
		[]*http.Cookie{{Name: auth.RefreshCookieName, Value: pair.Refresh.Token}},
		map[string]string{auth.CSRFHeaderName: pair.Refresh.CSRF},
	)

	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
	access := testutils.CookieByName(w, auth.AccessCookieName)
	require.NotNil(suite.T(), access)
	_, err = suite.Auth.ValidateJWT(access.Value, auth.TokenTypeAccess)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), testutils.CookieByName(w, auth.RefreshCookieName))
}

func (suite *AuthHandlerTestSuite) TestRefresh_UserGone() {
	pair, err := suite.Auth.IssueTokens(5, models.RoleUser)
	require.NoError(suite.T(), err)
	suite.mockUsers.EXPECT().GetByID(uint(5)).Return(nil, apperrors.ErrUserNotFound)

	w := suite.MakeRequestWithCookies(http.MethodPost, "/api/refresh", nil,
		[]*http.Cookie{{Name: auth.RefreshCookieName, Value: pair.Refresh.Token}},
		map[string]string{auth.CSRFHeaderName: pair.Refresh.CSRF},
	)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")
}

func (suite *AuthHandlerTestSuite) TestRefresh_RejectsAccessToken() {
	pair, err := suite.Auth.IssueTokens(5, models.RoleUser)
	require.NoError(suite.T(), err)

	w := suite.MakeRequestWithCookies(http.MethodPost, "/api/refresh", nil,
		[]*http.Cookie{{Name: auth.RefreshCookieName, Value: pair.Access.Token}},
		map[string]string{auth.CSRFHeaderName: pair.Access.CSRF},
	)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnprocessableEntity, "invalid token")
}

func (suite *AuthHandlerTestSuite) TestMe() {
	telegramID := int64(123456789)
	suite.mockUsers.EXPECT().GetByID(uint(7)).Return(&service.UserResponse{
		ID:         7,
		Username:   "bob",
		RoleID:     models.RoleUser,
		TelegramID: &telegramID,
	}, nil)

	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodGet, "/api/me", nil, 7, models.RoleUser)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	assert.Equal(suite.T(), float64(7), body["user_id"])
	assert.Equal(suite.T(), "bob", body["username"])
	assert.Equal(suite.T(), float64(123456789), body["telegram_id"])
}

func (suite *AuthHandlerTestSuite) TestMe_Anonymous() {
	w := suite.MakeRequest(http.MethodGet, "/api/me", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "missing")
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsCookies() {
	w := suite.MakeAuthenticatedRequest(suite.T(), http.MethodPost, "/api/logout", nil, 7, models.RoleUser)

	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
	for _, name := range []string{auth.AccessCookieName, auth.RefreshCookieName} {
		cookie := testutils.CookieByName(w, name)
		require.NotNil(suite.T(), cookie, name)
		assert.Empty(suite.T(), cookie.Value)
		assert.Less(suite.T(), cookie.MaxAge, 0)
	}
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
