package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maritime-maintenance/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
	Auth   *auth.AuthService
}

// SetupHTTPTest initializes Gin and a token service for testing
func SetupHTTPTest(t *testing.T) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:  "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)

	return &HTTPTestSuite{
		Router: gin.New(),
		Auth:   authService,
	}
}

// MakeRequest executes an anonymous request
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.do(newRequest(method, url, body))
}

// MakeAuthenticatedRequest executes a request carrying a fresh access cookie
// for the user and, for unsafe methods, the matching CSRF header
func (suite *HTTPTestSuite) MakeAuthenticatedRequest(t *testing.T, method, url string, body interface{}, userID, roleID uint) *httptest.ResponseRecorder {
	token, err := suite.Auth.IssueAccessToken(userID, roleID)
	require.NoError(t, err)

	req := newRequest(method, url, body)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookieName, Value: token.Token})
	req.Header.Set(auth.CSRFHeaderName, token.CSRF)
	return suite.do(req)
}

// MakeRequestWithCookies executes a request with the given cookies and headers
func (suite *HTTPTestSuite) MakeRequestWithCookies(method, url string, body interface{}, cookies []*http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	req := newRequest(method, url, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return suite.do(req)
}

func (suite *HTTPTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

func newRequest(method, url string, body interface{}) *http.Request {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	assert.Equal(t, false, errorResponse["success"])
	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// CookieByName finds a Set-Cookie entry on the response
func CookieByName(recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range recorder.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
