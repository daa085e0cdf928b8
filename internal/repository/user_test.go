//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"maritime-maintenance/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGet() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))
	suite.NotZero(user.ID)
	suite.NotZero(user.CreatedAt)

	byID, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Username, byID.Username)

	byName, err := suite.repo.GetByUsername(user.Username)
	suite.NoError(err)
	suite.Equal(user.ID, byName.ID)
}

func (suite *UserRepositoryTestSuite) TestDuplicateUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.factories.User.Create()
	dup.Username = user.Username
	err := suite.repo.Create(dup)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func (suite *UserRepositoryTestSuite) TestUpdateTelegramID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	id := int64(123456789)
	suite.NoError(suite.repo.UpdateTelegramID(user.ID, &id))
	got, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(id, *got.TelegramID)

	suite.NoError(suite.repo.UpdateTelegramID(user.ID, nil))
	got, err = suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Nil(got.TelegramID)

	suite.ErrorIs(suite.repo.UpdateTelegramID(9999, &id), gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestGetMissing() {
	_, err := suite.repo.GetByUsername("nobody")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
