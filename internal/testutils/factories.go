package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"maritime-maintenance/internal/database/models"

	"gorm.io/datatypes"
)

var seq atomic.Int64

func next() int64 {
	return seq.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a regular user with a unique username. The password hash is
// a placeholder and does not verify.
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Username:     fmt.Sprintf("user-%d", next()),
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		RoleID:       models.RoleUser,
	}
}

// WithTelegramID creates a user reachable on Telegram
func (f *UserFactory) WithTelegramID(id int64) *models.User {
	u := f.Create()
	u.TelegramID = &id
	return u
}

// ShipFactory provides methods to create test Ship data
type ShipFactory struct{}

// Create creates a ship with a unique IMO number
func (f *ShipFactory) Create() *models.Ship {
	n := next()
	imo := fmt.Sprintf("IMO %07d", n)
	return &models.Ship{
		Name:      fmt.Sprintf("Ship %d", n),
		IMONumber: &imo,
	}
}

// ComponentTypeFactory provides methods to create test ComponentType data
type ComponentTypeFactory struct{}

// Create creates a component type with a unique name
func (f *ComponentTypeFactory) Create() *models.ComponentType {
	return &models.ComponentType{Name: fmt.Sprintf("Type %d", next())}
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// Create creates an operational component on shipID of typeID
func (f *ComponentFactory) Create(shipID, typeID uint) *models.Component {
	serial := fmt.Sprintf("SN-%d", next())
	return &models.Component{
		Name:               "Component",
		ShipID:             shipID,
		ComponentTypeID:    typeID,
		SerialNumber:       &serial,
		ServiceLifeMonths:  12,
		LastInspectionDate: Date(2024, time.January, 1),
		Status:             models.StatusOperational,
	}
}

// Inspected creates a component with the given inspection date and service life
func (f *ComponentFactory) Inspected(shipID, typeID uint, on datatypes.Date, months int) *models.Component {
	c := f.Create(shipID, typeID)
	c.LastInspectionDate = on
	c.ServiceLifeMonths = months
	return c
}

// Date builds a civil date
func Date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FactorySet groups every factory
type FactorySet struct {
	User          *UserFactory
	Ship          *ShipFactory
	ComponentType *ComponentTypeFactory
	Component     *ComponentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          &UserFactory{},
		Ship:          &ShipFactory{},
		ComponentType: &ComponentTypeFactory{},
		Component:     &ComponentFactory{},
	}
}
