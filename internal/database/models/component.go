package models

import (
	"time"

	"gorm.io/datatypes"
)

// Component is a maintainable part installed on a ship
type Component struct {
	BaseModel
	Name               string         `json:"name" gorm:"size:32;not null"`
	ShipID             uint           `json:"ship_id" gorm:"not null;index"`
	Ship               *Ship          `json:"ship,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ComponentTypeID    uint           `json:"component_type_id" gorm:"not null;index"`
	ComponentType      *ComponentType `json:"component_type,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SerialNumber       *string        `json:"serial_number" gorm:"size:50"`
	ServiceLifeMonths  int            `json:"service_life_months" gorm:"not null"`
	LastInspectionDate datatypes.Date `json:"last_inspection_date" gorm:"not null"`
	Status             string         `json:"status" gorm:"size:32;not null;index"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}

// InspectedOn returns the last inspection date as a time.Time
func (c *Component) InspectedOn() time.Time {
	return time.Time(c.LastInspectionDate)
}
