package models

import (
	"time"

	"gorm.io/datatypes"
)

// ComponentUpdate is an append-only audit record of a status change
type ComponentUpdate struct {
	BaseModel
	ComponentID uint           `json:"component_id" gorm:"not null;index"`
	Component   *Component     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        *User          `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UpdateName  string         `json:"update_name" gorm:"size:32;not null"`
	UpdateDate  datatypes.Date `json:"update_date" gorm:"not null;index"`
	NewStatus   string         `json:"new_status" gorm:"size:32;not null"`
	Notes       string         `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for ComponentUpdate
func (ComponentUpdate) TableName() string {
	return "component_updates"
}

// UpdatedOn returns the update date as a time.Time
func (u *ComponentUpdate) UpdatedOn() time.Time {
	return time.Time(u.UpdateDate)
}
