package models

// ComponentSubscription registers a user's interest in every component of a type
type ComponentSubscription struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_component_type"`
	User            *User          `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ComponentTypeID uint           `json:"component_type_id" gorm:"not null;uniqueIndex:idx_user_component_type"`
	ComponentType   *ComponentType `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for ComponentSubscription
func (ComponentSubscription) TableName() string {
	return "component_subscriptions"
}
