package models

// ComponentType classifies components (engine, hull, ...). Subscriptions are
// keyed by type.
type ComponentType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:32;not null;uniqueIndex"`
}

// TableName returns the table name for ComponentType
func (ComponentType) TableName() string {
	return "component_types"
}
