package models

// Role is a coarse permission group; users reference it by id
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:32;not null;uniqueIndex"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// DefaultRoles are inserted on startup if missing
func DefaultRoles() []Role {
	return []Role{
		{ID: RoleAdmin, Name: "admin"},
		{ID: RoleUser, Name: "user"},
	}
}
