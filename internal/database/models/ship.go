package models

// Ship owns components; deleting it cascades to them
type Ship struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:32;not null"`
	IMONumber    *string `json:"imo_number" gorm:"column:imo_number;size:50;uniqueIndex"`
	Type         *string `json:"type" gorm:"size:32"`
	OwnerCompany *string `json:"owner_company" gorm:"size:32"`
}

// TableName returns the table name for Ship
func (Ship) TableName() string {
	return "ships"
}
