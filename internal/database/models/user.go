package models

// User is an operator account. TelegramID is the chat the notifier writes to;
// users without one are never contacted.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"type:text;not null"`
	TelegramID   *int64 `json:"telegram_id"`
	RoleID       uint   `json:"role_id" gorm:"not null;index"`
	Role         *Role  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
