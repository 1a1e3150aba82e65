package models

// UserModel is an editor account for the admin console.
type UserModel struct {
	Base
	Email        string `json:"email"  gorm:"uniqueIndex;not null"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"      gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
