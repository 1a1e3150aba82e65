package models

// SubscriberModel is one newsletter recipient.
type SubscriberModel struct {
	Base
	Email       string `json:"email"        gorm:"uniqueIndex;not null"`
	Locale      string `json:"locale"       gorm:"default:ko"` // preferred newsletter language
	CancelToken string `json:"-"            gorm:"uniqueIndex"`
	Verified    bool   `json:"verified"     gorm:"default:false;index"`
}

func (SubscriberModel) TableName() string { return "subscribers" }
