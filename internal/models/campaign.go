package models

import "time"

// Campaign dispatch states.
const (
	CampaignDraft     = "draft"
	CampaignScheduled = "scheduled"
	CampaignSending   = "sending"
	CampaignSent      = "sent"
)

// CampaignModel is one newsletter issue.
type CampaignModel struct {
	Base
	Subject     string     `json:"subject"      gorm:"not null"`
	BodyHTML    string     `json:"body_html"    gorm:"type:text"`
	Locale      string     `json:"locale"       gorm:"default:ko"` // target audience language
	Status      string     `json:"status"       gorm:"default:draft;index"`
	ScheduledAt *time.Time `json:"scheduled_at" gorm:"index"`
	SentAt      *time.Time `json:"sent_at"`
	Delivered   int        `json:"delivered"    gorm:"default:0"`
	Failed      int        `json:"failed"       gorm:"default:0"`
}

func (CampaignModel) TableName() string { return "campaigns" }
