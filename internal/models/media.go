package models

// MediaModel records one uploaded object in storage.
type MediaModel struct {
	Base
	FileName    string `json:"file_name"    gorm:"not null"`
	ObjectKey   string `json:"object_key"   gorm:"uniqueIndex;not null"`
	URL         string `json:"url"          gorm:"not null"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Source      string `json:"source"       gorm:"default:upload;index"` // upload | generated
	Prompt      string `json:"prompt,omitempty"`                         // for generated images
}

func (MediaModel) TableName() string { return "media" }
