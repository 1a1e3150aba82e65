package models

// StringSlice is a []string serialized as JSON in the database.
type StringSlice []string

// PostModel is an editorial post.
type PostModel struct {
	Base
	Title           string         `json:"title"            gorm:"not null"`
	Slug            string         `json:"slug"             gorm:"uniqueIndex;not null"`
	Subtitle        string         `json:"subtitle"`
	Excerpt         string         `json:"excerpt"`
	Content         string         `json:"content"          gorm:"type:text"` // HTML body
	Locale          string         `json:"locale"           gorm:"default:ko;index"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	HeroImage       string         `json:"hero_image"`
	CategoryID      *string        `json:"category_id"      gorm:"index"`
	Category        *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags            StringSlice    `json:"tags"             gorm:"type:json;serializer:json"`
	IsPublished     bool           `json:"is_published"     gorm:"default:false;index"`
	Pin             bool           `json:"pin"              gorm:"default:false"`
	ReadCount       int            `json:"read"             gorm:"column:read_count;default:0"`
	LikeCount       int            `json:"like"             gorm:"column:like_count;default:0"`
}

func (PostModel) TableName() string { return "posts" }
