package post

import (
	"time"

	"github.com/maison-lumiere/atelier/internal/models"
)

// CreatePostDTO is the request body for creating a post.
type CreatePostDTO struct {
	Slug            string   `json:"slug"            binding:"required"`
	Title           string   `json:"title"           binding:"required"`
	Subtitle        string   `json:"subtitle"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"         binding:"required"`
	Locale          string   `json:"locale"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	HeroImage       string   `json:"heroImage"`
	CategoryID      *string  `json:"categoryId"`
	Tags            []string `json:"tags"`
	IsPublished     *bool    `json:"isPublished"`
	Pin             *bool    `json:"pin"`
}

// UpdatePostDTO is the request body for updating a post (all fields optional).
type UpdatePostDTO struct {
	Slug            *string  `json:"slug"`
	Title           *string  `json:"title"`
	Subtitle        *string  `json:"subtitle"`
	Excerpt         *string  `json:"excerpt"`
	Content         *string  `json:"content"`
	Locale          *string  `json:"locale"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	HeroImage       *string  `json:"heroImage"`
	CategoryID      *string  `json:"categoryId"`
	Tags            []string `json:"tags"`
	IsPublished     *bool    `json:"isPublished"`
	Pin             *bool    `json:"pin"`
}

// ListQuery holds query params for listing posts.
type ListQuery struct {
	Year     *int    `form:"year"`
	Category *string `form:"category"`
	Locale   *string `form:"locale"`
	Tag      *string `form:"tag"`
}

// postResponse is the API response shape for a post.
type postResponse struct {
	ID              string      `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	Excerpt         string      `json:"excerpt"`
	Content         string      `json:"content"`
	Locale          string      `json:"locale"`
	MetaTitle       string      `json:"metaTitle"`
	MetaDescription string      `json:"metaDescription"`
	HeroImage       string      `json:"heroImage"`
	CategoryID      *string     `json:"categoryId"`
	Category        interface{} `json:"category"`
	Tags            []string    `json:"tags"`
	IsPublished     bool        `json:"isPublished"`
	Pin             bool        `json:"pin"`
	ReadCount       int         `json:"readCount"`
	LikeCount       int         `json:"likeCount"`
	Created         time.Time   `json:"created"`
	Modified        *time.Time  `json:"modified"`
}

func toResponse(p *models.PostModel) postResponse {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	var modified *time.Time
	if !p.UpdatedAt.IsZero() {
		modifiedAt := p.UpdatedAt
		modified = &modifiedAt
	}
	return postResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Subtitle:        p.Subtitle,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		Locale:          p.Locale,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		HeroImage:       p.HeroImage,
		CategoryID:      p.CategoryID,
		Category:        p.Category,
		Tags:            tags,
		IsPublished:     p.IsPublished,
		Pin:             p.Pin,
		ReadCount:       p.ReadCount,
		LikeCount:       p.LikeCount,
		Created:         p.CreatedAt,
		Modified:        modified,
	}
}
