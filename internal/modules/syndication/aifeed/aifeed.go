package aifeed

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/models"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the plain-text feeds consumed by AI crawlers.
// llms.txt is an index, llms-full.txt carries the full article bodies.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.AppConfig) {
	rg.GET("/llms.txt", func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.String(200, buildIndex(db, cfg))
	})
	rg.GET("/llms-full.txt", func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.String(200, buildFull(db, cfg))
	})
}

func loadPublished(db *gorm.DB) []models.PostModel {
	var posts []models.PostModel
	db.Preload("Category").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts)
	return posts
}

func postURL(webURL string, p *models.PostModel) string {
	categorySlug := "journal"
	if p.Category != nil && p.Category.Slug != "" {
		categorySlug = p.Category.Slug
	}
	return fmt.Sprintf("%s/%s/%s", webURL, categorySlug, p.Slug)
}

func buildIndex(db *gorm.DB, cfg *config.AppConfig) string {
	var sb strings.Builder
	sb.WriteString("# " + cfg.Site.Name + "\n\n")
	if cfg.Site.Description != "" {
		sb.WriteString("> " + cfg.Site.Description + "\n\n")
	}
	sb.WriteString("## Posts\n\n")

	for _, p := range loadPublished(db) {
		line := fmt.Sprintf("- [%s](%s)", p.Title, postURL(cfg.Site.WebURL, &p))
		if p.Excerpt != "" {
			line += ": " + p.Excerpt
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func buildFull(db *gorm.DB, cfg *config.AppConfig) string {
	var sb strings.Builder
	sb.WriteString("# " + cfg.Site.Name + "\n")

	for _, p := range loadPublished(db) {
		sb.WriteString("\n---\n\n")
		sb.WriteString("## " + p.Title + "\n\n")
		if p.Subtitle != "" {
			sb.WriteString(p.Subtitle + "\n\n")
		}
		sb.WriteString("URL: " + postURL(cfg.Site.WebURL, &p) + "\n")
		sb.WriteString("Date: " + p.CreatedAt.Format("2006-01-02") + "\n\n")
		sb.WriteString(stripHTML(p.Content) + "\n")
	}
	return sb.String()
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	blankPattern = regexp.MustCompile(`\n{3,}`)
)

// stripHTML flattens stored HTML into readable plain text. Block-level
// closings become newlines so paragraphs stay separated.
func stripHTML(html string) string {
	for _, closer := range []string{"</p>", "</h1>", "</h2>", "</h3>", "</blockquote>", "<hr />"} {
		html = strings.ReplaceAll(html, closer, "\n\n")
	}
	text := tagPattern.ReplaceAllString(html, "")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&#34;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = blankPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
