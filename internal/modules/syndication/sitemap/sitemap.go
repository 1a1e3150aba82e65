package sitemap

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/models"
	"gorm.io/gorm"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.AppConfig) {
	render := func(c *gin.Context) {
		xml, err := buildSitemap(db, cfg)
		if err != nil {
			c.String(500, "error generating sitemap")
			return
		}
		c.Header("Content-Type", "application/xml; charset=utf-8")
		c.String(200, xml)
	}
	rg.GET("/sitemap.xml", render)
	rg.GET("/sitemap", render)
}

type sitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

func buildSitemap(db *gorm.DB, cfg *config.AppConfig) (string, error) {
	base := cfg.Site.WebURL

	var urls []sitemapURL

	urls = append(urls, sitemapURL{
		Loc: base, LastMod: time.Now(),
		ChangeFreq: "daily", Priority: 1.0,
	})

	var categories []models.CategoryModel
	if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return "", err
	}
	categorySlugByID := map[string]string{}
	for _, cat := range categories {
		categorySlugByID[cat.ID] = cat.Slug
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/%s", base, cat.Slug),
			LastMod:    cat.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}

	var posts []models.PostModel
	if err := db.Where("is_published = ?", true).
		Select("slug, category_id, updated_at").
		Find(&posts).Error; err != nil {
		return "", err
	}
	for _, p := range posts {
		categorySlug := "journal"
		if p.CategoryID != nil {
			if slug, ok := categorySlugByID[*p.CategoryID]; ok {
				categorySlug = slug
			}
		}
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/%s/%s", base, categorySlug, p.Slug),
			LastMod:    p.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	return renderXML(urls), nil
}

func renderXML(urls []sitemapURL) string {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`
	for _, u := range urls {
		xml += fmt.Sprintf(`  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, escapeXML(u.Loc), u.LastMod.Format("2006-01-02"), u.ChangeFreq, u.Priority)
	}
	xml += `</urlset>`
	return xml
}

func escapeXML(s string) string {
	out := ""
	for _, r := range s {
		switch r {
		case '&':
			out += "&amp;"
		case '<':
			out += "&lt;"
		case '>':
			out += "&gt;"
		default:
			out += string(r)
		}
	}
	return out
}
