package feed

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/models"
	"gorm.io/gorm"
)

const feedItemLimit = 20

// RegisterRoutes mounts RSS and Atom feed endpoints.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.AppConfig) {
	rg.GET("/feed", func(c *gin.Context) {
		feedType := c.DefaultQuery("type", "rss") // rss | atom
		renderFeed(c, db, cfg, feedType)
	})
	rg.GET("/feed.xml", func(c *gin.Context) {
		renderFeed(c, db, cfg, "rss")
	})
	rg.GET("/atom.xml", func(c *gin.Context) {
		renderFeed(c, db, cfg, "atom")
	})
}

type feedItem struct {
	Title   string
	Link    string
	GUID    string
	PubDate time.Time
	Content string
}

func postURL(webURL string, p *models.PostModel) string {
	categorySlug := "journal"
	if p.Category != nil && p.Category.Slug != "" {
		categorySlug = p.Category.Slug
	}
	return fmt.Sprintf("%s/%s/%s", webURL, categorySlug, p.Slug)
}

func renderFeed(c *gin.Context, db *gorm.DB, cfg *config.AppConfig, feedType string) {
	var posts []models.PostModel
	db.Preload("Category").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(feedItemLimit).
		Find(&posts)

	items := make([]feedItem, len(posts))
	for i := range posts {
		p := &posts[i]
		items[i] = feedItem{
			Title:   p.Title,
			Link:    postURL(cfg.Site.WebURL, p),
			GUID:    p.ID,
			PubDate: p.CreatedAt,
			Content: p.Content,
		}
	}

	switch feedType {
	case "atom":
		c.Header("Content-Type", "application/atom+xml; charset=utf-8")
		c.String(200, buildAtom(cfg.Site.Name, cfg.Site.Description, cfg.Site.WebURL, items))
	default:
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(200, buildRSS(cfg.Site.Name, cfg.Site.Description, cfg.Site.WebURL, items))
	}
}

func buildRSS(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC1123Z)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <language>ko</language>
    <lastBuildDate>%s</lastBuildDate>
`, escapeXML(title), escapeXML(link), escapeXML(desc), now)

	for _, item := range items {
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <guid>%s</guid>
      <pubDate>%s</pubDate>
      <description><![CDATA[%s]]></description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC1123Z), item.Content)
	}

	xml += `  </channel>
</rss>`
	return xml
}

func buildAtom(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC3339)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <updated>%s</updated>
  <id>%s</id>
`, escapeXML(title), escapeXML(desc), escapeXML(link), now, escapeXML(link))

	for _, item := range items {
		xml += fmt.Sprintf(`  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <content type="html"><![CDATA[%s]]></content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC3339), item.Content)
	}

	xml += `</feed>`
	return xml
}

// escapeXML replaces XML special characters in attribute/element content.
func escapeXML(s string) string {
	result := ""
	for _, r := range s {
		switch r {
		case '&':
			result += "&amp;"
		case '<':
			result += "&lt;"
		case '>':
			result += "&gt;"
		case '"':
			result += "&quot;"
		default:
			result += string(r)
		}
	}
	return result
}
