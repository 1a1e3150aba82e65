package importer

import (
	"strings"

	"github.com/maison-lumiere/atelier/internal/models"
)

// PostPayload is the fully assembled result of parsing one markdown
// document, ready to be persisted as a draft post.
type PostPayload struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Slug            string `json:"slug"`
	Excerpt         string `json:"excerpt"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	CategoryID      string `json:"categoryId"`
	CategorySlug    string `json:"categorySlug"`
	Content         string `json:"content"`
	Placeholders    int    `json:"placeholders"`
}

// Assemble runs the import pipeline over one document: extract the metadata
// table, convert the body, resolve the category and sanitize the slug. Image
// placeholders stay in the content for the caller to resolve or strip.
func Assemble(doc string, fileName string, categories []models.CategoryModel) PostPayload {
	doc = NormalizeNewlines(doc)
	fields := ExtractFields(doc)

	title := fields.Title
	if title == "" {
		title = strings.TrimSuffix(fileName, ".md")
	}
	if title == "" {
		title = "무제 (untitled)"
	}

	rawSlug := fields.RawSlug
	if rawSlug == "" {
		rawSlug = title
	}

	excerpt := fields.Subtitle
	if excerpt == "" {
		excerpt = fields.MetaDescription
	}

	categoryID, categorySlug := ResolveCategory(fields.CategoryText, categories, "journal")
	content := Convert(doc, fields.HeroPrompt)

	return PostPayload{
		Title:           title,
		Subtitle:        fields.Subtitle,
		Slug:            SanitizeSlug(rawSlug),
		Excerpt:         excerpt,
		MetaTitle:       fields.MetaTitle,
		MetaDescription: fields.MetaDescription,
		CategoryID:      categoryID,
		CategorySlug:    categorySlug,
		Content:         content,
		Placeholders:    CountPlaceholders(content),
	}
}
