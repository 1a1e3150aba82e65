package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appcfg "github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNoProvider = errors.New("no enabled AI provider")

// Service orchestrates text and image generation for the console.
type Service struct {
	db     *gorm.DB
	cfg    *appcfg.AppConfig
	logger *zap.Logger
}

func NewService(db *gorm.DB, cfg *appcfg.AppConfig, logger *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, logger: logger.Named("AIService")}
}

func (s *Service) textProvider() *appcfg.AIProvider {
	if p := s.cfg.AIProviderByID(s.cfg.AI.TextProvider); p != nil && p.Enabled {
		return p
	}
	return s.cfg.EnabledAIProvider()
}

func (s *Service) imageProvider() *appcfg.AIProvider {
	if p := s.cfg.AIProviderByID(s.cfg.AI.ImageProvider); p != nil && p.Enabled {
		return p
	}
	return s.cfg.EnabledAIProvider()
}

// PostDraft is a generated article, ready for editing in the console.
type PostDraft struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Tags            []string `json:"tags"`
}

// GeneratePostDraft writes a full article draft on the given topic.
func (s *Service) GeneratePostDraft(ctx context.Context, topic, locale, categoryID string) (*PostDraft, error) {
	provider := s.textProvider()
	if provider == nil {
		return nil, ErrNoProvider
	}

	categoryName := "저널 (Journal)"
	if categoryID != "" {
		var cat models.CategoryModel
		if err := s.db.First(&cat, "id = ?", categoryID).Error; err == nil {
			categoryName = fmt.Sprintf("%s (%s)", cat.Name, cat.NameEN)
		}
	}

	systemPrompt, prompt := buildPostDraftPrompt(locale, categoryName, topic)
	raw, err := callWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var draft PostDraft
	if err := unmarshalAIJSON(raw, &draft); err != nil {
		return nil, err
	}
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
		return nil, errors.New("draft is missing title or content")
	}
	return &draft, nil
}

// GenerateExcerpt writes a short excerpt for existing article text.
func (s *Service) GenerateExcerpt(ctx context.Context, text string) (string, error) {
	provider := s.textProvider()
	if provider == nil {
		return "", ErrNoProvider
	}

	systemPrompt, prompt := buildExcerptPrompt(text)
	raw, err := callWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		return "", err
	}

	var out struct {
		Excerpt string `json:"excerpt"`
	}
	if err := unmarshalAIJSON(raw, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Excerpt) == "" {
		return "", errors.New("excerpt is empty in AI response")
	}
	return strings.TrimSpace(out.Excerpt), nil
}

// SEOSuggestion holds generated metadata for a post.
type SEOSuggestion struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// GenerateSEO writes meta title/description for existing article text.
func (s *Service) GenerateSEO(ctx context.Context, text string) (*SEOSuggestion, error) {
	provider := s.textProvider()
	if provider == nil {
		return nil, ErrNoProvider
	}

	systemPrompt, prompt := buildSEOPrompt(text)
	raw, err := callWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var out SEOSuggestion
	if err := unmarshalAIJSON(raw, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.MetaTitle) == "" && strings.TrimSpace(out.MetaDescription) == "" {
		return nil, errors.New("empty SEO suggestion from AI")
	}
	return &out, nil
}

// NewsletterCopy is a generated campaign draft.
type NewsletterCopy struct {
	Subject  string `json:"subject"`
	BodyHTML string `json:"bodyHtml"`
}

// GenerateNewsletterCopy composes a campaign from recent published posts.
// An explicit postIDs list selects the articles; empty means the five most
// recent.
func (s *Service) GenerateNewsletterCopy(ctx context.Context, locale string, postIDs []string) (*NewsletterCopy, error) {
	provider := s.textProvider()
	if provider == nil {
		return nil, ErrNoProvider
	}

	tx := s.db.Preload("Category").Where("is_published = ?", true)
	if len(postIDs) > 0 {
		tx = tx.Where("id IN ?", postIDs)
	} else {
		tx = tx.Order("created_at DESC").Limit(5)
	}
	var posts []models.PostModel
	if err := tx.Find(&posts).Error; err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, errors.New("no published posts to feature")
	}

	var sb strings.Builder
	for i := range posts {
		p := &posts[i]
		categorySlug := "journal"
		if p.Category != nil && p.Category.Slug != "" {
			categorySlug = p.Category.Slug
		}
		fmt.Fprintf(&sb, "TITLE: %s\nURL: %s/%s/%s\nEXCERPT: %s\n\n",
			p.Title, s.cfg.Site.WebURL, categorySlug, p.Slug, p.Excerpt)
	}

	systemPrompt, prompt := buildNewsletterPrompt(locale, strings.TrimSpace(sb.String()))
	raw, err := callWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var out NewsletterCopy
	if err := unmarshalAIJSON(raw, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Subject) == "" || strings.TrimSpace(out.BodyHTML) == "" {
		return nil, errors.New("newsletter copy is incomplete")
	}
	return &out, nil
}
