package search

import (
	"strings"

	"github.com/maison-lumiere/atelier/internal/models"
	"github.com/maison-lumiere/atelier/internal/pkg/dictionary"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SearchResult is one hit in the search response.
type SearchResult struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt,omitempty"`
	Slug         string `json:"slug,omitempty"`
	CategorySlug string `json:"categorySlug,omitempty"`
}

// Service handles cross-language content search.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger.Named("SearchService")}
}

// Search runs a LIKE query over published posts and categories. The query
// is expanded with glossary counterparts, so 샴페인 also finds champagne
// and vice versa.
func (s *Service) Search(q string) ([]SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []SearchResult{}, nil
	}

	terms := dictionary.Expand(q)
	var results []SearchResult
	seen := map[string]bool{}

	for _, term := range terms {
		like := "%" + term + "%"

		var posts []models.PostModel
		if err := s.db.Preload("Category").
			Where("is_published = ? AND (title LIKE ? OR subtitle LIKE ? OR content LIKE ?)",
				true, like, like, like).
			Limit(10).
			Find(&posts).Error; err != nil {
			return nil, err
		}
		for _, p := range posts {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			r := SearchResult{
				ID: p.ID, Type: "post", Title: p.Title, Excerpt: p.Excerpt, Slug: p.Slug,
			}
			if p.Category != nil {
				r.CategorySlug = p.Category.Slug
			}
			results = append(results, r)
		}

		var cats []models.CategoryModel
		if err := s.db.
			Where("name LIKE ? OR name_en LIKE ?", like, like).
			Find(&cats).Error; err != nil {
			return nil, err
		}
		for _, cat := range cats {
			if seen[cat.ID] {
				continue
			}
			seen[cat.ID] = true
			results = append(results, SearchResult{
				ID: cat.ID, Type: "category", Title: cat.Name, Slug: cat.Slug,
			})
		}
	}

	if results == nil {
		results = []SearchResult{}
	}
	return results, nil
}
