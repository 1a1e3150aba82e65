package category

import (
	"errors"

	"github.com/maison-lumiere/atelier/internal/models"
	"gorm.io/gorm"
)

// UpdateCategoryDTO patches display names. Slugs are fixed; the five
// editorial sections are part of the site's information architecture and
// are seeded at startup, so there is no create or delete.
type UpdateCategoryDTO struct {
	Name   *string `json:"name"`
	NameEN *string `json:"nameEn"`
}

// CategorySummary is a category with its published post count.
type CategorySummary struct {
	models.CategoryModel
	PostCount int64 `json:"postCount"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]CategorySummary, error) {
	var cats []models.CategoryModel
	if err := s.db.Order("created_at ASC").Find(&cats).Error; err != nil {
		return nil, err
	}

	summaries := make([]CategorySummary, len(cats))
	for i, cat := range cats {
		var count int64
		if err := s.db.Model(&models.PostModel{}).
			Where("category_id = ? AND is_published = ?", cat.ID, true).
			Count(&count).Error; err != nil {
			return nil, err
		}
		summaries[i] = CategorySummary{CategoryModel: cat, PostCount: count}
	}
	return summaries, nil
}

func (s *Service) GetByID(id string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// GetByQuery resolves a category by ID, slug, Korean or English name.
func (s *Service) GetByQuery(query string) (*models.CategoryModel, error) {
	if cat, err := s.GetByID(query); err != nil {
		return nil, err
	} else if cat != nil {
		return cat, nil
	}

	var cat models.CategoryModel
	if err := s.db.Where("slug = ? OR name = ? OR name_en = ?", query, query, query).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// PostsInCategory returns published posts of the category, newest first.
func (s *Service) PostsInCategory(categoryID string, limit int) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.Where("category_id = ? AND is_published = ?", categoryID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return cat, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.NameEN != nil {
		updates["name_en"] = *dto.NameEN
	}
	return cat, s.db.Model(cat).Updates(updates).Error
}
