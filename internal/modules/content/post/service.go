package post

import (
	"errors"
	"fmt"

	"github.com/maison-lumiere/atelier/internal/models"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles post business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a paginated list of posts, pinned first.
func (s *Service) List(q pagination.Query, lq ListQuery, isAdmin bool) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Category").
		Order("pin DESC, created_at DESC")

	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if lq.Year != nil {
		tx = tx.Where("EXTRACT(YEAR FROM created_at) = ?", *lq.Year)
	}
	if lq.Category != nil {
		tx = tx.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", *lq.Category)
	}
	if lq.Locale != nil {
		tx = tx.Where("locale = ?", *lq.Locale)
	}
	if lq.Tag != nil {
		tx = tx.Where("tags::text LIKE ?", fmt.Sprintf("%%%q%%", *lq.Tag))
	}

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetBySlug fetches a single post by slug.
func (s *Service) GetBySlug(slug string, isAdmin bool) (*models.PostModel, error) {
	var post models.PostModel
	tx := s.db.Preload("Category").Where("slug = ?", slug)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByCategoryAndSlug fetches a post by category slug and post slug.
func (s *Service) GetByCategoryAndSlug(categorySlug, slug string, isAdmin bool) (*models.PostModel, error) {
	var post models.PostModel
	tx := s.db.
		Model(&models.PostModel{}).
		Preload("Category").
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("categories.slug = ? AND posts.slug = ?", categorySlug, slug)
	if !isAdmin {
		tx = tx.Where("posts.is_published = ?", true)
	}
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a single post by ID.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	if err := s.db.Preload("Category").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByIdentifier fetches a post by ID first, then falls back to slug.
func (s *Service) GetByIdentifier(identifier string, isAdmin bool) (*models.PostModel, error) {
	if post, err := s.GetByID(identifier); err != nil {
		return nil, err
	} else if post != nil {
		if !isAdmin && !post.IsPublished {
			return nil, nil
		}
		return post, nil
	}
	return s.GetBySlug(identifier, isAdmin)
}

func (s *Service) GetLatest(isAdmin bool) (*models.PostModel, error) {
	var post models.PostModel
	tx := s.db.Preload("Category").Order("created_at DESC")
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListPublished returns the n most recent published posts, for feeds.
func (s *Service) ListPublished(n int) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.Preload("Category").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(n).
		Find(&posts).Error
	return posts, err
}

// Create inserts a new post.
func (s *Service) Create(dto *CreatePostDTO) (*models.PostModel, error) {
	var count int64
	s.db.Model(&models.PostModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	if dto.CategoryID != nil {
		var catCount int64
		s.db.Model(&models.CategoryModel{}).Where("id = ?", *dto.CategoryID).Count(&catCount)
		if catCount == 0 {
			return nil, fmt.Errorf("category not found")
		}
	}

	post := models.PostModel{
		Title:           dto.Title,
		Slug:            dto.Slug,
		Subtitle:        dto.Subtitle,
		Excerpt:         dto.Excerpt,
		Content:         dto.Content,
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
		HeroImage:       dto.HeroImage,
		CategoryID:      dto.CategoryID,
		Tags:            dto.Tags,
	}
	if dto.Locale != "" {
		post.Locale = dto.Locale
	}
	if dto.IsPublished != nil {
		post.IsPublished = *dto.IsPublished
	}
	if dto.Pin != nil {
		post.Pin = *dto.Pin
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches a post by ID.
func (s *Service) Update(id string, dto *UpdatePostDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil && *dto.Slug != post.Slug {
		var count int64
		s.db.Model(&models.PostModel{}).Where("slug = ? AND id <> ?", *dto.Slug, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("slug already exists")
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Locale != nil {
		updates["locale"] = *dto.Locale
	}
	if dto.MetaTitle != nil {
		updates["meta_title"] = *dto.MetaTitle
	}
	if dto.MetaDescription != nil {
		updates["meta_description"] = *dto.MetaDescription
	}
	if dto.HeroImage != nil {
		updates["hero_image"] = *dto.HeroImage
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringSlice(dto.Tags)
	}
	if dto.Pin != nil {
		updates["pin"] = *dto.Pin
	}

	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete soft-deletes a post by ID.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.PostModel{}, "id = ?", id).Error
}

// IncrementReadCount atomically increments the read counter.
func (s *Service) IncrementReadCount(id string) error {
	return s.db.Model(&models.PostModel{}).Where("id = ?", id).
		UpdateColumn("read_count", gorm.Expr("read_count + 1")).Error
}

// IncrementLikeCount atomically increments the like counter.
func (s *Service) IncrementLikeCount(id string) error {
	return s.db.Model(&models.PostModel{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}
