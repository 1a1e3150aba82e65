package ai

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
)

// Handler handles AI generation endpoints. All of them are console-only.
type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/ai", authMW)
	g.GET("/providers", h.listProviders)
	g.POST("/generate/post", h.generatePost)
	g.POST("/generate/excerpt", h.generateExcerpt)
	g.POST("/generate/seo", h.generateSEO)
	g.POST("/generate/newsletter", h.generateNewsletter)
	g.POST("/generate/image", h.generateImage)
}

type providerInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultModel string `json:"defaultModel"`
	ImageModel   string `json:"imageModel,omitempty"`
	Enabled      bool   `json:"enabled"`
}

// listProviders GET /ai/providers returns configured providers, keys withheld.
func (h *Handler) listProviders(c *gin.Context) {
	providers := make([]providerInfo, 0, len(h.svc.cfg.AI.Providers))
	for _, p := range h.svc.cfg.AI.Providers {
		providers = append(providers, providerInfo{
			ID:           p.ID,
			Name:         p.Name,
			Type:         p.Type,
			DefaultModel: p.DefaultModel,
			ImageModel:   p.ImageModel,
			Enabled:      p.Enabled,
		})
	}
	response.OK(c, gin.H{"data": providers})
}

type generatePostDTO struct {
	Topic      string `json:"topic" binding:"required"`
	Locale     string `json:"locale"`
	CategoryID string `json:"categoryId"`
}

// generatePost POST /ai/generate/post
func (h *Handler) generatePost(c *gin.Context) {
	var dto generatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Locale == "" {
		dto.Locale = h.svc.cfg.Site.DefaultLocale
	}

	draft, err := h.svc.GeneratePostDraft(c.Request.Context(), dto.Topic, dto.Locale, dto.CategoryID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, draft)
}

type generateTextDTO struct {
	Text string `json:"text" binding:"required"`
}

// generateExcerpt POST /ai/generate/excerpt
func (h *Handler) generateExcerpt(c *gin.Context) {
	var dto generateTextDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	excerpt, err := h.svc.GenerateExcerpt(c.Request.Context(), dto.Text)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, gin.H{"excerpt": excerpt})
}

// generateSEO POST /ai/generate/seo
func (h *Handler) generateSEO(c *gin.Context) {
	var dto generateTextDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	seo, err := h.svc.GenerateSEO(c.Request.Context(), dto.Text)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, seo)
}

type generateNewsletterDTO struct {
	Locale  string   `json:"locale"`
	PostIDs []string `json:"postIds"`
}

// generateNewsletter POST /ai/generate/newsletter
func (h *Handler) generateNewsletter(c *gin.Context) {
	var dto generateNewsletterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Locale == "" {
		dto.Locale = h.svc.cfg.Site.DefaultLocale
	}

	copy, err := h.svc.GenerateNewsletterCopy(c.Request.Context(), dto.Locale, dto.PostIDs)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, copy)
}

type generateImageDTO struct {
	Prompt string `json:"prompt" binding:"required"`
}

// generateImage POST /ai/generate/image
func (h *Handler) generateImage(c *gin.Context) {
	var dto generateImageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	url, err := h.svc.GenerateImageURL(c.Request.Context(), dto.Prompt)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, gin.H{"imageUrl": url})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, ErrNoProvider) {
		response.UnprocessableEntity(c, "설정된 AI 제공자가 없습니다 (no enabled AI provider)")
		return
	}
	response.InternalError(c, err)
}
