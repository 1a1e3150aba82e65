package post

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/middleware"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	redisc "github.com/maison-lumiere/atelier/internal/pkg/redis"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
)

// Handler handles post HTTP requests.
type Handler struct {
	svc *Service
	rc  *redisc.Client
}

func NewHandler(svc *Service, rc *redisc.Client) *Handler {
	return &Handler{svc: svc, rc: rc}
}

// RegisterRoutes mounts post routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	posts := rg.Group("/posts")

	posts.GET("", h.list)
	posts.GET("/latest", h.latest)
	posts.GET("/get-url/:slug", h.getURLBySlug)
	posts.GET("/:identifier/:slug", h.getByCategoryAndSlug)
	posts.GET("/:identifier", h.getByIdentifier)
	posts.POST("/:id/like", h.like)

	authed := posts.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id/publish", h.publish)
	authed.DELETE("/:id", h.delete)
}

// list GET /posts
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.List(q, lq, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]postResponse, len(posts))
	for i, p := range posts {
		items[i] = toResponse(&p)
	}
	response.Paged(c, items, pag)
}

// getByIdentifier GET /posts/:identifier
func (h *Handler) getByIdentifier(c *gin.Context) {
	identifier := c.Param("identifier")
	isAdmin := middleware.IsAuthenticated(c)

	post, err := h.svc.GetByIdentifier(identifier, isAdmin)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}

	go func() { _ = h.svc.IncrementReadCount(post.ID) }()

	response.OK(c, toResponse(post))
}

// getURLBySlug GET /posts/get-url/:slug
func (h *Handler) getURLBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"), true)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}
	categorySlug := "journal"
	if post.Category != nil && post.Category.Slug != "" {
		categorySlug = post.Category.Slug
	}
	response.OK(c, gin.H{
		"path": "/" + categorySlug + "/" + post.Slug,
	})
}

// getByCategoryAndSlug GET /posts/:category/:slug
func (h *Handler) getByCategoryAndSlug(c *gin.Context) {
	category := c.Param("identifier")
	slug := c.Param("slug")
	isAdmin := middleware.IsAuthenticated(c)

	post, err := h.svc.GetByCategoryAndSlug(category, slug, isAdmin)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}

	go func() { _ = h.svc.IncrementReadCount(post.ID) }()

	response.OK(c, toResponse(post))
}

// latest GET /posts/latest
func (h *Handler) latest(c *gin.Context) {
	post, err := h.svc.GetLatest(middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(post))
}

// like POST /posts/:id/like
// A visitor counts once per day per post, tracked in Redis by client IP.
func (h *Handler) like(c *gin.Context) {
	id := c.Param("id")

	post, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}

	key := fmt.Sprintf("atelier:like:%s:%s:%s", id, c.ClientIP(), time.Now().Format("20060102"))
	ok, err := h.rc.SetNX(c.Request.Context(), key, 1, 24*time.Hour)
	if err == nil && !ok {
		response.Conflict(c, "이미 좋아요를 눌렀습니다 (already liked today)")
		return
	}

	if err := h.svc.IncrementLikeCount(id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// create POST /posts  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		if err.Error() == "category not found" {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, toResponse(post))
}

// update PUT /posts/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(id, &dto)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}

	response.OK(c, toResponse(post))
}

// publish PATCH /posts/:id/publish  [auth]
func (h *Handler) publish(c *gin.Context) {
	id := c.Param("id")

	published := true
	dto := UpdatePostDTO{IsPublished: &published}

	post, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// delete DELETE /posts/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
