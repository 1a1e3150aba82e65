package category

import (
	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cats := rg.Group("/categories")
	cats.GET("", h.list)
	cats.GET("/:query", h.getByQuery)

	authed := cats.Group("", authMW)
	authed.PUT("/:id", h.update)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": cats})
}

// getByQuery resolves by ID, slug or name and includes recent posts.
func (h *Handler) getByQuery(c *gin.Context) {
	cat, err := h.svc.GetByQuery(c.Param("query"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}

	posts, err := h.svc.PostsInCategory(cat.ID, 10)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"category": cat, "posts": posts})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cat)
}
