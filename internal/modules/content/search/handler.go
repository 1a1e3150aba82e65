package search

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	rg.GET("/search", h.search)
}

// search GET /search?q=
func (h *Handler) search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "검색어가 필요합니다 (query parameter q is required)")
		return
	}

	results, err := h.svc.Search(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": results, "query": q})
}
