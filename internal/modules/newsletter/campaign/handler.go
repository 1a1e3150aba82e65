package campaign

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"gorm.io/gorm"
)

// Handler handles campaign HTTP requests. Everything here is console-only.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/campaigns", authMW)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/send", h.send)
	g.POST("/:id/schedule", h.schedule)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	campaigns, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, campaigns, pag)
}

func (h *Handler) get(c *gin.Context) {
	cp, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cp == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cp)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCampaignDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cp, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrNoBody) {
			response.BadRequest(c, "본문이 필요합니다: bodyHtml 또는 bodyMarkdown (body required)")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cp)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCampaignDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cp, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrNoBody) {
			response.BadRequest(c, "본문이 필요합니다: bodyHtml 또는 bodyMarkdown (body required)")
			return
		}
		if errors.Is(err, ErrNotDraft) {
			response.Conflict(c, "발송된 캠페인은 수정할 수 없습니다 (sent campaigns cannot be edited)")
			return
		}
		response.InternalError(c, err)
		return
	}
	if cp == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cp)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// send POST /campaigns/:id/send  [auth]
func (h *Handler) send(c *gin.Context) {
	result, err := h.svc.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c)
		case errors.Is(err, ErrNotDraft):
			response.Conflict(c, "이미 발송된 캠페인입니다 (campaign already sent)")
		case errors.Is(err, ErrAlreadySending):
			response.Conflict(c, "이미 발송 중입니다 (campaign is already sending)")
		case errors.Is(err, ErrNoRecipients):
			response.UnprocessableEntity(c, "발송 대상 구독자가 없습니다 (no verified recipients)")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, result)
}

type scheduleDTO struct {
	At time.Time `json:"at" binding:"required"`
}

// schedule POST /campaigns/:id/schedule  [auth]
func (h *Handler) schedule(c *gin.Context) {
	var dto scheduleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.At.Before(time.Now()) {
		response.BadRequest(c, "예약 시각이 과거입니다 (scheduled time is in the past)")
		return
	}

	cp, err := h.svc.Schedule(c.Param("id"), dto.At)
	if err != nil {
		if errors.Is(err, ErrNotDraft) {
			response.Conflict(c, "발송된 캠페인은 예약할 수 없습니다 (sent campaigns cannot be scheduled)")
			return
		}
		response.InternalError(c, err)
		return
	}
	if cp == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"scheduled": true, "at": dto.At})
}
