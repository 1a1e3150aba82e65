package subscriber

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/pkg/mail"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles subscriber HTTP requests.
type Handler struct {
	svc    *Service
	sender *mail.Sender
	cfg    *config.AppConfig
	logger *zap.Logger
}

func NewHandler(svc *Service, sender *mail.Sender, cfg *config.AppConfig, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, sender: sender, cfg: cfg, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	subs := rg.Group("/subscribers")

	subs.POST("", h.subscribe)
	subs.GET("/verify/:token", h.verify)
	subs.GET("/unsubscribe/:token", h.unsubscribe)

	authed := subs.Group("", authMW)
	authed.GET("", h.list)
	authed.GET("/export", h.exportCSV)
	authed.POST("/batch-delete", h.batchDelete)
}

type subscribeDTO struct {
	Email  string `json:"email" binding:"required"`
	Locale string `json:"locale"`
}

// subscribe POST /subscribers
func (h *Handler) subscribe(c *gin.Context) {
	var dto subscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.svc.Subscribe(c.Request.Context(), dto.Email, dto.Locale)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			response.BadRequest(c, "올바른 이메일 주소가 아닙니다 (invalid email address)")
		case errors.Is(err, ErrAlreadySubscribed):
			response.Conflict(c, "이미 구독 중인 주소입니다 (already subscribed)")
		default:
			response.InternalError(c, err)
		}
		return
	}

	verifyURL := fmt.Sprintf("%s/subscribers/verify/%s", h.cfg.Site.ServerURL, token)
	go func() {
		if err := h.sender.SendSubscribeVerify(dto.Email, mail.SubscribeVerifyData{
			SiteName:  h.cfg.Site.Name,
			VerifyURL: verifyURL,
		}); err != nil {
			h.logger.Warn("subscribe: verification mail failed",
				zap.String("email", dto.Email), zap.Error(err))
		}
	}()

	response.OK(c, gin.H{
		"message": "확인 메일을 보냈습니다 (verification email sent)",
	})
}

// verify GET /subscribers/verify/:token
func (h *Handler) verify(c *gin.Context) {
	sub, err := h.svc.Verify(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			response.NotFoundMsg(c, "만료되었거나 알 수 없는 토큰입니다 (token expired or unknown)")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "구독이 확인되었습니다 (subscription confirmed)",
		"email":   sub.Email,
	})
}

// unsubscribe GET /subscribers/unsubscribe/:token
func (h *Handler) unsubscribe(c *gin.Context) {
	if err := h.svc.Unsubscribe(c.Param("token")); err != nil {
		if errors.Is(err, ErrTokenExpired) {
			response.NotFoundMsg(c, "만료되었거나 알 수 없는 토큰입니다 (token expired or unknown)")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "구독이 해지되었습니다 (unsubscribed)",
	})
}

// list GET /subscribers  [auth]
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	verifiedOnly := c.Query("verified") == "true" || c.Query("verified") == "1"

	subs, pag, err := h.svc.List(q, verifiedOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, subs, pag)
}

// exportCSV GET /subscribers/export  [auth]
func (h *Handler) exportCSV(c *gin.Context) {
	csv, err := h.svc.ExportCSV()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	filename := fmt.Sprintf("subscribers-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

type batchDeleteDTO struct {
	IDs []string `json:"ids" binding:"required"`
}

// batchDelete POST /subscribers/batch-delete  [auth]
func (h *Handler) batchDelete(c *gin.Context) {
	var dto batchDeleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deleted, err := h.svc.DeleteByIDs(dto.IDs)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}
