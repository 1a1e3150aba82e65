package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/pkg/cron"
	redisc "github.com/maison-lumiere/atelier/internal/pkg/redis"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// Handler exposes liveness and operational endpoints.
type Handler struct {
	db        *gorm.DB
	rc        *redisc.Client
	scheduler *cron.Scheduler
	version   string
}

func NewHandler(db *gorm.DB, rc *redisc.Client, scheduler *cron.Scheduler, version string) *Handler {
	return &Handler{db: db, rc: rc, scheduler: scheduler, version: version}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/ping", h.ping)
	rg.GET("/health", h.health)

	g := rg.Group("/health", authMW)
	g.GET("/cron", h.cronList)
	g.POST("/cron/:name/run", h.cronRun)
}

// ping GET /ping
func (h *Handler) ping(c *gin.Context) {
	c.String(200, "pong")
}

// health GET /health
func (h *Handler) health(c *gin.Context) {
	dbOK := true
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbOK = false
	}

	redisOK := true
	if err := h.rc.Raw().Ping(c.Request.Context()).Err(); err != nil {
		redisOK = false
	}

	response.OK(c, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(startedAt).Round(time.Second).String(),
		"db":      dbOK,
		"redis":   redisOK,
	})
}

// cronList GET /health/cron  [auth]
func (h *Handler) cronList(c *gin.Context) {
	response.OK(c, gin.H{"data": h.scheduler.List()})
}

// cronRun POST /health/cron/:name/run  [auth]
func (h *Handler) cronRun(c *gin.Context) {
	if err := h.scheduler.Run(c.Request.Context(), c.Param("name")); err != nil {
		response.NotFoundMsg(c, err.Error())
		return
	}
	response.OK(c, gin.H{"triggered": true})
}
