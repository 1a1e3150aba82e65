package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maison-lumiere/atelier/internal/models"
	"github.com/maison-lumiere/atelier/internal/pkg/pagination"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxUploadSize = 20 << 20 // 20 MiB

var allowedUploadTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".avif": "image/avif",
	".gif":  "image/gif",
}

// Handler handles media upload and management endpoints.
type Handler struct {
	db     *gorm.DB
	store  *Store
	logger *zap.Logger
}

func NewHandler(db *gorm.DB, store *Store, logger *zap.Logger) *Handler {
	return &Handler{db: db, store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/media/optimize", h.optimize)

	g := rg.Group("/media", authMW)
	g.GET("", h.list)
	g.POST("/upload", h.upload)
	g.DELETE("/:id", h.delete)
}

// objectKey builds `media/<year>/<month>/<uuid><ext>` so buckets stay
// browsable by date.
func objectKey(fileName string) string {
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("media/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
}

// upload POST /media/upload  [auth]
func (h *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file 필드가 필요합니다 (file field is required)")
		return
	}
	if fh.Size > maxUploadSize {
		response.BadRequest(c, "파일이 너무 큽니다 (file too large)")
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedUploadTypes[ext]
	if !ok {
		response.BadRequest(c, "이미지 파일만 업로드할 수 있습니다 (only image files are allowed)")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	key := objectKey(fh.Filename)
	url, err := h.store.Upload(c.Request.Context(), key, contentType, f)
	if err != nil {
		h.logger.Error("media upload failed", zap.String("key", key), zap.Error(err))
		response.InternalError(c, err)
		return
	}

	item := models.MediaModel{
		FileName:    filepath.Base(fh.Filename),
		ObjectKey:   key,
		URL:         url,
		ContentType: contentType,
		Size:        fh.Size,
		Source:      "upload",
	}
	if err := h.db.Create(&item).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, item)
}

// RecordGenerated stores a row for an AI-generated image that already lives
// at an external URL.
func (h *Handler) RecordGenerated(url, prompt string) (*models.MediaModel, error) {
	item := models.MediaModel{
		FileName:  filepath.Base(url),
		ObjectKey: "generated/" + uuid.New().String(),
		URL:       url,
		Source:    "generated",
		Prompt:    prompt,
	}
	return &item, h.db.Create(&item).Error
}

// list GET /media  [auth]
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	tx := h.db.Model(&models.MediaModel{}).Order("created_at DESC")
	if source := c.Query("source"); source != "" {
		tx = tx.Where("source = ?", source)
	}

	var items []models.MediaModel
	pag, err := pagination.Paginate(tx, q, &items)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// delete DELETE /media/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	var item models.MediaModel
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if item.Source == "upload" {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		if err := h.store.Delete(ctx, item.ObjectKey); err != nil {
			// keep the DB row so the object is not orphaned silently
			response.InternalError(c, err)
			return
		}
	}

	if err := h.db.Delete(&item).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// optimize GET /media/optimize?src=&w=&q=&f=
func (h *Handler) optimize(c *gin.Context) {
	src := c.Query("src")
	if src == "" {
		response.BadRequest(c, "src 파라미터가 필요합니다 (src parameter is required)")
		return
	}

	width, _ := strconv.Atoi(c.Query("w"))
	quality, _ := strconv.Atoi(c.Query("q"))
	url := OptimizedURL(src, OptimizeParams{
		Width:   width,
		Quality: quality,
		Format:  c.Query("f"),
	})
	response.OK(c, gin.H{"url": url})
}
