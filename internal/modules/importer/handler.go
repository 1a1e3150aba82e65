package importer

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/models"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"github.com/maison-lumiere/atelier/internal/pkg/taskqueue"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// ImageModeSkip drops placeholders, ImageModeGenerate resolves them
	// through the configured image provider.
	ImageModeSkip     = "skip"
	ImageModeGenerate = "generate"

	maxImportFileSize = 2 << 20 // 2 MiB per document
	taskTypeImport    = "import"
)

// Handler handles markdown editorial import endpoints.
type Handler struct {
	db       *gorm.DB
	tasks    *taskqueue.Service
	logger   *zap.Logger
	generate ImageGenerator
}

func NewHandler(db *gorm.DB, tasks *taskqueue.Service, logger *zap.Logger, generate ImageGenerator) *Handler {
	return &Handler{db: db, tasks: tasks, logger: logger, generate: generate}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/import", authMW)
	g.POST("/parse", h.parse)
	g.POST("/apply", h.apply)
	g.POST("/apply-async", h.applyAsync)
	g.GET("/tasks", h.listTasks)
	g.GET("/tasks/:id", h.getTask)
}

type parsedFile struct {
	FileName string       `json:"fileName"`
	Payload  *PostPayload `json:"payload,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// POST /import/parse: multipart upload, parse only, nothing persisted.
func (h *Handler) parse(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "multipart form이 필요합니다 (multipart form required)")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "업로드된 파일이 없습니다 (no files uploaded)")
		return
	}

	categories, err := h.loadCategories()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	results := make([]parsedFile, 0, len(files))
	for _, fh := range files {
		name := filepath.Base(fh.Filename)
		if !strings.HasSuffix(strings.ToLower(name), ".md") {
			results = append(results, parsedFile{FileName: name, Error: "markdown(.md) 파일만 지원합니다 (only .md files are supported)"})
			continue
		}
		if fh.Size > maxImportFileSize {
			results = append(results, parsedFile{FileName: name, Error: "파일이 너무 큽니다 (file too large)"})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			results = append(results, parsedFile{FileName: name, Error: err.Error()})
			continue
		}
		raw, err := io.ReadAll(io.LimitReader(f, maxImportFileSize))
		f.Close()
		if err != nil {
			results = append(results, parsedFile{FileName: name, Error: err.Error()})
			continue
		}

		payload := Assemble(string(raw), name, categories)
		results = append(results, parsedFile{FileName: name, Payload: &payload})
	}

	response.OK(c, gin.H{"files": results})
}

type applyDTO struct {
	Files []applyFile `json:"files" binding:"required"`
	// ImageMode: skip (default) or generate.
	ImageMode string `json:"imageMode"`
	Publish   bool   `json:"publish"`
}

type applyFile struct {
	FileName string `json:"fileName"`
	Content  string `json:"content" binding:"required"`
}

type applyResult struct {
	FileName     string `json:"fileName"`
	PostID       string `json:"postId,omitempty"`
	Slug         string `json:"slug,omitempty"`
	ImagesFailed int    `json:"imagesFailed"`
	Error        string `json:"error,omitempty"`
}

// POST /import/apply: parse and persist as posts, resolving or stripping
// image placeholders per imageMode. One bad document never aborts the batch.
func (h *Handler) apply(c *gin.Context) {
	var dto applyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.ImageMode == "" {
		dto.ImageMode = ImageModeSkip
	}
	if dto.ImageMode != ImageModeSkip && dto.ImageMode != ImageModeGenerate {
		response.BadRequest(c, "imageMode는 skip 또는 generate만 가능합니다 (imageMode must be skip or generate)")
		return
	}

	results := h.applyFiles(c.Request.Context(), dto, nil)
	response.OK(c, gin.H{"results": results})
}

// POST /import/apply-async: same as apply, but runs in the background and
// reports progress through the task record.
func (h *Handler) applyAsync(c *gin.Context) {
	var dto applyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.ImageMode == "" {
		dto.ImageMode = ImageModeSkip
	}
	if dto.ImageMode != ImageModeSkip && dto.ImageMode != ImageModeGenerate {
		response.BadRequest(c, "imageMode는 skip 또는 generate만 가능합니다 (imageMode must be skip or generate)")
		return
	}

	task, err := h.tasks.Enqueue(c.Request.Context(), taskTypeImport, dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	go h.runImportTask(task.ID, dto)

	response.Created(c, gin.H{"taskId": task.ID})
}

// GET /import/tasks/:id
func (h *Handler) getTask(c *gin.Context) {
	task, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if task == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, task)
}

// GET /import/tasks
func (h *Handler) listTasks(c *gin.Context) {
	tasks, total, err := h.tasks.List(c.Request.Context(), 1, 50, taskTypeImport)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": tasks, "total": total})
}

func (h *Handler) loadCategories() ([]models.CategoryModel, error) {
	var categories []models.CategoryModel
	err := h.db.Order("created_at asc").Find(&categories).Error
	return categories, err
}

// applyFiles persists every document in the batch. progress may be nil.
func (h *Handler) applyFiles(ctx context.Context, dto applyDTO, progress ProgressFunc) []applyResult {
	categories, err := h.loadCategories()
	if err != nil {
		h.logger.Error("import: load categories failed", zap.Error(err))
		results := make([]applyResult, 0, len(dto.Files))
		for _, f := range dto.Files {
			results = append(results, applyResult{FileName: f.FileName, Error: err.Error()})
		}
		return results
	}

	results := make([]applyResult, 0, len(dto.Files))
	for i, f := range dto.Files {
		if progress != nil {
			progress(i+1, len(dto.Files), f.FileName)
		}
		results = append(results, h.applyOne(ctx, f, dto, categories, imageProgress(progress, f.FileName)))
	}
	return results
}

// imageProgress scopes placeholder-resolution progress to one document, so
// the task record shows which image of which file is being generated.
func imageProgress(progress ProgressFunc, fileName string) ProgressFunc {
	if progress == nil {
		return nil
	}
	return func(current, total int, message string) {
		progress(current, total, fileName+": "+message)
	}
}

func (h *Handler) applyOne(ctx context.Context, f applyFile, dto applyDTO, categories []models.CategoryModel, progress ProgressFunc) applyResult {
	payload := Assemble(f.Content, f.FileName, categories)

	imagesFailed := 0
	switch dto.ImageMode {
	case ImageModeGenerate:
		payload.Content, imagesFailed = ResolveImages(ctx, payload.Content, h.generate, progress)
	default:
		payload.Content = StripPlaceholders(payload.Content)
	}

	slug := payload.Slug
	var count int64
	h.db.Model(&models.PostModel{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		slug = FallbackSlug(time.Now())
	}

	post := models.PostModel{
		Title:           payload.Title,
		Slug:            slug,
		Subtitle:        payload.Subtitle,
		Excerpt:         payload.Excerpt,
		Content:         payload.Content,
		MetaTitle:       payload.MetaTitle,
		MetaDescription: payload.MetaDescription,
		IsPublished:     dto.Publish,
	}
	if payload.CategoryID != "" {
		post.CategoryID = &payload.CategoryID
	}

	if err := h.db.Create(&post).Error; err != nil {
		h.logger.Warn("import: create post failed",
			zap.String("file", f.FileName), zap.Error(err))
		return applyResult{FileName: f.FileName, Error: err.Error()}
	}

	return applyResult{
		FileName:     f.FileName,
		PostID:       post.ID,
		Slug:         post.Slug,
		ImagesFailed: imagesFailed,
	}
}
