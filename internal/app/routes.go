package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/config"
	"github.com/maison-lumiere/atelier/internal/middleware"
	"github.com/maison-lumiere/atelier/internal/modules/ai"
	"github.com/maison-lumiere/atelier/internal/modules/content/category"
	"github.com/maison-lumiere/atelier/internal/modules/content/post"
	"github.com/maison-lumiere/atelier/internal/modules/content/search"
	"github.com/maison-lumiere/atelier/internal/modules/importer"
	"github.com/maison-lumiere/atelier/internal/modules/media"
	"github.com/maison-lumiere/atelier/internal/modules/newsletter/campaign"
	"github.com/maison-lumiere/atelier/internal/modules/newsletter/subscriber"
	"github.com/maison-lumiere/atelier/internal/modules/syndication/aifeed"
	"github.com/maison-lumiere/atelier/internal/modules/syndication/feed"
	"github.com/maison-lumiere/atelier/internal/modules/syndication/sitemap"
	"github.com/maison-lumiere/atelier/internal/modules/system/account"
	"github.com/maison-lumiere/atelier/internal/modules/system/health"
	"github.com/maison-lumiere/atelier/internal/pkg/mail"
	pkgredis "github.com/maison-lumiere/atelier/internal/pkg/redis"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"github.com/maison-lumiere/atelier/internal/pkg/taskqueue"
	"go.uber.org/zap"
)

const appVersion = "1.0.0"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	cfg := a.cfg
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "atelier",
		"site":    cfg.Site.Name,
		"version": appVersion,
	}

	apiPrefix := "/api/v1"

	// Rate limiting runs on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))

	// Root-level syndication endpoints
	root := r.Group("")
	feed.RegisterRoutes(root, db, cfg)    // /feed, /feed.xml, /atom.xml
	sitemap.RegisterRoutes(root, db, cfg) // /sitemap.xml
	aifeed.RegisterRoutes(root, db, cfg)  // /llms.txt, /llms-full.txt

	// Versioned API
	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })

	api.POST("/clean_cache", authMW, func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"deleted": deleted})
	})

	sender := mail.New(mailConfig(cfg))

	// Infrastructure
	health.NewHandler(db, rc, a.sched, appVersion).RegisterRoutes(api, authMW)
	account.NewHandler(account.NewService(db)).RegisterRoutes(api, authMW)

	// Editorial content
	post.NewHandler(post.NewService(db), rc).RegisterRoutes(api, authMW)
	category.NewHandler(category.NewService(db)).RegisterRoutes(api, authMW)
	search.NewHandler(search.NewService(db, a.logger)).RegisterRoutes(api, authMW)

	// Newsletter
	subsSvc := subscriber.NewService(db, rc)
	subscriber.NewHandler(subsSvc, sender, cfg, a.logger).RegisterRoutes(api, authMW)
	campaignSvc := campaign.NewService(db, subsSvc, sender, cfg, a.logger)
	campaign.NewHandler(campaignSvc).RegisterRoutes(api, authMW)

	// Media storage
	store := media.NewStore(cfg.S3)
	mediaHandler := media.NewHandler(db, store, a.logger)
	mediaHandler.RegisterRoutes(api, authMW)

	// Generative AI + markdown import
	aiSvc := ai.NewService(db, cfg, a.logger)
	ai.NewHandler(aiSvc).RegisterRoutes(api, authMW)

	// Generated images land in the media library alongside uploads.
	generateImage := func(ctx context.Context, prompt string) (string, error) {
		url, err := aiSvc.GenerateImageURL(ctx, prompt)
		if err != nil {
			return "", err
		}
		if _, recErr := mediaHandler.RecordGenerated(url, prompt); recErr != nil {
			a.logger.Warn("failed to record generated image", zap.Error(recErr))
		}
		return url, nil
	}

	taskSvc := taskqueue.NewService(rc)
	importer.NewHandler(db, taskSvc, a.logger, generateImage).RegisterRoutes(api, authMW)
}

func mailConfig(cfg *config.AppConfig) mail.Config {
	return mail.Config{
		Enable:    cfg.Mail.Enable,
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		User:      cfg.Mail.User,
		Pass:      cfg.Mail.Pass,
		From:      cfg.Mail.From,
		ReplyTo:   cfg.Mail.ReplyTo,
		UseResend: cfg.Mail.UseResend,
		ResendKey: cfg.Mail.ResendKey,
	}
}

func httpCacheSkipPaths(apiPrefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(apiPrefix), "/")
	if p == "" {
		p = "/api/v1"
	}
	return []string{
		p + "/search",
		p + "/clean_cache",
		p + "/posts/*",
		p + "/subscribers/*",
		p + "/account/*",
		p + "/health/*",
		p + "/media/optimize",
	}
}
