package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/yatube/cache"
	"github.com/cppla/yatube/config"
	"github.com/cppla/yatube/controllers"
	"github.com/cppla/yatube/events"
	"github.com/cppla/yatube/middleware"
	"github.com/cppla/yatube/repository"
	"github.com/cppla/yatube/storage"
	"github.com/cppla/yatube/templates"
	"github.com/cppla/yatube/utils"
)

const (
	// IndexCachePrefix keys the cached home page.
	IndexCachePrefix = "index_page"
	// LoginPath is where anonymous callers of protected pages are sent.
	LoginPath = "/auth/login/"
)

// Options carries the collaborators built in main.
type Options struct {
	DB *gorm.DB
	// Cache stores rendered pages; Revoked remembers logged out session ids.
	Cache   cache.Store
	Revoked cache.Store
	Events  events.Publisher
	Media   storage.Store
	// StaticDir is served under /static; defaults to ./static.
	StaticDir string
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, opts Options) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewMemoryStore()
	}
	if opts.Revoked == nil {
		opts.Revoked = cache.NewMemoryStore()
	}
	if opts.Events == nil {
		opts.Events = events.Noop{}
	}
	if opts.Media == nil {
		opts.Media = storage.NewLocal(cfg.MediaRoot, cfg.MediaURL)
	}
	if opts.StaticDir == "" {
		opts.StaticDir = "./static"
	}

	r := gin.New()
	// Access log goes to its own rolling file; the application level is reused
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		// credentials cannot be combined with a wildcard origin
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.HTMLRender = templates.MustNew()

	store := repository.NewStore(opts.DB)
	r.Use(middleware.Authenticate(cfg.SecretKey, store, opts.Revoked))

	r.Static("/static", opts.StaticDir)
	r.Static(strings.TrimSuffix(cfg.MediaURL, "/"), cfg.MediaRoot)

	r.GET("/health", controllers.Health)

	postController := controllers.NewPostController(store, opts.Media, opts.Events)
	followController := controllers.NewFollowController(store, opts.Events)
	authController := controllers.NewAuthController(store, cfg.SecretKey, time.Duration(cfg.SessionTTLHours)*time.Hour, opts.Revoked)
	aboutController := controllers.NewAboutController()

	indexTTL := time.Duration(cfg.IndexCacheSeconds) * time.Second
	r.GET("/", middleware.CachePage(opts.Cache, IndexCachePrefix, indexTTL), postController.Index)
	r.GET("/group/:slug/", postController.GroupPosts)
	r.GET("/profile/:username/", postController.Profile)
	r.GET("/posts/:post_id/", postController.PostDetail)

	about := r.Group("/about")
	about.GET("/author/", aboutController.Author)
	about.GET("/contacts/", aboutController.Contacts)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	auth.GET("/signup/", authController.Signup)
	auth.POST("/signup/", authController.Signup)
	auth.GET("/login/", authController.Login)
	auth.POST("/login/", authController.Login)
	auth.GET("/logout/", authController.Logout)
	auth.POST("/logout/", authController.Logout)

	protected := r.Group("")
	protected.Use(middleware.LoginRequired(LoginPath), middleware.RateLimit(cfg.RateLimitPerMinute))
	protected.GET("/create/", postController.PostCreate)
	protected.POST("/create/", postController.PostCreate)
	protected.GET("/posts/:post_id/edit/", postController.PostEdit)
	protected.POST("/posts/:post_id/edit/", postController.PostEdit)
	protected.GET("/posts/:post_id/comment/", postController.AddComment)
	protected.POST("/posts/:post_id/comment/", postController.AddComment)
	protected.GET("/follow/", followController.FollowIndex)
	protected.GET("/profile/:username/follow/", followController.ProfileFollow)
	protected.GET("/profile/:username/unfollow/", followController.ProfileUnfollow)

	r.NoRoute(controllers.NotFound)

	return r
}
