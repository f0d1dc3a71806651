package http

import (
	"time"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/middleware"
	"github.com/mikiasgoitom/portfolio/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// RouterOptions carries the settings the router needs from configuration.
type RouterOptions struct {
	AllowedOrigins []string
	UploadDir      string
	GlobalLimiter  *limiter.Limiter
	StrictLimiter  *limiter.Limiter
	Log            *zerolog.Logger
}

type Router struct {
	tagHandler     TagHandlerInterface
	blogHandler    BlogHandlerInterface
	projectHandler *ProjectHandler
	heroHandler    *HeroHandler
	contactHandler *ContactHandler
	authHandler    AuthHandlerInterface
	uploadHandler  *UploadHandler
	healthHandler  *HealthHandler
	authUsecase    usecasecontract.IAuthUseCase
	jwtService     usecase.JWTService
	opts           RouterOptions
}

func NewRouter(
	tagUsecase usecasecontract.ITagUseCase,
	blogUsecase usecasecontract.IBlogPostUseCase,
	projectUsecase usecasecontract.IProjectUseCase,
	heroUsecase usecasecontract.IHeroUseCase,
	messageUsecase usecasecontract.IMessageUseCase,
	authUsecase usecasecontract.IAuthUseCase,
	mediaUsecase usecasecontract.IMediaUseCase,
	jwtService usecase.JWTService,
	db Pinger,
	opts RouterOptions,
) *Router {
	return &Router{
		tagHandler:     NewTagHandler(tagUsecase),
		blogHandler:    NewBlogHandler(blogUsecase),
		projectHandler: NewProjectHandler(projectUsecase),
		heroHandler:    NewHeroHandler(heroUsecase),
		contactHandler: NewContactHandler(messageUsecase),
		authHandler:    NewAuthHandler(authUsecase),
		uploadHandler:  NewUploadHandler(mediaUsecase),
		healthHandler:  NewHealthHandler(db),
		authUsecase:    authUsecase,
		jwtService:     jwtService,
		opts:           opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	if r.opts.Log != nil {
		router.Use(middleware.Recovery(r.opts.Log), middleware.RequestLogger(r.opts.Log))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.opts.GlobalLimiter != nil {
		router.Use(middleware.RateLimiter(r.opts.GlobalLimiter))
	}
	strict := func(c *gin.Context) { c.Next() }
	if r.opts.StrictLimiter != nil {
		strict = middleware.StrictRateLimiter(r.opts.StrictLimiter)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", r.healthHandler.Healthz)
	if r.opts.UploadDir != "" {
		router.Static("/uploads", r.opts.UploadDir)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1.GET("/healthz", r.healthHandler.Healthz)

	authenticated := middleware.AuthMiddleWare(r.jwtService)
	adminOnly := middleware.AdminOnly(r.authUsecase)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", strict, r.authHandler.Register)
		auth.POST("/login", strict, r.authHandler.Login)
		auth.GET("/check-admin", authenticated, r.authHandler.CheckAdmin)
	}

	// Public reads; an admin token additionally exposes drafts
	public := v1.Group("/")
	public.Use(middleware.OptionalAuth(r.jwtService))
	{
		public.GET("/tags", r.tagHandler.GetTags)
		public.GET("/blog", r.blogHandler.GetBlogPostsHandler)
		public.GET("/blog/slug/:slug", r.blogHandler.GetBlogPostBySlugHandler)
		public.GET("/blog/:id", r.blogHandler.GetBlogPostByIDHandler)
		public.GET("/projects", r.projectHandler.GetProjects)
		public.GET("/projects/:id", r.projectHandler.GetProject)
		public.GET("/hero", r.heroHandler.GetHero)
		public.POST("/messages", strict, r.contactHandler.SubmitMessage)
	}

	admin := v1.Group("/")
	admin.Use(authenticated, adminOnly)
	{
		admin.POST("/tags", r.tagHandler.CreateTag)
		admin.GET("/tags/usage", r.tagHandler.GetTagUsage)
		admin.POST("/tags/reconcile", r.tagHandler.ReconcileTags)
		admin.DELETE("/tags/:id", r.tagHandler.DeleteTag)

		admin.POST("/blog", r.blogHandler.CreateBlogPostHandler)
		admin.PUT("/blog", r.blogHandler.UpdateBlogPostHandler)
		admin.PUT("/blog/:id", r.blogHandler.UpdateBlogPostHandler)
		admin.DELETE("/blog/:id", r.blogHandler.DeleteBlogPostHandler)

		admin.POST("/projects", r.projectHandler.CreateProject)
		admin.PUT("/projects/:id", r.projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", r.projectHandler.DeleteProject)

		admin.PUT("/hero", r.heroHandler.UpdateHero)

		admin.GET("/messages", r.contactHandler.GetMessages)
		admin.PATCH("/messages/:id/read", r.contactHandler.MarkAsRead)
		admin.DELETE("/messages/:id", r.contactHandler.DeleteMessage)

		admin.POST("/upload", r.uploadHandler.UploadImage)
	}
}
