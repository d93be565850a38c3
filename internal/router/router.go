package router

import (
	"articles-go/internal/config"
	"articles-go/internal/handler"
	"articles-go/internal/middleware"
	"articles-go/internal/repository"
	"articles-go/internal/service"
	"articles-go/internal/utils"
	"articles-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "文章发布系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	tagRepo := repository.NewTagRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// 登录限制器,未配置Redis时禁用
	var limiter *redis_limiter.LoginLimiter
	if redisClient != nil {
		limiter = redis_limiter.NewLoginLimiter(
			redisClient,
			cfg.Redis.MaxLoginAttempts,
			"login_attempts:",
			cfg.Redis.GetLockoutDuration(),
		)
	}

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager, limiter, cfg)
	articleService := service.NewArticleService(db, articleRepo, authorRepo, tagRepo, commentRepo, favoriteRepo, logger)
	userService := service.NewUserService(db, userRepo, articleRepo, commentRepo, favoriteRepo, logger)
	tagService := service.NewTagService(db, tagRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService, userRepo)
	userHandler := handler.NewUserHandler(userService)
	tagHandler := handler.NewTagHandler(tagService)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 文章读取对匿名用户开放
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(jwtManager))
		{
			public.GET("/articles", articleHandler.List)
			public.GET("/articles/search", articleHandler.Search)
			public.GET("/articles/by-owner/:owner_id", articleHandler.ListByOwner)
			public.GET("/articles/by-tag/:tag_id", articleHandler.ListByTag)
			public.GET("/articles/:id", articleHandler.Get)
			public.GET("/tags", tagHandler.List)
			public.GET("/tags/:id", tagHandler.Get)
		}

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 用户信息
			authorized.GET("/me", authHandler.GetMe)
			authorized.POST("/logout", authHandler.Logout)

			// 文章管理
			authorized.POST("/articles", articleHandler.Create)
			authorized.PUT("/articles/:id", articleHandler.Update)
			authorized.DELETE("/articles/:id", articleHandler.Delete)

			// 评论与收藏
			authorized.POST("/articles/:id/comments", articleHandler.AddComment)
			authorized.POST("/articles/:id/favorite", articleHandler.Favorite)
			authorized.DELETE("/articles/:id/favorite", articleHandler.Unfavorite)

			// 管理员接口
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.AdminMiddleware())
			{
				adminGroup.GET("/users", userHandler.List)
				adminGroup.GET("/users/:id", userHandler.Get)
				adminGroup.PUT("/users/:id", userHandler.Update)
				adminGroup.DELETE("/users/:id", userHandler.Delete)

				adminGroup.POST("/tags", tagHandler.Create)
				adminGroup.DELETE("/tags/:id", tagHandler.Delete)
			}
		}
	}

	return r
}
