package container

import (
	"context"
	"fmt"
	"time"

	"mediadb-backend/internal/config"
	infracache "mediadb-backend/internal/infrastructure/cache"
	"mediadb-backend/internal/infrastructure/database"
	"mediadb-backend/internal/infrastructure/email"
	"mediadb-backend/pkg/cache"
	"mediadb-backend/pkg/logger"
	"mediadb-backend/pkg/token"

	categoryHandler "mediadb-backend/internal/domains/category/handler"
	categoryRepo "mediadb-backend/internal/domains/category/repository"
	categoryService "mediadb-backend/internal/domains/category/service"
	commentHandler "mediadb-backend/internal/domains/comment/handler"
	commentRepo "mediadb-backend/internal/domains/comment/repository"
	commentService "mediadb-backend/internal/domains/comment/service"
	genreHandler "mediadb-backend/internal/domains/genre/handler"
	genreRepo "mediadb-backend/internal/domains/genre/repository"
	genreService "mediadb-backend/internal/domains/genre/service"
	reviewHandler "mediadb-backend/internal/domains/review/handler"
	reviewRepo "mediadb-backend/internal/domains/review/repository"
	reviewService "mediadb-backend/internal/domains/review/service"
	titleHandler "mediadb-backend/internal/domains/title/handler"
	titleRepo "mediadb-backend/internal/domains/title/repository"
	titleService "mediadb-backend/internal/domains/title/service"
	userHandler "mediadb-backend/internal/domains/user/handler"
	userRepo "mediadb-backend/internal/domains/user/repository"
	userService "mediadb-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache // nil when Redis is unavailable
	Tokens *token.Manager
	Mailer email.Sender

	UserRepo     userRepo.UserRepository
	CategoryRepo categoryRepo.CategoryRepository
	GenreRepo    genreRepo.GenreRepository
	TitleRepo    titleRepo.TitleRepository
	ReviewRepo   reviewRepo.ReviewRepository
	CommentRepo  commentRepo.CommentRepository

	UserService     userService.UserService
	CategoryService categoryService.CategoryService
	GenreService    genreService.GenreService
	TitleService    titleService.TitleService
	ReviewService   reviewService.ReviewService
	CommentService  commentService.CommentService

	AuthHandler     *userHandler.AuthHandler
	UserHandler     *userHandler.UserHandler
	CategoryHandler *categoryHandler.CategoryHandler
	GenreHandler    *genreHandler.GenreHandler
	TitleHandler    *titleHandler.TitleHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CommentHandler  *commentHandler.CommentHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	logger.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCache()
	c.initAuth()
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	return nil
}

// initCache connects to Redis. A missing Redis only costs the title
// rating cache, so failure is logged and the app keeps going.
func (c *Container) initCache() {
	redisCache := infracache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("Redis unavailable, running without cache", err)
		return
	}

	c.Cache = redisCache
	logger.Info("Redis connected", nil)
}

func (c *Container) initAuth() {
	c.Tokens = token.NewManager(token.Config{
		Secret: c.Config.JWT.Secret,
		TTL:    time.Duration(c.Config.JWT.AccessTokenExpiry) * time.Minute,
	})

	switch c.Config.Email.Provider {
	case "smtp":
		c.Mailer = email.NewSMTPSender(
			c.Config.Email.SMTPHost,
			c.Config.Email.SMTPPort,
			c.Config.Email.From,
		)
	default:
		c.Mailer = email.NewFileSender(c.Config.Email.Dir)
	}
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresGenreRepository(pool)
	c.TitleRepo = titleRepo.NewPostgresTitleRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.Tokens, c.Mailer)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.TitleService = titleService.NewTitleService(c.TitleRepo, c.CategoryRepo, c.GenreRepo, c.Cache)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.TitleRepo, c.Cache)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ReviewRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.TitleHandler = titleHandler.NewTitleHandler(c.TitleService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup releases connections during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("Failed to close Redis client", err)
		}
	}
}
