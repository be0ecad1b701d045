package main

import (
	"fmt"

	"cycleroute/internal/config"
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	mongorepo "cycleroute/internal/repositories/mongodb"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/cache"
	"cycleroute/pkg/database"
	"cycleroute/pkg/email"
	"cycleroute/pkg/logger"
	"cycleroute/pkg/places"
	"cycleroute/pkg/storage"
	"cycleroute/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.LoggingMiddleware(log))

	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			log.WithError(err).Warn("failed to set trusted proxies")
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		// Serve anyway so clients get a clean 503 instead of refused
		// connections.
		log.WithError(err).Error("database unreachable, serving degraded API")
		router.Any("/api/*path", func(c *gin.Context) {
			utils.ServiceUnavailableResponse(c, "database unavailable")
		})
		if err := router.Run(addr); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
		return
	}
	defer db.Close()

	var cacheStore cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, using in-memory cache")
			cacheStore = cache.NewMemoryCache()
		} else {
			cacheStore = redisCache
		}
	} else {
		cacheStore = cache.NewMemoryCache()
	}
	defer cacheStore.Close()

	var mailer email.Mailer
	if cfg.Email.BrevoAPIKey != "" {
		mailer = email.NewBrevoMailer(cfg.Email.BrevoAPIKey, cfg.Email.SenderName, cfg.Email.SenderEmail)
	} else {
		mailer = email.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SenderEmail)
	}

	var placesProvider places.Provider
	if cfg.Maps.GoogleAPIKey != "" {
		provider, err := places.NewGooglePlacesProvider(cfg.Maps.GoogleAPIKey)
		if err != nil {
			log.WithError(err).Warn("places provider unavailable, POI search disabled")
		} else {
			placesProvider = provider
		}
	} else {
		log.Warn("no maps API key configured, POI search disabled")
	}

	store, err := storage.NewLocalStorage(cfg.Storage.UploadPath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// Repositories
	userRepo := mongorepo.NewUserRepository(db.Database)
	routeRepo := mongorepo.NewRouteRepository(db.Database)
	pointRepo := mongorepo.NewCustomPointRepository(db.Database)
	reviewRepo := mongorepo.NewReviewRepository(db.Database)
	commentRepo := mongorepo.NewCommentRepository(db.Database)
	voteRepo := mongorepo.NewVoteRepository(db.Database)

	// Services
	sessions := services.NewSessionStore()
	authService := services.NewAuthService(userRepo, sessions, cacheStore, mailer, log)
	userService := services.NewUserService(userRepo)
	routeService := services.NewRouteService(routeRepo, cfg.App.FrontendURL, log)
	pointService := services.NewCustomPointService(pointRepo, log)
	reviewService := services.NewReviewService(reviewRepo, routeRepo, userRepo, log)
	commentService := services.NewCommentService(commentRepo, routeRepo, userRepo, log)
	voteService := services.NewVoteService(voteRepo, routeRepo, log)
	poiService := services.NewPOIService(placesProvider, cacheStore, cfg.Maps.POIRadius, log)
	uploadService := services.NewUploadService(store, cfg.Storage.MaxSize, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	routeHandler := handlers.NewRouteHandler(routeService, log)
	pointHandler := handlers.NewCustomPointHandler(pointService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	commentHandler := handlers.NewCommentHandler(commentService, log)
	voteHandler := handlers.NewVoteHandler(voteService, log)
	poiHandler := handlers.NewPOIHandler(poiService, log)
	uploadHandler := handlers.NewUploadHandler(uploadService, log)

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.Security.RateLimitPerMinute))

	routes.SetupAuthRoutes(api, authHandler, sessions)
	routes.SetupUserRoutes(api, userHandler, sessions)
	routes.SetupRouteRoutes(api, routeHandler, sessions)
	routes.SetupCustomPointRoutes(api, pointHandler, sessions)
	routes.SetupReviewRoutes(api, reviewHandler, sessions)
	routes.SetupCommentRoutes(api, commentHandler, sessions)
	routes.SetupVoteRoutes(api, voteHandler, sessions)
	routes.SetupPOIRoutes(api, poiHandler)
	routes.SetupUploadRoutes(api, uploadHandler, sessions)

	router.Static("/uploads", cfg.Storage.UploadPath)

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			utils.ServiceUnavailableResponse(c, "database unavailable")
			return
		}
		utils.SuccessResponse(c, "ok", gin.H{"version": cfg.App.Version})
	})

	log.WithField("addr", addr).Infof("%s listening", cfg.App.Name)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
