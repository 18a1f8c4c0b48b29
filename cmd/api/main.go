package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fitjourney/internal/config"
	"fitjourney/internal/database"
	"fitjourney/internal/middleware"
	"fitjourney/internal/modules/auth"
	"fitjourney/internal/modules/card"
	"fitjourney/internal/modules/feed"
	"fitjourney/internal/modules/media"
	"fitjourney/internal/modules/profile"
	"fitjourney/internal/modules/session"
	jwtsvc "fitjourney/internal/pkg/jwt"
	"fitjourney/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	cardRepo := repository.NewCardRepository(db)
	profileRepo := repository.NewDisplayProfileRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)

	hub := session.NewHub()
	defer hub.Close()

	var verifier auth.ProviderVerifier
	if cfg.Auth.GoogleClientID != "" {
		verifier = auth.NewGoogleVerifier(cfg.Auth.GoogleClientID)
	}

	var store media.Store
	switch cfg.Media.Backend {
	case config.MediaBackendS3:
		s3Store, err := media.NewS3Store(context.Background(), cfg.Media.S3Bucket, cfg.Media.S3Region)
		if err != nil {
			log.Fatal(err)
		}
		store = s3Store
	default:
		store = media.NewLocalStore(cfg.Media.BaseDir, cfg.Media.StaticBase)
	}

	authService := auth.NewService(userRepo, j, verifier, hub)
	authHandler := auth.NewHandler(authService)

	cardService := card.NewService(cardRepo, store)
	cardHandler := card.NewHandler(cardService)

	feedService := feed.NewService(cardRepo)
	feedHandler := feed.NewHandler(feedService)

	profileService := profile.NewService(profileRepo, nil)
	profileHandler := profile.NewHandler(profileService)

	mediaHandler := media.NewHandler(store)
	sessionHandler := session.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	if cfg.Media.Backend == config.MediaBackendLocal {
		r.Static(cfg.Media.StaticBase, cfg.Media.BaseDir)
	}

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		// authenticates via ?token= itself; websockets cannot set headers
		sessionHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			cardHandler.RegisterRoutes(protected)
			feedHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			mediaHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
