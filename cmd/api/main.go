package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artloko1-gif/MastersCatering/internal/auth"
	"github.com/artloko1-gif/MastersCatering/internal/cache"
	"github.com/artloko1-gif/MastersCatering/internal/config"
	"github.com/artloko1-gif/MastersCatering/internal/content"
	"github.com/artloko1-gif/MastersCatering/internal/db"
	"github.com/artloko1-gif/MastersCatering/internal/handlers"
	"github.com/artloko1-gif/MastersCatering/internal/middleware"
	"github.com/artloko1-gif/MastersCatering/internal/notifications"
	"github.com/artloko1-gif/MastersCatering/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	jwtManager := auth.NewManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTTLMinutes)*time.Minute,
	)
	if jwtManager == nil {
		logger.Warn("jwt disabled, admin login unavailable")
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.InquiryNotifyTo, cfg.BrevoSandbox)
	var notifier content.Notifier
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		notifier = mailer
	}

	repo := content.NewMongoRepository(client, cols)
	store := content.NewStore(repo, cfg.Timezone, logger)
	store.Init(ctx)

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	contentHandler := content.NewHandler(store, val, cacheStore, cacheTTL, notifier, logger)

	server := &handlers.Server{
		Cfg:   cfg,
		Cols:  cols,
		Store: store,
		Val:   val,
		Log:   logger,
		JWT:   jwtManager,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	inquiryLimiter := middleware.NewRateLimiter(cfg.RateLimitInquiries, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/content", contentHandler.PublicGet)
		api.With(inquiryLimiter.Middleware).Post("/inquiries", contentHandler.CreateInquiry)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/register", server.AdminRegister)
			admin.Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// Important (chi): middlewares must be attached before defining routes.
			// Login/refresh/logout stay public; the rest goes through a sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))

				protected.Get("/content", contentHandler.AdminGet)
				protected.Patch("/content", contentHandler.AdminUpdateContent)
				protected.Patch("/team", contentHandler.AdminUpdateTeam)
				protected.Patch("/locations/{id}", contentHandler.AdminUpdateLocation)

				protected.Post("/projects", contentHandler.AdminCreateProject)
				protected.Patch("/projects/{id}", contentHandler.AdminUpdateProject)
				protected.Delete("/projects/{id}", contentHandler.AdminDeleteProject)

				protected.Post("/clients", contentHandler.AdminCreateClient)
				protected.Patch("/clients/{id}", contentHandler.AdminUpdateClient)
				protected.Delete("/clients/{id}", contentHandler.AdminDeleteClient)
				protected.Put("/clients/order", contentHandler.AdminReorderClients)

				protected.Get("/inquiries", contentHandler.AdminListInquiries)
				protected.Patch("/inquiries/{id}/status", contentHandler.AdminUpdateInquiryStatus)
				protected.Delete("/inquiries/{id}", contentHandler.AdminDeleteInquiry)

				protected.Post("/publish", contentHandler.AdminPublish)
				protected.Post("/images", server.UploadImages)
				protected.Get("/export", server.ExportContent)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
