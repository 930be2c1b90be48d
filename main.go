package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	log "github.com/sirupsen/logrus"

	"darulfatheh_backend/internals/configs"
	database "darulfatheh_backend/internals/databases"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
	"darulfatheh_backend/internals/helpers/mailer"
	middlewares "darulfatheh_backend/internals/middlewares"
	"darulfatheh_backend/internals/middlewares/logger"
	routes "darulfatheh_backend/internals/route"
	"darulfatheh_backend/internals/views"
)

const bodyLimit = 32 * 1024 * 1024 // multi upload galeri

func main() {
	cfg := configs.Load()
	logr := configs.InitLogger(cfg.Debug)

	// 🔌 DB connect + pool + migrate + warm-up
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ %v", err)
	}
	database.WarmUpQueries(db)

	// 📦 kolaborator bersama
	media := helper.NewMediaStore(cfg.MediaRoot)
	images := imageopt.NewProcessor(cfg.MediaRoot, imageopt.Options{
		MaxWidth:  cfg.Image.MaxWidth,
		MaxHeight: cfg.Image.MaxHeight,
		Quality:   cfg.Image.Quality,
	}, logr)
	dispatcher := mailer.NewDispatcher(mailer.New(cfg.Mail, logr), mailer.DefaultQueueSize, logr)

	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		rs, err := middlewares.NewRedisStorage(cfg.RedisURL)
		if err != nil {
			log.Warnf("⚠️ redis unavailable, rate limiter falls back to memory: %v", err)
		} else {
			log.Info("✅ Redis connected (rate limiter storage)")
			limiterStorage = rs
			defer rs.Close()
		}
	}

	deps := &helper.Deps{
		DB:             db,
		Media:          media,
		Images:         images,
		Notifier:       dispatcher,
		MailFrom:       cfg.Mail.FromAddress,
		NotifyTo:       cfg.Mail.NotifyTo,
		Secret:         cfg.SecretKey,
		SecureCookies:  !cfg.Debug,
		LimiterStorage: limiterStorage,
	}

	app := fiber.New(fiber.Config{
		Views:                 views.NewEngine(media, cfg.Debug),
		ViewsLayout:           helper.LayoutPublic,
		PassLocalsToViews:     true,
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             bodyLimit,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RecoveryMiddleware(cfg.Debug))
	app.Use(middlewares.RequestContext())
	app.Use(logger.LoggerMiddleware(os.Stdout))
	app.Use(middlewares.AllowedHosts(cfg.AllowedHosts, cfg.Debug))
	app.Use(middlewares.FlashMiddleware())

	// 🗂️ asset + upload
	app.Static("/static", cfg.StaticRoot, fiber.Static{Compress: true, MaxAge: 3600})
	app.Static("/media", cfg.MediaRoot, fiber.Static{MaxAge: 3600})

	// ✅ Routes
	routes.SetupRoutes(app, deps)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop HTTP, kirim sisa email, tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	if err := dispatcher.Close(ctx); err != nil {
		log.Warnf("mail queue not drained: %v", err)
	}
	database.Close(db)
}
