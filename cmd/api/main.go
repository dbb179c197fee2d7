package main

import (
	"context"
	"log"
	"time"

	"tourism-tracker/internal/core/auth"
	"tourism-tracker/internal/core/cache"
	"tourism-tracker/internal/core/config"
	"tourism-tracker/internal/core/logger"
	"tourism-tracker/internal/core/server"
	announcementadapter "tourism-tracker/internal/features/announcements/adapters"
	announcementhandler "tourism-tracker/internal/features/announcements/handler"
	announcementservice "tourism-tracker/internal/features/announcements/service"
	bookingadapter "tourism-tracker/internal/features/bookings/adapters"
	bookinghandler "tourism-tracker/internal/features/bookings/handler"
	bookingservice "tourism-tracker/internal/features/bookings/service"
	purchaseadapter "tourism-tracker/internal/features/purchases/adapters"
	purchasehandler "tourism-tracker/internal/features/purchases/handler"
	purchaseservice "tourism-tracker/internal/features/purchases/service"
	reporthandler "tourism-tracker/internal/features/reports/handler"
	reportservice "tourism-tracker/internal/features/reports/service"
	trackingadapter "tourism-tracker/internal/features/tracking/adapters"
	trackinghandler "tourism-tracker/internal/features/tracking/handler"
	trackingservice "tourism-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Tourism Tracker API
// @version 1.0
// @description Booking and purchase lifecycle tracking on top of the tourism platform API.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis and verify connectivity
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	cacheTTL := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second

	// Platform API providers, wrapped with short-TTL read caching
	bookingProvider := bookingadapter.NewCachedProvider(
		bookingadapter.NewPlatformAdapter(cfg.Upstream), redisCache, cacheTTL)
	purchaseProvider := purchaseadapter.NewCachedProvider(
		purchaseadapter.NewPlatformAdapter(cfg.Upstream), redisCache, cacheTTL)

	// Services & Handlers
	bookingSvc := bookingservice.NewBookingService(bookingProvider)
	bookingHdl := bookinghandler.NewBookingHandler(bookingSvc)

	purchaseSvc := purchaseservice.NewPurchaseService(purchaseProvider)
	purchaseHdl := purchasehandler.NewPurchaseHandler(purchaseSvc)

	trackingSvc := trackingservice.NewTrackingService(
		trackingadapter.NewPurchaseSource(purchaseProvider),
		trackingadapter.NewBookingSource(bookingProvider),
	)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	reportSvc := reportservice.NewReportService(bookingProvider, purchaseProvider, cfg.Reports.PlatformFeeRate)
	reportHdl := reporthandler.NewReportHandler(reportSvc)

	announcementSvc := announcementservice.NewAnnouncementService(
		announcementadapter.NewRedisRepository(redisCache))
	announcementHdl := announcementhandler.NewAnnouncementHandler(announcementSvc)

	srv := server.New(cfg)

	authed := auth.RequireAuth(cfg.Auth.JWTSecret)
	adminOnly := auth.RequireRole(cfg.Auth.JWTSecret, auth.RoleAdmin)
	salesView := auth.RequireRole(cfg.Auth.JWTSecret, auth.RoleAdmin, auth.RoleSeller)

	// Register Routes
	srv.App.Get("/api/bookings/user/:id", authed, bookingHdl.GetUserBookings)
	srv.App.Patch("/api/bookings/status/:id", adminOnly, bookingHdl.UpdateStatus)
	srv.App.Patch("/api/bookings/cancel/:id", authed, bookingHdl.Cancel)
	srv.App.Post("/api/bookings/:id/rating", authed, bookingHdl.Rate)

	srv.App.Get("/api/purchases/user/:id", authed, purchaseHdl.GetUserPurchases)
	srv.App.Get("/api/purchases", salesView, purchaseHdl.GetAllPurchases)
	srv.App.Post("/api/purchases/:id/cancel", authed, purchaseHdl.Cancel)
	srv.App.Post("/api/purchases/:id/review", authed, purchaseHdl.Review)

	srv.App.Get("/api/tracking/purchases/:id", authed, trackingHdl.GetPurchaseTimeline)
	srv.App.Get("/api/tracking/bookings/:id", authed, trackingHdl.GetBookingTimeline)

	srv.App.Get("/api/reports/sales", salesView, reportHdl.GetSalesReport)

	srv.App.Get("/api/announcements", announcementHdl.Get)
	srv.App.Post("/api/announcements", adminOnly, announcementHdl.Publish)
	srv.App.Delete("/api/announcements", adminOnly, announcementHdl.Remove)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
