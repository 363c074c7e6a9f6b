package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"seripreview/internal/admin"
	"seripreview/internal/catalog"
	"seripreview/internal/notify"
	"seripreview/internal/preview"
	"seripreview/pkg/database"
	"seripreview/pkg/utils"
)

func main() {
	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	site := utils.LoadSiteConfig()
	shell, err := preview.LoadShell(site.ShellPath)
	if err != nil {
		log.Fatalf("load shell failed: %v", err)
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := notify.NewHub()
	router.GET("/ws", notify.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          cfg.Path,
			"base_origin": site.BaseOrigin,
			"ws_clients":  stats.WSClients,
		})
	})

	// Catalog API (public)
	repo := catalog.NewRepo(db)
	catalogHandler := catalog.NewHandler(repo)
	catalogHandler.RegisterRoutes(router.Group("/series"))

	// Admin
	adminCfg := utils.LoadAdminConfig()
	tokenSvc := admin.TokenService{
		Secret:   []byte(adminCfg.JWTSecret),
		Issuer:   adminCfg.JWTIssuer,
		Duration: adminCfg.JWTDuration,
	}
	adminHandler := admin.NewHandler(repo, hub, tokenSvc, adminCfg.PasswordHash)
	adminHandler.RegisterAuthRoutes(router.Group("/auth"))

	protected := router.Group("/admin")
	protected.Use(admin.AuthMiddleware(tokenSvc))
	adminHandler.RegisterAdminRoutes(protected)

	// Preview pipeline: every page navigation gets the shell with
	// freshly resolved tags.
	pipeline := preview.NewPipeline(repo, preview.DefaultSite(site.BaseOrigin), site.BaseOrigin)
	previewHandler := preview.NewHandler(pipeline, shell)
	previewHandler.RegisterRoutes(router)

	httpSrv := &http.Server{
		Addr:    site.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("preview server listening on %s", site.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
