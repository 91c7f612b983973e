package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/hceweb/internal/api"
	"github.com/yourorg/hceweb/internal/browser"
	"github.com/yourorg/hceweb/internal/config"
	"github.com/yourorg/hceweb/internal/debug"
	"github.com/yourorg/hceweb/internal/page"
	"github.com/yourorg/hceweb/internal/session"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ============================================================================
	// DASHBOARD DE DEBUG (opcional)
	// ============================================================================
	var dashboard *fiber.App
	if cfg.DebugDashboard {
		debug.Enable(true)
		dashboard = debug.NewDashboardApp()
		go func() {
			log.Printf("🐛 Dashboard de debug escuchando en :%s", cfg.DebugPort)
			if err := dashboard.Listen(":" + cfg.DebugPort); err != nil {
				log.Printf("⚠️  Dashboard de debug detenido: %v", err)
			}
		}()
	}

	// ============================================================================
	// CHROME
	// ============================================================================
	log.Println("🌐 Iniciando Chrome...")
	b, err := browser.Open(ctx, browser.Options{
		BaseURL:    cfg.BaseURL,
		ChromePath: cfg.ChromePath,
		Headless:   cfg.Headless,
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer b.Close()

	// El navegador es a la vez almacenamiento (localStorage), navegación y DOM
	sess := session.New(b, b, cfg.LoginPath)
	client := api.NewClient(cfg.BaseURL, sess,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithAuthPaths(cfg.TokenPath, cfg.MePath),
	)
	ctrl := page.New(client, b, cfg.SedePath)

	load := func() {
		b.Navigate(cfg.KioskPath)
		ctrl.OnLoad(ctx)
		ctrl.Wait()
		log.Printf("✅ Página cargada: %s", b.CurrentPath())
	}
	load()

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	refresh := cfg.KioskRefresh
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	log.Printf("🚀 Kiosko HCE en %s%s (refresco cada %s)", cfg.BaseURL, cfg.KioskPath, refresh)
	log.Println("💡 Presiona Ctrl+C para detener")

	for {
		select {
		case <-ticker.C:
			load()
		case <-sigChan:
			log.Println("\n🛑 Señal de terminación recibida, cerrando kiosko...")
			cancel()
			ctrl.Wait()
			if dashboard != nil {
				if err := dashboard.Shutdown(); err != nil {
					log.Printf("⚠️  Error cerrando dashboard: %v", err)
				}
			}
			log.Println("✅ Kiosko cerrado correctamente")
			return
		}
	}
}
