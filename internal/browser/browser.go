// ============================================================================
// Chrome Browser Port
// ============================================================================
// Implementación real (chromedp) de los puertos de la sesión: localStorage
// como storage.Store, window.location como Navigator y el DOM como Renderer,
// FormScanner y Notifier. La usa el kiosko para correr el controlador de
// página contra las páginas HCE reales.
// ============================================================================

package browser

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Options configura el navegador
type Options struct {
	BaseURL    string // origen del sitio HCE, sin "/" final
	ChromePath string // vacío = autodetectar
	Headless   bool
}

// Browser es una pestaña de Chrome controlada por chromedp
type Browser struct {
	ctx     context.Context
	cancel  context.CancelFunc
	baseURL string
}

// chromeCandidates lista las rutas conocidas de Chrome/Chromium/Edge por SO
func chromeCandidates(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			"C:\\Program Files\\Google\\Chrome\\Application\\chrome.exe",
			"C:\\Program Files (x86)\\Google\\Chrome\\Application\\chrome.exe",
			"C:\\Program Files (x86)\\Microsoft\\Edge\\Application\\msedge.exe",
			"C:\\Program Files\\Microsoft\\Edge\\Application\\msedge.exe",
		}
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
		}
	}
}

// DetectChrome retorna la primera ruta de Chrome existente, o "" si no hay.
// explicit, si no está vacío, gana siempre.
func DetectChrome(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range chromeCandidates(runtime.GOOS) {
		if _, err := os.Stat(path); err == nil {
			log.Printf("✅ [CHROME] Encontrado en: %s", path)
			return path
		}
	}
	return ""
}

// Open lanza Chrome y abre una pestaña. Los diálogos JavaScript (alert) se
// aceptan solos para que la pestaña no quede bloqueada.
func Open(parent context.Context, opts Options) (*Browser, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if path := DetectChrome(opts.ChromePath); path != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(path))
	} else {
		log.Printf("⚠️  [CHROME] No se encontró Chrome en rutas conocidas, se usará el del PATH")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocOpts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Printf))

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if dialog, ok := ev.(*page.EventJavascriptDialogOpening); ok {
			log.Printf("🔔 [CHROME] %s", dialog.Message)
			go func() {
				if err := chromedp.Run(ctx, page.HandleJavaScriptDialog(true)); err != nil {
					log.Printf("⚠️  [CHROME] Error cerrando diálogo: %v", err)
				}
			}()
		}
	})

	// Primer Run: arranca el proceso de Chrome
	if err := chromedp.Run(ctx); err != nil {
		ctxCancel()
		allocCancel()
		return nil, fmt.Errorf("error iniciando Chrome: %w", err)
	}

	cancel := func() {
		ctxCancel()
		allocCancel()
	}
	return &Browser{ctx: ctx, cancel: cancel, baseURL: strings.TrimSuffix(opts.BaseURL, "/")}, nil
}

// Close cierra la pestaña y el proceso de Chrome
func (b *Browser) Close() {
	b.cancel()
}

// Run ejecuta acciones chromedp arbitrarias en la pestaña
func (b *Browser) Run(actions ...chromedp.Action) error {
	return chromedp.Run(b.ctx, actions...)
}

func (b *Browser) eval(script string, out interface{}) error {
	return chromedp.Run(b.ctx, chromedp.Evaluate(script, out))
}
