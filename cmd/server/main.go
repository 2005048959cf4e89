package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevin07696/payment-pages/internal/adapters/products"
	"github.com/kevin07696/payment-pages/internal/adapters/render"
	"github.com/kevin07696/payment-pages/internal/adapters/session"
	"github.com/kevin07696/payment-pages/internal/config"
	"github.com/kevin07696/payment-pages/internal/domain"
	amountHandler "github.com/kevin07696/payment-pages/internal/handlers/amount"
	confirmHandler "github.com/kevin07696/payment-pages/internal/handlers/confirm"
	payHandler "github.com/kevin07696/payment-pages/internal/handlers/pay"
	productHandler "github.com/kevin07696/payment-pages/internal/handlers/product"
	refconfirmHandler "github.com/kevin07696/payment-pages/internal/handlers/refconfirm"
	referenceHandler "github.com/kevin07696/payment-pages/internal/handlers/reference"
	"github.com/kevin07696/payment-pages/internal/middleware"
	"github.com/kevin07696/payment-pages/internal/services/navigation"
	pkghttp "github.com/kevin07696/payment-pages/pkg/http"
	pkgmiddleware "github.com/kevin07696/payment-pages/pkg/middleware"
	"github.com/kevin07696/payment-pages/pkg/observability"
	"github.com/kevin07696/payment-pages/pkg/shutdown"
)

func main() {
	// Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting payment pages",
		zap.String("version", "0.1.0"),
	)

	// Load configuration from environment
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Products API client on a pooled HTTP client
	httpClient := pkghttp.NewHTTPClient(
		pkghttp.ProductsAPIClientConfig(),
		time.Duration(cfg.Products.Timeout)*time.Second,
	)
	productsClient := products.NewClient(cfg.Products.BaseURL, cfg.Products.APIToken, httpClient, logger)

	// Session, views, navigation
	sessions := session.NewCookieStore(cfg.Session.CookieName, []byte(cfg.Session.Secret), cfg.Session.SecureCookies)
	renderer := render.NewRenderer(logger)
	translator := render.NewTranslator()
	nav := navigation.NewResolver()

	// Page controllers
	productPage := productHandler.NewHandler(renderer, logger)
	referencePage := referenceHandler.NewHandler(sessions, renderer, translator, nav, logger)
	refconfirmPage := refconfirmHandler.NewHandler(sessions, renderer, nav, logger)
	amountPage := amountHandler.NewHandler(sessions, renderer, translator, nav, logger)
	confirmPage := confirmHandler.NewHandler(sessions, renderer, logger)
	payment := payHandler.NewHandler(productsClient, sessions, renderer, logger)

	// Middleware
	productResolver := middleware.NewProductResolver(productsClient, renderer, logger)
	securityHeaders := middleware.NewSecurityHeaders(cfg.Logger.Development)
	rateLimiter := pkgmiddleware.NewRateLimiter(10, 20, !cfg.Logger.Development)

	// Router
	router := chi.NewRouter()
	router.Use(middleware.Correlation)
	router.Use(observability.RequestMetrics)
	router.Use(securityHeaders.Middleware)
	router.Use(rateLimiter.Middleware)

	router.Route("/pay/{productExternalId}", func(r chi.Router) {
		r.Use(productResolver.Middleware)

		r.Get("/", productPage.GetPage)
		r.Get("/reference", referencePage.GetPage)
		r.Post("/reference", referencePage.PostPage)
		r.Get("/reference/confirm", refconfirmPage.GetPage)
		r.Post("/reference/confirm", refconfirmPage.PostPage)
		r.Get("/amount", amountPage.GetPage)
		r.Post("/amount", amountPage.PostPage)
		r.Get("/confirm", confirmPage.GetPage)
		r.Post("/confirm", payment.MakePayment)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderer.RenderError(w, r, domain.ErrProductNotFound)
	})

	// Metrics and health server on its own port
	healthChecker := observability.NewHealthChecker()
	healthChecker.Register("products_api", productsClient.Healthcheck)
	metricsServer := observability.StartMetricsServer(fmt.Sprintf("%d", cfg.Server.MetricsPort), healthChecker)
	logger.Info("Metrics server started", zap.Int("port", cfg.Server.MetricsPort))

	// Page server
	pageServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Page server listening", zap.String("addr", pageServer.Addr))
		if err := pageServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Page server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown - registered in dependency order, shut down LIFO
	shutdownManager := shutdown.NewManager(logger, 30*time.Second)
	shutdownManager.RegisterNoErr("rate_limiter", rateLimiter.Shutdown)
	shutdownManager.RegisterHTTPServer("metrics_server", metricsServer)
	shutdownManager.RegisterHTTPServer("page_server", pageServer)

	shutdownManager.WaitForShutdown()
}

// initLogger initializes the logger. Reads the environment directly since
// it has to exist before configuration loading can be logged.
func initLogger() *zap.Logger {
	if os.Getenv("LOG_DEVELOPMENT") == "true" {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(parseLogLevel(os.Getenv("LOG_LEVEL")))
	logger, _ := zapCfg.Build()
	return logger
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
