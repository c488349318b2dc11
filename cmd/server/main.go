package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"emrys-pos/internal/config"
	"emrys-pos/internal/httpserver"
	"emrys-pos/internal/logger"
	"emrys-pos/internal/metrics"
	"emrys-pos/internal/order"
	"emrys-pos/internal/printer"
	"emrys-pos/internal/product"
	"emrys-pos/internal/settings"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.Named("server")

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set; manager login is disabled")
	}
	if cfg.AdminPinHash == "" {
		log.Warn("ADMIN_PIN_HASH is not set; manager login is disabled")
	}

	catalog := product.NewRepository(product.Seed())

	profile := settings.Defaults()
	if cfg.StoreName != "" {
		profile.StoreName = cfg.StoreName
	}
	if cfg.Currency != "" {
		profile.Currency = cfg.Currency
	}
	settingsSvc := settings.NewService(profile)

	stats := metrics.NewRegistry()
	orderSvc := order.NewService(catalog, settingsSvc, stats)

	link := printer.NewLink(buildPrinterClient(log), printerFilter(cfg))

	srv := httpserver.New(":"+cfg.AppPort, httpserver.Deps{
		Products:     product.NewService(catalog),
		Orders:       orderSvc,
		Settings:     settingsSvc,
		Printer:      link,
		Stats:        stats,
		JWTSecret:    cfg.JWTSecret,
		AdminPinHash: cfg.AdminPinHash,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", zap.String("port", cfg.AppPort), zap.String("store", profile.StoreName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	link.Disconnect()
}

// buildPrinterClient falls back to a stub when no bluetooth adapter is
// available, so the till keeps serving sales with printing offline.
func buildPrinterClient(log *zap.Logger) printer.Client {
	client, err := printer.NewBLEClient()
	if err != nil {
		log.Warn("bluetooth adapter unavailable; printing disabled", zap.Error(err))
		return offlineClient{err: err}
	}
	return client
}

func printerFilter(cfg *config.Config) printer.Filter {
	filter := printer.DefaultFilter()
	if cfg.PrinterPrefixes == "" {
		return filter
	}

	prefixes := make([]string, 0)
	for _, p := range strings.Split(cfg.PrinterPrefixes, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	if len(prefixes) > 0 {
		filter.NamePrefixes = prefixes
	}
	return filter
}

// offlineClient surfaces the adapter error on every attempt instead of
// crashing the terminal at startup.
type offlineClient struct{ err error }

func (c offlineClient) Scan(printer.Filter) (printer.Device, error) { return nil, c.err }

func (c offlineClient) ConnectSession(printer.Device) (printer.Session, error) {
	return nil, c.err
}
