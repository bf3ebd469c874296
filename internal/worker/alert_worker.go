// Package worker runs the periodic expiration and stock check over the
// current inventory snapshot and raises a single notification per run when
// anything needs attention.
package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shelfsmart/internal/domain"
	"shelfsmart/internal/expiry"
	"shelfsmart/internal/notify"

	"go.uber.org/zap"
)

// SnapshotProvider supplies the current product snapshot. The worker never
// mutates products; any store exposing a read of "all products now" fits.
type SnapshotProvider interface {
	List(ctx context.Context) ([]domain.Product, error)
}

// Config tunes the periodic check.
type Config struct {
	Interval          time.Duration // default 12h
	NotifyWindowDays  int           // items expiring within this window are reported
	LowStockThreshold int
}

// AlertWorker periodically classifies the inventory and notifies about items
// expiring soon or groups running low on stock.
type AlertWorker struct {
	products SnapshotProvider
	notifier notify.Notifier
	cfg      Config
	logger   *zap.Logger
	stopChan chan struct{}
}

// New creates an AlertWorker.
func New(products SnapshotProvider, notifier notify.Notifier, cfg Config, logger *zap.Logger) *AlertWorker {
	if cfg.Interval <= 0 {
		cfg.Interval = 12 * time.Hour
	}
	if cfg.NotifyWindowDays <= 0 {
		cfg.NotifyWindowDays = 3
	}
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 2
	}
	return &AlertWorker{
		products: products,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the periodic check in its own goroutine.
func (w *AlertWorker) Start() {
	w.logger.Info("Starting alert worker", zap.Duration("interval", w.cfg.Interval))
	go w.run()
}

// Stop terminates the periodic check.
func (w *AlertWorker) Stop() {
	w.logger.Info("Stopping alert worker")
	close(w.stopChan)
}

func (w *AlertWorker) run() {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.RunOnce(context.Background()); err != nil {
				w.logger.Error("Alert check failed", zap.Error(err))
			}
		case <-w.stopChan:
			return
		}
	}
}

// RunOnce performs a single check: snapshot, classify, and notify when any
// bucket is non-empty. One notification summarizes everything.
func (w *AlertWorker) RunOnce(ctx context.Context) error {
	products, err := w.products.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory snapshot: %w", err)
	}

	now := time.Now()

	var expiring []domain.Product
	for _, p := range products {
		if expiry.IsExpiringSoon(p.ExpirationDate, w.cfg.NotifyWindowDays, now) {
			expiring = append(expiring, p)
		}
	}
	lowStock := expiry.LowStock(products, w.cfg.LowStockThreshold)

	if len(expiring) == 0 && len(lowStock) == 0 {
		w.logger.Debug("Alert check found nothing to report")
		return nil
	}

	message := buildMessage(expiring, len(lowStock))
	if err := w.notifier.Notify(ctx, "ShelfSmart Alert", message); err != nil {
		return fmt.Errorf("failed to send alert notification: %w", err)
	}

	w.logger.Info("Alert notification sent",
		zap.Int("expiring", len(expiring)),
		zap.Int("low_stock_groups", len(lowStock)),
	)
	return nil
}

func buildMessage(expiring []domain.Product, lowStockCount int) string {
	var sb strings.Builder
	if len(expiring) > 0 {
		names := make([]string, len(expiring))
		for i, p := range expiring {
			names[i] = p.Name
		}
		sb.WriteString(fmt.Sprintf("Expiring: %s. ", strings.Join(names, ", ")))
	}
	if lowStockCount > 0 {
		sb.WriteString(fmt.Sprintf("%d product(s) low on stock.", lowStockCount))
	}
	return strings.TrimSpace(sb.String())
}
