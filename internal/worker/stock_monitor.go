package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// CatalogFacade exposes the subset of application functionality required by the worker.
type CatalogFacade interface {
	LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error)
}

// StockMonitor periodically sweeps the catalog for products at or below the
// reorder threshold and logs them for the back office.
type StockMonitor struct {
	facade       CatalogFacade
	pollInterval time.Duration
	threshold    int
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStockMonitor constructs the low-stock sweep worker.
func NewStockMonitor(facade CatalogFacade, pollInterval time.Duration, threshold int, logger *slog.Logger) *StockMonitor {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	if threshold < 0 {
		threshold = 0
	}
	return &StockMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		threshold:    threshold,
		logger:       logger,
	}
}

// Start launches background sweeping.
func (m *StockMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.wg.Add(1)
	go m.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (m *StockMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *StockMonitor) run(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *StockMonitor) sweep(ctx context.Context) {
	products, err := m.facade.LowStockProducts(ctx, m.threshold)
	if err != nil {
		m.logger.Error("low stock sweep failed", slog.String("error", err.Error()))
		return
	}
	for _, p := range products {
		m.logger.Warn("product low on stock",
			slog.String("product", p.ID),
			slog.String("sku", p.SKU),
			slog.Int("stock", p.Stock),
		)
	}
}
