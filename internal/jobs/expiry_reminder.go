package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scan-track/fridge-service/internal/dates"
	"github.com/scan-track/fridge-service/internal/models"
	"github.com/scan-track/fridge-service/internal/repository"
	"github.com/scan-track/fridge-service/pkg/metrics"
)

// Notifier delivers one expiration reminder per refrigerator.
type Notifier interface {
	Notify(ctx context.Context, refrigeratorID uuid.UUID, items []models.InventoryItem) error
}

// LogNotifier writes reminders to the structured log. Stands in until a
// push channel (mail, LINE) is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed Notifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs one reminder line per refrigerator with the item names
func (n *LogNotifier) Notify(ctx context.Context, refrigeratorID uuid.UUID, items []models.InventoryItem) error {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	n.logger.Info("expiration reminder",
		"refrigerator_id", refrigeratorID,
		"expiring_count", len(items),
		"items", names,
	)

	return nil
}

// ExpiryReminder periodically finds active items that expire tomorrow
// and sends one reminder per refrigerator.
type ExpiryReminder struct {
	items    repository.InventoryItemRepository
	notifier Notifier
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.ServiceMetrics

	cancel context.CancelFunc
	done   chan struct{}
}

// NewExpiryReminder creates the reminder job
func NewExpiryReminder(
	items repository.InventoryItemRepository,
	notifier Notifier,
	interval time.Duration,
	logger *slog.Logger,
	serviceMetrics *metrics.ServiceMetrics,
) *ExpiryReminder {
	return &ExpiryReminder{
		items:    items,
		notifier: notifier,
		interval: interval,
		logger:   logger,
		metrics:  serviceMetrics,
		done:     make(chan struct{}),
	}
}

// Start launches the periodic sweep in a background goroutine
func (r *ExpiryReminder) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.logger.Info("starting expiry reminder job", "interval", r.interval)

	go r.run(ctx)
}

// Stop cancels the job and waits for the current sweep to finish
func (r *ExpiryReminder) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()

	select {
	case <-r.done:
		r.logger.Info("expiry reminder job stopped")
	case <-time.After(5 * time.Second):
		r.logger.Warn("expiry reminder job did not stop gracefully")
	}
}

func (r *ExpiryReminder) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("expiry reminder sweep failed", "error", err)
			}
		}
	}
}

// RunOnce sweeps for items expiring tomorrow (local civil date) and
// notifies each affected refrigerator. Returns the number of reminders
// sent.
func (r *ExpiryReminder) RunOnce(ctx context.Context) (int, error) {
	tomorrow := dates.FormatLocal(time.Now().AddDate(0, 0, 1))

	items, err := r.items.ListExpiringOn(ctx, tomorrow)
	if err != nil {
		r.metrics.RecordReminder("error")
		return 0, err
	}

	if len(items) == 0 {
		r.logger.Debug("no items expiring tomorrow", "date", tomorrow)
		return 0, nil
	}

	byFridge := make(map[uuid.UUID][]models.InventoryItem)
	order := make([]uuid.UUID, 0)
	for _, item := range items {
		if _, seen := byFridge[item.RefrigeratorID]; !seen {
			order = append(order, item.RefrigeratorID)
		}
		byFridge[item.RefrigeratorID] = append(byFridge[item.RefrigeratorID], item)
	}

	sent := 0
	for _, fridgeID := range order {
		if err := r.notifier.Notify(ctx, fridgeID, byFridge[fridgeID]); err != nil {
			r.metrics.RecordReminder("error")
			r.logger.Error("reminder notification failed",
				"refrigerator_id", fridgeID,
				"error", err,
			)
			continue
		}
		r.metrics.RecordReminder("success")
		sent++
	}

	r.logger.Info("expiry reminder sweep finished",
		"date", tomorrow,
		"expiring_items", len(items),
		"reminders_sent", sent,
	)

	return sent, nil
}
