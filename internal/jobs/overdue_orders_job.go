package jobs

import (
	"context"
	"log/slog"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueOrdersSchedule runs the report every five minutes.
const DefaultOverdueOrdersSchedule = "0 */5 * * * *"

// OverdueOrdersQueryHandler is the read side the job reports from.
type OverdueOrdersQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.OrderResponse, error)
}

// OverdueOrdersJob periodically logs open orders whose planned end date has
// passed without a finish. It never modifies orders.
type OverdueOrdersJob struct {
	handler  OverdueOrdersQueryHandler
	clock    kernel.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueOrdersJob creates the job. An empty schedule falls back to
// DefaultOverdueOrdersSchedule; schedules use the six-field cron format.
func NewOverdueOrdersJob(
	handler OverdueOrdersQueryHandler,
	clock kernel.Clock,
	schedule string,
	logger *slog.Logger,
) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueOrdersSchedule
	}
	return &OverdueOrdersJob{
		handler:  handler,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

// Start schedules the report.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

// Run performs a single report. It returns the overdue order ids.
func (j *OverdueOrdersJob) Run(ctx context.Context) []int64 {
	overdue, err := j.handler.Handle(ctx, queries.NewGetOverdueOrdersQuery(j.clock.Now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return nil
	}
	if len(overdue) == 0 {
		return nil
	}

	ids := make([]int64, len(overdue))
	for i, o := range overdue {
		ids[i] = o.ID
	}
	j.logger.WarnContext(ctx, "Open orders are past their end date", "count", len(ids), "order_ids", ids)
	return ids
}

// Stop waits for a running report to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
