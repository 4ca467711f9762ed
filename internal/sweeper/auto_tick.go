package sweeper

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/gateway"
	"github.com/feral-file/wt-exchange/internal/logger"
)

// AutoTickSweeperConfig holds configuration for the auto-tick sweeper
type AutoTickSweeperConfig struct {
	CheckInterval time.Duration // How often to check whether a tick is due
}

// NewAutoTickSweeper creates a sweeper that runs an income tick whenever a
// full tick interval has elapsed since the last one
func NewAutoTickSweeper(cfg AutoTickSweeperConfig, gw gateway.Gateway) Sweeper {
	return newIntervalSweeper("auto-tick-sweeper", cfg.CheckInterval, func(ctx context.Context) error {
		summary, ran, err := gw.TickIfDue(ctx)
		if err != nil {
			return fmt.Errorf("failed to run tick: %w", err)
		}
		if ran {
			logger.InfoCtx(ctx, "Auto tick ran",
				zap.Time("ticked_at", summary.TickedAt),
				zap.Int("owners", len(summary.Income)),
				zap.Int64("total_income", summary.TotalIncome()),
			)
		}
		return nil
	})
}
