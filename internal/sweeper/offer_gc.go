package sweeper

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/gateway"
	"github.com/feral-file/wt-exchange/internal/logger"
)

// OfferGCSweeperConfig holds configuration for the offer GC sweeper
type OfferGCSweeperConfig struct {
	Interval time.Duration
}

// NewOfferGCSweeper creates a sweeper that expires past-due offers
func NewOfferGCSweeper(cfg OfferGCSweeperConfig, gw gateway.Gateway) Sweeper {
	return newIntervalSweeper("offer-gc-sweeper", cfg.Interval, func(ctx context.Context) error {
		expired, err := gw.ExpireDue(ctx)
		if err != nil {
			return fmt.Errorf("failed to expire offers: %w", err)
		}
		if len(expired) > 0 {
			logger.InfoCtx(ctx, "Expired past-due offers", zap.Int("count", len(expired)))
		}
		return nil
	})
}
