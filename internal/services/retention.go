package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"netracare-go/internal/config"
	"netracare-go/internal/repository"
)

// RetentionSweeper periodically strips raw sample payloads from old test
// records. Scores are kept forever; the bulky per-sample jsonb is only
// needed for recent reviews.
type RetentionSweeper struct {
	log *zap.Logger
}

func NewRetentionSweeper(log *zap.Logger) *RetentionSweeper {
	return &RetentionSweeper{log: log}
}

// Start runs the sweeper in a goroutine.
func (s *RetentionSweeper) Start() {
	cfg := config.Conf.Retention
	if !cfg.Enabled {
		s.log.Info("Raw data retention sweeper disabled")
		return
	}

	s.log.Info("Starting raw data retention sweeper",
		zap.Int("max_age_days", cfg.RawDataMaxAge),
		zap.Int("interval_minutes", cfg.SweepInterval))

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.SweepInterval) * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runSweep()
		}
	}()
}

func (s *RetentionSweeper) runSweep() {
	cfg := config.Conf.Retention
	cutoff := time.Now().AddDate(0, 0, -cfg.RawDataMaxAge)

	stripped, err := repository.StripRawDataBefore(context.Background(), cutoff)
	if err != nil {
		s.log.Error("Raw data sweep failed", zap.Error(err))
		return
	}
	if stripped > 0 {
		s.log.Info("Stripped raw data from old tests",
			zap.Int64("tests", stripped),
			zap.Time("cutoff", cutoff))
	}
}
