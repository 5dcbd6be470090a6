package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const purgeTimeout = time.Minute

type purger interface {
	DeleteAllGlobal(ctx context.Context) error
}

// PurgeScheduler runs the global word purge on a cron schedule in UTC.
type PurgeScheduler struct {
	cron   *cron.Cron
	words  purger
	logger *zap.SugaredLogger
}

func NewPurgeScheduler(spec string, words purger, logger *zap.SugaredLogger) (*PurgeScheduler, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := &PurgeScheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		words:  words,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(spec, s.purge); err != nil {
		return nil, fmt.Errorf("schedule purge %q: %w", spec, err)
	}

	return s, nil
}

func (s *PurgeScheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running purge to finish.
func (s *PurgeScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Next reports when the purge runs next; zero before Start.
func (s *PurgeScheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *PurgeScheduler) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	start := time.Now()
	if err := s.words.DeleteAllGlobal(ctx); err != nil {
		s.logger.Errorw("scheduled purge failed", "error", err)
		return
	}

	s.logger.Infow("scheduled purge finished", "duration_ms", time.Since(start).Milliseconds())
}
