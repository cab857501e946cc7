package match

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/eplradar/internal/events"
)

// StatusScheduler moves matches through upcoming -> live -> finished based on
// kickoff time and the configured match duration.
type StatusScheduler struct {
	cron          *cron.Cron
	repo          MatchRepository
	notify        notifier
	matchDuration time.Duration
	now           func() time.Time
}

func NewStatusScheduler(repo MatchRepository, hub *LiveHub, publisher events.Publisher, matchDuration time.Duration, mediaURL string) *StatusScheduler {
	return &StatusScheduler{
		cron:          cron.New(cron.WithSeconds()),
		repo:          repo,
		notify:        notifier{hub: hub, publisher: publisher, mediaURL: mediaURL},
		matchDuration: matchDuration,
		now:           time.Now,
	}
}

// Start registers the status job on spec (six-field cron with seconds) and
// starts the cron loop.
func (s *StatusScheduler) Start(spec string) error {
	log.Info().Str("spec", spec).Msg("starting match status scheduler")

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish.
func (s *StatusScheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("match status scheduler stopped")
}

func (s *StatusScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	started, finished, err := s.Tick(ctx)
	if err != nil {
		log.Error().Err(err).Msg("match status job failed")
		return
	}
	if started+finished > 0 {
		log.Info().Int("started", started).Int("finished", finished).Msg("match statuses updated")
	}
}

// Tick performs one pass and reports how many matches changed.
func (s *StatusScheduler) Tick(ctx context.Context) (started, finished int, err error) {
	now := s.now()

	live, err := s.repo.StartDue(ctx, now)
	if err != nil {
		return 0, 0, err
	}
	s.notify.matchesChanged(ctx, live)

	done, err := s.repo.FinishDue(ctx, now.Add(-s.matchDuration))
	if err != nil {
		return len(live), 0, err
	}
	s.notify.matchesChanged(ctx, done)

	return len(live), len(done), nil
}
