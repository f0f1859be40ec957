package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/library/internal/exporters"
	"github.com/mrlokans/library/internal/tasks"
)

// Trigger values stored on export tasks.
const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a standard five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// NextRunTime returns the next activation of schedule after from.
func NextRunTime(schedule string, from time.Time) (time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

// Enqueuer hands tasks to the background queue.
type Enqueuer interface {
	Enqueue(tasks ...backlite.Task) ([]string, error)
}

type ExportConfig struct {
	Enabled  bool
	Schedule string
	Dir      string
	Format   exporters.Format
}

// ExportScheduler writes periodic catalog snapshots. When an Enqueuer is set
// each run becomes a backlite task, otherwise it runs on the cron goroutine.
type ExportScheduler struct {
	config   ExportConfig
	lister   exporters.BookLister
	recorder tasks.StatusRecorder
	enqueuer Enqueuer

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewExportScheduler creates a scheduler. enqueuer may be nil.
func NewExportScheduler(cfg ExportConfig, lister exporters.BookLister, recorder tasks.StatusRecorder, enqueuer Enqueuer) *ExportScheduler {
	return &ExportScheduler{
		config:   cfg,
		lister:   lister,
		recorder: recorder,
		enqueuer: enqueuer,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler if exports are enabled. The scheduler stops
// when ctx is cancelled.
func (s *ExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Export scheduler: disabled")
		return nil
	}

	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.run(TriggerSchedule); err != nil {
			log.Printf("Export scheduler: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.config.Schedule, time.Now())
	log.Printf("Export scheduler: started with schedule '%s' writing %s files to %s. Next run: %v",
		s.config.Schedule, s.config.Format, s.config.Dir, nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running export to finish.
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	log.Printf("Export scheduler: stopped")
}

// RunNow triggers an export outside the schedule, regardless of Enabled.
func (s *ExportScheduler) RunNow() error {
	return s.run(TriggerManual)
}

func (s *ExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns nil when the scheduler is not running.
func (s *ExportScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *ExportScheduler) run(trigger string) error {
	if s.enqueuer != nil {
		ids, err := s.enqueuer.Enqueue(tasks.ExportCatalogTask{
			Dir:     s.config.Dir,
			Format:  string(s.config.Format),
			Trigger: trigger,
		})
		if err != nil {
			return fmt.Errorf("enqueue export: %w", err)
		}
		log.Printf("Export scheduler: queued export task %v (%s)", ids, trigger)
		return nil
	}

	startTime := time.Now()
	result, err := tasks.RunCatalogExport(s.lister, s.recorder, s.config.Dir, s.config.Format)
	if err != nil {
		return err
	}
	log.Printf("Export scheduler: exported %d books to %s in %v (%s)",
		result.BooksProcessed, result.Path, time.Since(startTime).Round(time.Millisecond), trigger)
	return nil
}
