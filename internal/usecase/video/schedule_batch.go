package video

import (
	"context"
	"fmt"
	"time"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

// batchSize caps how many videos a single scheduling pass may claim.
const batchSize = 30

type batchSchedulerSrv struct {
	repo     port.VideoRepository
	settings port.SettingsGetter
	now      port.NowFunc
}

var _ port.BatchScheduler = (*batchSchedulerSrv)(nil)

// NewBatchScheduler constructs a BatchScheduler implementation.
func NewBatchScheduler(repo port.VideoRepository, settings port.SettingsGetter, now port.NowFunc) port.BatchScheduler {
	return &batchSchedulerSrv{repo, settings, now}
}

// ScheduleBatch assigns the next free posting slots to rendered videos that
// have none yet, oldest first. Slots are handed out in strictly chronological
// order starting from the first slot after now, rolling over to the next day
// when a day's slots run out.
func (s *batchSchedulerSrv) ScheduleBatch(ctx context.Context) (int, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed getting settings: %w", err)
	}
	if !settings.Enabled {
		return 0, nil
	}

	slots, err := model.ParsePostingTimes(settings.PostingTimes)
	if err != nil {
		return 0, fmt.Errorf("unusable posting times: %w", err)
	}

	videos, err := s.repo.ListRenderedUnscheduled(ctx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed listing rendered videos: %w", err)
	}
	if len(videos) == 0 {
		return 0, nil
	}

	now := s.now()
	iter := newSlotIterator(slots, now)

	scheduled := 0
	for _, video := range videos {
		if err := video.TransitionTo(model.VideoStatusScheduled); err != nil {
			logger.Warnf(ctx, "skipping video #%s: %v", video.ID, err)
			continue
		}
		// The slot is only consumed once the assignment is persisted, so a
		// failed video does not leave a hole in the posting calendar.
		at := iter.peek()
		video.ScheduledFor = &at
		if err := s.repo.Update(ctx, video); err != nil {
			logger.Errorf(ctx, "failed scheduling video #%s: %v", video.ID, err)
			continue
		}
		iter.advance()
		logger.Infof(ctx, "scheduled video #%s for %s", video.ID, at.Format(time.RFC3339))
		scheduled++
	}

	return scheduled, nil
}

// slotIterator walks posting times strictly after now, in chronological
// order, one calendar day after another. peek may be called repeatedly for
// the same slot; advance moves on to the next one.
type slotIterator struct {
	slots []model.Slot
	day   time.Time
	idx   int
}

func newSlotIterator(slots []model.Slot, now time.Time) *slotIterator {
	it := &slotIterator{slots: slots, day: now}
	// skip today's slots that are already past
	for it.idx < len(slots) && !slots[it.idx].At(now).After(now) {
		it.idx++
	}
	return it
}

func (it *slotIterator) peek() time.Time {
	if it.idx >= len(it.slots) {
		it.day = it.day.AddDate(0, 0, 1)
		it.idx = 0
	}
	return it.slots[it.idx].At(it.day)
}

func (it *slotIterator) advance() {
	it.idx++
}
