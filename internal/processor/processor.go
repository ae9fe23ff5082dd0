package processor

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fuinorg/objects4j-sub000/cmd/config"
	"github.com/fuinorg/objects4j-sub000/internal/model"
	"github.com/fuinorg/objects4j-sub000/internal/storage"
	"go.uber.org/zap"
)

type ChangeProcessor interface {

	// ProcessUpdates compares every update from the channel with the last
	// known opening hours of its key, writes the changes and stores the update.
	//
	// It returns an error if an error occurs while processing updates.
	ProcessUpdates(ctx context.Context, updates <-chan model.WrappedScheduleUpdate) error

	// ShowSummary displays the change statistics per key.
	//
	// Used, when all updates are processed.
	ShowSummary()
}

type ChangeProcessorImpl struct {
	out io.Writer
	cfg *config.Processor
	log *zap.Logger

	// snapshots holds the last known canonical opening hours per key.
	snapshots storage.SnapshotStore

	// stats is mapper from schedule key to its change statistics.
	stats storage.Storage[string, *model.ChangeStats]
}

func NewChangeProcessor(
	out io.Writer,
	cfg *config.Processor,
	log *zap.Logger,
	snapshots storage.SnapshotStore,
	statsStorage storage.Storage[string, *model.ChangeStats],
) *ChangeProcessorImpl {
	return &ChangeProcessorImpl{
		out:       out,
		cfg:       cfg,
		log:       log,
		snapshots: snapshots,
		stats:     statsStorage,
	}
}

func (p *ChangeProcessorImpl) ProcessUpdates(ctx context.Context, updates <-chan model.WrappedScheduleUpdate) error {
	// the reader goroutine must not stay blocked on an early return
	defer func() {
		for range updates {
		}
	}()

	for wrapped := range updates {
		if err := ctx.Err(); err != nil {
			return err
		}

		if wrapped.Err != nil {
			return wrapped.Err
		}

		if err := p.processUpdate(ctx, wrapped.Update); err != nil {
			return err
		}
	}

	return nil
}

func (p *ChangeProcessorImpl) ShowSummary() {
	if p.out == nil || !p.cfg.ShowSummary {
		return
	}

	pairs := p.stats.GetAll()
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })

	for _, pair := range pairs {
		_, _ = fmt.Fprintf(p.out, "%s %s\n", pair.Key, pair.Value)
	}
}

func (p *ChangeProcessorImpl) processUpdate(ctx context.Context, update *model.ScheduleUpdate) error {
	changes, err := p.diffWithSnapshot(ctx, update)
	if err != nil {
		return err
	}

	for _, c := range model.NewScheduleChanges(update.Key, changes) {
		p.writeOutChange(c)
	}

	p.recordStats(update.Key, changes)

	if err = p.snapshots.Save(ctx, p.snapshotKey(update.Key), update.Hours.String()); err != nil {
		return err
	}

	p.log.Debug("schedule processed",
		zap.String("key", update.Key),
		zap.Int("row", update.RowNumber),
		zap.Int("changes", len(changes)),
	)

	return nil
}

// diffWithSnapshot returns the changes from the stored opening hours of
// the key to the update. A key seen for the first time is wholly added.
func (p *ChangeProcessorImpl) diffWithSnapshot(
	ctx context.Context, update *model.ScheduleUpdate,
) ([]model.DayOpeningHoursChange, error) {
	prevText, ok, err := p.snapshots.Load(ctx, p.snapshotKey(update.Key))
	if err != nil {
		return nil, err
	}

	if !ok {
		normalized, err := update.Hours.Normalize()
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", update.Key, err)
		}

		return normalized.AsAddedChanges(), nil
	}

	prev, err := model.ParseWeeklyOpeningHours(prevText)
	if err != nil {
		p.log.Warn("stored snapshot is not valid", zap.String("key", update.Key), zap.Error(err))
		return nil, fmt.Errorf("stored snapshot of %s: %w", update.Key, err)
	}

	changes, err := prev.Diff(update.Hours)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", update.Key, err)
	}

	return changes, nil
}

func (p *ChangeProcessorImpl) recordStats(key string, changes []model.DayOpeningHoursChange) {
	stats, ok := p.stats.Get(key)
	if !ok {
		stats = &model.ChangeStats{}
		p.stats.Set(key, stats)
	}

	stats.Record(changes)
}

func (p *ChangeProcessorImpl) snapshotKey(key string) string {
	return p.cfg.KeyPrefix + key
}

func (p *ChangeProcessorImpl) writeOutChange(change fmt.Stringer) {
	if p.out == nil {
		return
	}

	_, _ = io.WriteString(p.out, change.String()+"\n")
}
