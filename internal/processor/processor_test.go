package processor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fuinorg/objects4j-sub000/cmd/config"
	"github.com/fuinorg/objects4j-sub000/internal/apierror"
	"github.com/fuinorg/objects4j-sub000/internal/model"
	"github.com/fuinorg/objects4j-sub000/internal/storage"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type processorTestSuite struct {
	cfg *config.Processor

	suite.Suite
}

func newProcessorTestSuite() *processorTestSuite {
	cfg, err := config.NewProcessorConfig()
	if err != nil {
		panic(err)
	}

	return &processorTestSuite{
		cfg: cfg,
	}
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, newProcessorTestSuite())
}

func newProcessorWithStore(s *processorTestSuite, snapshots storage.SnapshotStore) *ChangeProcessorImpl {
	return NewChangeProcessor(
		&bytes.Buffer{},
		s.cfg,
		zap.NewNop(),
		snapshots,
		storage.NewInMemoryStorage[string, *model.ChangeStats](),
	)
}

func newDefProcessor(s *processorTestSuite) *ChangeProcessorImpl {
	return newProcessorWithStore(s, storage.NewInMemorySnapshotStore())
}

func (s *processorTestSuite) getOut(p *ChangeProcessorImpl) []string {
	out := strings.TrimSpace(p.out.(*bytes.Buffer).String())
	if out == "" {
		return nil
	}

	return strings.Split(out, "\n")
}

func updatesChan(rows ...string) <-chan model.WrappedScheduleUpdate {
	ch := make(chan model.WrappedScheduleUpdate, len(rows))
	for i, row := range rows {
		key, hoursText, _ := strings.Cut(row, " ")
		ch <- model.WrappedScheduleUpdate{
			Update: model.NewScheduleUpdate(key, model.MustParseWeeklyOpeningHours(hoursText), i+1),
		}
	}

	close(ch)
	return ch
}

func (s *processorTestSuite) TestProcessUpdates() {
	testCases := []struct {
		name string
		rows []string
		exp  []string
	}{
		{
			name: "first update adds everything",
			rows: []string{"shop-1 Mon/Tue 09:00-17:00"},
			exp:  []string{"shop-1 ADDED MON 09:00-17:00", "shop-1 ADDED TUE 09:00-17:00"},
		},
		{
			name: "first update is normalized",
			rows: []string{"bar Sun 20:00-02:00"},
			exp:  []string{"bar ADDED MON 00:00-02:00", "bar ADDED SUN 20:00-24:00"},
		},
		{
			name: "changed hours",
			rows: []string{
				"shop-1 Mon-Fri 09:00-17:00",
				"shop-1 Mon-Thu 09:00-17:00,Fri 09:00-15:00",
			},
			exp: []string{
				"shop-1 ADDED MON 09:00-17:00",
				"shop-1 ADDED TUE 09:00-17:00",
				"shop-1 ADDED WED 09:00-17:00",
				"shop-1 ADDED THU 09:00-17:00",
				"shop-1 ADDED FRI 09:00-17:00",
				"shop-1 REMOVED FRI 15:00-17:00",
			},
		},
		{
			name: "unchanged hours",
			rows: []string{
				"shop-1 Sat 10:00-12:00",
				"shop-1 sat 10:00-12:00",
			},
			exp: []string{"shop-1 ADDED SAT 10:00-12:00"},
		},
		{
			name: "keys are independent",
			rows: []string{
				"shop-1 Sat 10:00-12:00",
				"shop-2 Sat 10:00-12:00",
				"shop-1 Sun 10:00-12:00",
			},
			exp: []string{
				"shop-1 ADDED SAT 10:00-12:00",
				"shop-2 ADDED SAT 10:00-12:00",
				"shop-1 REMOVED SAT 10:00-12:00",
				"shop-1 ADDED SUN 10:00-12:00",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p := newDefProcessor(s)

			err := p.ProcessUpdates(context.Background(), updatesChan(tc.rows...))
			s.Require().NoError(err)
			s.Equal(tc.exp, s.getOut(p))
		})
	}
}

func (s *processorTestSuite) TestProcessUpdates_StoresSnapshot() {
	snapshots := storage.NewInMemorySnapshotStore()
	p := newProcessorWithStore(s, snapshots)

	err := p.ProcessUpdates(context.Background(), updatesChan("shop-1 Mon/Tue/Wed 09:00-17:00"))
	s.Require().NoError(err)

	value, ok, err := snapshots.Load(context.Background(), s.cfg.KeyPrefix+"shop-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("MON-WED 09:00-17:00", value)
}

func (s *processorTestSuite) TestProcessUpdates_ParseError() {
	expErr := &apierror.ParseError{RowNumber: 2, UserMsg: apierror.ErrFailedToParseSchedule}

	ch := make(chan model.WrappedScheduleUpdate, 3)
	ch <- model.WrappedScheduleUpdate{Update: model.NewScheduleUpdate("shop-1", model.MustParseWeeklyOpeningHours("Mon 09:00-10:00"), 1)}
	ch <- model.WrappedScheduleUpdate{Err: expErr}
	ch <- model.WrappedScheduleUpdate{Update: model.NewScheduleUpdate("shop-2", model.MustParseWeeklyOpeningHours("Mon 09:00-10:00"), 3)}
	close(ch)

	p := newDefProcessor(s)
	err := p.ProcessUpdates(context.Background(), ch)
	s.ErrorIs(err, expErr)
	s.Equal([]string{"shop-1 ADDED MON 09:00-10:00"}, s.getOut(p))

	_, open := <-ch
	s.False(open)
}

func (s *processorTestSuite) TestProcessUpdates_InvalidSnapshot() {
	snapshots := storage.NewInMemorySnapshotStore()
	s.Require().NoError(snapshots.Save(context.Background(), s.cfg.KeyPrefix+"shop-1", "not opening hours"))

	p := newProcessorWithStore(s, snapshots)
	err := p.ProcessUpdates(context.Background(), updatesChan("shop-1 Mon 09:00-10:00"))

	var formatErr *apierror.FormatError
	s.True(errors.As(err, &formatErr))
}

func (s *processorTestSuite) TestProcessUpdates_PublicHolidayOverMidnight() {
	p := newDefProcessor(s)
	err := p.ProcessUpdates(context.Background(), updatesChan("bar-1 PH 22:00-02:00"))

	var stateErr *apierror.StateError
	s.True(errors.As(err, &stateErr))
}

func (s *processorTestSuite) TestProcessUpdates_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newDefProcessor(s)
	err := p.ProcessUpdates(ctx, updatesChan("shop-1 Mon 09:00-10:00"))
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.getOut(p))
}

func (s *processorTestSuite) TestShowSummary() {
	p := newDefProcessor(s)

	err := p.ProcessUpdates(context.Background(), updatesChan(
		"shop-2 Sat 10:00-12:00",
		"shop-1 Mon 09:00-12:00",
		"shop-1 Mon 10:00-14:30",
	))
	s.Require().NoError(err)

	p.out.(*bytes.Buffer).Reset()
	p.ShowSummary()

	s.Equal([]string{
		"shop-1 2 3 +05:30 -01:00",
		"shop-2 1 1 +02:00 -00:00",
	}, s.getOut(p))
}

func (s *processorTestSuite) TestShowSummary_Disabled() {
	cfg := *s.cfg
	cfg.ShowSummary = false

	p := NewChangeProcessor(
		&bytes.Buffer{}, &cfg, zap.NewNop(),
		storage.NewInMemorySnapshotStore(),
		storage.NewInMemoryStorage[string, *model.ChangeStats](),
	)

	s.Require().NoError(p.ProcessUpdates(context.Background(), updatesChan("shop-1 Mon 09:00-12:00")))
	p.out.(*bytes.Buffer).Reset()
	p.ShowSummary()
	s.Empty(s.getOut(p))
}

func (s *processorTestSuite) TestProcessUpdates_Redis() {
	mr := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	first := newProcessorWithStore(s, storage.NewRedisSnapshotStore(client))
	s.Require().NoError(first.ProcessUpdates(context.Background(), updatesChan("shop-1 Mon-Fri 09:00-17:00")))

	stored, err := mr.Get(s.cfg.KeyPrefix + "shop-1")
	s.Require().NoError(err)
	s.Equal("MON-FRI 09:00-17:00", stored)

	// a new processor picks up where the first one stopped
	second := newProcessorWithStore(s, storage.NewRedisSnapshotStore(client))
	s.Require().NoError(second.ProcessUpdates(context.Background(), updatesChan("shop-1 Mon-Sat 09:00-17:00")))
	s.Equal([]string{"shop-1 ADDED SAT 09:00-17:00"}, s.getOut(second))
}
