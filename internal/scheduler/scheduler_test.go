package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"riskmonitor/internal/monitor"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"
	mockstorage "riskmonitor/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func atHour(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
	}
}

func website(url string) domain.Website {
	return domain.Website{
		ID:     domain.WebsiteID(uuid.New()),
		UserID: domain.UserID(uuid.New()),
		URL:    url,
		Status: domain.WebsiteStatusActive,
	}
}

func TestTick_SkipsUnalignedHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	// no storage expectations: an unaligned tick must not touch it

	s := New(st, Options{IntervalHours: 6, BatchSize: 500})
	for _, hour := range []int{1, 2, 5, 7, 11, 23} {
		s.now = atHour(hour)
		s.Tick(context.Background())
	}
}

func TestTick_RunsOnAlignedHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().ActiveWebsites(gomock.Any(), uint(500)).Return(nil, nil).Times(4)

	s := New(st, Options{IntervalHours: 6, BatchSize: 500})
	for _, hour := range []int{0, 6, 12, 18} {
		s.now = atHour(hour)
		s.Tick(context.Background())
	}
}

func TestTick_IntervalOfOneRunsEveryHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().ActiveWebsites(gomock.Any(), uint(500)).Return(nil, nil).Times(24)

	s := New(st, Options{IntervalHours: 1, BatchSize: 500})
	for hour := range 24 {
		s.now = atHour(hour)
		s.Tick(context.Background())
	}
}

func TestTick_EnqueuesOneJobPerWebsite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	websites := []domain.Website{website("https://a.test/"), website("https://b.test/")}

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().ActiveWebsites(gomock.Any(), uint(500)).Return(websites, nil)

	var seen []uuid.UUID
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			scanArgs, ok := args.(monitor.ScanJobArgs)
			require.True(t, ok)
			seen = append(seen, scanArgs.WebsiteID)

			return true, nil
		}).Times(2)

	s := New(st, Options{IntervalHours: 24, BatchSize: 500})
	s.now = atHour(0)
	s.Tick(context.Background())

	require.Equal(t, []uuid.UUID{uuid.UUID(websites[0].ID), uuid.UUID(websites[1].ID)}, seen)
}

func TestTick_EnqueueFailureDoesNotBlockOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	websites := []domain.Website{website("https://a.test/"), website("https://b.test/")}

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().ActiveWebsites(gomock.Any(), uint(500)).Return(websites, nil)

	first := st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(false, errors.New("queue unavailable"))
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(true, nil).After(first)

	s := New(st, Options{IntervalHours: 24, BatchSize: 500})
	s.now = atHour(0)
	s.Tick(context.Background())
}

func TestTick_BatchLoadFailureIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().ActiveWebsites(gomock.Any(), uint(500)).Return(nil, errors.New("db down"))

	s := New(st, Options{IntervalHours: 24, BatchSize: 500})
	s.now = atHour(0)
	// must not panic or propagate
	s.Tick(context.Background())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().ActiveWebsites(gomock.Any(), uint(500)).Return(nil, nil).MinTimes(1)

	s := New(st, Options{IntervalHours: 1, BatchSize: 500, TickInterval: 5 * time.Millisecond})
	s.now = atHour(0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
