package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockStore    *mocks.MockReminderStore
	mockNotifier *mocks.MockNotifier
	mockResolver *mocks.MockTimeResolver
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStore:    mocks.NewMockReminderStore(ctrl),
		mockNotifier: mocks.NewMockNotifier(ctrl),
		mockResolver: mocks.NewMockTimeResolver(ctrl),
	}

	return
}

func newTestRegistry(m allMocks) *registry {
	return newRegistry(m.mockStore, zap.NewNop())
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
