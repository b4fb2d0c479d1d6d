package service

import (
	"testing"
	"time"

	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockStore       *mocks.MockLessonStore
	mockSlackClient *mocks.MockSlackClient
}

func testConfig() *config.Config {
	return &config.Config{
		PrimaryChannelID: "C_PRIMARY",
		AdminUserIDs:     []string{"U_ADMIN"},
		AllowedChannels:  []string{"C_ALLOWED"},
		TimezoneName:     "UTC",
		Location:         time.UTC,
		DigestTime:       "10:00",
		ReminderLead:     30 * time.Minute,
		PollInterval:     60 * time.Second,
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, cfg *config.Config, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStore:       mocks.NewMockLessonStore(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	cfg = testConfig()

	// validate service creation
	instance := NewInstance(m.mockStore, m.mockSlackClient, cfg)
	require.NotNil(t, instance)

	return
}
