package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUser    = "U1"
	testChannel = "C9"
)

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	return response
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	fireTime := time.Date(2024, 7, 11, 13, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		text       string
		buildMocks func(m test.ServiceMocks)
		wantType   string
		wantText   string
	}{
		{
			name: "Should set reminder and show local time",
			text: "set 15:30 Take a break",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					SetReminder(gomock.Any(), testUser, testChannel, "15:30", "Take a break").
					Return(&entity.Reminder{ID: 1, UserID: testUser, ChannelID: testChannel, FireTime: fireTime, Message: "Take a break"}, nil)
				m.ReminderServiceMock.EXPECT().GetTimezone(testUser).Return("Europe/Berlin")
			},
			wantType: slack.ResponseTypeInChannel,
			wantText: "✅ Reminder #1 set for 2024-07-11 15:30 (Europe/Berlin): Take a break",
		},
		{
			name: "Should show parse error",
			text: "set 25:99 nope",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					SetReminder(gomock.Any(), testUser, testChannel, "25:99", "nope").
					Return(nil, fmt.Errorf("%w: invalid time %q", domain.ErrParse, "25:99"))
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: `❌ invalid time "25:99"`,
		},
		{
			name: "Should schedule repeating reminder",
			text: "schedule 09:00 60 Standup",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					SetSchedule(gomock.Any(), testUser, testChannel, "09:00", 60, "Standup").
					Return(&entity.Reminder{ID: 2, FireTime: time.Date(2024, 7, 12, 9, 0, 0, 0, time.UTC), Message: "Standup", RepeatInterval: entity.IntPtr(60)}, nil)
				m.ReminderServiceMock.EXPECT().GetTimezone(testUser).Return("UTC")
			},
			wantType: slack.ResponseTypeInChannel,
			wantText: "🔁 Reminder #2 scheduled every 60 minutes starting 2024-07-12 09:00 (UTC): Standup",
		},
		{
			name: "Should list reminders",
			text: "list",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().ListReminders(testUser).Return([]*entity.Reminder{
					{ID: 1, FireTime: fireTime, Message: "Take a break"},
					{ID: 2, FireTime: fireTime, Message: "Standup", RepeatInterval: entity.IntPtr(60)},
				})
				m.ReminderServiceMock.EXPECT().GetTimezone(testUser).Return("UTC")
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "*Your reminders (UTC):*\n#1 2024-07-11 13:30 - Take a break\n#2 2024-07-11 13:30 - Standup (every 60 min)\n",
		},
		{
			name: "Should tell user when list is empty",
			text: "list",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().ListReminders(testUser).Return(nil)
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "You have no reminders. Use `/remind set HH:MM message` to add one.",
		},
		{
			name: "Should delete reminder",
			text: "delete 3",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().DeleteReminder(gomock.Any(), testUser, int64(3)).Return(nil)
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "🗑️ Reminder #3 deleted",
		},
		{
			name: "Should report not found on delete of another user's reminder",
			text: "delete 3",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().DeleteReminder(gomock.Any(), testUser, int64(3)).Return(domain.ErrNotFound)
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "❌ Reminder #3 not found",
		},
		{
			name: "Should clear reminders",
			text: "clear",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().ClearReminders(gomock.Any(), testUser).Return(2, nil)
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "🗑️ 2 reminder(s) deleted",
		},
		{
			name: "Should snooze reminder",
			text: "snooze 1 15",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().SnoozeReminder(gomock.Any(), testUser, int64(1), 15).
					Return(&entity.Reminder{ID: 1, FireTime: fireTime.Add(15 * time.Minute)}, nil)
				m.ReminderServiceMock.EXPECT().GetTimezone(testUser).Return("UTC")
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "😴 Reminder #1 snoozed until 2024-07-11 13:45 (UTC)",
		},
		{
			name: "Should set timezone",
			text: "timezone Europe/Berlin",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().SetTimezone(gomock.Any(), testUser, "Europe/Berlin").Return("Europe/Berlin", nil)
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "🌍 Timezone set to Europe/Berlin",
		},
		{
			name: "Should reject unknown timezone",
			text: "timezone Mars/Base",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().SetTimezone(gomock.Any(), testUser, "Mars/Base").
					Return("", fmt.Errorf("%w: %w: Mars/Base", domain.ErrParse, domain.ErrInvalidTimezone))
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "❌ Unknown timezone `Mars/Base`. Use a name like `Europe/Berlin` or `America/Sao_Paulo`",
		},
		{
			name: "Should show current timezone",
			text: "timezone",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().GetTimezone(testUser).Return("UTC")
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "🌍 Your timezone is UTC",
		},
		{
			name:     "Should reply to unknown command without calling service",
			text:     "dance",
			wantType: slack.ResponseTypeEphemeral,
			wantText: "❌ unknown command: dance",
		},
		{
			name: "Should hide unexpected errors",
			text: "clear",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().ClearReminders(gomock.Any(), testUser).Return(0, errors.New("boom"))
			},
			wantType: slack.ResponseTypeEphemeral,
			wantText: "❌ Something went wrong, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			req := test.CreateSlackRequest(t, tt.text, testChannel, testUser, test.SigningSecret)
			recorder := test.CreateTestRecorder()

			handler.HandleSlashCommand(recorder, req)

			response := decodeResponse(t, recorder)
			assert.Equal(t, tt.wantType, response.ResponseType)
			assert.Equal(t, tt.wantText, response.Text)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	for _, text := range []string{"", "help"} {
		req := test.CreateSlackRequest(t, text, testChannel, testUser, test.SigningSecret)
		recorder := test.CreateTestRecorder()

		handler.HandleSlashCommand(recorder, req)

		response := decodeResponse(t, recorder)
		assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
		assert.Contains(t, response.Text, "*Available Commands:*")
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "list", testChannel, testUser, "wrong-secret")
	recorder := test.CreateTestRecorder()

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSlackHandler_HandleSlashCommand_MethodNotAllowed(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/slack/commands", nil)
	recorder := test.CreateTestRecorder()

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
