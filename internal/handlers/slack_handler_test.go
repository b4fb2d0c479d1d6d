package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kubikrubik/kubreminder/internal/domain"
	"github.com/kubikrubik/kubreminder/internal/domain/entity"
	"github.com/kubikrubik/kubreminder/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestSlackHandler_HandleSlashCommand_AddLesson(t *testing.T) {
	type args struct {
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should add a lesson and echo the full listing",
			args: args{
				text:      "add 2025-10-21 17:00 Python class prep",
				channelID: "C_ALLOWED",
				userID:    "U_ADMIN",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				added := entity.Lesson{
					Date:        "2025-10-21",
					Time:        "17:00",
					Description: "Python class prep",
					OccursAt:    time.Date(2025, 10, 21, 17, 0, 0, 0, time.UTC),
				}
				m.LessonServiceMock.EXPECT().
					AddLesson("2025-10-21", "17:00", "Python class prep").
					Return(added, []entity.Lesson{added}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "✅ Lesson added")
				assert.Contains(t, response.Text, "📅 Date: 2025-10-21")
				assert.Contains(t, response.Text, "🕒 Time: 17:00")
				assert.Contains(t, response.Text, "📝 Description: Python class prep")
				assert.Contains(t, response.Text, "1. 2025-10-21 17:00 — Python class prep")
			},
		},
		{
			name: "Should reject a non-admin caller",
			args: args{
				text:      "add 2025-10-21 17:00 Python class prep",
				channelID: "C_ALLOWED",
				userID:    "U_STRANGER",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ You don't have permission")
			},
		},
		{
			name: "Should reject an unauthorized channel",
			args: args{
				text:      "add 2025-10-21 17:00 Python class prep",
				channelID: "C_ELSEWHERE",
				userID:    "U_ADMIN",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌ This channel is not authorized")
			},
		},
		{
			name: "Should accept the primary channel even with an allow-list configured",
			args: args{
				text:      "add 2025-10-21 17:00 Prep",
				channelID: "C_PRIMARY",
				userID:    "U_ADMIN",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				added := entity.Lesson{Date: "2025-10-21", Time: "17:00", Description: "Prep"}
				m.LessonServiceMock.EXPECT().
					AddLesson("2025-10-21", "17:00", "Prep").
					Return(added, []entity.Lesson{added}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "✅ Lesson added")
			},
		},
		{
			name: "Should show usage when arguments are missing",
			args: args{
				text:      "add 2025-10-21",
				channelID: "C_ALLOWED",
				userID:    "U_ADMIN",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Use: `/lessons add YYYY-MM-DD HH:MM description`")
			},
		},
		{
			name: "Should show usage when the date does not parse",
			args: args{
				text:      "add 21.10.2025 17:00 Prep",
				channelID: "C_ALLOWED",
				userID:    "U_ADMIN",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.LessonServiceMock.EXPECT().
					AddLesson("21.10.2025", "17:00", "Prep").
					Return(entity.Lesson{}, nil, domain.ErrInvalidDateTime).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Invalid command format")
			},
		},
		{
			name: "Should report a storage failure",
			args: args{
				text:      "add 2025-10-21 17:00 Prep",
				channelID: "C_ALLOWED",
				userID:    "U_ADMIN",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.LessonServiceMock.EXPECT().
					AddLesson("2025-10-21", "17:00", "Prep").
					Return(entity.Lesson{}, nil, domain.ErrSaveFailed).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌ Error saving the lesson.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m, tt.args)

			req := test.CreateSlackRequest(t, "/lessons", tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_ListLessons(t *testing.T) {
	tests := []struct {
		name          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should list upcoming lessons",
			buildMocks: func(m test.ServiceMocks) {
				upcoming := []entity.Lesson{
					{Date: "2025-10-21", Time: "17:00", Description: "Python class prep"},
					{Date: "2025-10-22", Time: "09:30", Description: "Scratch for beginners"},
				}
				m.LessonServiceMock.EXPECT().
					ListUpcoming(gomock.Any()).
					Return(upcoming, 2, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "📚 Upcoming lessons")
				assert.Contains(t, response.Text, "1. 📅 2025-10-21 🕒 17:00")
				assert.Contains(t, response.Text, "📝 Scratch for beginners")
			},
		},
		{
			name: "Should report an empty store distinctly",
			buildMocks: func(m test.ServiceMocks) {
				m.LessonServiceMock.EXPECT().
					ListUpcoming(gomock.Any()).
					Return(nil, 0, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, "📭 No lessons scheduled.", response.Text)
			},
		},
		{
			name: "Should report an exhausted schedule distinctly",
			buildMocks: func(m test.ServiceMocks) {
				m.LessonServiceMock.EXPECT().
					ListUpcoming(gomock.Any()).
					Return(nil, 3, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, "📭 No upcoming lessons.", response.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			// list is unprivileged: any user, any channel
			req := test.CreateSlackRequest(t, "/lessons", "list", "C_ELSEWHERE", "U_STRANGER", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_TodayLessons(t *testing.T) {
	t.Run("Should list today's lessons", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.LessonServiceMock.EXPECT().
			ListToday(gomock.Any()).
			Return([]entity.Lesson{
				{Date: "2025-10-21", Time: "17:00", Description: "Python class prep"},
			}, nil).Times(1)

		req := test.CreateSlackRequest(t, "/lessons", "today", "C_ELSEWHERE", "U_STRANGER", test.SigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		response := decodeResponse(t, resp)
		assert.Contains(t, response.Text, "📌 Today's lessons")
		assert.Contains(t, response.Text, "1. 🕒 17:00 📝 Python class prep")
	})

	t.Run("Should report a free day", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		m.LessonServiceMock.EXPECT().
			ListToday(gomock.Any()).
			Return(nil, nil).Times(1)

		req := test.CreateSlackRequest(t, "/lessons", "today", "C_ELSEWHERE", "U_STRANGER", test.SigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		response := decodeResponse(t, resp)
		assert.Equal(t, "📭 No lessons today.", response.Text)
	})
}

func TestSlackHandler_HandleSlashCommand_DeleteLesson(t *testing.T) {
	type args struct {
		text      string
		channelID string
		userID    string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should delete the lesson at the given position",
			args: args{text: "delete 2", channelID: "C_ALLOWED", userID: "U_ADMIN"},
			buildMocks: func(m test.ServiceMocks) {
				m.LessonServiceMock.EXPECT().
					DeleteLesson(2).
					Return(entity.Lesson{Description: "Scratch for beginners"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Equal(t, "🗑 Lesson deleted: Scratch for beginners", response.Text)
			},
		},
		{
			name:       "Should reject a non-admin caller without calling the service",
			args:       args{text: "delete 2", channelID: "C_ALLOWED", userID: "U_STRANGER"},
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌ You don't have permission")
			},
		},
		{
			name:       "Should show usage for a non-numeric position",
			args:       args{text: "delete two", channelID: "C_ALLOWED", userID: "U_ADMIN"},
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Use: `/lessons delete NUMBER`")
			},
		},
		{
			name:       "Should show usage for a non-positive position",
			args:       args{text: "delete 0", channelID: "C_ALLOWED", userID: "U_ADMIN"},
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Use: `/lessons delete NUMBER`")
			},
		},
		{
			name: "Should report an out-of-range position",
			args: args{text: "delete 99", channelID: "C_ALLOWED", userID: "U_ADMIN"},
			buildMocks: func(m test.ServiceMocks) {
				m.LessonServiceMock.EXPECT().
					DeleteLesson(99).
					Return(entity.Lesson{}, domain.ErrPositionOutOfRange).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌ Invalid lesson number.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/lessons", tt.args.text, tt.args.channelID, tt.args.userID, test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/lessons", "help", "C_ELSEWHERE", "U_STRANGER", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "KubReminder")
	assert.Contains(t, response.Text, "⏰ Local time now:")
	assert.Contains(t, response.Text, "/lessons add YYYY-MM-DD HH:MM description")
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/lessons", "frobnicate", "C_ELSEWHERE", "U_STRANGER", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "unknown command: frobnicate")
}

func TestSlackHandler_HandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/lessons", "list", "C_PRIMARY", "U_ADMIN", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
