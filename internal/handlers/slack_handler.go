package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kubikrubik/kubreminder/internal/config"
	"github.com/kubikrubik/kubreminder/internal/domain"
	"github.com/kubikrubik/kubreminder/internal/domain/contract"
	slackcmd "github.com/kubikrubik/kubreminder/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	lessonService contract.LessonService
	cfg           *config.Config
}

func New(lessonService contract.LessonService, cfg *config.Config) *SlackHandler {
	return &SlackHandler{
		lessonService: lessonService,
		cfg:           cfg,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.cfg.SlackSigningSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddLesson(cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleListLessons()
	case slackcmd.CmdToday:
		return h.handleTodayLessons()
	case slackcmd.CmdDelete:
		return h.handleDeleteLesson(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// checkAccess is the shared preamble for privileged commands: the caller
// must be an admin, and the originating channel must pass the allow-list.
func (h *SlackHandler) checkAccess(slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.cfg.IsAdmin(slashCmd.UserID) {
		return h.createErrorResponse("You don't have permission to manage lessons.")
	}
	if !h.cfg.IsAllowedChannel(slashCmd.ChannelID) {
		return h.createErrorResponse("This channel is not authorized to use the bot.")
	}
	return nil
}

func (h *SlackHandler) handleAddLesson(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if denied := h.checkAccess(slashCmd); denied != nil {
		return denied
	}

	if len(cmd.Args) < 3 {
		return h.createErrorResponse(slackcmd.AddUsageText())
	}

	dateStr := cmd.Args[0]
	timeStr := cmd.Args[1]
	description := strings.Join(cmd.Args[2:], " ")

	lesson, lessons, err := h.lessonService.AddLesson(dateStr, timeStr, description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDateTime), errors.Is(err, domain.ErrInvalidArguments):
			return h.createErrorResponse(slackcmd.AddUsageText())
		case errors.Is(err, domain.ErrSaveFailed):
			return h.createErrorResponse("Error saving the lesson.")
		default:
			return h.createErrorResponse(fmt.Sprintf("Error adding lesson: %v", err))
		}
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("✅ Lesson added:\n📅 Date: %s\n🕒 Time: %s\n📝 Description: %s\n\n", lesson.Date, lesson.Time, lesson.Description))
	msg.WriteString("📌 All current lessons:\n")
	for i, l := range lessons {
		msg.WriteString(fmt.Sprintf("%d. %s %s — %s\n", i+1, l.Date, l.Time, l.Description))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         msg.String(),
	}
}

func (h *SlackHandler) handleListLessons() *slack.Msg {
	now := time.Now().In(h.cfg.Location)

	upcoming, total, err := h.lessonService.ListUpcoming(now)
	if err != nil {
		return h.createErrorResponse("Error listing lessons")
	}

	if total == 0 {
		return h.createEphemeral("📭 No lessons scheduled.")
	}
	if len(upcoming) == 0 {
		return h.createEphemeral("📭 No upcoming lessons.")
	}

	var msg strings.Builder
	msg.WriteString("📚 Upcoming lessons:\n\n")
	for i, l := range upcoming {
		msg.WriteString(fmt.Sprintf("%d. 📅 %s 🕒 %s\n   📝 %s\n\n", i+1, l.Date, l.Time, l.Description))
	}

	return h.createEphemeral(msg.String())
}

func (h *SlackHandler) handleTodayLessons() *slack.Msg {
	now := time.Now().In(h.cfg.Location)

	today, err := h.lessonService.ListToday(now)
	if err != nil {
		return h.createErrorResponse("Error listing today's lessons")
	}

	if len(today) == 0 {
		return h.createEphemeral("📭 No lessons today.")
	}

	var msg strings.Builder
	msg.WriteString("📌 Today's lessons:\n\n")
	for i, l := range today {
		msg.WriteString(fmt.Sprintf("%d. 🕒 %s 📝 %s\n", i+1, l.Time, l.Description))
	}

	return h.createEphemeral(msg.String())
}

func (h *SlackHandler) handleDeleteLesson(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if denied := h.checkAccess(slashCmd); denied != nil {
		return denied
	}

	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Use: `/lessons delete NUMBER`")
	}

	position, err := strconv.Atoi(cmd.Args[0])
	if err != nil || position <= 0 {
		return h.createErrorResponse("Use: `/lessons delete NUMBER`")
	}

	removed, err := h.lessonService.DeleteLesson(position)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPositionOutOfRange):
			return h.createErrorResponse("Invalid lesson number.")
		case errors.Is(err, domain.ErrSaveFailed):
			return h.createErrorResponse("Error saving the lesson list.")
		default:
			return h.createErrorResponse(fmt.Sprintf("Error deleting lesson: %v", err))
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🗑 Lesson deleted: %s", removed.Description),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	now := time.Now().In(h.cfg.Location)
	return h.createEphemeral(slackcmd.HelpText(now))
}

func (h *SlackHandler) createEphemeral(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         message,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
