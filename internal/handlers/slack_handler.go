package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/slack-reminder-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	reminderService contract.ReminderService
	signingSecret   string
	log             *zap.Logger
}

func New(reminderService contract.ReminderService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		reminderService: reminderService,
		signingSecret:   signingSecret,
		log:             log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Warn("rejected slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("invalid slack signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(errorText(err)))
		return
	}

	h.respond(w, h.handleCommand(r, cmd, &s))
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSet:
		return h.handleSet(r, cmd, slashCmd)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(r, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(slashCmd)
	case slackcmd.CmdDelete:
		return h.handleDelete(r, cmd, slashCmd)
	case slackcmd.CmdClear:
		return h.handleClear(r, slashCmd)
	case slackcmd.CmdSnooze:
		return h.handleSnooze(r, cmd, slashCmd)
	case slackcmd.CmdTimezone:
		return h.handleTimezone(r, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSet(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reminder, err := h.reminderService.SetReminder(r.Context(), slashCmd.UserID, slashCmd.ChannelID, cmd.TimeText, cmd.Message)
	if err != nil {
		return h.serviceError(err, slashCmd)
	}

	tz := h.reminderService.GetTimezone(slashCmd.UserID)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Reminder #%d set for %s (%s): %s",
			reminder.ID, formatTime(reminder, tz), tz, reminder.Message),
	}
}

func (h *SlackHandler) handleSchedule(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reminder, err := h.reminderService.SetSchedule(r.Context(), slashCmd.UserID, slashCmd.ChannelID, cmd.TimeText, cmd.Interval, cmd.Message)
	if err != nil {
		return h.serviceError(err, slashCmd)
	}

	tz := h.reminderService.GetTimezone(slashCmd.UserID)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("🔁 Reminder #%d scheduled every %d minutes starting %s (%s): %s",
			reminder.ID, cmd.Interval, formatTime(reminder, tz), tz, reminder.Message),
	}
}

func (h *SlackHandler) handleList(slashCmd *slack.SlashCommand) *slack.Msg {
	reminders := h.reminderService.ListReminders(slashCmd.UserID)
	if len(reminders) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You have no reminders. Use `/remind set HH:MM message` to add one.",
		}
	}

	tz := h.reminderService.GetTimezone(slashCmd.UserID)

	var list strings.Builder
	list.WriteString(fmt.Sprintf("*Your reminders (%s):*\n", tz))
	for _, reminder := range reminders {
		list.WriteString(fmt.Sprintf("#%d %s - %s", reminder.ID, formatTime(reminder, tz), reminder.Message))
		if reminder.IsRepeating() {
			list.WriteString(fmt.Sprintf(" (every %d min)", *reminder.RepeatInterval))
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleDelete(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.reminderService.DeleteReminder(r.Context(), slashCmd.UserID, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.createErrorResponse(fmt.Sprintf("Reminder #%d not found", cmd.ID))
		}
		return h.serviceError(err, slashCmd)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗑️ Reminder #%d deleted", cmd.ID),
	}
}

func (h *SlackHandler) handleClear(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	removed, err := h.reminderService.ClearReminders(r.Context(), slashCmd.UserID)
	if err != nil {
		return h.serviceError(err, slashCmd)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗑️ %d reminder(s) deleted", removed),
	}
}

func (h *SlackHandler) handleSnooze(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	reminder, err := h.reminderService.SnoozeReminder(r.Context(), slashCmd.UserID, cmd.ID, cmd.Minutes)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.createErrorResponse(fmt.Sprintf("Reminder #%d not found", cmd.ID))
		}
		return h.serviceError(err, slashCmd)
	}

	tz := h.reminderService.GetTimezone(slashCmd.UserID)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("😴 Reminder #%d snoozed until %s (%s)", reminder.ID, formatTime(reminder, tz), tz),
	}
}

func (h *SlackHandler) handleTimezone(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Timezone == "" {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🌍 Your timezone is %s", h.reminderService.GetTimezone(slashCmd.UserID)),
		}
	}

	tz, err := h.reminderService.SetTimezone(r.Context(), slashCmd.UserID, cmd.Timezone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimezone) {
			return h.createErrorResponse(fmt.Sprintf("Unknown timezone `%s`. Use a name like `Europe/Berlin` or `America/Sao_Paulo`", cmd.Timezone))
		}
		return h.serviceError(err, slashCmd)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🌍 Timezone set to %s", tz),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError turns validation errors into a user message and hides the rest
func (h *SlackHandler) serviceError(err error, slashCmd *slack.SlashCommand) *slack.Msg {
	if errors.Is(err, domain.ErrParse) || errors.Is(err, domain.ErrInvalidInterval) {
		return h.createErrorResponse(errorText(err))
	}

	h.log.Error("command failed",
		zap.String("user", slashCmd.UserID),
		zap.String("text", slashCmd.Text),
		zap.Error(err))
	return h.createErrorResponse("Something went wrong, please try again")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write response", zap.Error(err))
	}
}

func errorText(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrParse.Error()+": ")
}

// formatTime shows the fire time in the user's zone
func formatTime(reminder *entity.Reminder, tz string) string {
	loc, err := service.LoadTimezone(tz)
	if err != nil {
		loc = time.UTC
	}
	return reminder.FireTime.In(loc).Format(domain.TimeLayout)
}
