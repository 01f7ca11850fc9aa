package slack

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
)

type CommandType string

const (
	CmdSet      CommandType = "set"
	CmdSchedule CommandType = "schedule"
	CmdList     CommandType = "list"
	CmdDelete   CommandType = "delete"
	CmdClear    CommandType = "clear"
	CmdSnooze   CommandType = "snooze"
	CmdTimezone CommandType = "timezone"
	CmdHelp     CommandType = "help"
)

const (
	usageSet      = "`/remind set HH:MM message` or `/remind set YYYY-MM-DD HH:MM message`"
	usageSchedule = "`/remind schedule HH:MM interval_minutes message`"
	usageDelete   = "`/remind delete id`"
	usageSnooze   = "`/remind snooze id minutes`"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

type Command struct {
	Type     CommandType
	TimeText string
	Interval int
	Message  string
	ID       int64
	Minutes  int
	Timezone string
	Raw      string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "set", "at":
		cmd.Type = CmdSet
		return parseSet(cmd, args)
	case "schedule", "every":
		cmd.Type = CmdSchedule
		return parseSchedule(cmd, args)
	case "list", "ls":
		cmd.Type = CmdList
	case "delete", "del", "rm":
		cmd.Type = CmdDelete
		if len(args) != 1 {
			return nil, usageError(usageDelete)
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		cmd.ID = id
	case "clear":
		cmd.Type = CmdClear
	case "snooze":
		cmd.Type = CmdSnooze
		if len(args) != 2 {
			return nil, usageError(usageSnooze)
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		minutes, err := parsePositive(args[1], "minutes")
		if err != nil {
			return nil, err
		}
		cmd.ID = id
		cmd.Minutes = minutes
	case "timezone", "tz":
		cmd.Type = CmdTimezone
		if len(args) > 1 {
			return nil, usageError("`/remind timezone Area/City`")
		}
		if len(args) == 1 {
			cmd.Timezone = args[0]
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		// "/remind 15:30 message" is shorthand for set
		if datePattern.MatchString(parts[0]) || clockPattern.MatchString(parts[0]) {
			cmd.Type = CmdSet
			return parseSet(cmd, parts)
		}
		return nil, fmt.Errorf("%w: unknown command: %s", domain.ErrParse, parts[0])
	}

	return cmd, nil
}

func parseSet(cmd *Command, args []string) (*Command, error) {
	timeText, rest := splitTime(args)
	if timeText == "" || len(rest) == 0 {
		return nil, usageError(usageSet)
	}

	cmd.TimeText = timeText
	cmd.Message = strings.Join(rest, " ")
	return cmd, nil
}

func parseSchedule(cmd *Command, args []string) (*Command, error) {
	timeText, rest := splitTime(args)
	if timeText == "" || len(rest) < 2 {
		return nil, usageError(usageSchedule)
	}

	interval, err := parsePositive(rest[0], "interval")
	if err != nil {
		return nil, err
	}

	cmd.TimeText = timeText
	cmd.Interval = interval
	cmd.Message = strings.Join(rest[1:], " ")
	return cmd, nil
}

// splitTime takes "HH:MM" or "YYYY-MM-DD HH:MM" off the front of args
func splitTime(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	if datePattern.MatchString(args[0]) {
		if len(args) < 2 {
			return "", nil
		}
		return args[0] + " " + args[1], args[2:]
	}
	return args[0], args[1:]
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(value, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid reminder id: %s", domain.ErrParse, value)
	}
	return id, nil
}

func parsePositive(value, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number of minutes: %s", domain.ErrParse, field, value)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than zero", domain.ErrInvalidInterval, field)
	}
	return n, nil
}

func usageError(usage string) error {
	return fmt.Errorf("%w: usage: %s", domain.ErrParse, usage)
}

func GetHelpText() string {
	return `*Available Commands:*

*Reminders:*
• ` + "`/remind set HH:MM message`" + ` - Remind you today (or tomorrow if the time has passed)
• ` + "`/remind set YYYY-MM-DD HH:MM message`" + ` - Remind you at a specific date
• ` + "`/remind schedule HH:MM 60 message`" + ` - Repeat every N minutes starting at the given time

*Manage:*
• ` + "`/remind list`" + ` - List your reminders
• ` + "`/remind delete ID`" + ` - Delete one of your reminders
• ` + "`/remind clear`" + ` - Delete all your reminders
• ` + "`/remind snooze ID MINUTES`" + ` - Push a reminder forward

*Timezone:*
• ` + "`/remind timezone Europe/Berlin`" + ` - Set your timezone (default UTC)
• ` + "`/remind timezone`" + ` - Show your timezone`
}
