package slack

import (
	"fmt"
	"strings"
	"time"
)

type CommandType string

const (
	CmdAdd    CommandType = "add"
	CmdList   CommandType = "list"
	CmdToday  CommandType = "today"
	CmdDelete CommandType = "delete"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls", "lessons":
		cmd.Type = CmdList
	case "today":
		cmd.Type = CmdToday
	case "delete", "rm":
		cmd.Type = CmdDelete
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "start", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// HelpText is the static capability summary shown for help/start, stamped
// with the current time in the bot's fixed zone.
func HelpText(now time.Time) string {
	return fmt.Sprintf(`👋 Hi! I'm KubReminder, the lesson assistant for the programming school.
⏰ Local time now: %s

🎯 I'm here so teachers never forget their lessons.

*Available Commands:*
• `+"`/lessons list`"+` - Show the next upcoming lessons
• `+"`/lessons today`"+` - Show today's lessons
• `+"`/lessons add YYYY-MM-DD HH:MM description`"+` - Add a lesson (admin only)
• `+"`/lessons delete NUMBER`"+` - Delete a lesson (admin only)

🔔 I'll remind about lessons 30 minutes ahead, and post the day's schedule every morning!`,
		now.Format("2006-01-02 15:04"))
}

// AddUsageText is the usage message for a malformed add command.
func AddUsageText() string {
	return "Invalid command format.\nUse: `/lessons add YYYY-MM-DD HH:MM description`\n\n📌 Example:\n`/lessons add 2025-10-21 17:00 Python class prep`"
}
