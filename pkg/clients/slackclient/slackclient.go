// Package slackclient posts schedule notices to a Slack channel.
package slackclient

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// poster is the slice of the Slack API the client uses.
// This allows mocking in tests while keeping the real implementation simple.
type poster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// Client wraps the Slack Web API client
type Client struct {
	api     poster
	channel string
}

// New creates a Slack client posting to the given channel.
func New(token, channel string) *Client {
	return &Client{
		api:     slack.New(token),
		channel: channel,
	}
}

// PostWeekNotice announces one week's assignment to the configured channel.
func (c *Client) PostWeekNotice(week model.WeekAssignment) error {
	_, _, err := c.api.PostMessage(
		c.channel,
		slack.MsgOptionText(WeekNoticeMessage(week), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to post week notice: %w", err)
	}
	return nil
}

// WeekNoticeMessage builds the notice text for a week assignment.
func WeekNoticeMessage(week model.WeekAssignment) string {
	var sb strings.Builder

	span := fmt.Sprintf("%s to %s", week.Start.Format("2006-01-02"), week.End.Format("2006-01-02"))
	if week.Assigned() {
		sb.WriteString(fmt.Sprintf("📟 *On-call rotation*\n\n*%s* is on call for the week of %s.", week.AssignedTo, span))
	} else {
		sb.WriteString(fmt.Sprintf("⚠️ *On-call rotation*\n\nNobody is assigned for the week of %s. Please pick up the week manually.", span))
	}

	if week.HasHoliday {
		sb.WriteString("\n• This week contains a public holiday.")
	}
	if week.HasPatching {
		sb.WriteString("\n• This week contains a patching window.")
	}

	return sb.String()
}
