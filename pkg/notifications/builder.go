package notifications

import (
	"fmt"
	"strings"

	"github.com/gimlet-io/slack-notify-action/pkg/actioncontext"
)

const (
	successText   = ":white_check_mark: Succeeded GitHub Actions\n"
	failureText   = ":no_entry: Failed GitHub Actions\n"
	cancelledText = ":warning: Canceled GitHub Actions\n"

	authorLinkFormat = "http://github.com/%s"
	authorIconFormat = "http://github.com/%s.png?size=32"
)

var groupMentions = []string{"here", "channel"}

// Builder composes the status message of a single workflow run
type Builder struct {
	opts Options
	ctx  *actioncontext.EventContext
}

func NewBuilder(opts Options, ctx *actioncontext.EventContext) *Builder {
	opts.defaults(ctx.Actor())
	return &Builder{
		opts: opts,
		ctx:  ctx,
	}
}

// Build dispatches on the outcome. Custom payloads are not built, they are sent as is.
func (b *Builder) Build(status Status, text string) (*Message, error) {
	switch status {
	case Success:
		return b.Success(text), nil
	case Failure:
		return b.Failure(text), nil
	case Cancelled:
		return b.Cancelled(text), nil
	}
	return nil, fmt.Errorf("cannot build a %s message, use the custom payload", status)
}

func (b *Builder) Success(text string) *Message {
	return b.compose(Success, "good", successText, text)
}

func (b *Builder) Failure(text string) *Message {
	return b.compose(Failure, "danger", failureText, text)
}

func (b *Builder) Cancelled(text string) *Message {
	return b.compose(Cancelled, "warning", cancelledText, text)
}

func (b *Builder) compose(outcome Status, color string, defaultText string, text string) *Message {
	msg := b.template()
	msg.Attachments[0].Color = color
	msg.Text += b.mentionPrefix(b.opts.Mention, outcome)
	msg.Text += resolveText(defaultText, text)
	return msg
}

func (b *Builder) template() *Message {
	return &Message{
		Text:      "",
		Username:  b.opts.Username,
		IconEmoji: b.opts.IconEmoji,
		IconURL:   b.opts.IconURL,
		Channel:   b.opts.Channel,
		Attachments: []Attachment{
			{
				AuthorName: b.opts.AuthorName,
				AuthorLink: fmt.Sprintf(authorLinkFormat, b.opts.AuthorName),
				AuthorIcon: fmt.Sprintf(authorIconFormat, b.opts.AuthorName),
				Fields:     b.fields(),
			},
		},
	}
}

func (b *Builder) mentionPrefix(target string, outcome Status) string {
	if !b.opts.mentionTriggered(outcome) {
		return ""
	}

	normalized := strings.Join(strings.Fields(target), "")
	for _, group := range groupMentions {
		if strings.EqualFold(normalized, group) {
			return fmt.Sprintf("<!%s> ", group)
		}
	}

	mentions := []string{}
	for _, userID := range strings.Split(normalized, ",") {
		if userID == "" {
			continue
		}
		mentions = append(mentions, fmt.Sprintf("<@%s>", userID))
	}
	if len(mentions) == 0 {
		return ""
	}

	return strings.Join(mentions, " ") + " "
}

func resolveText(defaultText string, text string) string {
	if text == "" {
		return defaultText
	}
	return text
}
