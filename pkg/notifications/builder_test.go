package notifications

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Success(t *testing.T) {
	b := NewBuilder(Options{Status: Success, Fields: "repo,commit"}, eventContext(t, `{
  "repository": {"url": "https://github.com/org/repo", "full_name": "org/repo"},
  "head_commit": {"url": "https://github.com/org/repo/commit/7a8b", "message": "Initial commit"}
}`))

	msg := b.Success("")
	assert.Equal(t, "good", msg.Attachments[0].Color)
	assert.True(t, strings.HasPrefix(msg.Text, ":white_check_mark:"))
	assert.Equal(t, []string{"Repo", "Commit"}, titles(msg.Attachments[0].Fields))
	assert.Equal(t, "<https://github.com/org/repo|org/repo>", msg.Attachments[0].Fields[0].Value)
	assert.Contains(t, msg.Attachments[0].Fields[1].Value, "Initial commit")
}

func Test_Outcomes(t *testing.T) {
	b := NewBuilder(Options{}, eventContext(t, pushEvent))

	cases := []struct {
		status      Status
		color       string
		defaultText string
	}{
		{Success, "good", successText},
		{Failure, "danger", failureText},
		{Cancelled, "warning", cancelledText},
	}

	for _, c := range cases {
		msg, err := b.Build(c.status, "")
		assert.Nil(t, err)
		assert.Equal(t, c.color, msg.Attachments[0].Color)
		assert.Equal(t, c.defaultText, msg.Text)

		msg, err = b.Build(c.status, "deployed to production")
		assert.Nil(t, err)
		assert.Equal(t, "deployed to production", msg.Text)
	}

	_, err := b.Build(Custom, "")
	assert.NotNil(t, err)
}

func Test_ResolveText(t *testing.T) {
	for _, defaultText := range []string{successText, failureText, cancelledText} {
		assert.Equal(t, defaultText, resolveText(defaultText, ""))
		assert.Equal(t, "custom text", resolveText(defaultText, "custom text"))
	}
}

func Test_MentionPrefix(t *testing.T) {
	ctx := eventContext(t, pushEvent)

	t.Run("Should mention only on the configured outcome", func(t *testing.T) {
		b := NewBuilder(Options{IfMention: "failure"}, ctx)
		assert.Equal(t, "", b.mentionPrefix("here", Success))
		assert.Equal(t, "", b.mentionPrefix("here", Cancelled))
		assert.Equal(t, "<!here> ", b.mentionPrefix("here", Failure))
	})

	t.Run("Should always mention", func(t *testing.T) {
		b := NewBuilder(Options{IfMention: "always"}, ctx)
		for _, outcome := range []Status{Success, Failure, Cancelled} {
			assert.Equal(t, "<!channel> ", b.mentionPrefix("channel", outcome))
		}
	})

	t.Run("Should not mention without a trigger", func(t *testing.T) {
		b := NewBuilder(Options{}, ctx)
		assert.Equal(t, "", b.mentionPrefix("here", Failure))
	})

	t.Run("Should accept several triggers", func(t *testing.T) {
		b := NewBuilder(Options{IfMention: "failure, cancelled"}, ctx)
		assert.Equal(t, "<!here> ", b.mentionPrefix("here", Cancelled))
		assert.Equal(t, "<!here> ", b.mentionPrefix("here", Failure))
		assert.Equal(t, "", b.mentionPrefix("here", Success))
	})

	t.Run("Should normalize group mentions", func(t *testing.T) {
		b := NewBuilder(Options{IfMention: "always"}, ctx)
		assert.Equal(t, "<!here> ", b.mentionPrefix(" Here ", Success))
		assert.Equal(t, "<!here> ", b.mentionPrefix("HERE", Success))
	})

	t.Run("Should mention users", func(t *testing.T) {
		b := NewBuilder(Options{IfMention: "always"}, ctx)
		assert.Equal(t, "<@abc> <@def> ", b.mentionPrefix("abc,def", Success))
		assert.Equal(t, "<@abc> <@def> ", b.mentionPrefix("abc, def", Success))
		assert.Equal(t, "<@abc> ", b.mentionPrefix("abc", Success))
		assert.Equal(t, "", b.mentionPrefix("", Success))
	})
}

func Test_MentionInText(t *testing.T) {
	b := NewBuilder(Options{Mention: "here", IfMention: "failure"}, eventContext(t, pushEvent))

	assert.Equal(t, "<!here> "+failureText, b.Failure("").Text)
	assert.Equal(t, "<!here> build broke", b.Failure("build broke").Text)
	assert.Equal(t, successText, b.Success("").Text)
}

func Test_Author(t *testing.T) {
	ctx := eventContext(t, pushEvent)

	msg := NewBuilder(Options{}, ctx).Success("")
	assert.Equal(t, "octocat", msg.Attachments[0].AuthorName)
	assert.Equal(t, "http://github.com/octocat", msg.Attachments[0].AuthorLink)
	assert.Equal(t, "http://github.com/octocat.png?size=32", msg.Attachments[0].AuthorIcon)

	msg = NewBuilder(Options{AuthorName: "release-bot"}, ctx).Success("")
	assert.Equal(t, "release-bot", msg.Attachments[0].AuthorName)
	assert.Equal(t, "http://github.com/release-bot", msg.Attachments[0].AuthorLink)
}

func Test_MessageJSON(t *testing.T) {
	b := NewBuilder(Options{
		Username:  "ci",
		IconEmoji: ":rocket:",
		Channel:   "#deploys",
		Fields:    "ref",
	}, eventContext(t, pushEvent))

	out, err := json.Marshal(b.Success(""))
	assert.Nil(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(out, &parsed)
	assert.Nil(t, err)
	assert.Equal(t, "ci", parsed["username"])
	assert.Equal(t, ":rocket:", parsed["icon_emoji"])
	assert.Equal(t, "#deploys", parsed["channel"])
	_, hasIconURL := parsed["icon_url"]
	assert.False(t, hasIconURL)

	attachment := parsed["attachments"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "good", attachment["color"])
	fields := attachment["fields"].([]interface{})
	assert.Equal(t, 1, len(fields))
	assert.Equal(t, map[string]interface{}{"title": "Ref", "value": "refs/heads/main", "short": true}, fields[0])
}
