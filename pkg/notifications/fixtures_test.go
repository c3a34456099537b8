package notifications

import (
	"testing"

	"github.com/gimlet-io/slack-notify-action/pkg/actioncontext"
)

const pushEvent = `{
  "compare": "https://github.com/org/repo/compare/1a2b3c4d5e6f...7a8b9c0d1e2f",
  "repository": {
    "url": "https://github.com/org/repo",
    "full_name": "org/repo"
  },
  "head_commit": {
    "url": "https://github.com/org/repo/commit/7a8b9c0d1e2f",
    "message": "Initial commit"
  }
}`

const dispatchEvent = `{
  "repository": {
    "url": "https://github.com/org/repo",
    "full_name": "org/repo"
  }
}`

var runner = actioncontext.Runner{
	EventName: "push",
	SHA:       "7a8b9c0d1e2f3a4b5c6d",
	Ref:       "refs/heads/main",
	Workflow:  "CI",
	Actor:     "octocat",
}

func eventContext(t *testing.T, payload string) *actioncontext.EventContext {
	ctx, err := actioncontext.Parse([]byte(payload), runner)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}
