package actioncontext

import (
	"encoding/json"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
)

const shortSHALength = 8

// Runner holds the workflow run metadata the CI runner exposes next to the event payload
type Runner struct {
	EventName string
	SHA       string
	Ref       string
	Workflow  string
	Actor     string
	EventPath string
}

type Repository struct {
	URL      string `json:"url"`
	FullName string `json:"full_name"`
}

type Commit struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Payload is the event payload reduced to what notifications need.
// Kind is resolved once when the payload is parsed.
type Payload struct {
	Kind       PayloadKind
	Repository Repository
	Compare    string
	commits    []Commit
}

type rawPayload struct {
	Repository *Repository `json:"repository"`
	Compare    string      `json:"compare"`
	HeadCommit *Commit     `json:"head_commit"`
	Commits    []Commit    `json:"commits"`
}

// EventContext is a read-only snapshot of the event that triggered the workflow run
type EventContext struct {
	eventName string
	sha       string
	ref       string
	workflow  string
	actor     string
	payload   Payload
}

// Load reads the event payload from the path the runner exposes.
// Without an event path the context carries runner metadata only.
func Load(r Runner) (*EventContext, error) {
	if r.EventPath == "" {
		return Parse(nil, r)
	}

	raw, err := ioutil.ReadFile(r.EventPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read event payload %s", r.EventPath)
	}

	return Parse(raw, r)
}

// Parse builds the context from a raw event payload
func Parse(raw []byte, r Runner) (*EventContext, error) {
	ctx := &EventContext{
		eventName: r.EventName,
		sha:       r.SHA,
		ref:       r.Ref,
		workflow:  r.Workflow,
		actor:     r.Actor,
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return ctx, nil
	}

	var p rawPayload
	err := json.Unmarshal(raw, &p)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse event payload")
	}

	ctx.payload = resolvePayload(p)
	return ctx, nil
}

func resolvePayload(p rawPayload) Payload {
	payload := Payload{
		Kind:    Bare,
		Compare: p.Compare,
	}
	if p.Repository != nil {
		payload.Repository = *p.Repository
	}

	switch {
	case p.HeadCommit != nil:
		payload.Kind = HeadCommit
		payload.commits = []Commit{*p.HeadCommit}
	case len(p.Commits) > 0:
		payload.Kind = CommitList
		payload.commits = append([]Commit{}, p.Commits...)
	}

	return payload
}

func (c *EventContext) EventName() string { return c.eventName }

func (c *EventContext) SHA() string { return c.sha }

func (c *EventContext) Ref() string { return c.ref }

func (c *EventContext) Workflow() string { return c.workflow }

func (c *EventContext) Actor() string { return c.actor }

func (c *EventContext) Kind() PayloadKind { return c.payload.Kind }

func (c *EventContext) RepositoryURL() string { return c.payload.Repository.URL }

func (c *EventContext) RepositoryFullName() string { return c.payload.Repository.FullName }

// CompareURL is only set for comparison style events, like push
func (c *EventContext) CompareURL() string { return c.payload.Compare }

// ShortSHA returns the first eight characters of the commit hash
func (c *EventContext) ShortSHA() string {
	if len(c.sha) < shortSHALength {
		return c.sha
	}
	return c.sha[:shortSHALength]
}

// HeadCommit returns the commit the workflow ran on.
// For commit list events that is the first commit in the list.
func (c *EventContext) HeadCommit() (Commit, bool) {
	if len(c.payload.commits) == 0 {
		return Commit{}, false
	}
	return c.payload.commits[0], true
}

// WithHeadCommit returns a copy of the context that carries the given commit.
// The receiver is left untouched.
func (c *EventContext) WithHeadCommit(commit Commit) *EventContext {
	copied := *c
	copied.payload.Kind = HeadCommit
	copied.payload.commits = []Commit{commit}
	return &copied
}

// JSON renders the context for logging
func (c *EventContext) JSON() string {
	commit, _ := c.HeadCommit()
	out, _ := json.MarshalIndent(map[string]interface{}{
		"eventName": c.eventName,
		"sha":       c.sha,
		"ref":       c.ref,
		"workflow":  c.workflow,
		"actor":     c.actor,
		"payload": map[string]interface{}{
			"kind":        c.payload.Kind.String(),
			"repository":  c.payload.Repository,
			"compare":     c.payload.Compare,
			"head_commit": commit,
		},
	}, "", "  ")
	return string(out)
}
