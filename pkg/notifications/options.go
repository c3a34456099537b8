package notifications

import (
	"strings"
)

const defaultFields = "repo,commit"

// Options are the user supplied notification settings
type Options struct {
	Status     Status
	Mention    string
	IfMention  string
	AuthorName string
	Username   string
	IconEmoji  string
	IconURL    string
	Channel    string
	Fields     string
}

func (o *Options) defaults(actor string) {
	if strings.TrimSpace(o.Fields) == "" {
		o.Fields = defaultFields
	}
	if o.AuthorName == "" {
		o.AuthorName = actor
	}
}

// IncludesField tells if a field selector is set, eg. "repo" or "action"
func (o *Options) IncludesField(field string) bool {
	fields := o.Fields
	if strings.TrimSpace(fields) == "" {
		fields = defaultFields
	}
	for _, f := range splitList(fields) {
		if f == field {
			return true
		}
	}
	return false
}

// mentionTriggered matches the outcome against if_mention.
// if_mention may list several outcomes, eg. "failure,cancelled".
func (o *Options) mentionTriggered(outcome Status) bool {
	for _, trigger := range splitList(strings.ToLower(o.IfMention)) {
		if trigger == Always || trigger == outcome.String() {
			return true
		}
	}
	return false
}

func splitList(list string) []string {
	normalized := strings.ReplaceAll(list, " ", "")
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, ",")
}
