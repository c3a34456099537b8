package notifications

import (
	"fmt"
	"regexp"
	"strings"
)

const linkFormat = "<%s|%s>"

var lineBreaks = regexp.MustCompile(`[\r\n]+`)
var repeatedWhitespace = regexp.MustCompile(`\s\s+`)

func (b *Builder) fields() []Field {
	candidates := []*Field{
		b.repo(),
		b.ref(),
		b.workflow(),
		b.eventName(),
		b.commit(),
		b.diff(),
	}

	fields := []Field{}
	for _, f := range candidates {
		if f != nil {
			fields = append(fields, *f)
		}
	}
	return fields
}

func (b *Builder) repo() *Field {
	if !b.opts.IncludesField("repo") {
		return nil
	}

	return &Field{
		Title: "Repo",
		Value: fmt.Sprintf(linkFormat, b.ctx.RepositoryURL(), b.ctx.RepositoryFullName()),
		Short: true,
	}
}

func (b *Builder) commit() *Field {
	if !b.opts.IncludesField("commit") {
		return nil
	}

	commit, _ := b.ctx.HeadCommit()

	return &Field{
		Title: "Commit",
		Value: fmt.Sprintf("<%s|%s... %s>", commit.URL, b.ctx.ShortSHA(), collapseWhitespace(commit.Message)),
		Short: true,
	}
}

// diff shares the commit selector
func (b *Builder) diff() *Field {
	if !b.opts.IncludesField("commit") {
		return nil
	}

	url := b.ctx.CompareURL()
	if url == "" {
		return nil
	}
	commits := url[strings.LastIndex(url, "/")+1:]

	return &Field{
		Title: "Diff",
		Value: fmt.Sprintf(linkFormat, url, commits),
		Short: true,
	}
}

func (b *Builder) eventName() *Field {
	if !b.opts.IncludesField("eventName") {
		return nil
	}

	return &Field{
		Title: "Event",
		Value: b.ctx.EventName(),
		Short: true,
	}
}

func (b *Builder) ref() *Field {
	if !b.opts.IncludesField("ref") {
		return nil
	}

	return &Field{
		Title: "Ref",
		Value: b.ctx.Ref(),
		Short: true,
	}
}

// workflow is selected by "action", existing configurations depend on that name
func (b *Builder) workflow() *Field {
	if !b.opts.IncludesField("action") {
		return nil
	}

	commit, _ := b.ctx.HeadCommit()

	return &Field{
		Title: "Workflow",
		Value: fmt.Sprintf("<%s/checks|%s>", commit.URL, b.ctx.Workflow()),
		Short: true,
	}
}

func collapseWhitespace(message string) string {
	message = lineBreaks.ReplaceAllString(message, " ")
	message = repeatedWhitespace.ReplaceAllString(message, " ")
	return strings.TrimSpace(message)
}
