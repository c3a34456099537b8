package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/enescakir/emoji"
	"github.com/gimlet-io/slack-notify-action/cmd/notify/config"
	"github.com/gimlet-io/slack-notify-action/pkg/actioncontext"
	"github.com/gimlet-io/slack-notify-action/pkg/git/customGithub"
	"github.com/gimlet-io/slack-notify-action/pkg/notifications"
	"github.com/gimlet-io/slack-notify-action/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var inputs = []string{
	"status",
	"mention",
	"author_name",
	"if_mention",
	"text",
	"username",
	"icon_emoji",
	"icon_url",
	"channel",
	"custom_payload",
	"fields",
}

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Debugf("could not load .env file, relying on env vars")
	}

	err = newApp().Run(os.Args)
	if err != nil {
		fmt.Printf("::error::%s\n", escapeWorkflowCommand(err.Error()))
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.CrossMark, err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	flags := []cli.Flag{}
	for _, input := range inputs {
		flags = append(flags, &cli.StringFlag{
			Name:     input,
			Usage:    fmt.Sprintf("INPUT_%s environment variable alternatively", strings.ToUpper(input)),
			EnvVars:  []string{"INPUT_" + strings.ToUpper(input)},
			Required: input == "status",
		})
	}
	flags = append(flags, &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Prints the message instead of sending it",
	})

	return &cli.App{
		Name:    "slack-notify",
		Version: version.String(),
		Usage:   "sends the status of a GitHub Actions workflow run to Slack",
		Flags:   flags,
		Action:  notify,
	}
}

func notify(c *cli.Context) error {
	config, err := config.Environ()
	if err != nil {
		return fmt.Errorf("invalid configuration: %s", err)
	}

	initLogging(config)

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		fmt.Println(config.String())
	}

	dryRun := c.Bool("dry-run")
	err = config.Validate(!dryRun)
	if err != nil {
		return err
	}

	for _, input := range inputs {
		logrus.Infof("%s: %s", input, c.String(input))
	}

	status, err := notifications.ParseStatus(c.String("status"))
	if err != nil {
		return err
	}

	ctx := context.Background()

	if status == notifications.Custom {
		payload, err := notifications.ParseCustomPayload(c.String("custom_payload"))
		if err != nil {
			return err
		}
		return deliver(ctx, config, dryRun, payload)
	}

	opts := notifications.Options{
		Status:     status,
		Mention:    c.String("mention"),
		IfMention:  strings.ToLower(c.String("if_mention")),
		AuthorName: c.String("author_name"),
		Username:   c.String("username"),
		IconEmoji:  c.String("icon_emoji"),
		IconURL:    c.String("icon_url"),
		Channel:    c.String("channel"),
		Fields:     c.String("fields"),
	}

	eventContext, err := actioncontext.Load(config.Runner())
	if err != nil {
		return err
	}
	logrus.Infof("Context:\n%s", eventContext.JSON())

	eventContext = resolveCommit(ctx, config, opts, eventContext)

	msg, err := notifications.NewBuilder(opts, eventContext).Build(status, c.String("text"))
	if err != nil {
		return err
	}

	return deliver(ctx, config, dryRun, msg)
}

// resolveCommit fills in the commit for events that don't carry one.
// Lookup errors leave the context as is, the commit fields render empty then.
func resolveCommit(
	ctx context.Context,
	config *config.Config,
	opts notifications.Options,
	eventContext *actioncontext.EventContext,
) *actioncontext.EventContext {
	if _, ok := eventContext.HeadCommit(); ok {
		return eventContext
	}
	if !opts.IncludesField("commit") && !opts.IncludesField("action") {
		return eventContext
	}
	if eventContext.RepositoryFullName() == "" || eventContext.SHA() == "" {
		return eventContext
	}

	resolver, err := customGithub.NewCommitResolver(config.GithubToken, config.Github.APIURL)
	if err != nil {
		logrus.Warnf("cannot resolve commit: %s", err)
		return eventContext
	}

	commit, err := resolver.Resolve(ctx, eventContext.RepositoryFullName(), eventContext.SHA())
	if err != nil {
		logrus.Warnf("cannot resolve commit: %s", err)
		return eventContext
	}

	return eventContext.WithHeadCommit(commit)
}

func deliver(ctx context.Context, config *config.Config, dryRun bool, payload interface{}) error {
	if dryRun {
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot marshal message: %s", err)
		}
		fmt.Println(string(out))
		return nil
	}

	return notifications.NewSlackWebhook(config.SlackWebhookURL).Send(ctx, payload)
}

func initLogging(c *config.Config) {
	if c.Logging.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Logging.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if c.Logging.Text {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Logging.Color,
			DisableColors: !c.Logging.Color,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Logging.Pretty,
		})
	}
}

// escapeWorkflowCommand encodes the characters the runner treats as command delimiters
func escapeWorkflowCommand(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
