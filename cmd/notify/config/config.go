package config

import (
	"errors"

	"github.com/gimlet-io/slack-notify-action/pkg/actioncontext"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

var (
	errMissingToken   = errors.New("Specify secrets.GITHUB_TOKEN")
	errMissingWebhook = errors.New("Specify secrets.SLACK_WEBHOOK_URL")
)

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	if c.Github.Workflow == "" {
		c.Github.Workflow = c.Github.WorkflowRef
	}
}

// String returns the configuration in string format.
func (c *Config) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}

type Config struct {
	Logging         Logging
	Github          Github
	GithubToken     string `envconfig:"GITHUB_TOKEN" yaml:"-"`
	SlackWebhookURL string `envconfig:"SLACK_WEBHOOK_URL" yaml:"-"`
}

// Logging provides the logging configuration.
type Logging struct {
	Debug  bool `envconfig:"DEBUG"`
	Trace  bool `envconfig:"TRACE"`
	Color  bool `envconfig:"LOGS_COLOR"`
	Pretty bool `envconfig:"LOGS_PRETTY"`
	Text   bool `envconfig:"LOGS_TEXT" default:"true"`
}

// Github holds the variables the Actions runner sets for every step
type Github struct {
	EventName   string `envconfig:"GITHUB_EVENT_NAME"`
	EventPath   string `envconfig:"GITHUB_EVENT_PATH"`
	SHA         string `envconfig:"GITHUB_SHA"`
	Ref         string `envconfig:"GITHUB_REF"`
	Workflow    string `envconfig:"GITHUB_WORKFLOW"`
	WorkflowRef string `envconfig:"GITHUB_WORKFLOW_REF"`
	Actor       string `envconfig:"GITHUB_ACTOR"`
	APIURL      string `envconfig:"GITHUB_API_URL"`
}

// Validate checks the secrets. The webhook is not needed when nothing is delivered.
func (c *Config) Validate(deliver bool) error {
	if c.GithubToken == "" {
		return errMissingToken
	}
	if deliver && c.SlackWebhookURL == "" {
		return errMissingWebhook
	}
	return nil
}

func (c *Config) Runner() actioncontext.Runner {
	return actioncontext.Runner{
		EventName: c.Github.EventName,
		SHA:       c.Github.SHA,
		Ref:       c.Github.Ref,
		Workflow:  c.Github.Workflow,
		Actor:     c.Github.Actor,
		EventPath: c.Github.EventPath,
	}
}
