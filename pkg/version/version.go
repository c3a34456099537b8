package version

import "fmt"

var (
	// Version is set at build time with -ldflags "-X github.com/gimlet-io/slack-notify-action/pkg/version.Version=v1.0.0"
	Version = "dev"
	// Commit is the git sha the binary was built from
	Commit = "none"
)

func String() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
