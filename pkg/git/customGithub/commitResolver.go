package customGithub

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gimlet-io/slack-notify-action/pkg/actioncontext"
	"github.com/google/go-github/v37/github"
	"golang.org/x/oauth2"
)

// CommitResolver looks up commits that the event payload did not carry
type CommitResolver struct {
	client *github.Client
}

// NewCommitResolver authenticates with the workflow token.
// apiURL is optional, it points to the GitHub Enterprise API.
func NewCommitResolver(token string, apiURL string) (*CommitResolver, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	if apiURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("cannot parse github api url: %s", err)
		}
		client.BaseURL = baseURL
	}

	return &CommitResolver{client: client}, nil
}

// Resolve fetches the commit url and message for a sha in owner/repo
func (r *CommitResolver) Resolve(ctx context.Context, repositoryName string, sha string) (actioncontext.Commit, error) {
	parts := strings.Split(repositoryName, "/")
	if len(parts) != 2 {
		return actioncontext.Commit{}, fmt.Errorf("cannot determine repo owner and name from %q", repositoryName)
	}
	owner := parts[0]
	repo := parts[1]

	commit, _, err := r.client.Git.GetCommit(ctx, owner, repo, sha)
	if err != nil {
		return actioncontext.Commit{}, fmt.Errorf("could not get commit %s: %s", sha, err)
	}

	return actioncontext.Commit{
		URL:     commit.GetHTMLURL(),
		Message: commit.GetMessage(),
	}, nil
}
