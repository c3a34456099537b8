package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const deliveryTimeout = 30 * time.Second

// SlackWebhook delivers messages to a Slack incoming webhook
type SlackWebhook struct {
	URL    string
	Client *http.Client
}

func NewSlackWebhook(url string) *SlackWebhook {
	return &SlackWebhook{
		URL:    url,
		Client: &http.Client{Timeout: deliveryTimeout},
	}
}

// Send posts a *Message or a json.RawMessage. Delivery is not retried.
func (s *SlackWebhook) Send(ctx context.Context, payload interface{}) error {
	b := new(bytes.Buffer)
	e := json.NewEncoder(b)
	e.SetEscapeHTML(false)
	err := e.Encode(payload)
	if err != nil {
		return fmt.Errorf("cannot encode slack message: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, b)
	if err != nil {
		return fmt.Errorf("cannot create slack request: %s", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	res, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("could not post to slack: %s", err)
	}
	defer res.Body.Close()

	body, _ := ioutil.ReadAll(res.Body)
	logrus.Debugf("Slack response: %s", string(body))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("could not post to slack, status: %d, response: %s", res.StatusCode, string(body))
	}

	logrus.Info("send message")
	return nil
}
