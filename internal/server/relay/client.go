// Package relay forwards chat messages to the external bot webhook.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/go-resty/resty/v2"
)

// NoReply is recorded when the webhook answers without a usable reply.
const NoReply = "(No response from bot)"

type Client struct {
	client *resty.Client
	url    string
}

// New returns a client posting to url. Calls give up after timeout.
func New(url string, timeout time.Duration) *Client {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, url: url}
}

type sendRequest struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type sendResponse struct {
	Reply string `json:"reply"`
}

// Send posts the message and returns the bot reply. Transport errors and
// non-2xx statuses wrap common.ErrRelayUnavailable.
func (c *Client) Send(ctx context.Context, username, sessionID, message string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&sendRequest{Username: username, Message: message, SessionID: sessionID}).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrRelayUnavailable, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: status %d", common.ErrRelayUnavailable, resp.StatusCode())
	}

	var sr sendResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil || strings.TrimSpace(sr.Reply) == "" {
		return NoReply, nil
	}
	return sr.Reply, nil
}
