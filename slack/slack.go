package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"recipescaler/tools"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts messages to a Slack incoming webhook.
type Client struct {
	webhookURL string
	httpClient doer
}

func NewClient(webhookURL string, httpClient doer) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

func (c *Client) PostMessage(ctx context.Context, channel string, message string) error {
	payload, err := json.Marshal(map[string]any{
		"channel": channel,
		"text":    message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to post message: %s", resp.Status)
	}

	return nil
}

// PostScaledRecipe posts the recipe's ingredient lines as a bulleted list.
func (c *Client) PostScaledRecipe(ctx context.Context, channel string, recipe tools.ScaledRecipe) error {
	return c.PostMessage(ctx, channel, FormatScaledRecipe(recipe))
}

// FormatScaledRecipe renders recipe as Slack mrkdwn.
func FormatScaledRecipe(recipe tools.ScaledRecipe) string {
	name := recipe.Name
	if name == "" {
		name = recipe.ID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s* for %d (was %d, x%s)\n",
		name, recipe.Servings, recipe.OriginalServings,
		strconv.FormatFloat(recipe.Multiplier, 'f', -1, 64))
	for _, line := range recipe.Ingredients {
		b.WriteString("• ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
