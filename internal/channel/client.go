package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the messaging platform's bot API. It is constructed
// explicitly from config and injected wherever pushes are needed.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL, accessToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

// Push sends a text message to the given channel user.
func (c *Client) Push(ctx context.Context, to, text string) error {
	body, err := json.Marshal(pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/bot/message/push", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push failed: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

type profileResponse struct {
	DisplayName string `json:"displayName"`
}

// GetProfile fetches the platform profile for a channel user; used on
// follow to record the customer's display name.
func (c *Client) GetProfile(ctx context.Context, userID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/bot/profile/"+userID, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get profile failed: status %d", resp.StatusCode)
	}

	var p profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return "", err
	}
	return p.DisplayName, nil
}
