package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

// OneSignalClient is a minimal client of the onesignal push REST API
type OneSignalClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		endpoint: "https://onesignal.com",
		apiKey:   viper.GetString("onesignal.key"),
		client:   client,
	}
}

// NotificationRequest is a request object of creating a notification
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

// SendNotification submits one notification request. The response body
// is not consumed beyond the status check.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/api/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("onesignal responded with status %d", resp.StatusCode)
	}

	return nil
}
