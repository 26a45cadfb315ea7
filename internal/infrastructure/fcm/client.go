package fcm

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const channelID = "wellness_updates"

// ErrDisabled is returned by send calls when no credentials were configured.
var ErrDisabled = errors.New("fcm client not initialized")

// Credentials selects the service account used to talk to Firebase.
// Path wins over JSON when both are set.
type Credentials struct {
	Path string
	JSON string
}

type Client struct {
	client *messaging.Client
	log    *zap.Logger
}

// NewClient initializes the Firebase Cloud Messaging client. Without
// credentials it returns a disabled client instead of an error.
func NewClient(ctx context.Context, creds Credentials, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var opt option.ClientOption
	switch {
	case creds.Path != "":
		opt = option.WithCredentialsFile(creds.Path)
	case creds.JSON != "":
		opt = option.WithCredentialsJSON([]byte(creds.JSON))
	default:
		log.Warn("no firebase credentials found, push notifications disabled")
		return &Client{log: log}, nil
	}

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	log.Info("firebase cloud messaging initialized")
	return &Client{client: client, log: log}, nil
}

// SendMulticast sends one notification to every token.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if c.client == nil {
		return ErrDisabled
	}
	if len(tokens) == 0 {
		return nil
	}

	response, err := c.client.SendEachForMulticast(ctx, buildMulticast(tokens, title, body, data))
	if err != nil {
		return fmt.Errorf("error sending multicast: %w", err)
	}

	c.log.Info("push notification sent",
		zap.Int("success", response.SuccessCount),
		zap.Int("failure", response.FailureCount),
	)
	return nil
}

// IsEnabled returns true if FCM client is initialized
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

func buildMulticast(tokens []string, title, body string, data map[string]string) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: channelID,
				Priority:  messaging.PriorityHigh,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
