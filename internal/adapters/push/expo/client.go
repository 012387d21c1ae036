package expo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"plant-care-api/internal/platform/httpclient"
	"plant-care-api/internal/ports/push"
)

const (
	// DefaultSendURL es el endpoint público de Expo Push.
	DefaultSendURL = "https://exp.host/--/api/v2/push/send"
)

var (
	ErrRejected = errors.New("expo rejected push")
)

type Config struct {
	// SendURL permite apuntar a un mock en tests; vacío => DefaultSendURL.
	SendURL string
	Timeout time.Duration
}

// Client implementa push.Sender contra el servicio de push de Expo.
type Client struct {
	http    *httpclient.Client
	sendURL string
}

func NewClient(cfg Config) *Client {
	url := strings.TrimSpace(cfg.SendURL)
	if url == "" {
		url = DefaultSendURL
	}
	return &Client{
		http:    httpclient.New(cfg.Timeout),
		sendURL: url,
	}
}

// NewClientWithTransport permite inyectar un RoundTripper (tests).
func NewClientWithTransport(cfg Config, tr http.RoundTripper) *Client {
	c := NewClient(cfg)
	c.http = httpclient.NewWithTransport(cfg.Timeout, tr)
	return c
}

type sendRequest struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type sendResponse struct {
	Data struct {
		Status  string `json:"status"` // "ok" | "error"
		Message string `json:"message"`
	} `json:"data"`
}

func (c *Client) Send(ctx context.Context, token string, msg push.Message) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("expo: empty push token")
	}

	var out sendResponse
	err := c.http.DoJSON(ctx, http.MethodPost, c.sendURL, nil, sendRequest{
		To:    token,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
	}, &out)
	if err != nil {
		return fmt.Errorf("expo: send push: %w", err)
	}

	// Expo responde 200 incluso con tickets en error; hay que mirar el status.
	if out.Data.Status == "error" {
		if out.Data.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, out.Data.Message)
		}
		return ErrRejected
	}

	return nil
}
