package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client wraps the Fast2SMS bulk endpoint used to deliver one-time codes.
// The gateway has no Go SDK; this mirrors the form-encoded OTP route.
type Client struct {
	APIKey string
	URL    string

	httpClient *http.Client
}

func New(apiKey, endpoint string) *Client {
	return &Client{
		APIKey: apiKey,
		URL:    endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendOTP delivers a one-time code to a phone number through the gateway.
// A non-2xx response is reported as an error; the caller decides what to
// do with the stored code.
func (c *Client) SendOTP(ctx context.Context, phone, code string) error {
	form := url.Values{}
	form.Set("authorization", c.APIKey)
	form.Set("route", "otp")
	form.Set("variables_values", code)
	form.Set("numbers", phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("sms gateway: status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
