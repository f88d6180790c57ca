package mailer

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Relay failure classes surfaced to API callers. No retry, no queueing
// on the synchronous path: the caller sees the failure directly.
var (
	ErrRelayAuth    = errors.New("mail relay rejected credentials")
	ErrRelayNetwork = errors.New("mail relay unreachable")
	ErrDelivery     = errors.New("mail delivery failed")
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send sends an email via Mailgun. html is optional; if provided it will be used as HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	if err != nil {
		return Classify(err)
	}
	return nil
}

// Classify folds a raw relay error into one of the three failure classes.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var ure *mg.UnexpectedResponseError
	if errors.As(err, &ure) {
		if ure.Actual == http.StatusUnauthorized || ure.Actual == http.StatusForbidden {
			return errors.Join(ErrRelayAuth, err)
		}
		return errors.Join(ErrDelivery, err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return errors.Join(ErrRelayNetwork, err)
	}
	return errors.Join(ErrDelivery, err)
}
