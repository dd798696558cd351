package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/Nik0lakt/cafeteria-project/pkg/config"
)

var htmlTag = regexp.MustCompile("<[^>]+>")

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Client struct {
	cfg    config.Mailer
	sender Sender
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return NewWithSender(cfg, dialer)
}

func NewWithSender(cfg config.Mailer, sender Sender) *Client {
	return &Client{
		cfg:    cfg,
		sender: sender,
	}
}

// SendMessage sends one message to all recipients. An empty contentType is
// detected from the body.
func (c *Client) SendMessage(_ context.Context, subject, message string, recipients []string, contentType string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)

	switch contentType {
	case "text/html", "text/plain":
		msg.SetBody(contentType, message)
	default:
		if htmlTag.MatchString(message) {
			msg.SetBody("text/html", message)
		} else {
			msg.SetBody("text/plain", message)
		}
	}

	err := c.sender.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
