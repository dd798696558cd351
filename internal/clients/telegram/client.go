package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nik0lakt/cafeteria-project/pkg/transport"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	bot *tgbotapi.BotAPI
}

func NewClient(token string) (*Client, error) {
	return NewClientWithEndpoint(token, tgbotapi.APIEndpoint)
}

// NewClientWithEndpoint authorizes the bot against endpoint, a format string
// taking the token and the method name.
func NewClientWithEndpoint(token, endpoint string) (*Client, error) {
	c := &http.Client{
		Timeout:   defaultTimeout,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, c)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}

	slog.Info("telegram bot authorized", "username", bot.Self.UserName)

	return &Client{bot: bot}, nil
}

// Bot returns the underlying API for update polling.
func (c *Client) Bot() *tgbotapi.BotAPI {
	return c.bot
}

// SendText sends an HTML formatted message.
func (c *Client) SendText(_ context.Context, chatID int64, html string) error {
	msg := tgbotapi.NewMessage(chatID, html)
	msg.ParseMode = tgbotapi.ModeHTML

	_, err := c.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendPhotos sends JPEG photos as one album with caption on the first photo.
func (c *Client) SendPhotos(ctx context.Context, chatID int64, caption string, photos ...[]byte) error {
	switch len(photos) {
	case 0:
		return c.SendText(ctx, chatID, caption)
	case 1:
		msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "photo.jpg", Bytes: photos[0]})
		msg.Caption = caption
		msg.ParseMode = tgbotapi.ModeHTML

		_, err := c.bot.Send(msg)
		if err != nil {
			return fmt.Errorf("send photo: %w", err)
		}

		return nil
	}

	media := make([]any, 0, len(photos))

	for i, p := range photos {
		photo := tgbotapi.NewInputMediaPhoto(tgbotapi.FileBytes{Name: fmt.Sprintf("photo%d.jpg", i), Bytes: p})
		if i == 0 {
			photo.Caption = caption
			photo.ParseMode = tgbotapi.ModeHTML
		}

		media = append(media, photo)
	}

	_, err := c.bot.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, media))
	if err != nil {
		return fmt.Errorf("send media group: %w", err)
	}

	return nil
}
