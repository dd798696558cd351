package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/notification"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

const pollTimeout = 60

type BalanceService interface {
	BalanceByChatID(ctx context.Context, chatID string) (entity.Balance, error)
}

type Sender interface {
	SendText(ctx context.Context, chatID int64, html string) error
}

// Bot answers employees asking for their balance in Telegram.
type Bot struct {
	api    *tgbotapi.BotAPI
	sender Sender
	s      BalanceService
}

func New(api *tgbotapi.BotAPI, sender Sender, s BalanceService) *Bot {
	return &Bot{api: api, sender: sender, s: s}
}

// Run polls updates until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	slog.InfoContext(ctx, "balance bot started")

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "balance bot stopped")
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}

			b.handle(ctx, upd)
		}
	}
}

func (b *Bot) handle(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	ctx = logger.WithRequestID(ctx, fmt.Sprintf("tg-%d", upd.UpdateID))

	err := b.sender.SendText(ctx, msg.Chat.ID, b.Reply(ctx, msg.Chat.ID, msg.Text))
	if err != nil {
		slog.ErrorContext(ctx, "send bot reply", "error", err, "chat_id", msg.Chat.ID)
	}
}

// Reply returns the HTML answer to text sent from chatID.
func (b *Bot) Reply(ctx context.Context, chatID int64, text string) string {
	cmd := strings.ToLower(strings.TrimSpace(text))
	if i := strings.IndexByte(cmd, '@'); i > 0 && strings.HasPrefix(cmd, "/") {
		cmd = cmd[:i]
	}

	switch {
	case cmd == "/start":
		return fmt.Sprintf("Ваш идентификатор чата: <code>%d</code>\n"+
			"Передайте его администратору столовой, чтобы получать чеки и узнавать баланс.", chatID)
	case cmd == "/my", cmd == "/balance", strings.Contains(cmd, "баланс"):
		return b.balance(ctx, chatID)
	default:
		return "Отправьте /my или «баланс», чтобы узнать остаток дотации и лимита."
	}
}

func (b *Bot) balance(ctx context.Context, chatID int64) string {
	bal, err := b.s.BalanceByChatID(ctx, strconv.FormatInt(chatID, 10))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "Этот чат не привязан к сотруднику. Отправьте /start и передайте идентификатор администратору."
		}

		slog.ErrorContext(ctx, "get balance by chat", "error", err, "chat_id", chatID)

		return "Не удалось получить баланс, попробуйте позже."
	}

	return RenderBalance(bal)
}

func RenderBalance(bal entity.Balance) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(bal.Employee.FullName))

	if bal.WorkDay {
		fmt.Fprintf(&sb, "Дотация на сегодня: %s из %s\n",
			notification.FormatMoney(bal.SubsidyAvailable), notification.FormatMoney(bal.DailySubsidy))
	} else {
		sb.WriteString("Сегодня нерабочий день, дотация не начисляется\n")
	}

	fmt.Fprintf(&sb, "Остаток лимита: %s", notification.FormatMoney(bal.MonthlyLimitLeft))

	return sb.String()
}
