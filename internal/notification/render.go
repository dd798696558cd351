package notification

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

const timeLayout = "02.01.2006 15:04"

var printer = message.NewPrinter(language.Russian)

// FormatMoney renders kopecks as rubles with Russian digit grouping, e.g. "1 234,50 ₽".
func FormatMoney(m entity.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}

	rubles := m.Rubles()

	return fmt.Sprintf("%s%s,%02d ₽", sign, printer.Sprintf("%d", rubles.IntPart()), int64(m%100))
}

// RenderReceipt returns the receipt as Telegram-compatible HTML.
func RenderReceipt(r entity.Receipt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>Чек №%s</b>\n", shortID(r))
	fmt.Fprintf(&b, "%s\n%s\n\n", html.EscapeString(r.EmployeeName), r.PaidAt.Format(timeLayout))

	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s × %d = %s\n", html.EscapeString(l.Name), l.Quantity, FormatMoney(l.Total()))
	}

	if len(r.Lines) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Итого: <b>%s</b>\n", FormatMoney(r.Amount))
	fmt.Fprintf(&b, "Дотация: %s\n", FormatMoney(r.AppliedSubsidy))
	fmt.Fprintf(&b, "Из лимита: %s\n", FormatMoney(r.OwedFromLimit))
	fmt.Fprintf(&b, "Остаток лимита: %s", FormatMoney(r.RemainingLimit))

	return b.String()
}

// RenderManualReport is the caption of the photo pair sent to administrators.
func RenderManualReport(r entity.ManualPaymentReport) string {
	var b strings.Builder

	b.WriteString("<b>Ручное подтверждение оплаты</b>\n")
	fmt.Fprintf(&b, "%s\n%s\n", html.EscapeString(r.EmployeeName), r.PaidAt.Format(timeLayout))
	fmt.Fprintf(&b, "Сумма: %s\n", FormatMoney(r.Amount))

	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s × %d\n", html.EscapeString(l.Name), l.Quantity)
	}

	fmt.Fprintf(&b, "Транзакция: <code>%s</code>\n", r.TransactionID)
	b.WriteString("Слева фото из базы, справа снимок с кассы.")

	return b.String()
}

func shortID(r entity.Receipt) string {
	s := r.TransactionID.String()
	return strings.ToUpper(s[:8])
}
