package notifier

import (
	"fmt"
	"html"
	"strings"

	"maritime-maintenance/internal/expiry"
)

const (
	messageHeader = "<b>Уведомление о компонентах с истекающим сроком:</b>\n"
	notAvailable  = "N/A"
)

// FormatMessage renders a batch as Telegram HTML. It returns false for an
// empty batch, which must not be sent.
func FormatMessage(components []ExpiringComponent) (string, bool) {
	if len(components) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(components)+1)
	parts = append(parts, messageHeader)
	for _, c := range components {
		parts = append(parts, fmt.Sprintf(
			"\n- <b>%s</b> (SN: %s)\n  Судно: %s (IMO: %s)\n  <i>Срок истекает: %s (осталось %d дн.)</i>",
			html.EscapeString(c.Name),
			orNA(c.SerialNumber),
			orNA(c.ShipName),
			orNA(c.IMONumber),
			expiry.Format(c.ExpirationDate),
			c.DaysRemaining,
		))
	}
	return strings.Join(parts, "\n"), true
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return html.EscapeString(*s)
}
