package bot

import (
	"fmt"
	"strings"

	"github.com/polyrabbit/coin-chat/price"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatResult turns a lookup result into the line shown to the user.
func FormatResult(result price.Result) string {
	switch result.Status {
	case price.StatusOK:
		return FormatQuote(result.Quote)
	case price.StatusNotFound:
		return fmt.Sprintf(notFoundReplyFmt, result.Token)
	case price.StatusUpstreamFailed:
		return UpstreamFailReply
	default:
		return NetworkFailReply
	}
}

// FormatQuote renders eg. "💰 BTC: $67,187.34 📈 (+2.35% 24h)", the change
// part is left out when there is no change.
func FormatQuote(q *price.Quote) string {
	line := fmt.Sprintf("💰 %s: $%s %s", strings.ToUpper(q.Token), FormatPrice(q.Price), ChangeGlyph(q.Change24h))
	if q.Change24h != 0 {
		line += fmt.Sprintf(" (%+.2f%% 24h)", q.Change24h)
	}
	return line
}

// FormatPrice uses thousands separators and two decimals.
func FormatPrice(p float64) string {
	return printer.Sprintf("%.2f", p)
}

func ChangeGlyph(change float64) string {
	switch {
	case change > 0:
		return "📈"
	case change < 0:
		return "📉"
	}
	return "➡️"
}
