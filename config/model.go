package config

import "strings"

const (
	ColumnSymbol       = "Symbol"
	ColumnPrice        = "Price"
	ColumnChange24hPct = "%Change(24h)"
	ColumnCoinID       = "Coin ID"
	ColumnUpdated      = "Updated"
)

const DefaultAPIURL = "https://api.coingecko.com/api/v3"

func SupportedColumns() []string {
	return []string{ColumnSymbol, ColumnPrice, ColumnChange24hPct, ColumnCoinID, ColumnUpdated}
}

func isSupportedColumn(name string) bool {
	for _, col := range SupportedColumns() {
		if strings.EqualFold(col, name) {
			return true
		}
	}
	return false
}

type TelegramConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
	Debug   bool   `mapstructure:"debug"`
}

type Config struct {
	Timeout   int            `mapstructure:"timeout"`
	Proxy     string         `mapstructure:"proxy"`
	APIURL    string         `mapstructure:"api_url"`
	Debug     bool           `mapstructure:"debug"`
	WholeWord bool           `mapstructure:"whole_word"`
	Quotes    []string       `mapstructure:"quote"`
	Columns   []string       `mapstructure:"show"`
	Refresh   int            `mapstructure:"refresh"`
	ListCoins bool           `mapstructure:"list_coins"`
	Telegram  TelegramConfig `mapstructure:"telegram"`

	// Positional arguments joined into one question, empty means interactive
	Question string `mapstructure:"-"`
}
