package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/polyrabbit/coin-chat/bot"
	"github.com/polyrabbit/coin-chat/config"
	"github.com/polyrabbit/coin-chat/http"
	"github.com/polyrabbit/coin-chat/price"
	"github.com/polyrabbit/coin-chat/telegram"
	"github.com/polyrabbit/coin-chat/writer"
	"github.com/sirupsen/logrus"
)

var botPrefix = color.New(color.FgCyan, color.Bold).SprintFunc()

func main() {
	cfg := config.Parse()

	if cfg.ListCoins {
		writer.RenderAliases(colorable.NewColorableStdout(), price.Aliases())
		return
	}

	coinGecko := price.NewCoinGecko(cfg.APIURL, http.New(cfg), cfg.Proxy != "")

	if len(cfg.Quotes) != 0 {
		renderQuotes(cfg, coinGecko)
		return
	}

	chatBot := bot.New(coinGecko, bot.Options{WholeWord: cfg.WholeWord})

	switch {
	case cfg.Telegram.Enabled:
		tgBot, err := telegram.New(cfg.Telegram, chatBot)
		if err != nil {
			logrus.Fatalf("Failed to start telegram bot, error: %v", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		tgBot.Run(ctx)
		logrus.Info("Telegram bot stopped")
	case cfg.Question != "":
		fmt.Println(chatBot.Respond(cfg.Question))
	default:
		chat(chatBot, os.Stdin, colorable.NewColorableStdout())
	}
}

func renderQuotes(cfg *config.Config, coinGecko *price.CoinGecko) {
	if cfg.Refresh != 0 {
		logrus.Infof("Auto refresh on every %d seconds", cfg.Refresh)
	}

	tw := writer.NewTableWriter(cfg.Columns)
	logrus.SetOutput(tw.Writer)
	defer logrus.SetOutput(colorable.NewColorableStderr())

	for {
		tw.Render(coinGecko.Quotes(cfg.Quotes))
		if cfg.Refresh == 0 {
			break
		}
		// Use sleep here so I can stall as much as I can to avoid exceeding API limit
		time.Sleep(time.Duration(cfg.Refresh) * time.Second)
	}
}

// chat reads one question per line until EOF or a farewell.
func chat(chatBot *bot.Bot, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Ask me about crypto prices, say 'bye' to leave.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		reply := chatBot.Respond(scanner.Text())
		fmt.Fprintln(out, botPrefix("Bot:"), reply)
		if reply == bot.FarewellReply {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.Warnf("Failed to read input, error: %v", err)
	}
}
