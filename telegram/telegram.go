// Package telegram serves the chat bot over the Telegram Bot API.
package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/polyrabbit/coin-chat/config"
	"github.com/sirupsen/logrus"
)

type Responder interface {
	Respond(input string) string
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api       *tgbotapi.BotAPI
	responder Responder
}

func New(cfg config.TelegramConfig, responder Responder) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram token is empty, set it in config or TELEGRAM_TOKEN")
	}
	if err := tgbotapi.SetLogger(logrus.StandardLogger()); err != nil {
		return nil, errors.Wrap(err, "set telegram logger")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, errors.Wrap(err, "connect to telegram")
	}
	api.Debug = cfg.Debug
	logrus.Infof("Authorized on telegram account @%s", api.Self.UserName)
	return &Bot{api: api, responder: responder}, nil
}

// Run answers messages one by one until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			if err := handleMessage(b.api, b.responder, update.Message); err != nil {
				logrus.WithError(err).Warnf("Failed to reply to chat %d", update.Message.Chat.ID)
			}
		}
	}
}

func handleMessage(api sender, responder Responder, m *tgbotapi.Message) error {
	reply := responder.Respond(questionOf(m))
	logrus.WithField("chat", m.Chat.ID).Debugf("%q -> %q", m.Text, reply)

	msg := tgbotapi.NewMessage(m.Chat.ID, reply)
	msg.ReplyToMessageID = m.MessageID
	_, err := api.Send(msg)
	return err
}

// questionOf maps bot commands onto plain questions, "/btc" asks for btc
func questionOf(m *tgbotapi.Message) string {
	if !m.IsCommand() {
		return m.Text
	}
	switch m.Command() {
	case "start":
		return "hello"
	case "help":
		return "help"
	}
	return strings.TrimSpace(m.Command() + " " + m.CommandArguments())
}
