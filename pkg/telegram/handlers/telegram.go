package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"gopkg.in/telebot.v4"

	"quotebot/pkg/quotecard"
)

// Bot wraps the telebot instance together with its logger. Handlers keep no
// state beyond this; every update is processed independently.
type Bot struct {
	Bot *telebot.Bot

	render func(quotecard.Card) ([]byte, error)
	logger *log.Logger
}

func New(token string, refreshRate time.Duration, output io.Writer) (*Bot, error) {
	settings := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: refreshRate},
	}

	bot, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("error creating telegram bot: %w", err)
	}

	logger := log.NewWithOptions(output,
		log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Prefix:          "[Quote]",
		},
	)
	logger.SetColorProfile(termenv.TrueColor)

	return &Bot{
		Bot:    bot,
		render: quotecard.Render,
		logger: logger,
	}, nil
}

func (b *Bot) Logger() *log.Logger {
	return b.logger
}

func (b *Bot) Start() error {
	go b.Bot.Start()
	b.logger.Info("Telegram bot started", "username", b.Bot.Me.Username)
	return nil
}

func (b *Bot) Stop() error {
	b.logger.Info("Stopping Telegram bot")
	b.Bot.Stop()
	return nil
}
