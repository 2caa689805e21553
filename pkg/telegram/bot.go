package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"quotebot/pkg/telegram/handlers"
)

type Bot struct {
	Telegram *handlers.Bot
}

type Bots interface {
	Registrar
	Starter
	Stopper
	Logger
}

type Registrar interface {
	Commands() error
	Handlers() error
}

type Starter interface {
	Start() error
}

type Stopper interface {
	Stop() error
}

type Logger interface {
	Logger() *log.Logger
}

type Config struct {
	Token       string
	Output      io.Writer
	RefreshRate string
}

func New(config Config) (*Bot, error) {
	if config.Token == "" {
		return nil, errors.New("telegram token is required")
	}

	refreshRate := 10 * time.Second
	if config.RefreshRate != "" {
		if i, err := time.ParseDuration(config.RefreshRate); err == nil {
			refreshRate = i
		}
	}

	tgBot, err := handlers.New(config.Token, refreshRate, config.Output)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}

	return &Bot{Telegram: tgBot}, nil
}

func (b *Bot) Start() error {
	bot := b.Telegram
	bot.Logger().Debug(
		"Starting bot",
		"type", fmt.Sprintf("%T", bot),
	)
	err := bot.Start()
	if err != nil {
		bot.Logger().Error(
			"Failed to start bot",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
		return err
	}
	bot.Logger().Info(
		"Bot started successfully",
		"type", fmt.Sprintf("%T", bot),
	)

	bot.Logger().Debug(
		"Registering commands",
		"type", fmt.Sprintf("%T", bot),
	)
	err = bot.Commands()
	if err != nil {
		bot.Logger().Error(
			"Failed to register commands",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
		return err
	}
	bot.Logger().Debug(
		"Commands registered successfully",
		"type", fmt.Sprintf("%T", bot),
	)

	return bot.Handlers()
}

func (b *Bot) Wait(ctx context.Context) {
	<-ctx.Done()
}

func (b *Bot) Shutdown() error {
	b.Telegram.Logger().Info("Shutting down bot")

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err := b.Telegram.Stop()
		if err != nil {
			b.Telegram.Logger().Error(
				"Failed to stop bot",
				"type", fmt.Sprintf("%T", b.Telegram),
				"error", err,
			)
		} else {
			b.Telegram.Logger().Info(
				"Bot stopped successfully",
				"type", fmt.Sprintf("%T", b.Telegram),
			)
		}
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		b.Telegram.Logger().Error(
			"Bot did not stop in time",
			"type", fmt.Sprintf("%T", b.Telegram),
		)
	}

	return nil
}
