package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"quotebot/pkg/telegram"
)

const (
	EnvTelegramBotToken    = "TELEGRAM_BOT_TOKEN"
	EnvTelegramRefreshRate = "TELEGRAM_REFRESH_RATE"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	b, err := bot.New(bot.Config{
		Output:      os.Stdout,
		Token:       os.Getenv(EnvTelegramBotToken),
		RefreshRate: os.Getenv(EnvTelegramRefreshRate),
	})
	if err != nil {
		log.Fatalf("error creating bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("error starting bot: %v", err)
	}

	b.Wait(ctx)

	if err := b.Shutdown(); err != nil {
		log.Fatalf("error shutting down bot: %v", err)
	}
}
