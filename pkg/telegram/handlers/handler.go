package handlers

import (
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"quotebot/pkg/palette"
)

// Commands registers the bot command menu.
func (b *Bot) Commands() error {
	return b.Bot.SetCommands([]telebot.Command{
		{Text: "start", Description: "Show welcome message"},
		{Text: "help", Description: "Show usage help"},
		{Text: "colors", Description: "List available color names"},
		{Text: "quote", Description: "Quote the replied-to message"},
	})
}

func (b *Bot) Handlers() error {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle("/help", b.handleHelp)
	b.Bot.Handle("/colors", b.handleColors)
	b.Bot.Handle("/quote", b.handleQuote)
	b.Bot.Handle(telebot.OnText, b.handleMention)
	return nil
}

const welcomeText = "👋 Welcome to Quote Bot!\n\n" +
	"How to use:\n" +
	"1. Reply to any message you want to quote\n" +
	"2. Use /quote (optionally specify a color)\n\n" +
	"Examples:\n" +
	"• Reply to a message + /quote\n" +
	"• Reply to a message + /quote red\n" +
	"• Reply to a message + /quote #FF5733\n\n" +
	"Use /colors to see available color names\n" +
	"Use /help for more information"

const helpText = "🎨 Quote Bot Help\n\n" +
	"How to use:\n" +
	"1. Reply to any message in a group chat\n" +
	"2. Mention the bot in your reply, or use /quote\n" +
	"3. Optionally add a color name or hex code\n\n" +
	"Color formats:\n" +
	"• Named colors: red, blue, green, etc.\n" +
	"• Hex colors: #FF5733, #00FF00, etc.\n\n" +
	"Commands:\n" +
	"/start - Show welcome message\n" +
	"/help - Show this help\n" +
	"/colors - List available color names\n\n" +
	"Examples:\n" +
	"• @bot_name\n" +
	"• @bot_name red\n" +
	"• @bot_name #FF5733"

func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(welcomeText)
}

func (b *Bot) handleHelp(c telebot.Context) error {
	return c.Send(helpText)
}

func (b *Bot) handleColors(c telebot.Context) error {
	return c.Send(fmt.Sprintf(
		"🎨 Available colors:\n\n%s\n\nYou can also use hex colors like #FF5733",
		strings.Join(palette.Names(), ", "),
	))
}
