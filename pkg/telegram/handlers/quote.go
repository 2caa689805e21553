package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
	"gopkg.in/telebot.v4"

	"quotebot/pkg/palette"
	"quotebot/pkg/quotecard"
	"quotebot/pkg/utils"
)

const replyNeededText = "Please reply to a message to create a quote!\n\n" +
	"Usage: Reply to any message + /quote [color]\n" +
	"Example: Reply to a message + /quote red"

func (b *Bot) handleQuote(c telebot.Context) error {
	return b.quote(c, c.Message().Payload)
}

// handleMention runs the quote flow when a plain text message mentions the
// bot. Messages not mentioning the bot are ignored.
func (b *Bot) handleMention(c telebot.Context) error {
	message := c.Message()
	if message == nil {
		return nil
	}
	if mentionIndex(message.Text, b.Bot.Me.Username) < 0 {
		return nil
	}
	return b.quote(c, stripMention(message.Text, b.Bot.Me.Username))
}

func (b *Bot) quote(c telebot.Context, args string) error {
	message := c.Message()
	if message.ReplyTo == nil {
		return c.Reply(replyNeededText)
	}

	if err := c.Notify(utils.RandomActivity()); err != nil {
		return err
	}

	token := colorToken(args)
	original := message.ReplyTo
	author := displayName(original.Sender)

	b.logger.Info("💬 Quote requested",
		"requester", displayName(message.Sender),
		"chat", chatName(message.Chat),
		"author", author,
		"color", token,
	)

	card, err := b.render(quotecard.Card{
		Text:       quotedText(original),
		Author:     author,
		Avatar:     b.avatarOf(original.Sender),
		Background: palette.Resolve(token),
	})
	if err != nil {
		b.logger.Error("Failed to render quote card", "author", author, "error", err)
		return c.Reply("❌ Sorry, I couldn't generate the quote card. Please try again.")
	}

	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(card)),
		Caption: fmt.Sprintf("Quote by %s", author),
	}
	if err := c.Reply(photo); err != nil {
		b.logger.Error("Failed to send quote card", "author", author, "error", err)
		return err
	}

	b.logger.Info("✅ Quote card sent", "author", author)
	return nil
}

// avatarOf fetches and decodes the sender's newest profile photo. Failures
// are tolerated; the renderer falls back to an initials placeholder.
func (b *Bot) avatarOf(user *telebot.User) image.Image {
	if user == nil {
		return nil
	}
	photos, err := b.Bot.ProfilePhotosOf(user)
	if err != nil {
		b.logger.Warn("Failed to get profile photos", "user", displayName(user), "error", err)
		return nil
	}
	if len(photos) == 0 {
		return nil
	}
	file, err := b.Bot.File(photos[0].MediaFile())
	if err != nil {
		b.logger.Warn("Failed to download profile photo", "user", displayName(user), "error", err)
		return nil
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		b.logger.Warn("Failed to decode profile photo", "user", displayName(user), "error", err)
		return nil
	}
	return img
}

func quotedText(message *telebot.Message) string {
	switch {
	case message.Text != "":
		return message.Text
	case message.Caption != "":
		return message.Caption
	default:
		return "[Media or unsupported content]"
	}
}

func displayName(user *telebot.User) string {
	switch {
	case user == nil:
		return "Unknown User"
	case user.FirstName != "" && user.LastName != "":
		return user.FirstName + " " + user.LastName
	case user.FirstName != "":
		return user.FirstName
	case user.Username != "":
		return "@" + user.Username
	default:
		return "Unknown User"
	}
}

func chatName(chat *telebot.Chat) string {
	if chat == nil {
		return "unknown"
	}
	if chat.Username != "" {
		return "@" + chat.Username
	}
	return fmt.Sprintf("id:%d", chat.ID)
}

// colorToken takes the first argument field as the color candidate.
// Resolution of unrecognized tokens falls back to the default palette color.
func colorToken(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// mentionIndex returns the byte offset of "@username" in text, matched
// case-insensitively at word boundaries on both sides, or -1.
func mentionIndex(text, username string) int {
	if username == "" {
		return -1
	}
	mention := "@" + strings.ToLower(username)
	lower := strings.ToLower(text)
	for i := 0; i+len(mention) <= len(lower); {
		j := strings.Index(lower[i:], mention)
		if j < 0 {
			return -1
		}
		j += i
		end := j + len(mention)
		before := j == 0 || !isWordByte(lower[j-1])
		after := end == len(lower) || !isWordByte(lower[end])
		if before && after {
			return j
		}
		i = end
	}
	return -1
}

// stripMention returns the text trailing the bot mention, the arguments.
func stripMention(text, username string) string {
	i := mentionIndex(text, username)
	if i < 0 {
		return text
	}
	return strings.TrimSpace(text[i+len(username)+1:])
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
