package utils

import (
	"math/rand"

	"gopkg.in/telebot.v4"
)

func Random[T any](v ...T) T {
	if len(v) == 0 {
		var def T
		return def
	}
	return v[rand.Intn(len(v))]
}

// RandomActivity picks a chat action to show while a card is being rendered.
func RandomActivity() telebot.ChatAction {
	return Random(
		telebot.Typing,
		telebot.UploadingPhoto,
		telebot.UploadingDocument,
		telebot.ChoosingSticker,
	)
}
