package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	SendMarkdownV2(chatID int64, text string) error
	SendDocument(chatID int64, path string) error

	SendMessageToUser(msg string)
	SendSummaryToChannel(markdown string)
	SendDocumentToChannel(path string) error
}
