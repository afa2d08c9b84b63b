package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage sends a plain text message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	return sentMsg.MessageID, nil
}

// SendMarkdownV2 sends a MarkdownV2-formatted message to a specific chat ID
func (tg *TelegramImpl) SendMarkdownV2(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending markdown message",
			"chatID", chatID,
			"error", err)
		return fmt.Errorf("failed to send markdown message: %w", err)
	}
	return nil
}

// SendDocument uploads a local file (the generated CSV) to a chat
func (tg *TelegramImpl) SendDocument(chatID int64, path string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	if _, err := tg.TgBot.Send(doc); err != nil {
		tg.Logger.Error("Error sending document",
			"chatID", chatID,
			"path", path,
			"error", err)
		return fmt.Errorf("failed to send document: %w", err)
	}

	tg.Logger.Info("Document sent", "chatID", chatID, "path", path)
	return nil
}

// SendMessageToUser sends a text message to the configured admin user
func (tg *TelegramImpl) SendMessageToUser(message string) {
	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
	}
}

// SendSummaryToChannel posts a MarkdownV2 CFD summary to the configured channel
func (tg *TelegramImpl) SendSummaryToChannel(markdown string) {
	channelName := "@" + tg.Config.Telegram.Channel
	msg := tgbotapi.NewMessageToChannel(channelName, markdown)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending summary to channel",
			"channel", channelName,
			"error", err)
		return
	}

	tg.Logger.Info("Summary sent to channel", "channel", channelName)
}

// SendDocumentToChannel uploads the generated CSV to the configured channel
func (tg *TelegramImpl) SendDocumentToChannel(path string) error {
	channelName := "@" + tg.Config.Telegram.Channel

	doc := tgbotapi.NewDocument(0, tgbotapi.FilePath(path))
	doc.ChannelUsername = channelName

	if _, err := tg.TgBot.Send(doc); err != nil {
		tg.Logger.Error("Error sending document to channel",
			"channel", channelName,
			"path", path,
			"error", err)
		return fmt.Errorf("failed to send document to channel: %w", err)
	}

	tg.Logger.Info("Document sent to channel", "channel", channelName, "path", path)
	return nil
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

// StopReceivingUpdates wraps the bot's StopReceivingUpdates method
func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}
