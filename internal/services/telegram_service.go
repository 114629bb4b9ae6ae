package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"clientdesk/internal/models"
)

// TelegramService is an optional notification channel. A nil receiver is a
// no-op so callers never have to check whether the bot is configured.
type TelegramService struct {
	bot              *tgbotapi.BotAPI
	managementChatID int64
}

func NewTelegramService(botToken string, managementChatID int64) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramService{bot: bot, managementChatID: managementChatID}, nil
}

func (t *TelegramService) send(chatID int64, text string) {
	if t == nil || chatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg] send to %d: %v", chatID, err)
	}
}

func (t *TelegramService) NotifyTaskAssigned(chatID int64, task models.Task) {
	t.send(chatID, fmt.Sprintf("📋 Task assigned to you: <b>%s</b>", task.Title))
}

func (t *TelegramService) NotifyTaskDue(chatID int64, task models.Task) {
	t.send(chatID, fmt.Sprintf("⏰ Task due: <b>%s</b>", task.Title))
}

func (t *TelegramService) NotifyDealCompleted(deal models.Deal) {
	if t == nil {
		return
	}
	t.send(t.managementChatID, fmt.Sprintf("🎉 Deal completed: <b>%s</b> (%.2f)", deal.Title, deal.Value))
}
