// Package alerts sends operational notifications to the operators' Telegram
// chat. Everything here is best-effort: a failed alert is logged, never
// propagated to the request that triggered it.
package alerts

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier надсилає службові повідомлення в Telegram-чат операторів.
// Nil-отримувач безпечний: усі методи стають no-op, тому інтеграцію
// можна не вмикати взагалі.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates a new Telegram notifier.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Alerts authorized on account %s", bot.Self.UserName)

	return &Notifier{bot: bot, chatID: chatID}, nil
}

// EventPaid повідомляє операторів, що подія оплачена та розблокована.
func (n *Notifier) EventPaid(eventID string) {
	n.send(fmt.Sprintf("💳 Event %s is paid and unlocked.", eventID))
}

// WebhookFailure повідомляє про невдалу обробку платіжного вебхука.
func (n *Notifier) WebhookFailure(eventID string, err error) {
	n.send(fmt.Sprintf("⚠️ Payment webhook for event %s failed: %v", eventID, err))
}

func (n *Notifier) send(text string) {
	if n == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send operator alert: %v", err)
	}
}
