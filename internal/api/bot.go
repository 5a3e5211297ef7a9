package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"matchbot/internal/container"
	"matchbot/internal/domain/entity"
)

const (
	msgHelp = `ℹ️ How to use the bot:

1️⃣ Send /start and answer the registration questions
2️⃣ After registration the bot offers you potential matches
3️⃣ Reply Like or Dislike to each candidate

📋 Commands:
/start — begin registration
/match — look for a partner
/profile — show your profile
/edit — edit your profile description
/cancel — cancel the current operation
/help — this help`

	msgUnknownCommand = "❓ Unknown command. Use /help for the command list."
	msgTransient      = "⚠️ Something went wrong on our side. Please try again in a moment."
)

// Bot представляет Telegram-бота знакомств
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
	log      *logrus.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
		log:      log,
	}, nil
}

// Run запускает основной цикл обработки сообщений.
// Останавливается при отмене контекста.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	var (
		prompt entity.Prompt
		err    error
	)
	switch {
	case msg.Location != nil:
		prompt, err = b.services.Dialog.HandleLocation(ctx, userID, msg.Location.Latitude, msg.Location.Longitude)

	case len(msg.Photo) > 0:
		// Берём файл с максимальным разрешением
		photo := msg.Photo[len(msg.Photo)-1]
		var data []byte
		data, err = b.downloadFile(photo.FileID)
		if err == nil {
			prompt, err = b.services.Dialog.HandlePhoto(ctx, userID, data)
		}

	default:
		prompt, err = b.services.Dialog.HandleText(ctx, userID, msg.Text)
	}

	b.reply(msg.Chat.ID, userID, prompt, err)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	switch msg.Command() {
	case "start":
		prompt, err := b.services.Dialog.Start(ctx, userID)
		b.reply(msg.Chat.ID, userID, prompt, err)

	case "cancel":
		b.reply(msg.Chat.ID, userID, b.services.Dialog.Cancel(ctx, userID), nil)

	case "match":
		prompt, err := b.services.Dialog.BeginMatching(ctx, userID)
		b.reply(msg.Chat.ID, userID, prompt, err)

	case "edit":
		prompt, err := b.services.Dialog.BeginEditDescription(ctx, userID)
		b.reply(msg.Chat.ID, userID, prompt, err)

	case "profile":
		prompt, err := b.services.Profiles.View(ctx, userID)
		b.reply(msg.Chat.ID, userID, prompt, err)

	case "help":
		b.sendText(msg.Chat.ID, msgHelp)

	default:
		b.sendText(msg.Chat.ID, msgUnknownCommand)
	}
}

// reply отправляет ответ ядра пользователю.
// Ошибки ядра не фатальны: пользователь получает просьбу повторить позже.
func (b *Bot) reply(chatID, userID int64, prompt entity.Prompt, err error) {
	if err != nil {
		b.log.WithFields(logrus.Fields{"user_id": userID}).Errorf("handle update: %v", err)
		b.sendText(chatID, msgTransient)
		return
	}
	if prompt.Text == "" {
		return
	}

	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	if len(prompt.QuickReplies) > 0 {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(prompt.QuickReplies))
		for _, replyText := range prompt.QuickReplies {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(replyText))
		}
		msg.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(tgbotapi.NewKeyboardButtonRow(buttons...))
	} else {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorf("send message: %v", err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendText отправляет простое текстовое сообщение
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorf("send message: %v", err)
	}
}
