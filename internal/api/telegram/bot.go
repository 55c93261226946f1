package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "plant-segmentation/internal/application"
	"plant-segmentation/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для сегментации образцов растений.

📸 Отправьте мне фото образца, и я определю его категорию и найду структуры.

📋 Команды:
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото образца
2️⃣ Бот определит категорию изображения (0–4)
3️⃣ Вы получите результат: текст + фото с разметкой

💡 По умолчанию структуры размечаются линиями.
Добавьте к фото подпись «bbox», чтобы получить прямоугольники.`

	msgSendPhoto       = "📸 Пожалуйста, отправьте фото образца."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNoStructures    = "✅ Категория %s. Структуры не обнаружены."
	msgFound           = "✅ Категория %s. Найдено структур: %d."
	msgBusy            = "⏳ Сервис перегружен, попробуйте позже."
	msgTimeout         = "⌛ Обработка заняла слишком много времени. Попробуйте другое фото."
	msgDecodeError     = "⚠️ Не удалось прочитать изображение. Отправьте фото в формате JPEG или PNG."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."

	captionBBox = "bbox"
)

// Bot представляет Telegram-бота
type Bot struct {
	api     *tgbotapi.BotAPI
	service *app.SegmentationService
	logger  *zap.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, service *app.SegmentationService, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Info("authorized on account", zap.String("username", api.Self.UserName))

	return &Bot{
		api:     api,
		service: service,
		logger:  logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
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
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if len(msg.Photo) > 0 {
		// файл с максимальным разрешением
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleImage(ctx, msg, photo.FileID)
		return
	}

	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		b.handleImage(ctx, msg, msg.Document.FileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, msgStart)
	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)
	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleImage прогоняет изображение через конвейер и отвечает разметкой
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.logger.Error("download photo", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	result, err := b.service.Segment(ctx, imageData, wantsBoxes(msg.Caption))
	if err != nil {
		b.logger.Warn("segmentation failed",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.String("kind", entity.ErrorKind(err)),
			zap.Error(err))
		b.sendMessage(msg.Chat.ID, errorMessage(err))
		return
	}

	text := resultMessage(result)

	annotated, err := b.service.Annotate(imageData, result)
	if err != nil {
		b.logger.Warn("annotate result", zap.Error(err))
		b.sendMessage(msg.Chat.ID, text)
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "segmentation.jpg", Bytes: annotated})
	photo.Caption = text
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error("send photo", zap.Error(err))
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("send message", zap.Error(err))
	}
}

func wantsBoxes(caption string) bool {
	return strings.EqualFold(strings.TrimSpace(caption), captionBBox)
}

func resultMessage(result *entity.SegmentationResult) string {
	n := len(result.PointLists())
	if n == 0 {
		return fmt.Sprintf(msgNoStructures, result.Label)
	}
	return fmt.Sprintf(msgFound, result.Label, n)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrBusy):
		return msgBusy
	case errors.Is(err, entity.ErrTimeout):
		return msgTimeout
	case errors.Is(err, entity.ErrDecode):
		return msgDecodeError
	default:
		return msgProcessingError
	}
}
