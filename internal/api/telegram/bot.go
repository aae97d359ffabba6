package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"lumina-path/internal/domain/entity"
)

const (
	msgStart = `👋 Hi! I am LuminaPath, a retinal scan report assistant.

📸 Send me an OCT image (photo or .jpg/.png/.tiff file) and I will reply with a prediction and a PDF report.

📋 Commands:
/help — how to use the bot
/languages — explanation languages`

	msgHelp = `ℹ️ How to use the bot:

1️⃣ Send an OCT image as a photo or as a file
2️⃣ Optionally add a caption with patient data, one field per line:
Name: Jane Doe
Age: 45
Phone: +1 555 0100
Address: 1 Main St
Language: English
3️⃣ You get the prediction and a PDF report

📋 Commands:
/languages — explanation languages`

	msgSendPhoto       = "📸 Please upload an OCT image to proceed."
	msgUnknownCommand  = "❓ Unknown command. Use /help."
	msgProcessing      = "⏳ Processing the scan..."
	msgUnsupported     = "⚠️ Unsupported file. Send a .jpg, .jpeg, .png or .tiff image."
	msgProcessingError = "⚠️ Could not build the report. Please try again."

	downloadTimeout = 30 * time.Second
)

// Analyzer сервис предсказаний и отчётов
type Analyzer interface {
	Predict(ctx context.Context, scan *entity.ScanImage, lang entity.Language) (*entity.PredictionResult, error)
	GenerateReport(ctx context.Context, patient entity.PatientRecord, scan *entity.ScanImage, lang entity.Language) (*entity.ReportDocument, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	analyzer Analyzer
	logger   *zap.Logger
	client   *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, analyzer Analyzer, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("telegram bot authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:      api,
		analyzer: analyzer,
		logger:   logger,
		client:   &http.Client{Timeout: downloadTimeout},
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
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

	// Фото приходят в JPEG, файлы проверяем по расширению
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleScan(ctx, msg, photo.FileID, "photo.jpg")
		return
	}
	if msg.Document != nil {
		if _, err := entity.FormatFromFilename(msg.Document.FileName); err != nil {
			b.sendMessage(msg.Chat.ID, msgUnsupported)
			return
		}
		b.handleScan(ctx, msg, msg.Document.FileID, msg.Document.FileName)
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
	case "languages":
		b.sendMessage(msg.Chat.ID, formatLanguages())
	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleScan скачивает снимок, отправляет предсказание и PDF-отчёт
func (b *Bot) handleScan(ctx context.Context, msg *tgbotapi.Message, fileID, filename string) {
	req, err := parseCaption(msg.Caption)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "⚠️ "+err.Error()+"\n\n"+msgHelp)
		return
	}

	b.sendMessage(msg.Chat.ID, msgProcessing)

	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.logger.Error("download scan", zap.Error(err), zap.Int64("chat_id", msg.Chat.ID))
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	scan, err := entity.NewScanImage(filename, data)
	if err != nil {
		b.sendMessage(msg.Chat.ID, msgUnsupported)
		return
	}

	result, err := b.analyzer.Predict(ctx, scan, req.Language)
	if err != nil {
		b.logger.Error("predict", zap.Error(err))
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}
	b.sendMessage(msg.Chat.ID, formatPrediction(result))

	doc, err := b.analyzer.GenerateReport(ctx, req.Patient, scan, req.Language)
	if err != nil {
		b.logger.Error("generate report", zap.Error(err))
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	upload := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: doc.Filename, Bytes: doc.Data})
	upload.Caption = "📥 " + doc.Filename
	if _, err := b.api.Send(upload); err != nil {
		b.logger.Error("send report", zap.Error(err), zap.String("report_id", doc.ID.String()))
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

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
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
		b.logger.Error("send message", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}
