package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

var ErrShareUnavailable = errors.New("no share channel configured")

// ClipboardConfirmation is shown when the text is handed back for copying
const ClipboardConfirmation = "Diary update copied to clipboard!"

// Sharer delivers a status summary to the owner
type Sharer interface {
	Share(ctx context.Context, title, text string) error
	Channel() string
}

type ShareResult struct {
	Channel string `json:"channel"`
	Shared  bool   `json:"shared"`
	Copied  bool   `json:"copied"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text"`
}

// ShareService tries the configured channel and falls back to returning the
// text for the client clipboard. It never fails.
type ShareService struct {
	sharer Sharer
	logger *zap.Logger
}

func NewShareService(sharer Sharer, logger *zap.Logger) *ShareService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShareService{sharer: sharer, logger: logger}
}

func (s *ShareService) Share(ctx context.Context, title, text string) ShareResult {
	if s.sharer != nil {
		err := s.sharer.Share(ctx, title, text)
		if err == nil {
			return ShareResult{Channel: s.sharer.Channel(), Shared: true, Text: text}
		}
		s.logger.Warn("Share channel failed, falling back to clipboard",
			zap.String("channel", s.sharer.Channel()), zap.Error(err))
	}
	return ShareResult{
		Channel: "clipboard",
		Copied:  true,
		Message: ClipboardConfirmation,
		Text:    text,
	}
}

// TelegramSharer posts the summary to one chat through the Bot API
type TelegramSharer struct {
	bot  *tele.Bot
	chat tele.ChatID
}

// NewTelegramSharer builds an offline bot: it only sends, it never polls
func NewTelegramSharer(token string, chatID int64) (*TelegramSharer, error) {
	if token == "" || chatID == 0 {
		return nil, ErrShareUnavailable
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSharer{bot: bot, chat: tele.ChatID(chatID)}, nil
}

func (s *TelegramSharer) Share(ctx context.Context, title, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.bot.Send(s.chat, text)
	return err
}

func (s *TelegramSharer) Channel() string { return "telegram" }
