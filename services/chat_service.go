package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("message is required")

// ChatService runs one question/answer turn against the completion
// service, grounded in the user's food log.
type ChatService struct {
	db       *gorm.DB
	llm      Completer
	selector *EvidenceSelector
	sessions *ConversationStore
}

func NewChatService(db *gorm.DB, llm Completer, sessions *ConversationStore) *ChatService {
	return &ChatService{
		db:       db,
		llm:      llm,
		selector: NewEvidenceSelector(db),
		sessions: sessions,
	}
}

// Ask records the user turn, gathers evidence and today's entries, calls
// the completion service and records the reply. A failed completion call
// comes back as the assistant's reply text, never as an error: the
// transcript still gets an assistant turn either way.
func (s *ChatService) Ask(ctx context.Context, userID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	var profile *models.User
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err == nil && user.ProfileComplete {
		profile = &user
	}

	today := dayStart(time.Now())
	var todayEntries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, today, today.AddDate(0, 0, 1)).
		Order("date DESC").
		Find(&todayEntries).Error; err != nil {
		return "", err
	}

	s.sessions.AppendUser(userID, message)

	evidence, err := s.selector.Select(ctx, message, userID)
	if err != nil {
		logger.Warn("evidence lookup failed, continuing without food context",
			zap.Uint("user_id", userID), zap.Error(err))
		evidence = nil
	}

	messages := composePrompt(s.sessions.History(userID), evidence, profile, todayEntries)

	reply, err := s.llm.Complete(ctx, messages)
	if err != nil {
		logger.Error("completion call failed", zap.Uint("user_id", userID), zap.Error(err))
		reply = fmt.Sprintf("Sorry, I encountered an error: %v", err)
	}

	s.sessions.AppendAssistant(userID, reply)
	return reply, nil
}

// Clear resets the caller's conversation.
func (s *ChatService) Clear(userID uint) {
	s.sessions.Clear(userID)
}
