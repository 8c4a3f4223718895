package messages

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// MaxMessageLength bounds a composed message, in characters.
const MaxMessageLength = 2000

var (
	ErrEmptyMessage   = fmt.Errorf("message cannot be empty: %w", models.ErrValidation)
	ErrMessageTooLong = fmt.Errorf("message longer than %d characters: %w", MaxMessageLength, models.ErrValidation)
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Conversations(ctx context.Context, query string) ([]models.Conversation, error)
	Thread(ctx context.Context, conversationID string) (models.Conversation, []models.Message, error)
	// Send validates a composed message. Messages are not stored.
	Send(ctx context.Context, conversationID, content string) error
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
}

func NewService(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, repo: repo}
}

func (s *ServiceImpl) Conversations(ctx context.Context, query string) ([]models.Conversation, error) {
	ctx, span := otel.Tracer("MessageService").Start(ctx, "Conversations")
	defer span.End()

	all, err := s.repo.ListConversations(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return FilterConversations(all, query), nil
}

func (s *ServiceImpl) Thread(ctx context.Context, conversationID string) (models.Conversation, []models.Message, error) {
	ctx, span := otel.Tracer("MessageService").Start(ctx, "Thread", trace.WithAttributes(
		attribute.String("conversation.id", conversationID),
	))
	defer span.End()

	conversation, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		span.RecordError(err)
		return models.Conversation{}, nil, err
	}
	thread, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		span.RecordError(err)
		return models.Conversation{}, nil, err
	}
	return conversation, thread, nil
}

func (s *ServiceImpl) Send(ctx context.Context, conversationID, content string) error {
	_, span := otel.Tracer("MessageService").Start(ctx, "Send", trace.WithAttributes(
		attribute.String("conversation.id", conversationID),
	))
	defer span.End()

	if _, err := s.repo.GetConversation(ctx, conversationID); err != nil {
		return err
	}

	content = strings.TrimSpace(content)
	switch {
	case content == "":
		return ErrEmptyMessage
	case utf8.RuneCountInString(content) > MaxMessageLength:
		return ErrMessageTooLong
	}

	s.logger.Debug("Discarding composed message",
		zap.String("conversationID", conversationID),
		zap.Int("length", len(content)))
	return nil
}
