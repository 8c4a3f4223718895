package messages

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	database "github.com/FACorreiaa/influencer-hub/internal/db"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/cache"
)

// Repository reads the inbox. Conversations and messages come back in
// display order.
type Repository interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	GetConversation(ctx context.Context, id string) (models.Conversation, error)
	// ListMessages returns the thread of an existing conversation. A
	// conversation without messages yields an empty slice.
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)
}

var (
	_ Repository = (*StaticRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*CachedRepository)(nil)
)

type StaticRepository struct {
	conversations []models.Conversation
	messages      map[string][]models.Message
}

func NewStaticRepository() *StaticRepository {
	return &StaticRepository{
		conversations: SampleConversations(),
		messages:      SampleMessages(),
	}
}

func (r *StaticRepository) ListConversations(_ context.Context) ([]models.Conversation, error) {
	out := make([]models.Conversation, len(r.conversations))
	copy(out, r.conversations)
	return out, nil
}

func (r *StaticRepository) GetConversation(_ context.Context, id string) (models.Conversation, error) {
	return findConversation(r.conversations, id)
}

func (r *StaticRepository) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	if _, err := r.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	thread := r.messages[conversationID]
	out := make([]models.Message, len(thread))
	copy(out, thread)
	return out, nil
}

func findConversation(all []models.Conversation, id string) (models.Conversation, error) {
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Conversation{}, fmt.Errorf("conversation %q: %w", id, models.ErrNotFound)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresRepository struct {
	pool   database.Querier
	logger *zap.Logger
}

func NewPostgresRepository(q database.Querier, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{pool: q, logger: logger}
}

func conversationSelect() sq.SelectBuilder {
	return psql.Select(
		"c.id", "b.id", "b.name", "b.logo",
		"c.unread_count", "c.last_message", "c.last_message_time",
	).
		From("conversations c").
		Join("brands b ON b.id = c.brand_id")
}

func scanConversation(row pgx.Row) (models.Conversation, error) {
	var c models.Conversation
	err := row.Scan(&c.ID, &c.BrandID, &c.BrandName, &c.BrandLogo, &c.UnreadCount, &c.LastMessage, &c.LastMessageTime)
	return c, err
}

func (r *PostgresRepository) ListConversations(ctx context.Context) (conversations []models.Conversation, err error) {
	defer database.ObserveQuery(ctx, "list_conversations", time.Now(), &err)

	query, args, err := conversationSelect().OrderBy("c.position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build conversations query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query conversations", zap.Error(err))
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	conversations = []models.Conversation{}
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversations: %w", err)
	}
	return conversations, nil
}

func (r *PostgresRepository) GetConversation(ctx context.Context, id string) (c models.Conversation, err error) {
	defer database.ObserveQuery(ctx, "get_conversation", time.Now(), &err)

	query, args, err := conversationSelect().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("failed to build conversation query: %w", err)
	}

	c, err = scanConversation(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Conversation{}, fmt.Errorf("conversation %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("Failed to get conversation", zap.String("id", id), zap.Error(err))
		return models.Conversation{}, fmt.Errorf("failed to get conversation: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, conversationID string) (thread []models.Message, err error) {
	if _, err := r.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	defer database.ObserveQuery(ctx, "list_messages", time.Now(), &err)

	query, args, err := psql.Select("id", "sender", "receiver", "content", "sent_at_label", "read").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build messages query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query messages", zap.String("conversationID", conversationID), zap.Error(err))
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	thread = []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Receiver, &m.Content, &m.Timestamp, &m.Read); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		thread = append(thread, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return thread, nil
}

const inboxKey = "all"

// CachedRepository keeps the inbox and threads in the shared caches.
type CachedRepository struct {
	next          Repository
	conversations *cache.UnifiedCache[[]models.Conversation]
	messages      *cache.UnifiedCache[[]models.Message]
}

func NewCachedRepository(next Repository, conversations *cache.UnifiedCache[[]models.Conversation], messages *cache.UnifiedCache[[]models.Message]) *CachedRepository {
	return &CachedRepository{next: next, conversations: conversations, messages: messages}
}

func (r *CachedRepository) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	all, ok := r.conversations.Get(inboxKey)
	if !ok {
		var err error
		if all, err = r.next.ListConversations(ctx); err != nil {
			return nil, err
		}
		r.conversations.Set(inboxKey, all)
	}
	out := make([]models.Conversation, len(all))
	copy(out, all)
	return out, nil
}

func (r *CachedRepository) GetConversation(ctx context.Context, id string) (models.Conversation, error) {
	all, err := r.ListConversations(ctx)
	if err != nil {
		return models.Conversation{}, err
	}
	return findConversation(all, id)
}

func (r *CachedRepository) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	thread, ok := r.messages.Get(conversationID)
	if !ok {
		var err error
		if thread, err = r.next.ListMessages(ctx, conversationID); err != nil {
			return nil, err
		}
		r.messages.Set(conversationID, thread)
	}
	out := make([]models.Message, len(thread))
	copy(out, thread)
	return out, nil
}
