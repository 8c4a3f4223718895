package messages

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (m *MockRepository) GetConversation(ctx context.Context, id string) (models.Conversation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Conversation), args.Error(1)
}

func (m *MockRepository) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func TestService_Conversations(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by brand name", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListConversations", mock.Anything).Return(SampleConversations(), nil).Once()
		s := NewService(repo, zap.NewNop())

		list, err := s.Conversations(ctx, "FITLIFE")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "FitLife", list[0].BrandName)
		repo.AssertExpectations(t)
	})

	t.Run("repository errors are wrapped", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListConversations", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		s := NewService(repo, zap.NewNop())

		_, err := s.Conversations(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list conversations")
	})
}

func TestService_Thread(t *testing.T) {
	s := NewService(NewStaticRepository(), zap.NewNop())
	ctx := context.Background()

	conversation, thread, err := s.Thread(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", conversation.ID)
	assert.Len(t, thread, 4)

	_, thread, err = s.Thread(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, thread)

	_, _, err = s.Thread(ctx, "99")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestService_Send(t *testing.T) {
	s := NewService(NewStaticRepository(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		content string
		wantErr error
	}{
		{"accepted", "1", "Sounds great, thanks!", nil},
		{"blank", "1", "   \n\t", ErrEmptyMessage},
		{"too long", "1", strings.Repeat("a", MaxMessageLength+1), ErrMessageTooLong},
		{"unknown conversation", "99", "hello", models.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Send(ctx, tt.id, tt.content)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, s.Send(ctx, "1", ""), models.ErrValidation)
}
