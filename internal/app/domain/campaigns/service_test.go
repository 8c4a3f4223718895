package campaigns

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/cache"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Campaign), args.Error(1)
}

func newTestTracker() *ApplicationTracker {
	return NewApplicationTracker(cache.NewUnifiedCache[map[string]struct{}](time.Hour, "applications", zap.NewNop()))
}

func newTestService() *ServiceImpl {
	return NewService(NewStaticRepository(), newTestTracker(), zap.NewNop())
}

const (
	sessionA = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	sessionB = "6fa459ea-ee8a-3ca4-894e-db77e160355e"
)

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the campaign applied for the session only", func(t *testing.T) {
		s := newTestService()

		c, err := s.Apply(ctx, sessionA, "1")
		require.NoError(t, err)
		assert.True(t, c.Applied)

		applied, err := s.List(ctx, sessionA, NewFilter("applied", "", ""))
		require.NoError(t, err)
		require.Len(t, applied, 2)
		assert.Equal(t, "1", applied[0].ID)
		assert.Equal(t, "3", applied[1].ID)

		other, err := s.List(ctx, sessionB, NewFilter("applied", "", ""))
		require.NoError(t, err)
		require.Len(t, other, 1)
		assert.Equal(t, "3", other[0].ID)
	})

	t.Run("applying twice is idempotent", func(t *testing.T) {
		s := newTestService()

		_, err := s.Apply(ctx, sessionA, "2")
		require.NoError(t, err)
		c, err := s.Apply(ctx, sessionA, "2")
		require.NoError(t, err)
		assert.True(t, c.Applied)
	})

	t.Run("the sample applied campaign stays applied", func(t *testing.T) {
		s := newTestService()

		c, err := s.Apply(ctx, sessionA, "3")

		require.NoError(t, err)
		assert.True(t, c.Applied)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		s := newTestService()

		_, err := s.Apply(ctx, sessionA, "42")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("closed campaign", func(t *testing.T) {
		repo := new(MockRepository)
		closed := SampleCampaigns()[0]
		closed.Status = models.CampaignClosed
		repo.On("GetCampaign", mock.Anything, "1").Return(closed, nil)
		s := NewService(repo, newTestTracker(), zap.NewNop())

		_, err := s.Apply(ctx, sessionA, "1")

		assert.ErrorIs(t, err, models.ErrConflict)
		assert.False(t, s.tracker.Has(sessionA, "1"))
		repo.AssertExpectations(t)
	})
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListCampaigns", mock.Anything).Return(nil, errors.New("db down"))
	s := NewService(repo, newTestTracker(), zap.NewNop())

	_, err := s.List(context.Background(), sessionA, NewFilter("", "", ""))

	assert.ErrorContains(t, err, "db down")
	repo.AssertExpectations(t)
}

func TestService_Get(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	c, err := s.Get(ctx, sessionA, "4")
	require.NoError(t, err)
	assert.Equal(t, "Travel Destination Promotion", c.Title)
	assert.False(t, c.Applied)

	_, err = s.Apply(ctx, sessionA, "4")
	require.NoError(t, err)
	c, err = s.Get(ctx, sessionA, "4")
	require.NoError(t, err)
	assert.True(t, c.Applied)
}

func TestApplicationTracker(t *testing.T) {
	tracker := newTestTracker()

	assert.True(t, tracker.Apply(sessionA, "1"))
	assert.False(t, tracker.Apply(sessionA, "1"))
	assert.True(t, tracker.Has(sessionA, "1"))
	assert.False(t, tracker.Has(sessionB, "1"))

	assert.False(t, tracker.Apply("", "1"))
	assert.False(t, tracker.Has("", "1"))

	tracker.Forget(sessionA)
	assert.False(t, tracker.Has(sessionA, "1"))
}

func TestApplicationTracker_Concurrent(t *testing.T) {
	tracker := newTestTracker()
	ids := []string{"1", "2", "3", "4"}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			tracker.Apply(sessionA, id)
		}(ids[i%len(ids)])
	}
	wg.Wait()

	for _, id := range ids {
		assert.True(t, tracker.Has(sessionA, id), id)
	}
}
