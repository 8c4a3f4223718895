package dashboard

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/influencer-hub/internal/app/domain/analytics"
	"github.com/FACorreiaa/influencer-hub/internal/app/domain/campaigns"
	"github.com/FACorreiaa/influencer-hub/internal/app/domain/messages"
	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

const (
	// MaxUpcoming caps the upcoming campaigns card.
	MaxUpcoming = 2

	activeCampaigns   = 2
	deliverablesDone  = 3
	deliverablesTotal = 4
)

type Summary struct {
	Earnings          models.Earnings       `json:"earnings"`
	Overview          models.Overview       `json:"overview"`
	Performance       models.Series         `json:"performance"`
	Upcoming          []models.Campaign     `json:"upcoming"`
	Recent            []models.Conversation `json:"recent"`
	ActiveCampaigns   int                   `json:"activeCampaigns"`
	DeliverablesDone  int                   `json:"deliverablesDone"`
	DeliverablesTotal int                   `json:"deliverablesTotal"`
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Summary gathers the dashboard cards for the session.
	Summary(ctx context.Context, sessionID string) (Summary, error)
}

type ServiceImpl struct {
	logger    *zap.Logger
	campaigns campaigns.Service
	messages  messages.Service
	analytics analytics.Service
}

func NewService(c campaigns.Service, m messages.Service, a analytics.Service, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		campaigns: c,
		messages:  m,
		analytics: a,
	}
}

func (s *ServiceImpl) Summary(ctx context.Context, sessionID string) (Summary, error) {
	ctx, span := otel.Tracer("DashboardService").Start(ctx, "Summary")
	defer span.End()

	l := s.logger.With(zap.String("method", "Summary"))

	summary := Summary{
		ActiveCampaigns:   activeCampaigns,
		DeliverablesDone:  deliverablesDone,
		DeliverablesTotal: deliverablesTotal,
	}

	// Each goroutine writes its own fields of summary.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		earnings, err := s.analytics.Earnings(gctx)
		if err != nil {
			return fmt.Errorf("failed to load earnings: %w", err)
		}
		summary.Earnings = earnings
		return nil
	})
	g.Go(func() error {
		overview, err := s.analytics.Overview(gctx)
		if err != nil {
			return fmt.Errorf("failed to load overview: %w", err)
		}
		series, err := s.analytics.Performance(gctx)
		if err != nil {
			return fmt.Errorf("failed to load performance: %w", err)
		}
		summary.Overview = overview
		summary.Performance = series
		return nil
	})
	g.Go(func() error {
		available, err := s.campaigns.List(gctx, sessionID, campaigns.NewFilter(string(campaigns.TabAvailable), "", campaigns.AllCategories))
		if err != nil {
			return fmt.Errorf("failed to load campaigns: %w", err)
		}
		summary.Upcoming = Upcoming(available, MaxUpcoming)
		return nil
	})
	g.Go(func() error {
		conversations, err := s.messages.Conversations(gctx, "")
		if err != nil {
			return fmt.Errorf("failed to load conversations: %w", err)
		}
		summary.Recent = messages.WithUnread(conversations)
		return nil
	})

	if err := g.Wait(); err != nil {
		l.Error("Failed to build dashboard", zap.Error(err))
		span.RecordError(err)
		return Summary{}, err
	}
	return summary, nil
}

// Upcoming orders campaigns by deadline, earliest first, and keeps at most
// limit of them. Deadlines are ISO dates so they sort as strings.
func Upcoming(list []models.Campaign, limit int) []models.Campaign {
	out := append([]models.Campaign{}, list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline < out[j].Deadline
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
