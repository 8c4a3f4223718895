package campaigns

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// List returns the campaigns that pass filter, with Applied reflecting
	// the session's applications.
	List(ctx context.Context, sessionID string, filter Filter) ([]models.Campaign, error)
	Get(ctx context.Context, sessionID, id string) (models.Campaign, error)
	// Apply marks the campaign as applied for the session. Applying twice is
	// not an error.
	Apply(ctx context.Context, sessionID, id string) (models.Campaign, error)
}

type ServiceImpl struct {
	logger  *zap.Logger
	repo    Repository
	tracker *ApplicationTracker
}

func NewService(repo Repository, tracker *ApplicationTracker, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		tracker: tracker,
	}
}

func (s *ServiceImpl) withApplications(sessionID string, c models.Campaign) models.Campaign {
	if !c.Applied && s.tracker.Has(sessionID, c.ID) {
		c.Applied = true
	}
	return c
}

func (s *ServiceImpl) List(ctx context.Context, sessionID string, filter Filter) ([]models.Campaign, error) {
	ctx, span := otel.Tracer("CampaignService").Start(ctx, "List", trace.WithAttributes(
		attribute.String("campaigns.tab", string(filter.Tab)),
		attribute.String("campaigns.category", filter.Category),
	))
	defer span.End()

	all, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list campaigns")
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	for i := range all {
		all[i] = s.withApplications(sessionID, all[i])
	}

	result := filter.Apply(all)
	span.SetAttributes(attribute.Int("campaigns.count", len(result)))
	return result, nil
}

func (s *ServiceImpl) Get(ctx context.Context, sessionID, id string) (models.Campaign, error) {
	ctx, span := otel.Tracer("CampaignService").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("campaign.id", id),
	))
	defer span.End()

	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		span.RecordError(err)
		return models.Campaign{}, err
	}
	return s.withApplications(sessionID, c), nil
}

func (s *ServiceImpl) Apply(ctx context.Context, sessionID, id string) (models.Campaign, error) {
	ctx, span := otel.Tracer("CampaignService").Start(ctx, "Apply", trace.WithAttributes(
		attribute.String("campaign.id", id),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Apply"), zap.String("campaignID", id))

	c, err := s.Get(ctx, sessionID, id)
	if err != nil {
		span.RecordError(err)
		return models.Campaign{}, err
	}
	if c.Applied {
		l.Debug("Campaign already applied")
		return c, nil
	}
	if c.Status != models.CampaignOpen {
		span.SetStatus(codes.Error, "campaign closed")
		return c, fmt.Errorf("campaign %q is %s: %w", id, c.Status, models.ErrConflict)
	}

	if s.tracker.Apply(sessionID, id) {
		metrics.Get().CampaignApplicationsTotal.Add(ctx, 1)
		l.Info("Applied to campaign")
	}
	c.Applied = true
	return c, nil
}
