package campaigns

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

// Repository reads the campaign catalog. Campaigns come back in display order.
type Repository interface {
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
}

var (
	_ Repository = (*StaticRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*CachedRepository)(nil)
)

// StaticRepository serves the built-in sample catalog.
type StaticRepository struct {
	campaigns []models.Campaign
}

func NewStaticRepository() *StaticRepository {
	return &StaticRepository{campaigns: SampleCampaigns()}
}

func (r *StaticRepository) ListCampaigns(_ context.Context) ([]models.Campaign, error) {
	out := make([]models.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out, nil
}

func (r *StaticRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	all, _ := r.ListCampaigns(ctx)
	return findCampaign(all, id)
}

func findCampaign(all []models.Campaign, id string) (models.Campaign, error) {
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Campaign{}, fmt.Errorf("campaign %q: %w", id, models.ErrNotFound)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository reads campaigns and their brands from Postgres.
type PostgresRepository struct {
	pool   database.Querier
	logger *zap.Logger
}

func NewPostgresRepository(q database.Querier, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{pool: q, logger: logger}
}

func campaignSelect() sq.SelectBuilder {
	return psql.Select(
		"c.id", "c.title", "c.description",
		"b.id", "b.name", "b.logo", "b.industry",
		"c.compensation", "c.requirements", "c.deadline", "c.status", "c.applied",
	).
		From("campaigns c").
		Join("brands b ON b.id = c.brand_id")
}

func scanCampaign(row pgx.Row) (models.Campaign, error) {
	var (
		c        models.Campaign
		deadline time.Time
		status   string
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description,
		&c.Brand.ID, &c.Brand.Name, &c.Brand.Logo, &c.Brand.Industry,
		&c.Compensation, &c.Requirements, &deadline, &status, &c.Applied,
	)
	if err != nil {
		return models.Campaign{}, err
	}
	c.Deadline = deadline.Format(time.DateOnly)
	c.Status = models.CampaignStatus(status)
	return c, nil
}

func (r *PostgresRepository) ListCampaigns(ctx context.Context) (campaigns []models.Campaign, err error) {
	defer database.ObserveQuery(ctx, "list_campaigns", time.Now(), &err)

	query, args, err := campaignSelect().OrderBy("c.position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaigns query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query campaigns", zap.Error(err))
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	campaigns = []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *PostgresRepository) GetCampaign(ctx context.Context, id string) (c models.Campaign, err error) {
	defer database.ObserveQuery(ctx, "get_campaign", time.Now(), &err)

	query, args, err := campaignSelect().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("failed to build campaign query: %w", err)
	}

	c, err = scanCampaign(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Campaign{}, fmt.Errorf("campaign %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("Failed to get campaign", zap.String("id", id), zap.Error(err))
		return models.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

const catalogKey = "all"

// CachedRepository keeps the full catalog in the Campaigns cache so page
// renders do not hit the database each time.
type CachedRepository struct {
	next  Repository
	cache *cache.UnifiedCache[[]models.Campaign]
}

func NewCachedRepository(next Repository, c *cache.UnifiedCache[[]models.Campaign]) *CachedRepository {
	return &CachedRepository{next: next, cache: c}
}

func (r *CachedRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	if all, ok := r.cache.Get(catalogKey); ok {
		out := make([]models.Campaign, len(all))
		copy(out, all)
		return out, nil
	}
	all, err := r.next.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	stored := make([]models.Campaign, len(all))
	copy(stored, all)
	r.cache.Set(catalogKey, stored)
	return all, nil
}

func (r *CachedRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	all, err := r.ListCampaigns(ctx)
	if err != nil {
		return models.Campaign{}, err
	}
	return findCampaign(all, id)
}
