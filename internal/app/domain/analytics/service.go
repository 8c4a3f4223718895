package analytics

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// Report is everything the analytics page shows for one Query.
type Report struct {
	Query        Query                        `json:"-"`
	TimeRange    string                       `json:"timeRange"`
	Platform     string                       `json:"platform"`
	Overview     models.Overview              `json:"overview"`
	Growth       models.Series                `json:"growth"`
	Engagement   models.Series                `json:"engagement"`
	Revenue      models.Series                `json:"revenue"`
	Distribution []models.PlatformShare       `json:"distribution"`
	Posts        []models.PostPerformance     `json:"posts"`
	Campaigns    []models.CampaignPerformance `json:"campaigns"`
	Totals       models.CampaignPerformance   `json:"totals"`
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Report(ctx context.Context, q Query) (Report, error)
	Overview(ctx context.Context) (models.Overview, error)
	Earnings(ctx context.Context) (models.Earnings, error)
	Performance(ctx context.Context) (models.Series, error)
}

type ServiceImpl struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Report assembles the page data. The time range is echoed back but the
// sample numbers do not vary with it. The platform narrows the distribution
// and the top posts.
func (s *ServiceImpl) Report(ctx context.Context, q Query) (Report, error) {
	_, span := otel.Tracer("AnalyticsService").Start(ctx, "Report", trace.WithAttributes(
		attribute.String("analytics.range", q.TimeRange),
		attribute.String("analytics.platform", q.Platform),
	))
	defer span.End()

	distribution := []models.PlatformShare{}
	for _, share := range PlatformDistribution() {
		if q.matchesPlatform(share.Platform) {
			distribution = append(distribution, share)
		}
	}
	posts := []models.PostPerformance{}
	for _, p := range TopPosts() {
		if q.matchesPlatform(p.Platform) {
			posts = append(posts, p)
		}
	}
	campaigns := CampaignPerformance()

	return Report{
		Query:        q,
		TimeRange:    q.TimeRange,
		Platform:     q.Platform,
		Overview:     SampleOverview(),
		Growth:       GrowthSeries(),
		Engagement:   EngagementSeries(),
		Revenue:      RevenueSeries(),
		Distribution: distribution,
		Posts:        posts,
		Campaigns:    campaigns,
		Totals:       Totals(campaigns),
	}, nil
}

func (s *ServiceImpl) Overview(_ context.Context) (models.Overview, error) {
	return SampleOverview(), nil
}

func (s *ServiceImpl) Earnings(_ context.Context) (models.Earnings, error) {
	return SampleEarnings(), nil
}

func (s *ServiceImpl) Performance(_ context.Context) (models.Series, error) {
	series := EngagementSeries()
	series.Label = "Engagement Rate"
	return series, nil
}

// Totals sums impressions, clicks and earnings. Engagement and conversion are
// plain averages rounded to one decimal.
func Totals(rows []models.CampaignPerformance) models.CampaignPerformance {
	total := models.CampaignPerformance{ID: "total", Campaign: "Total"}
	if len(rows) == 0 {
		return total
	}
	var engagement, conversion float64
	for _, r := range rows {
		total.Impressions += r.Impressions
		total.Clicks += r.Clicks
		total.Earnings += r.Earnings
		engagement += r.Engagement
		conversion += r.Conversion
	}
	n := float64(len(rows))
	total.Engagement = round1(engagement / n)
	total.Conversion = round1(conversion / n)
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
