package analytics

import "github.com/FACorreiaa/influencer-hub/internal/app/models"

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

func labels() []string {
	return append([]string(nil), months...)
}

// SampleOverview returns the headline numbers for the demo account.
func SampleOverview() models.Overview {
	return models.Overview{
		Followers:         25000,
		FollowersGrowth:   5.2,
		Impressions:       284500,
		ImpressionsGrowth: 12.3,
		Engagement:        5.7,
		EngagementGrowth:  0.8,
		Earnings:          12500,
		EarningsGrowth:    15.2,
	}
}

func SampleEarnings() models.Earnings {
	return models.Earnings{
		Total:     12500,
		Pending:   3000,
		ThisMonth: 2500,
		Campaigns: 8,
	}
}

func GrowthSeries() models.Series {
	return models.Series{
		Label:  "Followers",
		Labels: labels(),
		Values: []float64{21000, 22100, 22800, 23500, 24200, 25000},
	}
}

func EngagementSeries() models.Series {
	return models.Series{
		Label:  "Engagement Rate (%)",
		Labels: labels(),
		Values: []float64{4.2, 3.8, 5.1, 4.9, 6.2, 5.7},
	}
}

func RevenueSeries() models.Series {
	return models.Series{
		Label:  "Campaign Revenue",
		Labels: []string{"Fashion", "Beauty", "Fitness", "Travel", "Lifestyle"},
		Values: []float64{4200, 3000, 2500, 1800, 1000},
	}
}

func PlatformDistribution() []models.PlatformShare {
	return []models.PlatformShare{
		{Platform: "Instagram", Followers: 16000},
		{Platform: "TikTok", Followers: 12000},
		{Platform: "YouTube", Followers: 5000},
		{Platform: "Twitter", Followers: 3000},
	}
}

func TopPosts() []models.PostPerformance {
	return []models.PostPerformance{
		{Title: "Summer Fashion Lookbook", Date: "Jun 15, 2023", Platform: "Instagram", Likes: 3245, Comments: 156, Shares: 289, Engagement: 7.2, Impressions: 52340},
		{Title: "Morning Routine Video", Date: "Jun 10, 2023", Platform: "TikTok", Likes: 12563, Comments: 342, Shares: 1453, Engagement: 9.1, Impressions: 164230},
		{Title: "Product Review", Date: "Jun 5, 2023", Platform: "YouTube", Likes: 1243, Comments: 85, Shares: 42, Engagement: 4.5, Impressions: 31240},
		{Title: "Travel Tips", Date: "May 28, 2023", Platform: "Instagram", Likes: 2567, Comments: 132, Shares: 178, Engagement: 5.8, Impressions: 48760},
	}
}

func CampaignPerformance() []models.CampaignPerformance {
	const logo = "https://via.placeholder.com/40"
	return []models.CampaignPerformance{
		{ID: "1", Campaign: "Summer Fashion Collection", Brand: "Fashion Brand X", BrandLogo: logo, Impressions: 85000, Engagement: 6.2, Clicks: 4200, Conversion: 2.8, Earnings: 1500},
		{ID: "2", Campaign: "Fitness Product Launch", Brand: "FitLife", BrandLogo: logo, Impressions: 62000, Engagement: 5.8, Clicks: 3100, Conversion: 3.2, Earnings: 2000},
		{ID: "3", Campaign: "Organic Skincare Review", Brand: "Natural Glow", BrandLogo: logo, Impressions: 43000, Engagement: 7.1, Clicks: 2800, Conversion: 4.1, Earnings: 1200},
		{ID: "4", Campaign: "Travel Destination Promotion", Brand: "Travel Adventures", BrandLogo: logo, Impressions: 94000, Engagement: 4.5, Clicks: 3600, Conversion: 1.9, Earnings: 3000},
	}
}
