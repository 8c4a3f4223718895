package models

// Overview holds the headline numbers on the analytics page. Growth values
// are percentages relative to the previous period.
type Overview struct {
	Followers         int     `json:"followers"`
	FollowersGrowth   float64 `json:"followersGrowth"`
	Impressions       int     `json:"impressions"`
	ImpressionsGrowth float64 `json:"impressionsGrowth"`
	Engagement        float64 `json:"engagement"`
	EngagementGrowth  float64 `json:"engagementGrowth"`
	Earnings          int     `json:"earnings"`
	EarningsGrowth    float64 `json:"earningsGrowth"`
}

// Series is a labelled set of points for one chart.
type Series struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type CampaignPerformance struct {
	ID          string  `json:"id"`
	Campaign    string  `json:"campaign"`
	Brand       string  `json:"brand"`
	BrandLogo   string  `json:"brandLogo"`
	Impressions int     `json:"impressions"`
	Engagement  float64 `json:"engagement"`
	Clicks      int     `json:"clicks"`
	Conversion  float64 `json:"conversion"`
	Earnings    int     `json:"earnings"`
}

type PlatformShare struct {
	Platform  string `json:"platform"`
	Followers int    `json:"followers"`
}

type Earnings struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	ThisMonth int `json:"thisMonth"`
	Campaigns int `json:"campaigns"`
}

// PostPerformance is one row of the top posts table.
type PostPerformance struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Platform    string  `json:"platform"`
	Likes       int     `json:"likes"`
	Comments    int     `json:"comments"`
	Shares      int     `json:"shares"`
	Engagement  float64 `json:"engagement"`
	Impressions int     `json:"impressions"`
}
