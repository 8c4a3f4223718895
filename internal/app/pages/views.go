package pages

import "github.com/FACorreiaa/influencer-hub/internal/app/models"

// Option is one entry of a select box or tab bar.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

type LoginView struct {
	Email        string
	Error        string
	DemoEmail    string
	DemoPassword string
}

type CampaignsView struct {
	Query      string
	Category   string
	Tab        string
	Tabs       []Option
	Categories []Option
	Campaigns  []models.Campaign
	// Selected opens the details dialog on a full page render.
	Selected *models.Campaign
}

type MessagesView struct {
	Query         string
	Conversations []models.Conversation
	Selected      *models.Conversation
	Thread        ThreadView
}

type ThreadView struct {
	Conversation models.Conversation
	Messages     []models.Message
	Error        string
}

type DashboardView struct {
	User              *models.Identity
	Earnings          models.Earnings
	Overview          models.Overview
	Performance       models.Series
	Upcoming          []models.Campaign
	Recent            []models.Conversation
	ActiveCampaigns   int
	DeliverablesDone  int
	DeliverablesTotal int
}

type AnalyticsView struct {
	TimeRange    string
	Platform     string
	Tab          string
	TimeRanges   []Option
	Platforms    []Option
	Tabs         []Option
	Overview     models.Overview
	Growth       models.Series
	Engagement   models.Series
	Revenue      models.Series
	Distribution []models.PlatformShare
	Posts        []models.PostPerformance
	Campaigns    []models.CampaignPerformance
	Totals       models.CampaignPerformance
}
