package models

type CampaignStatus string

const (
	CampaignOpen   CampaignStatus = "open"
	CampaignClosed CampaignStatus = "closed"
)

type Brand struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Industry string `json:"industry"`
}

type Campaign struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Brand        Brand          `json:"brand"`
	Compensation string         `json:"compensation"`
	Requirements string         `json:"requirements"`
	Deadline     string         `json:"deadline"`
	Status       CampaignStatus `json:"status"`
	Applied      bool           `json:"applied"`
}

// IsAvailable reports whether the campaign can still be applied to.
func (c Campaign) IsAvailable() bool {
	return c.Status == CampaignOpen && !c.Applied
}
