package campaigns

import "github.com/FACorreiaa/influencer-hub/internal/app/models"

const placeholderLogo = "https://via.placeholder.com/150"

// SampleCampaigns returns the built-in catalog in display order. Each call
// returns a fresh slice so callers may modify it.
func SampleCampaigns() []models.Campaign {
	return []models.Campaign{
		{
			ID:          "1",
			Title:       "Summer Fashion Collection Promotion",
			Description: "We are looking for fashion influencers to promote our new summer collection. Create engaging content showcasing our products in your unique style.",
			Brand: models.Brand{
				ID:       "1",
				Name:     "Fashion Brand X",
				Logo:     placeholderLogo,
				Industry: "Fashion",
			},
			Compensation: "$1,500 + Products",
			Requirements: "At least 20,000 followers on Instagram. Minimum 3% engagement rate. Must be in the US.",
			Deadline:     "2023-07-15",
			Status:       models.CampaignOpen,
		},
		{
			ID:          "2",
			Title:       "Fitness Product Launch",
			Description: "Join us for the launch of our revolutionary fitness equipment. We need fitness enthusiasts to demonstrate the product and share their experience.",
			Brand: models.Brand{
				ID:       "2",
				Name:     "FitLife",
				Logo:     placeholderLogo,
				Industry: "Fitness",
			},
			Compensation: "$2,000 + Product",
			Requirements: "Fitness niche influencers with at least 15,000 followers. Must be able to create both photo and video content.",
			Deadline:     "2023-07-22",
			Status:       models.CampaignOpen,
		},
		{
			ID:          "3",
			Title:       "Organic Skincare Review",
			Description: "Looking for beauty influencers to try and review our new organic skincare line. Authentic reviews highlighting your experience with the products.",
			Brand: models.Brand{
				ID:       "3",
				Name:     "Natural Glow",
				Logo:     placeholderLogo,
				Industry: "Beauty",
			},
			Compensation: "$1,200 + Full Product Line",
			Requirements: "Beauty niche influencers. Minimum 10,000 followers on Instagram or YouTube. Must show before/after results.",
			Deadline:     "2023-08-05",
			Status:       models.CampaignOpen,
			Applied:      true,
		},
		{
			ID:          "4",
			Title:       "Travel Destination Promotion",
			Description: "We are seeking travel influencers to visit and create content showcasing a luxury resort destination. All expenses paid plus compensation.",
			Brand: models.Brand{
				ID:       "4",
				Name:     "Travel Adventures",
				Logo:     placeholderLogo,
				Industry: "Travel",
			},
			Compensation: "$3,000 + All-expenses paid trip",
			Requirements: "Travel niche influencers with at least 30,000 followers. Must be available for a 5-day trip in August. Passport required.",
			Deadline:     "2023-07-30",
			Status:       models.CampaignOpen,
		},
	}
}
