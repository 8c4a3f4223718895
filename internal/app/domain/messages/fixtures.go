package messages

import "github.com/FACorreiaa/influencer-hub/internal/app/models"

const placeholderLogo = "https://via.placeholder.com/150"

// SampleConversations returns the built-in inbox in display order.
func SampleConversations() []models.Conversation {
	return []models.Conversation{
		{
			ID:              "1",
			BrandID:         "1",
			BrandName:       "Fashion Brand X",
			BrandLogo:       placeholderLogo,
			UnreadCount:     2,
			LastMessage:     "Thanks for your interest in our campaign!",
			LastMessageTime: "10:30 AM",
		},
		{
			ID:              "2",
			BrandID:         "2",
			BrandName:       "FitLife",
			BrandLogo:       placeholderLogo,
			UnreadCount:     0,
			LastMessage:     "The product will be shipped next week.",
			LastMessageTime: "Yesterday",
		},
		{
			ID:              "3",
			BrandID:         "3",
			BrandName:       "Natural Glow",
			BrandLogo:       placeholderLogo,
			UnreadCount:     0,
			LastMessage:     "We'd love to see your content draft before posting.",
			LastMessageTime: "Monday",
		},
		{
			ID:              "4",
			BrandID:         "4",
			BrandName:       "Travel Adventures",
			BrandLogo:       placeholderLogo,
			UnreadCount:     1,
			LastMessage:     "Here are the details for the resort booking.",
			LastMessageTime: "Jun 30",
		},
	}
}

// SampleMessages returns the built-in threads keyed by conversation id. Only
// the first conversation has messages.
func SampleMessages() map[string][]models.Message {
	brand, influencer := "brand", string(models.RoleInfluencer)
	return map[string][]models.Message{
		"1": {
			{
				ID:        "1_1",
				Sender:    brand,
				Receiver:  influencer,
				Content:   "Hi there! Thanks for your interest in our Summer Fashion Campaign.",
				Timestamp: "10:15 AM",
				Read:      true,
			},
			{
				ID:        "1_2",
				Sender:    influencer,
				Receiver:  brand,
				Content:   "Hello! Yes, I'm very excited about the opportunity to work with your brand.",
				Timestamp: "10:20 AM",
				Read:      true,
			},
			{
				ID:        "1_3",
				Sender:    brand,
				Receiver:  influencer,
				Content:   "Great! We've reviewed your profile and think you'd be a perfect fit for our summer collection.",
				Timestamp: "10:25 AM",
				Read:      true,
			},
			{
				ID:        "1_4",
				Sender:    brand,
				Receiver:  influencer,
				Content:   "Thanks for your interest in our campaign! We would like to send you some items from our summer collection for you to feature in your content. Could you please provide us with your shipping details?",
				Timestamp: "10:30 AM",
				Read:      false,
			},
		},
	}
}
