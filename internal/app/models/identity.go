package models

import "time"

type Role string

const (
	RoleInfluencer Role = "influencer"
	RoleBrand      Role = "brand"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the declared roles. The role is carried
// on the identity but no view branches on it.
func (r Role) Valid() bool {
	switch r {
	case RoleInfluencer, RoleBrand, RoleAdmin:
		return true
	}
	return false
}

type Platform struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Followers int    `json:"followers"`
	URL       string `json:"url"`
}

type InfluencerProfile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Avatar    string     `json:"avatar"`
	Bio       string     `json:"bio"`
	Followers int        `json:"followers"`
	Niche     []string   `json:"niche"`
	Platforms []Platform `json:"platforms"`
}

// Identity is the authenticated user held by the session store.
type Identity struct {
	ID      string            `json:"id"`
	Email   string            `json:"email"`
	Name    string            `json:"name"`
	Role    Role              `json:"role"`
	Profile InfluencerProfile `json:"profile"`
}

// SessionRecord is what the durable mirror holds for one login.
type SessionRecord struct {
	SessionID string    `json:"session_id"`
	IssuedAt  time.Time `json:"issued_at"`
	Identity  Identity  `json:"identity"`
}

// DemoIdentity returns the canned identity issued for the demo credential.
func DemoIdentity() Identity {
	return Identity{
		ID:    "1",
		Email: "demo@example.com",
		Name:  "Demo Influencer",
		Role:  RoleInfluencer,
		Profile: InfluencerProfile{
			ID:        "1",
			Name:      "Demo Influencer",
			Username:  "demoinfluencer",
			Avatar:    "https://via.placeholder.com/150",
			Bio:       "Lifestyle and travel influencer with a passion for photography",
			Followers: 25000,
			Niche:     []string{"lifestyle", "travel", "photography"},
			Platforms: []Platform{
				{
					Name:      "Instagram",
					Username:  "@demoinfluencer",
					Followers: 25000,
					URL:       "https://instagram.com/demoinfluencer",
				},
				{
					Name:      "TikTok",
					Username:  "@demoinfluencer",
					Followers: 15000,
					URL:       "https://tiktok.com/@demoinfluencer",
				},
			},
		},
	}
}
