package models

type Conversation struct {
	ID              string `json:"id"`
	BrandID         string `json:"brandId"`
	BrandName       string `json:"brandName"`
	BrandLogo       string `json:"brandLogo"`
	UnreadCount     int    `json:"unreadCount"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime string `json:"lastMessageTime"`
}

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// FromInfluencer reports whether the message was written by the signed in user.
func (m Message) FromInfluencer() bool {
	return m.Sender == string(RoleInfluencer)
}
