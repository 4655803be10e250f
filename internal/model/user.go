package model

import "time"

// UserType distinguishes the two account kinds.
type UserType string

const (
	UserTypeBrand   UserType = "brand"
	UserTypeCreator UserType = "creator"
)

// SocialAccount links a user to one of their platform accounts.
type SocialAccount struct {
	Platform Platform `json:"platform"`
	Handle   string   `json:"handle"`
	URL      string   `json:"url,omitempty"`
}

// User is a registered brand or creator account.
type User struct {
	ID       string   `json:"id"`
	UserType UserType `json:"user_type"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	FullName string   `json:"full_name"`

	// Creator fields.
	Niche          string          `json:"niche,omitempty"`
	Categories     []string        `json:"categories,omitempty"`
	Languages      []string        `json:"languages,omitempty"`
	SocialAccounts []SocialAccount `json:"social_accounts,omitempty"`

	// Brand fields.
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`

	FBAccessToken      string `json:"-"`
	IsFBGraphConnected bool   `json:"is_fb_graph_connected"`

	IsDeleted bool      `json:"-"`
	IsBlocked bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
