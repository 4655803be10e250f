package http

import (
	"time"

	"influencer-srv/internal/model"
	"influencer-srv/internal/user"
)

// =====================================================
// Request DTOs
// =====================================================

type socialAccountReq struct {
	Platform string `json:"platform" binding:"required"`
	Handle   string `json:"handle" binding:"required"`
	URL      string `json:"url,omitempty"`
}

type signupReq struct {
	UserType string `json:"user_type" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`

	Niche          string             `json:"niche,omitempty"`
	Categories     []string           `json:"categories,omitempty"`
	Languages      []string           `json:"languages,omitempty"`
	SocialAccounts []socialAccountReq `json:"social_accounts,omitempty"`

	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

func (r signupReq) toInput() user.SignupInput {
	accounts := make([]model.SocialAccount, 0, len(r.SocialAccounts))
	for _, a := range r.SocialAccounts {
		accounts = append(accounts, model.SocialAccount{
			Platform: model.Platform(a.Platform),
			Handle:   a.Handle,
			URL:      a.URL,
		})
	}

	return user.SignupInput{
		UserType:       model.UserType(r.UserType),
		Email:          r.Email,
		Password:       r.Password,
		FullName:       r.FullName,
		Niche:          r.Niche,
		Categories:     r.Categories,
		Languages:      r.Languages,
		SocialAccounts: accounts,
		CompanyName:    r.CompanyName,
		Website:        r.Website,
		Industry:       r.Industry,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		UserType: model.UserType(r.UserType),
	}
}

type exchangeCodeReq struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type signupResp struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

type userResp struct {
	ID                 string    `json:"id"`
	UserType           string    `json:"user_type"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Niche              string    `json:"niche,omitempty"`
	Categories         []string  `json:"categories,omitempty"`
	Languages          []string  `json:"languages,omitempty"`
	CompanyName        string    `json:"company_name,omitempty"`
	Website            string    `json:"website,omitempty"`
	Industry           string    `json:"industry,omitempty"`
	IsFBGraphConnected bool      `json:"is_fb_graph_connected"`
	CreatedAt          time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:                 u.ID,
		UserType:           string(u.UserType),
		Email:              u.Email,
		FullName:           u.FullName,
		Niche:              u.Niche,
		Categories:         u.Categories,
		Languages:          u.Languages,
		CompanyName:        u.CompanyName,
		Website:            u.Website,
		Industry:           u.Industry,
		IsFBGraphConnected: u.IsFBGraphConnected,
		CreatedAt:          u.CreatedAt,
	}
}

type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

type statsResp struct {
	TotalCreators int `json:"total_creators"`
	TotalBrands   int `json:"total_brands"`
	TotalUsers    int `json:"total_users"`
}
