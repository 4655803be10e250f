package user

import "influencer-srv/internal/model"

// SignupInput carries a new account registration.
type SignupInput struct {
	UserType model.UserType
	Email    string
	Password string
	FullName string

	// Creator fields.
	Niche          string
	Categories     []string
	Languages      []string
	SocialAccounts []model.SocialAccount

	// Brand fields.
	CompanyName string
	Website     string
	Industry    string
}

// SignupOutput identifies the created account.
type SignupOutput struct {
	UserID   string
	UserType model.UserType
}

// LoginInput carries a credential check. UserType disambiguates accounts
// sharing an email across the brand and creator spaces.
type LoginInput struct {
	Email    string
	Password string
	UserType model.UserType
}

// LoginOutput carries the signed session token and the account it belongs to.
type LoginOutput struct {
	Token string
	User  model.User
}

// StatsOutput summarizes the registered user base.
type StatsOutput struct {
	TotalCreators int
	TotalBrands   int
	TotalUsers    int
}

// ExchangeFBCodeInput carries the OAuth redirect parameters. State is the id
// of the user who started the connect flow.
type ExchangeFBCodeInput struct {
	Code  string
	State string
}

// ExchangeFBCodeOutput tells the delivery layer where to send the browser
// after a successful exchange.
type ExchangeFBCodeOutput struct {
	RedirectURL string
}
