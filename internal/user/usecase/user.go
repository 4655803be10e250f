package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"influencer-srv/internal/model"
	"influencer-srv/internal/user"
	"influencer-srv/internal/user/repository"
	"influencer-srv/pkg/scope"
)

// Signup registers a brand or creator account. The email must be unused
// across both account types.
func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.SignupOutput, error) {
	if input.UserType != model.UserTypeBrand && input.UserType != model.UserTypeCreator {
		return user.SignupOutput{}, user.ErrInvalidUserType
	}

	_, err := uc.repo.GetByEmail(ctx, input.Email)
	if err == nil {
		return user.SignupOutput{}, user.ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "user.usecase.Signup: get by email failed: %v", err)
		return user.SignupOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	hashed, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Signup: hash password failed: %v", err)
		return user.SignupOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		User: model.User{
			UserType:       input.UserType,
			Email:          input.Email,
			Password:       hashed,
			FullName:       input.FullName,
			Niche:          input.Niche,
			Categories:     input.Categories,
			Languages:      input.Languages,
			SocialAccounts: input.SocialAccounts,
			CompanyName:    input.CompanyName,
			Website:        input.Website,
			Industry:       input.Industry,
		},
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return user.SignupOutput{}, user.ErrEmailExists
		}
		uc.l.Errorf(ctx, "user.usecase.Signup: create failed: %v", err)
		return user.SignupOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	return user.SignupOutput{UserID: created.ID, UserType: created.UserType}, nil
}

// Login checks credentials and signs a session token carrying the user id
// and role.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	u, err := uc.repo.GetByEmailAndType(ctx, repository.GetByEmailAndTypeOptions{
		Email:    input.Email,
		UserType: input.UserType,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.LoginOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.Login: get by email failed: %v", err)
		return user.LoginOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	if !uc.encrypter.CheckPasswordHash(input.Password, u.Password) {
		return user.LoginOutput{}, user.ErrWrongPassword
	}

	token, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID:   u.ID,
		Username: u.Email,
		Role:     string(u.UserType),
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login: create token failed: %v", err)
		return user.LoginOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	return user.LoginOutput{Token: token, User: u}, nil
}

// Stats returns headcounts of the non-deleted user base.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (user.StatsOutput, error) {
	creators, err := uc.repo.CountByType(ctx, model.UserTypeCreator)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Stats: count creators failed: %v", err)
		return user.StatsOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	brands, err := uc.repo.CountByType(ctx, model.UserTypeBrand)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Stats: count brands failed: %v", err)
		return user.StatsOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	return user.StatsOutput{
		TotalCreators: creators,
		TotalBrands:   brands,
		TotalUsers:    creators + brands,
	}, nil
}

// ExchangeFBCode trades the OAuth redirect code for a Graph access token and
// stores it, encrypted, on the user carried in State.
func (uc *implUseCase) ExchangeFBCode(ctx context.Context, input user.ExchangeFBCodeInput) (user.ExchangeFBCodeOutput, error) {
	if input.Code == "" || input.State == "" {
		return user.ExchangeFBCodeOutput{}, user.ErrOAuthExchangeFailed
	}

	params := url.Values{}
	params.Set("client_id", uc.cfg.FBAppID)
	params.Set("redirect_uri", uc.cfg.FBRedirectURI)
	params.Set("client_secret", uc.cfg.FBAppSecret)
	params.Set("code", input.Code)
	exchangeURL := fmt.Sprintf("%s/oauth/access_token?%s", uc.cfg.FBGraphURL, params.Encode())

	body, status, err := uc.httpClient.Get(ctx, exchangeURL, nil)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ExchangeFBCode: graph call failed: %v", err)
		return user.ExchangeFBCodeOutput{}, fmt.Errorf("%w: %v", user.ErrOAuthExchangeFailed, err)
	}
	if status != http.StatusOK {
		uc.l.Errorf(ctx, "user.usecase.ExchangeFBCode: graph returned status %d: %s", status, string(body))
		return user.ExchangeFBCodeOutput{}, user.ErrOAuthExchangeFailed
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		uc.l.Errorf(ctx, "user.usecase.ExchangeFBCode: decode token response failed: %v", err)
		return user.ExchangeFBCodeOutput{}, user.ErrOAuthExchangeFailed
	}

	// Token at rest is AES-encrypted, never stored in the clear.
	encrypted, err := uc.encrypter.Encrypt(tokenResp.AccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ExchangeFBCode: encrypt token failed: %v", err)
		return user.ExchangeFBCodeOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	if err := uc.repo.UpdateFBToken(ctx, repository.UpdateFBTokenOptions{
		UserID:      input.State,
		AccessToken: encrypted,
	}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ExchangeFBCodeOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.ExchangeFBCode: store token failed: %v", err)
		return user.ExchangeFBCodeOutput{}, fmt.Errorf("%w: %v", user.ErrStoreFailed, err)
	}

	return user.ExchangeFBCodeOutput{RedirectURL: uc.cfg.FrontendURL}, nil
}
