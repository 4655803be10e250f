package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"influencer-srv/internal/model"
	"influencer-srv/internal/user"
	"influencer-srv/internal/user/repository"
	"influencer-srv/pkg/log"
	"influencer-srv/pkg/scope"
)

type fakeRepo struct {
	users map[string]model.User // keyed by email

	createErr   error
	created     *model.User
	counts      map[model.UserType]int
	countErr    error
	tokenUpdate *repository.UpdateFBTokenOptions
	tokenErr    error
}

func (f *fakeRepo) Create(_ context.Context, opt repository.CreateOptions) (model.User, error) {
	if f.createErr != nil {
		return model.User{}, f.createErr
	}
	u := opt.User
	if u.ID == "" {
		u.ID = "u-new"
	}
	f.created = &u
	return u, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByEmailAndType(_ context.Context, opt repository.GetByEmailAndTypeOptions) (model.User, error) {
	u, ok := f.users[opt.Email]
	if !ok || u.UserType != opt.UserType {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeRepo) CountByType(_ context.Context, userType model.UserType) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[userType], nil
}

func (f *fakeRepo) UpdateFBToken(_ context.Context, opt repository.UpdateFBTokenOptions) error {
	if f.tokenErr != nil {
		return f.tokenErr
	}
	f.tokenUpdate = &opt
	return nil
}

type fakeEncrypter struct{}

func (fakeEncrypter) Encrypt(plaintext string) (string, error) { return "enc:" + plaintext, nil }
func (fakeEncrypter) Decrypt(ciphertext string) (string, error) {
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}
func (fakeEncrypter) EncryptBytesToString(data []byte) (string, error) { return string(data), nil }
func (fakeEncrypter) DecryptStringToBytes(ciphertext string) ([]byte, error) {
	return []byte(ciphertext), nil
}
func (fakeEncrypter) HashPassword(password string) (string, error) { return "hash:" + password, nil }
func (fakeEncrypter) CheckPasswordHash(password, hash string) bool {
	return hash == "hash:"+password
}

type fakeJWT struct {
	payload scope.Payload
	err     error
}

func (f *fakeJWT) CreateToken(payload scope.Payload) (string, error) {
	f.payload = payload
	return "token-" + payload.UserID, f.err
}

func (f *fakeJWT) Verify(string) (scope.Payload, error) { return scope.Payload{}, nil }

type fakeHTTPClient struct {
	body   []byte
	status int
	err    error

	gotURL string
}

func (f *fakeHTTPClient) Get(_ context.Context, url string, _ map[string]string) ([]byte, int, error) {
	f.gotURL = url
	return f.body, f.status, f.err
}

func (f *fakeHTTPClient) Post(_ context.Context, _ string, _ interface{}, _ map[string]string) ([]byte, int, error) {
	return nil, 0, errors.New("unexpected post")
}

func newTestUseCase(repo *fakeRepo, jwtMgr *fakeJWT, httpClient *fakeHTTPClient, cfg Config) user.UseCase {
	return New(repo, fakeEncrypter{}, jwtMgr, httpClient, log.Init(log.ZapConfig{Level: "fatal"}), cfg)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with hashed password", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		out, err := uc.Signup(ctx, user.SignupInput{
			UserType:   model.UserTypeCreator,
			Email:      "alice@example.com",
			Password:   "s3cret",
			FullName:   "Alice",
			Niche:      "tech",
			Categories: []string{"Tech"},
		})
		if err != nil {
			t.Fatalf("Signup() error = %v", err)
		}
		if out.UserID == "" {
			t.Error("Signup() returned empty user id")
		}
		if out.UserType != model.UserTypeCreator {
			t.Errorf("user type = %q, want creator", out.UserType)
		}
		if repo.created.Password != "hash:s3cret" {
			t.Errorf("stored password = %q, want hashed", repo.created.Password)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{
			"alice@example.com": {ID: "u1", Email: "alice@example.com", UserType: model.UserTypeCreator},
		}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Signup(ctx, user.SignupInput{
			UserType: model.UserTypeBrand,
			Email:    "alice@example.com",
			Password: "pw",
		})
		if !errors.Is(err, user.ErrEmailExists) {
			t.Errorf("Signup() error = %v, want ErrEmailExists", err)
		}
	})

	t.Run("duplicate caught at insert", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{}, createErr: repository.ErrDuplicateEmail}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Signup(ctx, user.SignupInput{
			UserType: model.UserTypeBrand,
			Email:    "bob@example.com",
			Password: "pw",
		})
		if !errors.Is(err, user.ErrEmailExists) {
			t.Errorf("Signup() error = %v, want ErrEmailExists", err)
		}
	})

	t.Run("unknown user type rejected", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Signup(ctx, user.SignupInput{UserType: "admin", Email: "x@y.z", Password: "pw"})
		if !errors.Is(err, user.ErrInvalidUserType) {
			t.Errorf("Signup() error = %v, want ErrInvalidUserType", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	stored := model.User{
		ID:       "u1",
		UserType: model.UserTypeCreator,
		Email:    "alice@example.com",
		Password: "hash:s3cret",
	}

	t.Run("valid credentials yield token with identity", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{stored.Email: stored}}
		jwtMgr := &fakeJWT{}
		uc := newTestUseCase(repo, jwtMgr, &fakeHTTPClient{}, Config{})

		out, err := uc.Login(ctx, user.LoginInput{
			Email:    "alice@example.com",
			Password: "s3cret",
			UserType: model.UserTypeCreator,
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if out.Token != "token-u1" {
			t.Errorf("token = %q, want token-u1", out.Token)
		}
		if jwtMgr.payload.UserID != "u1" || jwtMgr.payload.Role != "creator" {
			t.Errorf("token payload = %+v, want user u1 role creator", jwtMgr.payload)
		}
		if out.User.ID != "u1" {
			t.Errorf("user id = %q, want u1", out.User.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{stored.Email: stored}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Login(ctx, user.LoginInput{
			Email:    "alice@example.com",
			Password: "nope",
			UserType: model.UserTypeCreator,
		})
		if !errors.Is(err, user.ErrWrongPassword) {
			t.Errorf("Login() error = %v, want ErrWrongPassword", err)
		}
	})

	t.Run("wrong user type treated as missing", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{stored.Email: stored}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Login(ctx, user.LoginInput{
			Email:    "alice@example.com",
			Password: "s3cret",
			UserType: model.UserTypeBrand,
		})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("Login() error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeRepo{users: map[string]model.User{}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Login(ctx, user.LoginInput{
			Email:    "ghost@example.com",
			Password: "pw",
			UserType: model.UserTypeCreator,
		})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("Login() error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("sums creators and brands", func(t *testing.T) {
		repo := &fakeRepo{counts: map[model.UserType]int{
			model.UserTypeCreator: 7,
			model.UserTypeBrand:   3,
		}}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		out, err := uc.Stats(ctx, model.Scope{UserID: "u1"})
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if out.TotalCreators != 7 || out.TotalBrands != 3 || out.TotalUsers != 10 {
			t.Errorf("Stats() = %+v, want 7/3/10", out)
		}
	})

	t.Run("count failure surfaces store error", func(t *testing.T) {
		repo := &fakeRepo{countErr: errors.New("db down")}
		uc := newTestUseCase(repo, &fakeJWT{}, &fakeHTTPClient{}, Config{})

		_, err := uc.Stats(ctx, model.Scope{})
		if !errors.Is(err, user.ErrStoreFailed) {
			t.Errorf("Stats() error = %v, want ErrStoreFailed", err)
		}
	})
}

func TestExchangeFBCode(t *testing.T) {
	ctx := context.Background()

	cfg := Config{
		FBAppID:       "app-1",
		FBAppSecret:   "secret-1",
		FBRedirectURI: "https://srv.example.com/api/v1/oauth/facebook/callback",
		FrontendURL:   "https://app.example.com/#/dashboard?success=true",
	}

	t.Run("stores encrypted token and reports redirect", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"access_token": "fb-long-lived", "token_type": "bearer"})
		httpClient := &fakeHTTPClient{body: body, status: 200}
		repo := &fakeRepo{users: map[string]model.User{}}
		uc := newTestUseCase(repo, &fakeJWT{}, httpClient, cfg)

		out, err := uc.ExchangeFBCode(ctx, user.ExchangeFBCodeInput{Code: "code-abc", State: "u1"})
		if err != nil {
			t.Fatalf("ExchangeFBCode() error = %v", err)
		}
		if out.RedirectURL != cfg.FrontendURL {
			t.Errorf("redirect = %q, want frontend url", out.RedirectURL)
		}
		if repo.tokenUpdate == nil {
			t.Fatal("token was not stored")
		}
		if repo.tokenUpdate.UserID != "u1" {
			t.Errorf("token stored for %q, want u1", repo.tokenUpdate.UserID)
		}
		if repo.tokenUpdate.AccessToken != "enc:fb-long-lived" {
			t.Errorf("stored token = %q, want encrypted", repo.tokenUpdate.AccessToken)
		}
		for _, part := range []string{"client_id=app-1", "client_secret=secret-1", "code=code-abc"} {
			if !strings.Contains(httpClient.gotURL, part) {
				t.Errorf("exchange url %q missing %q", httpClient.gotURL, part)
			}
		}
		if !strings.HasPrefix(httpClient.gotURL, DefaultFBGraphURL+"/oauth/access_token?") {
			t.Errorf("exchange url = %q, want graph oauth endpoint", httpClient.gotURL)
		}
	})

	t.Run("graph rejection fails the exchange", func(t *testing.T) {
		httpClient := &fakeHTTPClient{body: []byte(`{"error":{"message":"bad code"}}`), status: 400}
		repo := &fakeRepo{users: map[string]model.User{}}
		uc := newTestUseCase(repo, &fakeJWT{}, httpClient, cfg)

		_, err := uc.ExchangeFBCode(ctx, user.ExchangeFBCodeInput{Code: "bad", State: "u1"})
		if !errors.Is(err, user.ErrOAuthExchangeFailed) {
			t.Errorf("ExchangeFBCode() error = %v, want ErrOAuthExchangeFailed", err)
		}
		if repo.tokenUpdate != nil {
			t.Error("token stored despite failed exchange")
		}
	})

	t.Run("unknown state user", func(t *testing.T) {
		body := []byte(`{"access_token":"tok"}`)
		httpClient := &fakeHTTPClient{body: body, status: 200}
		repo := &fakeRepo{users: map[string]model.User{}, tokenErr: repository.ErrNotFound}
		uc := newTestUseCase(repo, &fakeJWT{}, httpClient, cfg)

		_, err := uc.ExchangeFBCode(ctx, user.ExchangeFBCodeInput{Code: "code", State: "ghost"})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("ExchangeFBCode() error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("missing parameters rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeJWT{}, &fakeHTTPClient{}, cfg)

		for _, tc := range []user.ExchangeFBCodeInput{{Code: "", State: "u1"}, {Code: "c", State: ""}} {
			_, err := uc.ExchangeFBCode(ctx, tc)
			if !errors.Is(err, user.ErrOAuthExchangeFailed) {
				t.Errorf("ExchangeFBCode(%+v) error = %v, want ErrOAuthExchangeFailed", tc, err)
			}
		}
	})

	t.Run("malformed token response", func(t *testing.T) {
		httpClient := &fakeHTTPClient{body: []byte("<html>nope</html>"), status: 200}
		uc := newTestUseCase(&fakeRepo{}, &fakeJWT{}, httpClient, cfg)

		_, err := uc.ExchangeFBCode(ctx, user.ExchangeFBCodeInput{Code: "c", State: "u1"})
		if !errors.Is(err, user.ErrOAuthExchangeFailed) {
			t.Errorf("ExchangeFBCode() error = %v, want ErrOAuthExchangeFailed", err)
		}
	})
}
