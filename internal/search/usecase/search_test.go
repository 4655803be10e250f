package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	infRepo "influencer-srv/internal/influencer/repository"
	"influencer-srv/internal/model"
	"influencer-srv/internal/search"
	"influencer-srv/internal/search/repository"
	"influencer-srv/pkg/log"
)

type fakeOracle struct {
	keysResp   string
	keysErr    error
	matchResp  string
	matchErr   error
	filterResp string
	filterErr  error

	prompts []string
}

func (f *fakeOracle) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	switch {
	case strings.Contains(prompt, "Required Keys"):
		return f.keysResp, f.keysErr
	case strings.Contains(prompt, "Matching _id Objects"):
		return f.matchResp, f.matchErr
	default:
		return f.filterResp, f.filterErr
	}
}

type fakeProfileRepo struct {
	candidates    []infRepo.Candidate
	candidatesErr error
	profiles      []model.InfluencerProfile
	profilesErr   error
	deleted       map[string]bool

	gotKeys  []string
	gotLimit int
	gotIDs   []string
}

func (f *fakeProfileRepo) Candidates(_ context.Context, opt infRepo.CandidatesOptions) ([]infRepo.Candidate, error) {
	f.gotKeys = opt.Keys
	f.gotLimit = opt.Limit
	return f.candidates, f.candidatesErr
}

func (f *fakeProfileRepo) GetByIDs(_ context.Context, ids []string) ([]model.InfluencerProfile, error) {
	f.gotIDs = ids
	if f.profilesErr != nil {
		return nil, f.profilesErr
	}
	// The real store excludes soft-deleted rows in SQL.
	out := make([]model.InfluencerProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		if f.deleted[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeCache struct {
	stored map[string][]byte
}

func (f *fakeCache) GetSearchResults(_ context.Context, key string) ([]byte, error) {
	if f.stored == nil {
		return nil, repository.ErrCacheMiss
	}
	data, ok := f.stored[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return data, nil
}

func (f *fakeCache) SaveSearchResults(_ context.Context, key string, data []byte) error {
	if f.stored == nil {
		f.stored = map[string][]byte{}
	}
	f.stored[key] = data
	return nil
}

func newTestUseCase(oracle *fakeOracle, repo *fakeProfileRepo, cache *fakeCache) search.UseCase {
	return New(repo, cache, oracle, log.Init(log.ZapConfig{Level: "fatal"}), DefaultConfig())
}

func TestSearch_KeySelection(t *testing.T) {
	t.Run("selected keys reach the candidate query with identity keys forced", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["bio", "metrics.engagement_rate_per_post"]`,
			matchResp: `[]`,
		}
		repo := &fakeProfileRepo{}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "top engagement creators"}); err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		want := []string{"_id", "bio", "metrics.engagement_rate_per_post", "platform"}
		if len(repo.gotKeys) != len(want) {
			t.Fatalf("candidate keys = %v, want %v", repo.gotKeys, want)
		}
		for i, k := range want {
			if repo.gotKeys[i] != k {
				t.Errorf("candidate keys[%d] = %q, want %q", i, repo.gotKeys[i], k)
			}
		}
		if repo.gotLimit != search.CandidateLimit {
			t.Errorf("candidate limit = %d, want %d", repo.gotLimit, search.CandidateLimit)
		}
	})

	t.Run("fenced key list is accepted", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  "```json\n[\"_id\", \"platform\", \"followers\"]\n```",
			matchResp: `[]`,
		}
		repo := &fakeProfileRepo{}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "most followed"}); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		want := []string{"_id", "platform", "followers"}
		for i, k := range want {
			if repo.gotKeys[i] != k {
				t.Errorf("candidate keys[%d] = %q, want %q", i, repo.gotKeys[i], k)
			}
		}
	})

	t.Run("unparsable key list falls back to defaults", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  "I think you need the bio field",
			matchResp: `[]`,
		}
		repo := &fakeProfileRepo{}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "anything"}); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		want := append([]string(nil), search.FallbackKeys...)
		if len(repo.gotKeys) != len(want) {
			t.Fatalf("candidate keys = %v, want fallback %v", repo.gotKeys, want)
		}
		for i, k := range want {
			if repo.gotKeys[i] != k {
				t.Errorf("candidate keys[%d] = %q, want %q", i, repo.gotKeys[i], k)
			}
		}
	})

	t.Run("invented keys are dropped", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform", "secret_field", "bio"]`,
			matchResp: `[]`,
		}
		repo := &fakeProfileRepo{}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "anything"}); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		for _, k := range repo.gotKeys {
			if k == "secret_field" {
				t.Errorf("candidate keys %v contain invented key", repo.gotKeys)
			}
		}
	})
}

func TestSearch_IDMatching(t *testing.T) {
	cands := []infRepo.Candidate{
		{"_id": "a1", "platform": "youtube", "bio": "tech reviews"},
		{"_id": "b2", "platform": "youtube", "bio": "cooking"},
	}

	t.Run("matched ids are resolved against the store", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform", "bio"]`,
			matchResp: `[{"_id": {"$oid": "a1"}}]`,
		}
		repo := &fakeProfileRepo{
			candidates: cands,
			profiles:   []model.InfluencerProfile{{ID: "a1", Platform: model.PlatformYouTube}},
		}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tech reviewers"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(repo.gotIDs) != 1 || repo.gotIDs[0] != "a1" {
			t.Errorf("resolved ids = %v, want [a1]", repo.gotIDs)
		}
		if out.Total != 1 || out.Profiles[0].ID != "a1" {
			t.Errorf("output profiles = %+v, want one profile a1", out.Profiles)
		}
	})

	t.Run("empty array means zero results without error", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform"]`,
			matchResp: `[]`,
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "astronauts"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if out.Total != 0 || len(out.Profiles) != 0 {
			t.Errorf("output = %+v, want empty", out)
		}
		if repo.gotIDs != nil {
			t.Errorf("GetByIDs called with %v for an empty id set", repo.gotIDs)
		}
	})

	t.Run("non-array response yields zero results without error", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform"]`,
			matchResp: `{"best": "a1"}`,
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "anyone"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if out.Total != 0 {
			t.Errorf("Total = %d, want 0", out.Total)
		}
	})

	t.Run("malformed entries are dropped", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform"]`,
			matchResp: `[{"_id": {"$oid": "a1"}}, {"id": "b2"}, "b2", {"_id": "b2"}]`,
		}
		repo := &fakeProfileRepo{
			candidates: cands,
			profiles:   []model.InfluencerProfile{{ID: "a1"}},
		}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "anyone"}); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(repo.gotIDs) != 1 || repo.gotIDs[0] != "a1" {
			t.Errorf("resolved ids = %v, want [a1]", repo.gotIDs)
		}
	})

	t.Run("soft-deleted profiles drop out of the result set", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform"]`,
			matchResp: `[{"_id": {"$oid": "b2"}}]`,
		}
		repo := &fakeProfileRepo{
			candidates: cands,
			profiles:   []model.InfluencerProfile{{ID: "b2", Platform: model.PlatformYouTube}},
			deleted:    map[string]bool{"b2": true},
		}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "cooking"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if out.Total != 0 || len(out.Profiles) != 0 {
			t.Errorf("output = %+v, want empty result set for a deleted profile", out)
		}
	})

	t.Run("candidate ids are serialized in extended JSON", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform"]`,
			matchResp: `[]`,
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "anyone"}); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		var matchPrompt string
		for _, p := range oracle.prompts {
			if strings.Contains(p, "Matching _id Objects") {
				matchPrompt = p
			}
		}
		if !strings.Contains(matchPrompt, `"$oid": "a1"`) {
			t.Errorf("match prompt does not carry extended-JSON ids")
		}
	})

	t.Run("oracle failure surfaces as oracle error", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp: `["_id", "platform"]`,
			matchErr: errors.New("quota exceeded"),
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		_, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "anyone"})
		if !errors.Is(err, search.ErrOracleFailed) {
			t.Errorf("Search() error = %v, want ErrOracleFailed", err)
		}
	})
}

func TestSearch_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeOracle{}, &fakeProfileRepo{}, &fakeCache{})

	if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{}); !errors.Is(err, search.ErrQueryRequired) {
		t.Errorf("empty query error = %v, want ErrQueryRequired", err)
	}
	long := strings.Repeat("x", search.MaxQueryLength+1)
	if _, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: long}); !errors.Is(err, search.ErrQueryTooLong) {
		t.Errorf("long query error = %v, want ErrQueryTooLong", err)
	}
}

func TestSearch_Cache(t *testing.T) {
	oracle := &fakeOracle{
		keysResp:  `["_id", "platform"]`,
		matchResp: `[{"_id": {"$oid": "a1"}}]`,
	}
	repo := &fakeProfileRepo{
		candidates: []infRepo.Candidate{{"_id": "a1", "platform": "youtube"}},
		profiles:   []model.InfluencerProfile{{ID: "a1"}},
	}
	cache := &fakeCache{}
	uc := newTestUseCase(oracle, repo, cache)

	first, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tech"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if first.CacheHit {
		t.Errorf("first call reported a cache hit")
	}

	callsBefore := len(oracle.prompts)
	second, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tech"})
	if err != nil {
		t.Fatalf("Search() second call error = %v", err)
	}
	if !second.CacheHit {
		t.Errorf("second call did not hit the cache")
	}
	if len(oracle.prompts) != callsBefore {
		t.Errorf("second call reached the oracle")
	}
	if second.Total != first.Total {
		t.Errorf("cached Total = %d, want %d", second.Total, first.Total)
	}
}

func TestFilter(t *testing.T) {
	cands := []infRepo.Candidate{
		{"_id": "a1", "platform": "youtube", "bio": "philosophy and logic"},
	}

	t.Run("oracle array is the final answer", func(t *testing.T) {
		filtered := []map[string]any{{"_id": "a1", "bio": "philosophy and logic"}}
		raw, _ := json.Marshal(filtered)
		oracle := &fakeOracle{
			keysResp:   `["_id", "platform", "bio"]`,
			filterResp: string(raw),
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		out, err := uc.Filter(context.Background(), model.Scope{}, search.SearchInput{Query: "psychology"})
		if err != nil {
			t.Fatalf("Filter() error = %v", err)
		}
		if out.Total != 1 || out.Results[0]["_id"] != "a1" {
			t.Errorf("Filter() results = %+v, want the oracle's array", out.Results)
		}
		if repo.gotIDs != nil {
			t.Errorf("filter mode resolved ids against the store")
		}
	})

	t.Run("unparsable response degrades to zero results", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:   `["_id", "platform"]`,
			filterResp: "sorry, I could not find anyone",
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		out, err := uc.Filter(context.Background(), model.Scope{}, search.SearchInput{Query: "psychology"})
		if err != nil {
			t.Fatalf("Filter() error = %v", err)
		}
		if out.Total != 0 || len(out.Results) != 0 {
			t.Errorf("Filter() output = %+v, want empty result set", out)
		}
	})

	t.Run("oracle failure surfaces as oracle error", func(t *testing.T) {
		oracle := &fakeOracle{
			keysResp:  `["_id", "platform"]`,
			filterErr: errors.New("quota exceeded"),
		}
		repo := &fakeProfileRepo{candidates: cands}
		uc := newTestUseCase(oracle, repo, &fakeCache{})

		_, err := uc.Filter(context.Background(), model.Scope{}, search.SearchInput{Query: "psychology"})
		if !errors.Is(err, search.ErrOracleFailed) {
			t.Errorf("Filter() error = %v, want ErrOracleFailed", err)
		}
	})
}
