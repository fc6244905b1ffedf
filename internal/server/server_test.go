package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/server/middleware"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

func testJobs() []types.JobPosting {
	return []types.JobPosting{
		{
			ID: 1, Title: "Go Backend Engineer", Company: "Razorpay", Location: "Bangalore",
			Mode: types.ModeRemote, Experience: types.Experience1To3,
			Description: "Build payment APIs in Go", Skills: []string{"Go", "Postgres"},
			SalaryRange: "₹12-18 LPA", Source: types.SourceLinkedIn, PostedDaysAgo: 1,
		},
		{
			ID: 2, Title: "Frontend Developer", Company: "Swiggy", Location: "Pune",
			Mode: types.ModeOnsite, Experience: types.Experience3To5,
			Description: "React UI work", Skills: []string{"React"},
			SalaryRange: "₹10-14 LPA", Source: "Naukri", PostedDaysAgo: 5,
		},
		{
			ID: 3, Title: "Data Analyst", Company: "Zoho", Location: "Chennai",
			Mode: types.ModeHybrid, Experience: types.Experience0To1,
			Description: "SQL reporting", Skills: []string{"SQL"},
			SalaryRange: "₹4-6 LPA", Source: "Indeed", PostedDaysAgo: 0,
		},
	}
}

func goPreferences() types.PreferenceProfile {
	return types.PreferenceProfile{
		RoleKeywords:       "go",
		PreferredLocations: []string{"Bangalore"},
		PreferredMode:      []types.WorkMode{types.ModeRemote},
		ExperienceLevel:    types.Experience1To3,
		Skills:             "Go",
		MinMatchScore:      40,
	}
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) (*Server, *store.Stores) {
	t.Helper()
	cfg := config.Defaults()
	cfg.Store.Backend = store.BackendMemory
	cfg.Server.RateLimit.RequestsPerMinute = 0
	for _, m := range mutate {
		m(&cfg)
	}

	stores := store.New(store.NewMemory(), zap.NewNop())
	s := New(&cfg, stores, testJobs(), zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	t.Cleanup(s.rateLimiter.Stop)
	return s, stores
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, code, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.Error.RequestID)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s.Handler(), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `{"status":"ok","jobs":3}`, w.Body.String())
}

func TestMatch_ExplicitPreferences(t *testing.T) {
	s, _ := newTestServer(t)
	body, err := json.Marshal(MatchRequest{Job: testJobs()[0], Preferences: ptr(goPreferences())})
	require.NoError(t, err)

	w := do(t, s.Handler(), http.MethodPost, "/match", string(body))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[MatchResponse](t, w)
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, "green", string(resp.Band))
	assert.True(t, resp.Matches)
	assert.Len(t, resp.Breakdown.Rules, 8)
}

func TestMatch_StoredPreferences(t *testing.T) {
	s, stores := newTestServer(t)
	require.NoError(t, stores.Preferences.Save(context.Background(), goPreferences()))
	body, err := json.Marshal(MatchRequest{Job: testJobs()[1]})
	require.NoError(t, err)

	w := do(t, s.Handler(), http.MethodPost, "/match", string(body))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[MatchResponse](t, w)
	assert.Equal(t, 0, resp.Score)
	assert.Equal(t, "grey", string(resp.Band))
	assert.Equal(t, 40, resp.Threshold)
	assert.False(t, resp.Matches)
	assert.Empty(t, resp.Breakdown.Rules)
}

func TestMatch_BadRequests(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	requireError(t, do(t, h, http.MethodPost, "/match", `{not json`), http.StatusBadRequest, "validation")

	resp := requireError(t, do(t, h, http.MethodPost, "/match", `{"job":{"id":1,"company":"Co"}}`), http.StatusBadRequest, "validation")
	assert.Contains(t, resp.Error.Message, "job")

	requireError(t, do(t, h, http.MethodPost, "/match",
		`{"job":{"id":1,"title":"Go","company":"Co"},"preferences":{"minMatchScore":101}}`), http.StatusBadRequest, "validation")
}

func TestMatch_MethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s.Handler(), http.MethodGet, "/match", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSearchJobs(t *testing.T) {
	s, stores := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, stores.Preferences.Save(ctx, goPreferences()))

	t.Run("matches only, sorted by match", func(t *testing.T) {
		w := do(t, s.Handler(), http.MethodPost, "/jobs/search", `{"criteria":{"matchesOnly":true,"sort":"match"}}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[SearchResponse](t, w)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, 1, resp.Jobs[0].ID)
		assert.Equal(t, 100, resp.Jobs[0].MatchScore)
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Steps, 1)
		assert.Equal(t, "matches_only", resp.Steps[0].Name)
		assert.Equal(t, 2, resp.Steps[0].Dropped)
	})

	t.Run("no criteria keeps everything", func(t *testing.T) {
		w := do(t, s.Handler(), http.MethodPost, "/jobs/search", `{"criteria":{}}`)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[SearchResponse](t, w)
		assert.Equal(t, 3, resp.Total)
		assert.Empty(t, resp.Steps)
	})

	t.Run("status filter", func(t *testing.T) {
		_, err := stores.Statuses.Set(ctx, testJobs()[1], types.StatusApplied, fixedNow)
		require.NoError(t, err)

		w := do(t, s.Handler(), http.MethodPost, "/jobs/search", `{"criteria":{"status":"Applied"}}`)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[SearchResponse](t, w)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, 2, resp.Jobs[0].ID)
	})

	t.Run("caller supplied jobs", func(t *testing.T) {
		w := do(t, s.Handler(), http.MethodPost, "/jobs/search",
			`{"jobs":[{"id":7,"title":"Go Intern","company":"Acme","postedDaysAgo":9}],"criteria":{"search":"acme"}}`)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[SearchResponse](t, w)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, 7, resp.Jobs[0].ID)
		assert.Equal(t, 25, resp.Jobs[0].MatchScore)
	})

	t.Run("unknown sort", func(t *testing.T) {
		requireError(t, do(t, s.Handler(), http.MethodPost, "/jobs/search", `{"criteria":{"sort":"random"}}`), http.StatusBadRequest, "validation")
	})

	t.Run("unknown status", func(t *testing.T) {
		requireError(t, do(t, s.Handler(), http.MethodPost, "/jobs/search", `{"criteria":{"status":"Ghosted"}}`), http.StatusBadRequest, "validation")
	})
}

func TestDigest(t *testing.T) {
	s, stores := newTestServer(t)
	h := s.Handler()

	t.Run("requires preferences", func(t *testing.T) {
		requireError(t, do(t, h, http.MethodPost, "/digest", ""), http.StatusBadRequest, "validation")
	})

	require.NoError(t, stores.Preferences.Save(context.Background(), goPreferences()))

	t.Run("generate", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/digest", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[DigestResponse](t, w)
		assert.True(t, resp.Stored)
		assert.Equal(t, "2026-03-09", resp.Digest.Date)
		require.Len(t, resp.Digest.Jobs, 1)
		assert.Equal(t, 1, resp.Digest.Jobs[0].ID)
	})

	t.Run("get stored", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/digest/2026-03-09", "")
		require.Equal(t, http.StatusOK, w.Code)

		d := decode[types.Digest](t, w)
		assert.Equal(t, "2026-03-09", d.Date)
		assert.Len(t, d.Jobs, 1)
	})

	t.Run("list dates", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/digest", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"dates":["2026-03-09"]}`, w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		requireError(t, do(t, h, http.MethodGet, "/digest/2026-03-10", ""), http.StatusNotFound, "not_found")
	})

	t.Run("malformed date", func(t *testing.T) {
		requireError(t, do(t, h, http.MethodGet, "/digest/yesterday", ""), http.StatusBadRequest, "validation")
	})
}

func TestDigest_EmptyNotStored(t *testing.T) {
	s, stores := newTestServer(t)
	prefs := goPreferences()
	prefs.RoleKeywords = "rust"
	prefs.PreferredLocations = []string{"Mumbai"}
	prefs.Skills = "rust"
	prefs.PreferredMode = nil
	prefs.ExperienceLevel = ""
	prefs.MinMatchScore = 90
	require.NoError(t, stores.Preferences.Save(context.Background(), prefs))

	w := do(t, s.Handler(), http.MethodPost, "/digest", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DigestResponse](t, w)
	assert.False(t, resp.Stored)
	assert.Empty(t, resp.Digest.Jobs)

	requireError(t, do(t, s.Handler(), http.MethodGet, "/digest/2026-03-09", ""), http.StatusNotFound, "not_found")
}

func TestPreferences(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodGet, "/preferences", "")
	require.Equal(t, http.StatusOK, w.Code)
	prefs := decode[types.PreferenceProfile](t, w)
	assert.Equal(t, types.DefaultMinMatchScore, prefs.MinMatchScore)

	w = do(t, h, http.MethodPut, "/preferences", `{"roleKeywords":"go, backend","preferredMode":["Remote"],"minMatchScore":55}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	prefs = decode[types.PreferenceProfile](t, w)
	assert.Equal(t, 55, prefs.MinMatchScore)
	assert.Equal(t, []string{}, prefs.PreferredLocations)

	w = do(t, h, http.MethodGet, "/preferences", "")
	prefs = decode[types.PreferenceProfile](t, w)
	assert.Equal(t, "go, backend", prefs.RoleKeywords)

	requireError(t, do(t, h, http.MethodPut, "/preferences", `{"minMatchScore":101}`), http.StatusBadRequest, "validation")
	requireError(t, do(t, h, http.MethodPut, "/preferences", `{"preferredMode":["Office"],"minMatchScore":40}`), http.StatusBadRequest, "validation")
}

func TestStatus(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodPut, "/status/1", `{"status":"Applied"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	change := decode[types.StatusChange](t, w)
	assert.Equal(t, 1, change.JobID)
	assert.Equal(t, "Go Backend Engineer", change.JobTitle)
	assert.Equal(t, types.StatusApplied, change.Status)

	w = do(t, h, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"1":"Applied"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/status/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]types.StatusChange](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].JobID)

	requireError(t, do(t, h, http.MethodPut, "/status/99", `{"status":"Applied"}`), http.StatusNotFound, "not_found")
	requireError(t, do(t, h, http.MethodPut, "/status/abc", `{"status":"Applied"}`), http.StatusBadRequest, "validation")
	requireError(t, do(t, h, http.MethodPut, "/status/1", `{"status":"Ghosted"}`), http.StatusBadRequest, "validation")
}

func TestSaved(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/saved/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, SavedResponse{JobID: 3, Saved: true}, decode[SavedResponse](t, w))

	w = do(t, h, http.MethodGet, "/saved", "")
	assert.JSONEq(t, `[3]`, w.Body.String())

	w = do(t, h, http.MethodPost, "/saved/3", "")
	assert.Equal(t, SavedResponse{JobID: 3, Saved: false}, decode[SavedResponse](t, w))

	w = do(t, h, http.MethodGet, "/saved", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	requireError(t, do(t, h, http.MethodPost, "/saved/42", ""), http.StatusNotFound, "not_found")
}

func TestATSScore(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/ats/score", `{"resume":{}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[ATSResponse](t, w)
	assert.Equal(t, 0, resp.Score)
	assert.Equal(t, "Needs Work", resp.Band)
	assert.Equal(t, "v2", resp.Policy)
	assert.Len(t, resp.Suggestions, 11)
	assert.Equal(t, resp.Suggestions[:5], resp.Top)
	assert.Equal(t, "Add Name (+10)", resp.Top[0])

	w = do(t, h, http.MethodPost, "/ats/score", `{"resume":{},"policy":"v1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[ATSResponse](t, w)
	assert.Equal(t, "v1", resp.Policy)
	assert.Equal(t, "low", resp.Band)
	assert.LessOrEqual(t, len(resp.Top), 3)

	requireError(t, do(t, h, http.MethodPost, "/ats/score", `{"resume":{},"policy":"v9"}`), http.StatusBadRequest, "validation")
}

func TestGuidance(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/ats/guidance", `{"text":"worked on the billing service"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[GuidanceResponse](t, w)
	require.NotNil(t, resp.Guidance)
	assert.Equal(t, types.GuidanceWarning, resp.Guidance.Type)

	w = do(t, h, http.MethodPost, "/ats/guidance", `{"text":"Built the billing service"}`)
	resp = decode[GuidanceResponse](t, w)
	require.NotNil(t, resp.Guidance)
	assert.Equal(t, types.GuidanceSuggestion, resp.Guidance.Type)

	w = do(t, h, http.MethodPost, "/ats/guidance", `{"text":"   "}`)
	assert.JSONEq(t, `{"guidance":null}`, w.Body.String())
}

func TestMigrateResume(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodPost, "/resume/migrate", `{"personal":{"name":"Asha"},"skills":"Go, SQL"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[MigrateResponse](t, w)
	assert.Equal(t, "Asha", resp.Document.Resume.Personal.Name)
	assert.Equal(t, []string{"Go", "SQL"}, resp.Document.Resume.Skills.Technical)
	assert.Equal(t, types.TemplateClassic, resp.Document.Template)
	assert.Equal(t, []string{"No Experience or Projects"}, resp.Issues)

	requireError(t, do(t, h, http.MethodPost, "/resume/migrate", `[1,2`), http.StatusBadRequest, "validation")
}

func TestResume_PutAndGet(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	w := do(t, h, http.MethodGet, "/resume", "")
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode[types.ResumeDocument](t, w)
	assert.Equal(t, types.TemplateClassic, doc.Template)

	w = do(t, h, http.MethodPut, "/resume", `{"resume":{"personal":{"name":"Asha"},"skills":"Go"},"template":"modern","color":"#111111"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/resume", "")
	doc = decode[types.ResumeDocument](t, w)
	assert.Equal(t, "Asha", doc.Resume.Personal.Name)
	assert.Equal(t, "modern", doc.Template)
	assert.Equal(t, []string{"Go"}, doc.Resume.Skills.Technical)

	requireError(t, do(t, h, http.MethodPut, "/resume", `{"personal":{"email":"not-an-email"}}`), http.StatusBadRequest, "validation")
}

func TestProofStatus(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s.Handler(), http.MethodGet, "/proof", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ProofResponse](t, w)
	assert.Equal(t, types.ProjectNotStarted, resp.Status)
	assert.Equal(t, 0, resp.TestsPassed)
	assert.Equal(t, 10, resp.TestsTotal)
	assert.False(t, resp.Shipped)
}

func TestRateLimit(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Server.RateLimit.RequestsPerMinute = 1
		c.Server.RateLimit.Burst = 1
	})
	h := s.Handler()

	w := do(t, h, http.MethodGet, "/preferences", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do(t, h, http.MethodGet, "/preferences", "")
	requireError(t, w, http.StatusTooManyRequests, "rate_limited")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// health is never limited
	for range 3 {
		assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Server.CORSOrigins = []string{"https://tracker.example.com"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/preferences", nil)
	req.Header.Set("Origin", "https://tracker.example.com")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://tracker.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Server.Port = 0
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func ptr[T any](v T) *T { return &v }
