package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/routes"
	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
)

// newTestAPI dựng router đầy đủ với store rỗng và toàn bộ backend stub
func newTestAPI(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	s := store.NewStore()
	scripts := services.NewStubScriptGenerator()
	tts := services.NewStubTextToSpeech(dir)
	images := services.NewStubImageGenerator(dir)
	video := services.NewSlideshowVideoCompiler(tts, images, dir)
	orchestrator := services.NewOrchestrator(s, scripts, tts, images, video, nil)

	r := gin.New()
	routes.SetupRouter(r, routes.Deps{
		Store:        s,
		Orchestrator: orchestrator,
		Scripts:      scripts,
		TTS:          tts,
		Images:       images,
		Video:        video,
	})
	return r, s
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestTrendingTopicEndpoints(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/trending-topics", gin.H{
		"topic":      "Trí tuệ nhân tạo",
		"category":   "technology",
		"trendScore": 90,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.TrendingTopic
	decodeJSON(t, w, &created)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Trí tuệ nhân tạo", created.Topic)
	assert.False(t, created.DiscoveredAt.IsZero())

	// thiếu field bắt buộc → 400
	w = doRequest(t, r, http.MethodPost, "/api/trending-topics", gin.H{"topic": "thiếu category"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// trendScore ngoài khoảng 1..100 → 400
	w = doRequest(t, r, http.MethodPost, "/api/trending-topics", gin.H{
		"topic": "điểm lỗi", "category": "tech", "trendScore": 150,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/trending-topics/1", gin.H{"trendScore": 99})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.TrendingTopic
	decodeJSON(t, w, &updated)
	assert.Equal(t, 99, updated.TrendScore)
	assert.Equal(t, "Trí tuệ nhân tạo", updated.Topic)

	w = doRequest(t, r, http.MethodGet, "/api/trending-topics/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/trending-topics/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/trending-topics/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTopTopicsEndpoint(t *testing.T) {
	r, s := newTestAPI(t)
	s.CreateTopic(models.TrendingTopicInput{Topic: "Gaming", Category: "game", TrendScore: 70})
	s.CreateTopic(models.TrendingTopicInput{Topic: "AI", Category: "tech", TrendScore: 95})

	w := doRequest(t, r, http.MethodGet, "/api/trending-topics/top?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var top []models.TrendingTopic
	decodeJSON(t, w, &top)
	require.Len(t, top, 1)
	assert.Equal(t, "AI", top[0].Topic)
}

func TestAutomationCreateContentEndpoint(t *testing.T) {
	r, s := newTestAPI(t)
	topic := s.CreateTopic(models.TrendingTopicInput{Topic: "AI", Category: "tech", TrendScore: 95})

	w := doRequest(t, r, http.MethodPost, "/api/automation/create-content", gin.H{"contentType": "text"})
	require.Equal(t, http.StatusCreated, w.Code)

	var result map[string]any
	decodeJSON(t, w, &result)

	resultTopic := result["topic"].(map[string]any)
	assert.Equal(t, float64(topic.ID), resultTopic["id"])

	content := result["content"].(map[string]any)
	assert.Equal(t, "text", content["contentType"])

	// không yêu cầu lên lịch thì scheduledPost phải là null tường minh
	val, ok := result["scheduledPost"]
	require.True(t, ok)
	assert.Nil(t, val)
}

func TestAutomationCreateContentNoTopics(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/automation/create-content", gin.H{"contentType": "text"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccountRequiresExistingPlatform(t *testing.T) {
	r, s := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/platform-accounts", gin.H{
		"platformId": 99, "name": "Kênh chính", "username": "main",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	platform := s.CreatePlatform(models.PlatformInput{Name: "YouTube", Icon: "youtube"})
	w = doRequest(t, r, http.MethodPost, "/api/platform-accounts", gin.H{
		"platformId": platform.ID, "name": "Kênh chính", "username": "main",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var account models.PlatformAccount
	decodeJSON(t, w, &account)
	assert.True(t, account.Active)
}

func TestScheduledPostValidation(t *testing.T) {
	r, s := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/scheduled-posts", gin.H{
		"contentId": 1, "platformAccountId": 1, "scheduledTime": "2026-09-01T10:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	content := s.CreateContent(models.ContentInput{Title: "Video AI", ContentType: models.ContentTypeVideo})
	platform := s.CreatePlatform(models.PlatformInput{Name: "YouTube", Icon: "youtube"})
	account := s.CreateAccount(models.PlatformAccountInput{PlatformID: platform.ID, Name: "Kênh", Username: "main"})

	w = doRequest(t, r, http.MethodPost, "/api/scheduled-posts", gin.H{
		"contentId": content.ID, "platformAccountId": account.ID, "scheduledTime": "2026-09-01T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var post models.ScheduledPost
	decodeJSON(t, w, &post)
	assert.Equal(t, models.PostStatusPending, post.Status)
}

func TestUpcomingPostsEmptyArray(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/scheduled-posts/upcoming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestScriptToAudioFinalizesScript(t *testing.T) {
	r, s := newTestAPI(t)
	script := s.CreateScript(models.ScriptInput{
		Title:   "Kịch bản AI",
		Topic:   "AI",
		Format:  models.ScriptFormatVideo,
		Content: "một hai ba bốn năm sáu bảy tám chín mười",
	})
	require.Equal(t, models.ScriptStatusDraft, script.Status)

	w := doRequest(t, r, http.MethodPost, "/api/scripts/1/audio", gin.H{"voiceId": "nu-cao"})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Script models.Script        `json:"script"`
		Audio  services.AudioResult `json:"audio"`
	}
	decodeJSON(t, w, &result)

	assert.Equal(t, models.ScriptStatusFinalized, result.Script.Status)
	require.NotNil(t, result.Script.AudioPath)
	assert.Equal(t, result.Audio.AudioPath, *result.Script.AudioPath)
	assert.Equal(t, 10, result.Audio.WordCount)
}

func TestScriptToAudioUnknownVoice(t *testing.T) {
	r, s := newTestAPI(t)
	s.CreateScript(models.ScriptInput{Title: "Kịch bản", Topic: "AI", Content: "xin chào"})

	w := doRequest(t, r, http.MethodPost, "/api/scripts/1/audio", gin.H{"voiceId": "giong-la"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAiGenerateScriptEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/ai/generate-script", gin.H{
		"topic": "Ẩm thực Hà Nội", "format": "podcast", "durationMinutes": 3, "tone": "casual",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var script models.Script
	decodeJSON(t, w, &script)
	assert.Equal(t, models.ScriptStatusDraft, script.Status)
	assert.Equal(t, models.ScriptFormatPodcast, script.Format)
	assert.NotEmpty(t, script.Content)
}

func TestAutomationSettingsEndpoints(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/automation/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var settings store.AutomationSettings
	decodeJSON(t, w, &settings)
	assert.False(t, settings.Enabled)

	settings.Enabled = true
	settings.PreferredContentType = "text"
	w = doRequest(t, r, http.MethodPost, "/api/automation/settings", settings)
	require.Equal(t, http.StatusOK, w.Code)
	var echoed store.AutomationSettings
	decodeJSON(t, w, &echoed)
	assert.Equal(t, settings, echoed)

	w = doRequest(t, r, http.MethodPost, "/api/automation/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled map[string]any
	decodeJSON(t, w, &toggled)
	assert.Equal(t, false, toggled["enabled"])
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decodeJSON(t, w, &body)
	assert.Equal(t, "ok", body["status"])
}
