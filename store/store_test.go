package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

func topicInput(topic string, score int) models.TrendingTopicInput {
	return models.TrendingTopicInput{
		Topic:      topic,
		Category:   "technology",
		TrendScore: score,
	}
}

func TestIDsMonotonicPerType(t *testing.T) {
	s := store.NewStore()

	first := s.CreateTopic(topicInput("AI", 90))
	second := s.CreateTopic(topicInput("Gaming", 80))
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	// xoá bản ghi không làm counter quay lại
	require.True(t, s.DeleteTopic(second.ID))
	third := s.CreateTopic(topicInput("Ẩm thực", 70))
	assert.Equal(t, int64(3), third.ID)

	// counter tách riêng theo từng loại entity
	content := s.CreateContent(models.ContentInput{
		Title:       "Video đầu tiên",
		ContentType: models.ContentTypeVideo,
	})
	assert.Equal(t, int64(1), content.ID)
}

func TestUpdateTopicMergesFields(t *testing.T) {
	s := store.NewStore()
	desc := "xu hướng AI tạo sinh"
	created := s.CreateTopic(models.TrendingTopicInput{
		Topic:       "AI",
		Category:    "technology",
		Description: &desc,
		TrendScore:  90,
	})

	newScore := 95
	updated, err := s.UpdateTopic(created.ID, models.TrendingTopicUpdate{TrendScore: &newScore})
	require.NoError(t, err)

	// chỉ field gửi lên thay đổi, phần còn lại giữ nguyên
	assert.Equal(t, 95, updated.TrendScore)
	assert.Equal(t, "AI", updated.Topic)
	assert.Equal(t, "technology", updated.Category)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
	assert.Equal(t, created.DiscoveredAt, updated.DiscoveredAt)
}

func TestUpdateContentMergesFields(t *testing.T) {
	s := store.NewStore()
	path := "/tmp/video.mp4"
	created := s.CreateContent(models.ContentInput{
		Title:       "Video AI",
		Description: "mô tả ban đầu",
		ContentType: models.ContentTypeVideo,
		FilePath:    &path,
		Metadata:    models.Metadata{"views": 10},
	})
	require.Equal(t, models.ContentStatusDraft, created.Status)

	status := models.ContentStatusPublished
	updated, err := s.UpdateContent(created.ID, models.ContentUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.ContentStatusPublished, updated.Status)
	assert.Equal(t, "Video AI", updated.Title)
	assert.Equal(t, "mô tả ban đầu", updated.Description)
	require.NotNil(t, updated.FilePath)
	assert.Equal(t, path, *updated.FilePath)
	assert.Equal(t, models.Metadata{"views": 10}, updated.Metadata)
}

func TestNotFound(t *testing.T) {
	s := store.NewStore()

	_, err := s.GetTopic(42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateContent(42, models.ContentUpdate{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.False(t, s.DeletePost(42))
}

func TestPostStatusDefaultsPending(t *testing.T) {
	s := store.NewStore()
	post := s.CreatePost(models.ScheduledPostInput{
		ContentID:         1,
		PlatformAccountID: 1,
		ScheduledTime:     time.Now().Add(time.Hour),
	})
	assert.Equal(t, models.PostStatusPending, post.Status)
}

func TestAutomationSettingsToggle(t *testing.T) {
	s := store.NewStore()
	require.False(t, s.AutomationSettings().Enabled)

	assert.True(t, s.ToggleAutomation().Enabled)
	assert.False(t, s.ToggleAutomation().Enabled)

	settings := store.AutomationSettings{
		Enabled:              true,
		IntervalHours:        12,
		MaxPostsPerDay:       5,
		PreferredContentType: "text",
		AutoSchedule:         false,
	}
	assert.Equal(t, settings, s.SetAutomationSettings(settings))
	assert.Equal(t, settings, s.AutomationSettings())
}
