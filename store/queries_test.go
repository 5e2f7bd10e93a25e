package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

func TestTopTopicsSortedByScore(t *testing.T) {
	s := store.NewStore()
	s.CreateTopic(topicInput("Gaming", 70))
	s.CreateTopic(topicInput("AI", 95))
	s.CreateTopic(topicInput("Ẩm thực", 80))
	s.CreateTopic(topicInput("Du lịch", 60))

	top := s.TopTopics(3)
	require.Len(t, top, 3)
	assert.Equal(t, "AI", top[0].Topic)
	assert.Equal(t, "Ẩm thực", top[1].Topic)
	assert.Equal(t, "Gaming", top[2].Topic)

	best, err := s.TopTopic()
	require.NoError(t, err)
	assert.Equal(t, "AI", best.Topic)
}

func TestTopTopicEmptyStore(t *testing.T) {
	s := store.NewStore()
	_, err := s.TopTopic()
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, s.TopTopics(5))
}

func TestRecentContentNewestFirst(t *testing.T) {
	s := store.NewStore()
	for _, title := range []string{"một", "hai", "ba"} {
		s.CreateContent(models.ContentInput{Title: title, ContentType: models.ContentTypeText})
	}

	// tạo liền nhau nên createdAt có thể trùng, khi đó ID lớn hơn đứng trước
	recent := s.RecentContent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(3), recent[0].ID)
	assert.Equal(t, int64(2), recent[1].ID)
}

func TestUpcomingPostsFilterAndOrder(t *testing.T) {
	s := store.NewStore()
	now := time.Now()

	s.CreatePost(models.ScheduledPostInput{ContentID: 1, PlatformAccountID: 1, ScheduledTime: now.Add(-time.Hour)})
	late := s.CreatePost(models.ScheduledPostInput{ContentID: 2, PlatformAccountID: 1, ScheduledTime: now.Add(48 * time.Hour)})
	soon := s.CreatePost(models.ScheduledPostInput{ContentID: 3, PlatformAccountID: 1, ScheduledTime: now.Add(time.Hour)})

	upcoming := s.UpcomingPosts(10)
	require.Len(t, upcoming, 2)
	assert.Equal(t, soon.ID, upcoming[0].ID)
	assert.Equal(t, late.ID, upcoming[1].ID)

	assert.Len(t, s.UpcomingPosts(1), 1)
}

func TestAccountsByPlatform(t *testing.T) {
	s := store.NewStore()
	yt := s.CreatePlatform(models.PlatformInput{Name: "YouTube", Icon: "youtube"})
	tk := s.CreatePlatform(models.PlatformInput{Name: "TikTok", Icon: "tiktok"})

	inactive := false
	s.CreateAccount(models.PlatformAccountInput{PlatformID: yt.ID, Name: "Kênh chính", Username: "main", Active: &inactive})
	active := s.CreateAccount(models.PlatformAccountInput{PlatformID: yt.ID, Name: "Kênh phụ", Username: "backup"})
	s.CreateAccount(models.PlatformAccountInput{PlatformID: tk.ID, Name: "TikTok", Username: "tiktok"})

	accounts := s.AccountsByPlatform(yt.ID)
	require.Len(t, accounts, 2)

	// account inactive bị bỏ qua khi chọn account để lên lịch
	found, ok := s.FirstActiveAccount(yt.ID)
	require.True(t, ok)
	assert.Equal(t, active.ID, found.ID)

	_, ok = s.FirstActiveAccount(999)
	assert.False(t, ok)
}

func TestSeedDefaults(t *testing.T) {
	s := store.NewStore()
	s.Seed()

	platforms := s.ListPlatforms()
	assert.Len(t, platforms, 4)

	configs := s.ListAiConfigs()
	require.Len(t, configs, 4)
	types := map[models.ModelType]bool{}
	for _, c := range configs {
		types[c.ModelType] = true
	}
	for _, want := range []models.ModelType{models.ModelTypeLLM, models.ModelTypeTTS, models.ModelTypeImage, models.ModelTypeVideo} {
		assert.True(t, types[want], "thiếu cấu hình cho %s", want)
	}
}
