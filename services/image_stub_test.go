package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/services"
)

func TestStubImageGeneratorFallback(t *testing.T) {
	g := services.NewStubImageGenerator(t.TempDir())
	ctx := context.Background()

	tests := []struct {
		name       string
		req        services.ImageRequest
		wantSize   string
		wantStyle  string
		wantFormat string
	}{
		{
			name:       "giá trị hỗ trợ giữ nguyên",
			req:        services.ImageRequest{Prompt: "thành phố về đêm", Style: "cartoon", Size: "1280x720", Format: "jpg"},
			wantSize:   "1280x720",
			wantStyle:  "cartoon",
			wantFormat: "jpg",
		},
		{
			name:       "size không hỗ trợ fallback về đầu danh sách",
			req:        services.ImageRequest{Prompt: "núi tuyết", Style: "realistic", Size: "4096x4096", Format: "png"},
			wantSize:   "1024x1024",
			wantStyle:  "realistic",
			wantFormat: "png",
		},
		{
			name:       "style và format lạ không gây lỗi",
			req:        services.ImageRequest{Prompt: "biển xanh", Style: "anime", Size: "512x512", Format: "webp"},
			wantSize:   "512x512",
			wantStyle:  "realistic",
			wantFormat: "png",
		},
		{
			name:       "không phân biệt hoa thường",
			req:        services.ImageRequest{Prompt: "rừng thông", Style: "Realistic", Size: "1024x1024", Format: "PNG"},
			wantSize:   "1024x1024",
			wantStyle:  "realistic",
			wantFormat: "png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := g.GenerateImage(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, result.Size)
			assert.Equal(t, tt.wantStyle, result.Style)
			assert.Equal(t, tt.wantFormat, result.Format)
			assert.NotEmpty(t, result.ImagePath)
		})
	}
}

func TestStubThumbnail(t *testing.T) {
	g := services.NewStubImageGenerator(t.TempDir())

	thumb, err := g.GenerateThumbnail(context.Background(), "Trí tuệ nhân tạo", "minimal", "1280x720")
	require.NoError(t, err)
	assert.Equal(t, "1280x720", thumb.Size)
	assert.Equal(t, "minimal", thumb.Style)
	assert.Contains(t, thumb.ThumbnailPath, ".jpg")
}
