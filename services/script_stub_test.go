package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/services"
)

func TestStubScriptGenerator(t *testing.T) {
	g := services.NewStubScriptGenerator()
	ctx := context.Background()

	tests := []struct {
		name string
		req  services.ScriptRequest
	}{
		{
			name: "video chuyên nghiệp",
			req: services.ScriptRequest{
				Topic:           "Trí tuệ nhân tạo",
				Format:          models.ScriptFormatVideo,
				DurationMinutes: 5,
				Tone:            "professional",
				Audience:        "lập trình viên",
			},
		},
		{
			name: "tone lạ fallback về professional",
			req: services.ScriptRequest{
				Topic:           "Ẩm thực đường phố",
				Format:          models.ScriptFormatShort,
				DurationMinutes: 1,
				Tone:            "sarcastic",
			},
		},
		{
			name: "format rỗng fallback về generic",
			req: services.ScriptRequest{
				Topic:           "Du lịch Đà Lạt",
				DurationMinutes: 2,
				Tone:            "casual",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := g.GenerateScript(ctx, tt.req)
			require.NoError(t, err)
			assert.NotEmpty(t, script)
			assert.Contains(t, script, tt.req.Topic)
		})
	}
}

func TestStubScriptLengthScalesWithDuration(t *testing.T) {
	g := services.NewStubScriptGenerator()
	ctx := context.Background()

	short, err := g.GenerateScript(ctx, services.ScriptRequest{Topic: "AI", DurationMinutes: 1})
	require.NoError(t, err)
	long, err := g.GenerateScript(ctx, services.ScriptRequest{Topic: "AI", DurationMinutes: 10})
	require.NoError(t, err)

	assert.Greater(t, len(long), len(short))
	// mỗi phút một phần thân bài
	assert.Equal(t, 10, strings.Count(long, "Phần "))
}

func TestStubScriptCancelledContext(t *testing.T) {
	g := services.NewStubScriptGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateScript(ctx, services.ScriptRequest{Topic: "AI", DurationMinutes: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
