package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

// StubScriptGenerator sinh kịch bản theo template, không gọi model thật.
// Cấu trúc mở bài / thân bài / kết bài cố định, độ dài tỉ lệ với duration.
type StubScriptGenerator struct {
	mu    sync.Mutex
	ready bool

	// độ trễ giả lập cho lần "tải model" đầu tiên và cho mỗi phút kịch bản
	downloadDelay time.Duration
	perMinute     time.Duration
}

func NewStubScriptGenerator() *StubScriptGenerator {
	return &StubScriptGenerator{
		downloadDelay: 50 * time.Millisecond,
		perMinute:     5 * time.Millisecond,
	}
}

var toneOpeners = map[string]string{
	"professional": "Chào mừng các bạn đến với chủ đề hôm nay",
	"casual":       "Xin chào cả nhà, hôm nay mình sẽ nói về",
	"energetic":    "Các bạn ơi, chủ đề hôm nay cực kỳ thú vị",
	"educational":  "Trong video này, chúng ta sẽ cùng tìm hiểu về",
}

var formatAngles = map[models.ScriptFormat]string{
	models.ScriptFormatVideo:   "Hãy cùng đi sâu vào từng khía cạnh một.",
	models.ScriptFormatShort:   "Chỉ trong ít phút, đây là những điều bạn cần biết.",
	models.ScriptFormatPodcast: "Hãy ngồi lại và cùng trò chuyện về chủ đề này.",
	models.ScriptFormatGeneric: "Dưới đây là những nội dung chính.",
}

func (g *StubScriptGenerator) ensureReady(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ready {
		return nil
	}
	// lần gọi đầu giả lập việc tải model về
	if err := simulateLatency(ctx, g.downloadDelay); err != nil {
		return err
	}
	g.ready = true
	return nil
}

func (g *StubScriptGenerator) GenerateScript(ctx context.Context, req ScriptRequest) (string, error) {
	if err := g.ensureReady(ctx); err != nil {
		return "", err
	}

	minutes := req.DurationMinutes
	if minutes < 1 {
		minutes = 1
	}
	if err := simulateLatency(ctx, time.Duration(minutes)*g.perMinute); err != nil {
		return "", err
	}

	opener, ok := toneOpeners[strings.ToLower(req.Tone)]
	if !ok {
		opener = toneOpeners["professional"]
	}
	angle, ok := formatAngles[req.Format]
	if !ok {
		angle = formatAngles[models.ScriptFormatGeneric]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s. %s\n\n", opener, req.Topic, angle)

	// mỗi phút một phần thân bài, nên độ dài tăng theo duration
	for i := 1; i <= minutes; i++ {
		fmt.Fprintf(&b, "Phần %d: Khía cạnh thứ %d của %s.\n", i, i, req.Topic)
		fmt.Fprintf(&b, "Ở phần này chúng ta phân tích chi tiết, kèm ví dụ thực tế để người xem dễ hình dung. ")
		fmt.Fprintf(&b, "Điểm quan trọng nhất cần nhớ là %s không chỉ là một xu hướng nhất thời.\n\n", req.Topic)
	}

	audience := req.Audience
	if audience == "" {
		audience = "các bạn"
	}
	fmt.Fprintf(&b, "Kết lại, hy vọng %s đã có cái nhìn rõ hơn về %s. ", audience, req.Topic)
	b.WriteString("Đừng quên like và đăng ký kênh để không bỏ lỡ nội dung tiếp theo!\n")

	return b.String(), nil
}
