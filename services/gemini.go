package services

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vnkhanh/creator-studio-backend/models"
)

// GeminiScriptGenerator là backend sinh kịch bản thật qua Gemini,
// thay thế stub khi AI_SCRIPT_BACKEND=gemini
type GeminiScriptGenerator struct {
	apiKey string
	model  string
}

func NewGeminiScriptGenerator(apiKey, model string) *GeminiScriptGenerator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiScriptGenerator{apiKey: apiKey, model: model}
}

func (g *GeminiScriptGenerator) GenerateScript(ctx context.Context, req ScriptRequest) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("không thể tạo Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(buildScriptPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("lỗi Gemini xử lý: %v", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini không trả kết quả hợp lệ")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func buildScriptPrompt(req ScriptRequest) string {
	format := req.Format
	if format == "" {
		format = models.ScriptFormatGeneric
	}
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}
	audience := req.Audience
	if audience == "" {
		audience = "khán giả phổ thông"
	}
	minutes := req.DurationMinutes
	if minutes < 1 {
		minutes = 1
	}

	prompt := `Bạn là một biên kịch nội dung mạng xã hội chuyên nghiệp.
	Hãy viết kịch bản hoàn chỉnh theo yêu cầu sau:
	- Có mở bài thu hút, thân bài chia phần rõ ràng, kết bài kêu gọi hành động
	- Ngôn ngữ tự nhiên, phù hợp để đọc thành tiếng
	- KHÔNG sử dụng markdown, KHÔNG in đậm, chỉ trả về văn bản thuần tuý
	- Không bình luận, không giải thích ngoài lề, chỉ trả về nội dung kịch bản`

	return fmt.Sprintf("%s\n\nChủ đề: %s\nĐịnh dạng: %s\nThời lượng: %d phút\nGiọng điệu: %s\nĐối tượng: %s",
		prompt, req.Topic, format, minutes, tone, audience)
}
