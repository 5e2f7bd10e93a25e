package services

import (
	"context"
	"fmt"

	"github.com/conneroisu/groq-go"
)

// GroqScriptGenerator là backend sinh kịch bản qua Groq,
// chọn bằng AI_SCRIPT_BACKEND=groq
type GroqScriptGenerator struct {
	client *groq.Client
	model  groq.ChatModel
}

func NewGroqScriptGenerator(apiKey, model string) (*GroqScriptGenerator, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	return &GroqScriptGenerator{client: client, model: groq.ChatModel(model)}, nil
}

const groqSystemPrompt = "Bạn là biên kịch nội dung mạng xã hội. Chỉ trả về văn bản kịch bản thuần tuý, không markdown, không giải thích."

func (g *GroqScriptGenerator) GenerateScript(ctx context.Context, req ScriptRequest) (string, error) {
	resp, err := g.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: g.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: groqSystemPrompt},
			{Role: groq.RoleUser, Content: buildScriptPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response")
	}
	return content, nil
}
