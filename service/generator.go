package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"fedfilter-backend/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the inference collaborator contract: given an instruction
// pair and a sampling temperature, return text that should parse as the
// extraction shape, or fail.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, userInstruction string, temperature float32) (string, error)
}

// GeminiGenerator calls the Gemini API with schema-constrained JSON output.
// The underlying client is created on first use and shared across calls; it
// is stateless per call so concurrent use is safe.
type GeminiGenerator struct {
	apiKey string
	model  string
	schema *genai.Schema

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiGenerator creates a generator for the given API key and model name
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey: apiKey,
		model:  model,
		schema: models.ResponseSchema(),
	}
}

func (g *GeminiGenerator) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	})
	return g.client, g.initErr
}

// Generate performs one inference call
func (g *GeminiGenerator) Generate(ctx context.Context, systemInstruction, userInstruction string, temperature float32) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.SetTemperature(temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = g.schema

	resp, err := model.GenerateContent(ctx, genai.Text(userInstruction))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("gemini returned no text content")
	}
	return b.String(), nil
}
