package ai

import (
	"context"
	"halo-service/internal/app/config"
	"log"

	"google.golang.org/genai"
)

// NewGeminiClient returns nil when no API key is configured; the Gemini
// provider then reports itself as unconfigured.
func NewGeminiClient(ctx context.Context, internalConfig *config.InternalConfig) *genai.Client {
	if internalConfig.Gemini.APIKey == "" {
		log.Println("GEMINI_API_KEY is not set, gemini provider disabled")
		return nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  internalConfig.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Failed to initialize gemini client: %s", err.Error())
		return nil
	}

	log.Println("Successfully initialized gemini client")
	return client
}
