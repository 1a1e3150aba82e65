package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appcfg "github.com/maison-lumiere/atelier/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// GenerateImageURL produces a hosted image for the prompt and returns its
// URL. Satisfies the importer's generator contract, so a provider failure
// comes back as a plain error and the caller decides what to do with it.
func (s *Service) GenerateImageURL(ctx context.Context, prompt string) (string, error) {
	provider := s.imageProvider()
	if provider == nil {
		return "", ErrNoProvider
	}

	var (
		url string
		err error
	)
	switch {
	case isOpenAICompatibleProviderType(provider.Type):
		url, err = generateImageViaEndpoint(ctx, provider, prompt)
	case normalizeProviderType(provider.Type) == "anthropic":
		return "", errors.New("anthropic providers do not generate images")
	default:
		url, err = generateImageOpenAI(ctx, provider, prompt)
	}
	if err != nil {
		s.logger.Warn("image generation failed",
			zap.String("provider", provider.ID), zap.Error(err))
		return "", err
	}
	return url, nil
}

func generateImageOpenAI(ctx context.Context, provider *appcfg.AIProvider, prompt string) (string, error) {
	if strings.TrimSpace(provider.APIKey) == "" {
		return "", errors.New("AI provider api key is empty")
	}

	model := strings.TrimSpace(provider.ImageModel)
	if model == "" {
		model = "dall-e-3"
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(provider.APIKey)),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(provider.Endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	client := openaiclient.NewClient(opts...)
	resp, err := client.Images.Generate(ctx, openaiclient.ImageGenerateParams{
		Prompt: prompt,
		Model:  openaiclient.ImageModel(model),
		N:      openaiclient.Int(1),
	})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Data) == 0 {
		return "", errors.New("empty image response from AI")
	}
	if resp.Data[0].URL == "" {
		return "", errors.New("image response carries no URL")
	}
	return resp.Data[0].URL, nil
}

// generateImageViaEndpoint posts to a self-describing generation endpoint
// that answers {"success":true,"imageUrl":"..."}.
func generateImageViaEndpoint(ctx context.Context, provider *appcfg.AIProvider, prompt string) (string, error) {
	endpoint := strings.TrimSpace(provider.Endpoint)
	if endpoint == "" {
		return "", errors.New("image endpoint is empty")
	}

	payload, _ := json.Marshal(map[string]string{
		"prompt": prompt,
		"model":  strings.TrimSpace(provider.ImageModel),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	if key := strings.TrimSpace(provider.APIKey); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("image endpoint error: %s", strings.TrimSpace(string(body)))
	}

	var result struct {
		Success  bool   `json:"success"`
		ImageURL string `json:"imageUrl"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if !result.Success || strings.TrimSpace(result.ImageURL) == "" {
		if result.Message != "" {
			return "", fmt.Errorf("image endpoint error: %s", result.Message)
		}
		return "", errors.New("image endpoint returned no image")
	}
	return result.ImageURL, nil
}
